package checks

import (
	"strings"

	"github.com/bibin-skaria/slcheck/report"
)

// checkRequiredEntries confirms each required configuration file is present
// somewhere in the archive. Suffix match only; an entry nested in a job
// subfolder still satisfies the requirement (the structure check already
// warned about the nesting). Thumbnail copies don't count.
func (v *Validator) checkRequiredEntries(names []string, rep *report.Report) {
	for _, required := range v.rules.RequiredEntries {
		found := false
		for _, name := range names {
			if strings.HasPrefix(name, thumbnailPrefix) {
				continue
			}
			if strings.HasSuffix(name, required) {
				found = true
				break
			}
		}
		if !found {
			rep.AddError(StageRequired, "required file missing: %s", required)
		}
	}
}
