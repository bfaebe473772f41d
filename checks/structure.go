package checks

import (
	"sort"
	"strings"

	"github.com/bibin-skaria/slcheck/report"
)

// checkStructure inspects the entry listing for the expected flat layout.
// Entries under the reserved prefixes are ignored; everything else is
// expected at the archive root. Nested entries only warn, since some
// printers tolerate them, but an archive with nothing outside the reserved
// prefixes is unusable.
func (v *Validator) checkStructure(names []string, rep *report.Report) {
	foundEntry := false
	folders := make(map[string]bool)

	for _, name := range names {
		if v.reserved(name) {
			continue
		}
		foundEntry = true
		if i := strings.Index(name, "/"); i > 0 {
			folders[name[:i]] = true
		}
	}

	if !foundEntry {
		rep.AddError(StageStructure, "archive is empty or has a nested folder structure")
		return
	}

	// Sorted so repeated runs report offending folders in a stable order.
	sorted := make([]string, 0, len(folders))
	for folder := range folders {
		sorted = append(sorted, folder)
	}
	sort.Strings(sorted)

	for _, folder := range sorted {
		rep.AddWarning(StageStructure,
			"files are contained in subfolder '%s'; printer firmware may reject files placed in a subfolder", folder)
	}

	v.log.WithStage(StageStructure).WithField("subfolders", len(folders)).Debug("structure check done")
}
