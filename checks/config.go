package checks

import (
	"github.com/bibin-skaria/slcheck/archive"
	"github.com/bibin-skaria/slcheck/jobconfig"
	"github.com/bibin-skaria/slcheck/report"
)

// extractConfig locates and parses the primary configuration entry. The
// first match in archive order wins when duplicates exist. A nil return
// means the consistency stage must be skipped; the failure itself has
// already been recorded as a finding.
func (v *Validator) extractConfig(r *archive.Reader, rep *report.Report) *jobconfig.Model {
	name, ok := r.FindBySuffix(v.rules.ConfigEntry, thumbnailPrefix)
	if !ok {
		rep.AddError(StageConfig, "%s not found in archive", v.rules.ConfigEntry)
		return nil
	}

	data, err := r.ReadEntry(name)
	if err != nil {
		rep.AddError(StageConfig, "failed to read %s: %s", name, errMessage(err))
		return nil
	}

	model, err := jobconfig.Parse(data)
	if err != nil {
		rep.AddError(StageConfig, "failed to parse %s: %s", name, errMessage(err))
		return nil
	}

	v.log.WithStage(StageConfig).WithField("entry", name).Debug("config parsed")
	return model
}
