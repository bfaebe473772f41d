package checks

import (
	"strconv"
	"strings"

	"github.com/bibin-skaria/slcheck/internal/types"
	"github.com/bibin-skaria/slcheck/jobconfig"
	"github.com/bibin-skaria/slcheck/report"
)

// checkConsistency reconciles config.ini values against the discovered
// layer image set. The job-name and layer-count checks are independent and
// best-effort; one failing never suppresses the other.
func (v *Validator) checkConsistency(model *jobconfig.Model, images []types.LayerImage, rep *report.Report) {
	v.checkJobName(model, images, rep)
	v.checkLayerCount(model, images, rep)
}

// checkJobName compares jobDir against the base name of the first layer
// image in original archive order. Trailing '_' and '-' separators are
// stripped from both sides before comparing, since slicers append either.
func (v *Validator) checkJobName(model *jobconfig.Model, images []types.LayerImage, rep *report.Report) {
	jobDir, ok := model.Get(v.rules.ConfigSection, v.rules.JobDirKey)
	if !ok || jobDir == "" || len(images) == 0 {
		return
	}

	first := images[0]
	if !first.Matched {
		return
	}

	imageBase := strings.TrimRight(first.Base, "_-")
	configBase := strings.TrimRight(jobDir, "_-")

	if imageBase != configBase {
		rep.AddError(StageConsistency,
			"layer image base name '%s' doesn't match %s '%s' in %s",
			imageBase, v.rules.JobDirKey, configBase, v.rules.ConfigEntry)
	}
}

// checkLayerCount verifies the declared layer count against both the number
// of recognized layer images and the maximum observed index. Both checks
// may fire on the same run.
func (v *Validator) checkLayerCount(model *jobconfig.Model, images []types.LayerImage, rep *report.Report) {
	declared, ok := model.Get(v.rules.ConfigSection, v.rules.LayerCountKey)
	if !ok || declared == "" {
		return
	}

	count, err := strconv.Atoi(declared)
	if err != nil {
		rep.AddError(StageConsistency,
			"%s in %s is not a valid integer: '%s'", v.rules.LayerCountKey, v.rules.ConfigEntry, declared)
		return
	}

	if count != len(images) {
		rep.AddError(StageConsistency,
			"%s in %s (%d) doesn't match number of layer image files (%d)",
			v.rules.LayerCountKey, v.rules.ConfigEntry, count, len(images))
	}

	maxIndex := -1
	for _, image := range images {
		if image.Matched && image.Index > maxIndex {
			maxIndex = image.Index
		}
	}
	if maxIndex >= 0 && maxIndex != count-1 {
		rep.AddError(StageConsistency,
			"last layer image number (%d) doesn't match %s-1 (%d)",
			maxIndex, v.rules.LayerCountKey, count-1)
	}
}
