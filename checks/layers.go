package checks

import (
	"sort"
	"strconv"
	"strings"

	"github.com/bibin-skaria/slcheck/internal/types"
	"github.com/bibin-skaria/slcheck/report"
)

// Layer indices are fixed-width five-digit values.
const maxLayerIndex = 99999

// isLayerImage classifies an entry as a layer image: recognized extension,
// not under a reserved prefix, and at the archive root. Images nested in a
// job subfolder are not classified as layers here; the structure check
// warns about the nesting instead.
func (v *Validator) isLayerImage(name string) bool {
	if strings.Contains(name, "/") {
		return false
	}
	if v.reserved(name) {
		return false
	}
	lower := strings.ToLower(name)
	for _, ext := range v.rules.LayerExtensions {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}

// checkLayerImages validates the naming and numbering of the layer image
// set. Files that fail the name##### pattern are fatal and excluded from
// numeric analysis, but remain in the returned slice so the consistency
// stage still counts them as found.
func (v *Validator) checkLayerImages(names []string, rep *report.Report) []types.LayerImage {
	var images []types.LayerImage
	for _, name := range names {
		if v.isLayerImage(name) {
			images = append(images, types.LayerImage{Name: name})
		}
	}

	if len(images) == 0 {
		rep.AddWarning(StageLayers, "no layer image files found in archive")
		return nil
	}

	baseNames := make(map[string]bool)
	var indices []int

	for i := range images {
		match := v.layerPattern.FindStringSubmatch(images[i].Name)
		if match == nil {
			rep.AddError(StageLayers,
				"layer image %s doesn't match the name##### naming pattern", images[i].Name)
			continue
		}

		index, err := strconv.Atoi(match[2])
		if err != nil {
			// Five captured digits always parse; guard anyway.
			rep.AddError(StageLayers, "layer image %s has an unparsable index: %s", images[i].Name, match[2])
			continue
		}

		images[i].Base = match[1]
		images[i].Index = index
		images[i].Matched = true
		baseNames[match[1]] = true
		indices = append(indices, index)
	}

	if len(baseNames) > 1 {
		distinct := make([]string, 0, len(baseNames))
		for base := range baseNames {
			distinct = append(distinct, base)
		}
		sort.Strings(distinct)
		rep.AddError(StageLayers,
			"multiple layer image base names found: %s; all layer images should share one base name",
			strings.Join(distinct, ", "))
	}

	v.checkLayerSequence(indices, rep)

	v.log.WithStage(StageLayers).WithField("images", len(images)).Debug("layer image check done")
	return images
}

// checkLayerSequence verifies the sorted indices form one contiguous run
// starting at the minimum observed index.
func (v *Validator) checkLayerSequence(indices []int, rep *report.Report) {
	if len(indices) == 0 {
		return
	}

	sort.Ints(indices)

	observed := make(map[int]bool, len(indices))
	for _, index := range indices {
		observed[index] = true
	}

	var missing []int
	for index := indices[0]; index < indices[0]+len(indices); index++ {
		if !observed[index] {
			missing = append(missing, index)
		}
	}
	if len(missing) > 0 {
		rep.AddError(StageLayers, "missing layer image numbers: %v", missing)
	}

	if indices[0] != 0 {
		rep.AddWarning(StageLayers,
			"layer numbering doesn't start at 00000 (starts at %05d)", indices[0])
	}

	// The five-digit pattern already bounds the index; keep the range check
	// in case the pattern is ever loosened.
	for _, index := range indices {
		if index < 0 || index > maxLayerIndex {
			rep.AddError(StageLayers, "layer image number out of five-digit range: %d", index)
		}
	}
}
