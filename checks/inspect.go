package checks

import (
	"strconv"

	"github.com/bibin-skaria/slcheck/archive"
	"github.com/bibin-skaria/slcheck/internal/types"
	"github.com/bibin-skaria/slcheck/jobconfig"
)

// Inspect resolves job metadata from a package without judging it: the job
// name and declared layer count from config.ini, plus the observed layer
// image count and index range. Config problems are tolerated; only an
// unreadable archive is an error.
func (v *Validator) Inspect(path string) (*types.JobSummary, error) {
	r, err := archive.Open(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	names := r.Entries()
	summary := &types.JobSummary{
		File:     path,
		Entries:  len(names),
		MinIndex: -1,
		MaxIndex: -1,
	}

	if entry, ok := r.FindBySuffix(v.rules.ConfigEntry, thumbnailPrefix); ok {
		if data, err := r.ReadEntry(entry); err == nil {
			if model, err := jobconfig.Parse(data); err == nil {
				summary.JobName, _ = model.Get(v.rules.ConfigSection, v.rules.JobDirKey)
				summary.DeclaredLayers, _ = model.Get(v.rules.ConfigSection, v.rules.LayerCountKey)
			}
		}
	}

	for _, name := range names {
		if !v.isLayerImage(name) {
			continue
		}
		summary.LayerCount++

		match := v.layerPattern.FindStringSubmatch(name)
		if match == nil {
			continue
		}
		index, err := strconv.Atoi(match[2])
		if err != nil {
			continue
		}
		if summary.MinIndex < 0 || index < summary.MinIndex {
			summary.MinIndex = index
		}
		if index > summary.MaxIndex {
			summary.MaxIndex = index
		}
	}

	return summary, nil
}
