// Package checks implements the validation stages run against a job
// package: archive structure, required entries, layer image naming and
// numbering, and cross-consistency between config.ini and the image set.
package checks

import (
	"os"
	"regexp"
	"strings"

	"github.com/bibin-skaria/slcheck/archive"
	"github.com/bibin-skaria/slcheck/internal/errors"
	"github.com/bibin-skaria/slcheck/internal/logging"
	"github.com/bibin-skaria/slcheck/internal/types"
	"github.com/bibin-skaria/slcheck/report"
)

// Stage names used in findings.
const (
	StageArchive     = "archive"
	StageStructure   = "structure"
	StageRequired    = "required"
	StageConfig      = "config"
	StageLayers      = "layers"
	StageConsistency = "consistency"
)

// thumbnailPrefix is the exclusion used when locating required entries and
// config.ini. Entries under preview/ deliberately still count for those
// lookups; only layer-image classification ignores both reserved prefixes.
const thumbnailPrefix = "thumbnail/"

// Validator runs all checks for one rule set. Safe to reuse across files;
// each run gets a fresh report.
type Validator struct {
	rules        types.RuleSet
	log          *logging.Logger
	layerPattern *regexp.Regexp
}

// NewValidator creates a validator for the given rules.
func NewValidator(rules types.RuleSet, log *logging.Logger) *Validator {
	return &Validator{
		rules:        rules,
		log:          log,
		layerPattern: compileLayerPattern(rules.LayerExtensions),
	}
}

// compileLayerPattern builds the layer filename pattern: a non-greedy base
// name, exactly five decimal digits, then one of the recognized extensions,
// anchored at end of name, case-insensitive.
func compileLayerPattern(extensions []string) *regexp.Regexp {
	alternatives := make([]string, 0, len(extensions))
	for _, ext := range extensions {
		alternatives = append(alternatives, regexp.QuoteMeta(strings.TrimPrefix(ext, ".")))
	}
	return regexp.MustCompile(`(?i)(.+?)(\d{5})\.(` + strings.Join(alternatives, "|") + `)$`)
}

// ValidateFile opens the archive at path and runs every stage, accumulating
// findings into one report. Only two failures short-circuit: a missing or
// undecodable archive aborts everything, and a config parse failure skips
// the consistency stage.
func (v *Validator) ValidateFile(path string) *report.Report {
	rep := report.New(path)
	v.log.WithFile(path).Info("starting validation")

	v.checkExtension(path, rep)

	if _, err := os.Stat(path); err != nil {
		rep.AddError(StageArchive, "file not found: %s", path)
		return rep
	}

	r, err := archive.Open(path)
	if err != nil {
		rep.AddError(StageArchive, "%s", errMessage(err))
		return rep
	}
	defer r.Close()

	v.run(r, rep)

	v.log.WithFile(path).WithField("passed", rep.Passed()).Info("validation finished")
	return rep
}

func (v *Validator) run(r *archive.Reader, rep *report.Report) {
	names := r.Entries()

	v.checkStructure(names, rep)
	v.checkRequiredEntries(names, rep)
	model := v.extractConfig(r, rep)
	images := v.checkLayerImages(names, rep)

	if model != nil {
		v.checkConsistency(model, images, rep)
	} else {
		v.log.WithStage(StageConsistency).Debug("no config model, skipping consistency checks")
	}
}

// checkExtension flags unusual input extensions. Advisory only; the archive
// content decides validity.
func (v *Validator) checkExtension(path string, rep *report.Report) {
	lower := strings.ToLower(path)
	if !strings.HasSuffix(lower, ".sl1s") && !strings.HasSuffix(lower, ".sl1") {
		rep.AddWarning(StageArchive, "file doesn't have an .sl1 or .sl1s extension")
	}
}

func (v *Validator) reserved(name string) bool {
	for _, prefix := range v.rules.ReservedPrefixes {
		if strings.HasPrefix(name, prefix) {
			return true
		}
	}
	return false
}

// errMessage strips the category/severity prefix off CheckErrors so report
// findings read naturally.
func errMessage(err error) string {
	if checkErr, ok := err.(*errors.CheckError); ok {
		return checkErr.Message
	}
	return err.Error()
}
