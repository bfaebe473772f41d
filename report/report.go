// Package report accumulates findings from the validation stages and
// renders the final result. The accumulator makes no decisions itself;
// stages append, the renderer reads.
package report

import (
	"fmt"
)

// Severity of a finding. Fatal findings block the package from passing,
// advisory findings do not.
type Severity string

const (
	SeverityFatal    Severity = "fatal"
	SeverityAdvisory Severity = "advisory"
)

// Finding is one problem discovered in the package under validation.
type Finding struct {
	Stage    string   `json:"stage" yaml:"stage"`
	Severity Severity `json:"severity" yaml:"severity"`
	Message  string   `json:"message" yaml:"message"`
}

// Report is the ordered collection of findings for one validation run.
// Created empty at run start, appended to by every stage, read-only once
// rendered.
type Report struct {
	file     string
	errors   []Finding
	warnings []Finding
}

// New creates an empty report for the given input file.
func New(file string) *Report {
	return &Report{
		file:     file,
		errors:   make([]Finding, 0),
		warnings: make([]Finding, 0),
	}
}

// AddError appends a fatal finding.
func (r *Report) AddError(stage, format string, args ...interface{}) {
	r.errors = append(r.errors, Finding{
		Stage:    stage,
		Severity: SeverityFatal,
		Message:  fmt.Sprintf(format, args...),
	})
}

// AddWarning appends an advisory finding.
func (r *Report) AddWarning(stage, format string, args ...interface{}) {
	r.warnings = append(r.warnings, Finding{
		Stage:    stage,
		Severity: SeverityAdvisory,
		Message:  fmt.Sprintf(format, args...),
	})
}

// Errors returns the fatal findings in the order they were recorded.
func (r *Report) Errors() []Finding {
	return r.errors
}

// Warnings returns the advisory findings in the order they were recorded.
func (r *Report) Warnings() []Finding {
	return r.warnings
}

// Passed reports whether validation succeeded. Warnings alone do not fail a
// package.
func (r *Report) Passed() bool {
	return len(r.errors) == 0
}

// File returns the path of the validated input.
func (r *Report) File() string {
	return r.file
}
