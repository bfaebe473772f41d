package errors

import (
	"fmt"
)

// Category identifies the validation stage a failure belongs to.
type Category string

const (
	CategoryArchive     Category = "archive"
	CategoryStructure   Category = "structure"
	CategoryRequired    Category = "required"
	CategoryConfig      Category = "config"
	CategoryLayers      Category = "layers"
	CategoryConsistency Category = "consistency"
	CategoryRules       Category = "rules"
)

// Severity is one of exactly two levels: fatal findings block the package
// from passing, advisory findings do not.
type Severity string

const (
	SeverityFatal    Severity = "fatal"
	SeverityAdvisory Severity = "advisory"
)

// CheckError is an error raised while running a validation stage, as opposed
// to a finding about the package itself. It carries enough context for the
// caller to convert it into a single fatal finding at the stage boundary.
type CheckError struct {
	Category Category
	Severity Severity
	Stage    string
	Message  string
	Cause    error
}

func (e *CheckError) Error() string {
	if e.Stage != "" {
		return fmt.Sprintf("[%s:%s] %s: %s", e.Category, e.Severity, e.Stage, e.Message)
	}
	return fmt.Sprintf("[%s:%s] %s", e.Category, e.Severity, e.Message)
}

// Unwrap returns the underlying error
func (e *CheckError) Unwrap() error {
	return e.Cause
}

// IsFatal returns true if the error blocks the package from passing
func (e *CheckError) IsFatal() bool {
	return e.Severity == SeverityFatal
}

// NewFatal creates a fatal error for the given category and stage
func NewFatal(category Category, stage, format string, args ...interface{}) *CheckError {
	return &CheckError{
		Category: category,
		Severity: SeverityFatal,
		Stage:    stage,
		Message:  fmt.Sprintf(format, args...),
	}
}

// NewAdvisory creates an advisory error for the given category and stage
func NewAdvisory(category Category, stage, format string, args ...interface{}) *CheckError {
	return &CheckError{
		Category: category,
		Severity: SeverityAdvisory,
		Stage:    stage,
		Message:  fmt.Sprintf(format, args...),
	}
}

// Wrap converts an underlying library error into a fatal CheckError. If err
// is already a CheckError it is returned unchanged so categorization done
// closer to the failure is preserved.
func Wrap(err error, category Category, stage string) *CheckError {
	if err == nil {
		return nil
	}

	if checkErr, ok := err.(*CheckError); ok {
		return checkErr
	}

	return &CheckError{
		Category: category,
		Severity: SeverityFatal,
		Stage:    stage,
		Message:  err.Error(),
		Cause:    err,
	}
}
