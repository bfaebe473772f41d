package report

import (
	"fmt"
	"io"
	"strings"
)

type TextRenderer struct{}

func init() {
	RegisterRenderer("text", &TextRenderer{})
}

func (t *TextRenderer) Render(w io.Writer, r *Report, opts RenderOptions) error {
	rule := strings.Repeat("=", 60)

	fmt.Fprintf(w, "Validation report: %s\n%s\n", r.File(), rule)

	if r.Passed() && len(r.Warnings()) == 0 {
		fmt.Fprintln(w, "File is valid and meets all criteria.")
		return nil
	}

	if len(r.Errors()) > 0 {
		fmt.Fprintln(w, "ERRORS:")
		for _, finding := range r.Errors() {
			fmt.Fprintf(w, "  - [%s] %s\n", finding.Stage, finding.Message)
		}
	}

	if len(r.Warnings()) > 0 && !opts.Quiet {
		fmt.Fprintln(w, "WARNINGS:")
		for _, finding := range r.Warnings() {
			fmt.Fprintf(w, "  - [%s] %s\n", finding.Stage, finding.Message)
		}
	}

	fmt.Fprintln(w, rule)
	if r.Passed() {
		fmt.Fprintf(w, "Validation passed with %d warning(s)\n", len(r.Warnings()))
	} else {
		fmt.Fprintf(w, "Validation failed with %d error(s)\n", len(r.Errors()))
	}

	return nil
}
