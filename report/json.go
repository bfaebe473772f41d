package report

import (
	"encoding/json"
	"io"
)

type JSONRenderer struct{}

func init() {
	RegisterRenderer("json", &JSONRenderer{})
}

type reportDocument struct {
	File     string    `json:"file" yaml:"file"`
	Passed   bool      `json:"passed" yaml:"passed"`
	Errors   []Finding `json:"errors" yaml:"errors"`
	Warnings []Finding `json:"warnings" yaml:"warnings"`
}

func newReportDocument(r *Report) reportDocument {
	return reportDocument{
		File:     r.File(),
		Passed:   r.Passed(),
		Errors:   r.Errors(),
		Warnings: r.Warnings(),
	}
}

func (j *JSONRenderer) Render(w io.Writer, r *Report, opts RenderOptions) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(newReportDocument(r))
}
