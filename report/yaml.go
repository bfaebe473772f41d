package report

import (
	"io"

	"gopkg.in/yaml.v2"
)

type YAMLRenderer struct{}

func init() {
	RegisterRenderer("yaml", &YAMLRenderer{})
}

func (y *YAMLRenderer) Render(w io.Writer, r *Report, opts RenderOptions) error {
	data, err := yaml.Marshal(newReportDocument(r))
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}
