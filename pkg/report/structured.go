package report

import (
	"encoding/json"
	"io"

	"gopkg.in/yaml.v3"
)

type jsonRenderer struct {
	opts Options
}

func (j *jsonRenderer) Render(w io.Writer, r *Report) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(r.document(j.opts.ShowData))
}

type yamlRenderer struct {
	opts Options
}

func (y *yamlRenderer) Render(w io.Writer, r *Report) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(r.document(y.opts.ShowData)); err != nil {
		return err
	}
	return encoder.Close()
}
