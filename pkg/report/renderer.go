package report

import (
	"io"

	"github.com/arthur-debert/gendry/pkg/errors"
)

// Options tune the renderers
type Options struct {
	// ShowData includes captured template data with each entry
	ShowData bool

	// Glamour renders Markdown for a terminal instead of emitting the source
	Glamour bool

	// Width wraps glamour output; 0 keeps glamour's default
	Width int
}

// Renderer writes a Report in one format
type Renderer interface {
	Render(w io.Writer, r *Report) error
}

// NewRenderer returns the renderer for format. FormatAuto must be resolved first.
func NewRenderer(format Format, opts Options) (Renderer, error) {
	switch format {
	case FormatText:
		return &textRenderer{opts: opts}, nil
	case FormatTerminal:
		return &textRenderer{opts: opts, styled: true}, nil
	case FormatJSON:
		return &jsonRenderer{opts: opts}, nil
	case FormatYAML:
		return &yamlRenderer{opts: opts}, nil
	case FormatXML:
		return &xmlRenderer{opts: opts}, nil
	case FormatMarkdown:
		return &markdownRenderer{opts: opts}, nil
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "no renderer for format %s", format)
	}
}

// Render writes r to w in format
func Render(w io.Writer, r *Report, format Format, opts Options) error {
	renderer, err := NewRenderer(format, opts)
	if err != nil {
		return err
	}
	if err := renderer.Render(w, r); err != nil {
		if _, ok := err.(*errors.GendryError); ok {
			return err
		}
		return errors.Wrapf(err, errors.ErrReportRender, "failed to render %s report", format)
	}
	return nil
}
