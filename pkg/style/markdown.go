package style

import (
	"github.com/charmbracelet/glamour"
)

// RenderMarkdown renders Markdown for a terminal with glamour. stylePath may
// name a glamour style or file; "" and "auto" detect the background. A
// width of 0 keeps glamour's default wrapping. On failure content is
// returned unchanged.
func RenderMarkdown(content, stylePath string, width int) string {
	var options []glamour.TermRendererOption

	if stylePath != "" && stylePath != "auto" {
		options = append(options, glamour.WithStylePath(stylePath))
	} else {
		options = append(options, glamour.WithAutoStyle())
	}

	if width > 0 {
		options = append(options, glamour.WithWordWrap(width))
	}

	renderer, err := glamour.NewTermRenderer(options...)
	if err != nil {
		return content
	}

	rendered, err := renderer.Render(content)
	if err != nil {
		return content
	}
	return rendered
}
