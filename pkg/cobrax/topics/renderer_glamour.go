package topics

import (
	"github.com/arthur-debert/gendry/pkg/style"
)

// GlamourRenderer renders Markdown topics for a terminal
type GlamourRenderer struct {
	Style string // "dark", "light", "notty", "auto", or a style file path
	Width int    // 0 keeps the default
}

// NewGlamourRenderer returns a renderer with an auto-detected style
func NewGlamourRenderer() *GlamourRenderer {
	return &GlamourRenderer{Style: "auto"}
}

// Render formats Markdown topics; other formats are returned as-is
func (r *GlamourRenderer) Render(content string, format string) string {
	if format != ".md" {
		return content
	}
	return style.RenderMarkdown(content, r.Style, r.Width)
}
