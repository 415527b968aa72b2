package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/gendry/pkg/dryrun"
	"github.com/arthur-debert/gendry/pkg/style"
)

type markdownRenderer struct {
	opts Options
}

func (m *markdownRenderer) Render(w io.Writer, r *Report) error {
	content, err := m.markdown(r)
	if err != nil {
		return err
	}
	if m.opts.Glamour {
		content = style.RenderMarkdown(content, "auto", m.opts.Width)
	}
	_, err = io.WriteString(w, content)
	return err
}

func (m *markdownRenderer) markdown(r *Report) (string, error) {
	var b strings.Builder
	b.WriteString("# Dry run summary\n\n")
	b.WriteString("| State | Path | Context |\n")
	b.WriteString("|---|---|---|\n")
	for _, e := range r.Entries {
		fmt.Fprintf(&b, "| `%s` %s | %s | %s |\n",
			e.Kind.Code(), e.Kind.Description(), escapeCell(e.Path), escapeCell(e.Context))
	}

	b.WriteString("\n")
	fmt.Fprintf(&b, "**Total:** %d file(s), %d would be written\n\n", r.Total, r.Writes())
	for _, k := range dryrun.AllKinds() {
		if n := r.Counts[k]; n > 0 {
			fmt.Fprintf(&b, "- `%s` %s: %d\n", k.Code(), k.Description(), n)
		}
	}

	if m.opts.ShowData {
		for _, e := range r.Entries {
			if len(e.Data) == 0 {
				continue
			}
			data, err := dataYAML(e.Data, "")
			if err != nil {
				return "", err
			}
			fmt.Fprintf(&b, "\n## %s\n\n```yaml\n%s```\n", e.Path, data)
		}
	}
	for _, e := range r.Entries {
		if e.Diff != "" {
			fmt.Fprintf(&b, "\n## Changes to %s\n\n```diff\n%s\n```\n", e.Path, strings.TrimRight(e.Diff, "\n"))
		}
	}
	return b.String(), nil
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
