package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/gendry/pkg/dryrun"
	"github.com/arthur-debert/gendry/pkg/style"
	"gopkg.in/yaml.v3"
)

const (
	summaryHeader = "# START SUMMARY OF FILES WRITTEN"
	summaryFooter = "# END SUMMARY"
)

// textRenderer writes the summary block, optionally styled for a terminal
type textRenderer struct {
	opts   Options
	styled bool
}

func (t *textRenderer) Render(w io.Writer, r *Report) error {
	var b strings.Builder

	if t.styled {
		b.WriteString(style.TitleStyle.Render("Dry run summary") + "\n")
	} else {
		b.WriteString(summaryHeader + "\n\n")
	}

	for _, e := range r.Entries {
		b.WriteString(t.line(e.Status) + "\n")
		if t.opts.ShowData && len(e.Data) > 0 {
			data, err := dataYAML(e.Data, "      ")
			if err != nil {
				return err
			}
			if t.styled {
				data = style.MutedStyle.Render(data)
			}
			b.WriteString(data)
		}
		if e.Diff != "" {
			diff := e.Diff
			if t.styled {
				diff = style.RenderDiff(diff)
			}
			b.WriteString(indent(diff, "      "))
		}
	}

	if !t.styled {
		b.WriteString("\n" + summaryFooter + "\n")
	}
	b.WriteString("\n")
	b.WriteString(t.legend())
	b.WriteString("\n")
	b.WriteString(t.totals(r) + "\n")

	_, err := io.WriteString(w, b.String())
	return err
}

func (t *textRenderer) line(s dryrun.Status) string {
	if t.styled {
		return style.RenderStatus(s)
	}
	line := fmt.Sprintf("  %s %s", s.Kind.Code(), s.Path)
	if s.Context != "" {
		line += " (" + s.Context + ")"
	}
	return line
}

func (t *textRenderer) legend() string {
	if t.styled {
		return style.RenderLegend()
	}
	var b strings.Builder
	b.WriteString("States:\n")
	for _, k := range dryrun.AllKinds() {
		fmt.Fprintf(&b, "  %s %s\n", k.Code(), k.Description())
	}
	return b.String()
}

func (t *textRenderer) totals(r *Report) string {
	parts := make([]string, 0, len(r.Counts))
	for _, k := range dryrun.AllKinds() {
		parts = append(parts, fmt.Sprintf("%s:%d", k.Code(), r.Counts[k]))
	}
	line := fmt.Sprintf("Total: %d file(s), %d would be written  [%s]", r.Total, r.Writes(), strings.Join(parts, " "))
	if t.styled {
		return style.BoxStyle.Render(line)
	}
	return line
}

// dataYAML renders captured data as YAML with every line prefixed by prefix
func dataYAML(data map[string]any, prefix string) (string, error) {
	out, err := yaml.Marshal(data)
	if err != nil {
		return "", err
	}
	return indent(string(out), prefix), nil
}

// indent prefixes every line of s and ends it with a newline
func indent(s, prefix string) string {
	var b strings.Builder
	for _, line := range strings.Split(strings.TrimRight(s, "\n"), "\n") {
		b.WriteString(prefix + line + "\n")
	}
	return b.String()
}
