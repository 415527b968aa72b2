package style

import (
	"strings"

	"github.com/arthur-debert/gendry/pkg/dryrun"
	"github.com/charmbracelet/lipgloss"
)

// Base styles
var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(HeadingColor).
			Bold(true).
			MarginBottom(1)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(HeadingColor).
			Bold(true)

	MutedStyle = lipgloss.NewStyle().
			Foreground(MutedColor)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)

	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(BorderColor).
			Padding(0, 1)

	PathStyle = lipgloss.NewStyle().
			Foreground(SecondaryColor)

	ContextStyle = lipgloss.NewStyle().
			Foreground(MutedColor).
			Italic(true)
)

var kindColors = map[dryrun.Kind]lipgloss.AdaptiveColor{
	dryrun.KindWrite:            WriteColor,
	dryrun.KindWriteIfNewer:     WriteIfNewerColor,
	dryrun.KindSkipped:          SkippedColor,
	dryrun.KindSkippedOverwrite: SkippedOverwriteColor,
	dryrun.KindIgnored:          IgnoredColor,
	dryrun.KindError:            ErrorColor,
}

// KindColor returns the color used for a status kind
func KindColor(k dryrun.Kind) lipgloss.AdaptiveColor {
	if c, ok := kindColors[k]; ok {
		return c
	}
	return MutedColor
}

// KindStyle returns the lipgloss style used for a status kind's code
func KindStyle(k dryrun.Kind) lipgloss.Style {
	s := lipgloss.NewStyle().Foreground(KindColor(k)).Bold(true)
	if k == dryrun.KindIgnored {
		s = s.Bold(false)
	}
	return s
}

func Indent(s string, level int) string {
	return lipgloss.NewStyle().PaddingLeft(level * 2).Render(s)
}

func Bold(s string) string {
	return lipgloss.NewStyle().Bold(true).Render(s)
}

var (
	diffAddStyle    = lipgloss.NewStyle().Foreground(SuccessColor)
	diffRemoveStyle = lipgloss.NewStyle().Foreground(ErrorColor)
	diffHunkStyle   = lipgloss.NewStyle().Foreground(InfoColor)
)

// RenderDiff colours the lines of a unified diff
func RenderDiff(diff string) string {
	lines := strings.Split(strings.TrimRight(diff, "\n"), "\n")
	for i, line := range lines {
		switch {
		case strings.HasPrefix(line, "+++"), strings.HasPrefix(line, "---"):
			lines[i] = Bold(line)
		case strings.HasPrefix(line, "@@"):
			lines[i] = diffHunkStyle.Render(line)
		case strings.HasPrefix(line, "+"):
			lines[i] = diffAddStyle.Render(line)
		case strings.HasPrefix(line, "-"):
			lines[i] = diffRemoveStyle.Render(line)
		}
	}
	return strings.Join(lines, "\n") + "\n"
}
