package style

import (
	"fmt"

	"github.com/arthur-debert/gendry/pkg/dryrun"
	"github.com/pterm/pterm"
)

// BadgeStyle returns the pterm style for a kind's badge
func BadgeStyle(k dryrun.Kind) *pterm.Style {
	switch k {
	case dryrun.KindWrite:
		return pterm.NewStyle(pterm.BgGreen, pterm.FgWhite)
	case dryrun.KindWriteIfNewer:
		return pterm.NewStyle(pterm.BgCyan, pterm.FgBlack)
	case dryrun.KindSkipped:
		return pterm.NewStyle(pterm.BgYellow, pterm.FgBlack)
	case dryrun.KindSkippedOverwrite:
		return pterm.NewStyle(pterm.BgMagenta, pterm.FgWhite)
	case dryrun.KindError:
		return pterm.NewStyle(pterm.BgRed, pterm.FgWhite, pterm.Bold)
	default:
		return pterm.NewStyle(pterm.FgGray)
	}
}

// Badge renders the one-letter code of k as a padded badge
func Badge(k dryrun.Kind) string {
	return BadgeStyle(k).Sprint(" " + k.Code() + " ")
}

// RenderStatus renders one ledger line for the terminal
func RenderStatus(s dryrun.Status) string {
	line := fmt.Sprintf("  %s %s", Badge(s.Kind), PathStyle.Render(s.Path))
	if s.Context != "" {
		line += " " + ContextStyle.Render("("+s.Context+")")
	}
	return line
}

// RenderLegend renders every kind with its code and description
func RenderLegend() string {
	out := SubtitleStyle.Render("States:") + "\n"
	for _, k := range dryrun.AllKinds() {
		out += fmt.Sprintf("  %s %s\n", KindStyle(k).Render(k.Code()), k.Description())
	}
	return out
}
