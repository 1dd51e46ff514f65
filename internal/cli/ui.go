package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/architectus/pkg/generator"
)

// =============================================================================
// Palette
// =============================================================================

var (
	colorAccent = lipgloss.Color("36")  // teal: titles, component names
	colorOK     = lipgloss.Color("35")  // green
	colorWarn   = lipgloss.Color("220") // amber
	colorFail   = lipgloss.Color("167") // soft red
	colorLink   = lipgloss.Color("75")  // light blue: commands
	colorText   = lipgloss.Color("255")
	colorMuted  = lipgloss.Color("245")
	colorFaint  = lipgloss.Color("240") // borders, details
)

// =============================================================================
// Styles
// =============================================================================

var (
	StyleTitle     = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	StyleHighlight = lipgloss.NewStyle().Foreground(colorAccent)
	StyleDim       = lipgloss.NewStyle().Foreground(colorFaint)
	StyleValue     = lipgloss.NewStyle().Foreground(colorText)
	StyleSuccess   = lipgloss.NewStyle().Foreground(colorOK)
	StyleWarning   = lipgloss.NewStyle().Foreground(colorWarn)
	StyleError     = lipgloss.NewStyle().Foreground(colorFail)

	styleMuted   = lipgloss.NewStyle().Foreground(colorMuted)
	styleCommand = lipgloss.NewStyle().Foreground(colorLink)
	styleKey     = styleMuted.Width(12)
)

// stdout receives status lines. Tests swap it for a buffer.
var stdout io.Writer = os.Stdout

// =============================================================================
// Status Lines
// =============================================================================

func status(icon string, iconStyle lipgloss.Style, msg string) {
	fmt.Fprintln(stdout, iconStyle.Render(icon)+" "+msg)
}

func printSuccess(format string, args ...any) {
	status("✓", StyleSuccess, fmt.Sprintf(format, args...))
}

func printWarning(format string, args ...any) {
	status("!", StyleWarning, StyleWarning.Render(fmt.Sprintf(format, args...)))
}

func printInfo(format string, args ...any) {
	status("›", styleMuted, fmt.Sprintf(format, args...))
}

// printDetail prints an indented, dimmed line under the previous status.
func printDetail(format string, args ...any) {
	fmt.Fprintln(stdout, "  "+StyleDim.Render(fmt.Sprintf(format, args...)))
}

func printKeyValue(key, value string) {
	fmt.Fprintln(stdout, styleKey.Render(key)+" "+StyleValue.Render(value))
}

func printNextStep(description, cmd string) {
	fmt.Fprintln(stdout, StyleDim.Render(description+":")+" "+styleCommand.Render(cmd))
}

// =============================================================================
// Plan Output
// =============================================================================

// printWritten reports a plan written to path, followed by a summary line:
//
//	✓ Wrote svg
//	  → house.svg
//	  family · seed 42 · 7 rooms · 2 attempts · fresh
func printWritten(format, path string, res *generator.Result) {
	printSuccess("Wrote %s", format)
	fmt.Fprintln(stdout, "  "+StyleDim.Render("→")+" "+StyleValue.Render(path))
	fmt.Fprintln(stdout, "  "+planSummary(res))
}

func planSummary(res *generator.Result) string {
	parts := []string{
		StyleHighlight.Render(res.Component),
		StyleDim.Render(fmt.Sprintf("seed %d", res.Seed)),
		StyleDim.Render(fmt.Sprintf("%d rooms", res.Lot.GroundFloor().RoomCount())),
	}
	if res.Attempts > 1 {
		parts = append(parts, StyleDim.Render(fmt.Sprintf("%d attempts", res.Attempts)))
	}
	if res.CacheHit {
		parts = append(parts, StyleSuccess.Render("cached"))
	} else {
		parts = append(parts, styleMuted.Render("fresh"))
	}
	return strings.Join(parts, StyleDim.Render(" · "))
}
