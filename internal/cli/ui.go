package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan   = lipgloss.Color("36")  // Teal - primary
	colorGreen  = lipgloss.Color("35")  // Green - flags that are set
	colorYellow = lipgloss.Color("220") // Amber - highlights
	colorBlue   = lipgloss.Color("75")  // Light blue - links
	colorWhite  = lipgloss.Color("255") // Bright white - values
	colorGray   = lipgloss.Color("245") // Gray - labels
	colorDim    = lipgloss.Color("240") // Dim gray - muted text
)

// =============================================================================
// Styles
// =============================================================================

var (
	// StyleTitle for object titles and section headings.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// StyleLink for URLs.
	StyleLink = lipgloss.NewStyle().Foreground(colorBlue).Underline(true)

	// StyleDim for secondary/muted text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	// StyleValue for data values.
	StyleValue = lipgloss.NewStyle().Foreground(colorWhite)

	// StyleNumber for numeric values.
	StyleNumber = lipgloss.NewStyle().Foreground(colorCyan)

	styleLabel     = lipgloss.NewStyle().Foreground(colorGray).Width(14)
	styleFlagOn    = lipgloss.NewStyle().Foreground(colorGreen)
	styleHighlight = lipgloss.NewStyle().Foreground(colorYellow).Bold(true)
)

const (
	iconBullet = "•"
	iconStar   = "★"
)

// =============================================================================
// Output helpers
// =============================================================================

// printTitle prints a heading line.
func printTitle(w io.Writer, title string) {
	fmt.Fprintln(w, StyleTitle.Render(title))
}

// printKeyValue prints a labeled value. Empty values are skipped so sparse
// records stay compact.
func printKeyValue(w io.Writer, key, value string) {
	if value == "" {
		return
	}
	fmt.Fprintln(w, styleLabel.Render(key)+" "+StyleValue.Render(value))
}

// printLink prints a labeled URL.
func printLink(w io.Writer, key, url string) {
	if url == "" {
		return
	}
	fmt.Fprintln(w, styleLabel.Render(key)+" "+StyleLink.Render(url))
}

// printFlag prints a labeled yes/no value.
func printFlag(w io.Writer, key string, on bool) {
	value := StyleDim.Render("no")
	if on {
		value = styleFlagOn.Render("yes")
	}
	fmt.Fprintln(w, styleLabel.Render(key)+" "+value)
}

// printBullet prints an indented list item.
func printBullet(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, "  "+StyleDim.Render(iconBullet)+" "+fmt.Sprintf(format, args...))
}

// printCount prints "<n> <noun>" with the number emphasized.
func printCount(w io.Writer, n int, noun string) {
	fmt.Fprintln(w, StyleNumber.Render(fmt.Sprint(n))+" "+noun)
}

// printDetail prints a dim, indented line.
func printDetail(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, "  "+StyleDim.Render(fmt.Sprintf(format, args...)))
}
