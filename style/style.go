// Package style wraps lipgloss into small render functions.
package style

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/yleguide/yleguide/color"
)

func New() lipgloss.Style {
	return lipgloss.NewStyle()
}

// Colored returns a style with the given foreground and background.
func Colored(fg, bg lipgloss.Color) lipgloss.Style {
	return New().Foreground(fg).Background(bg)
}

// Fg returns a renderer applying the foreground color c.
func Fg(c lipgloss.Color) func(string) string {
	return func(s string) string { return Colored(c, "").Render(s) }
}

// Truncate returns a renderer that wraps output at width max.
func Truncate(max int) func(string) string {
	return func(s string) string { return New().Width(max).Render(s) }
}

var (
	Faint  = func(s string) string { return New().Faint(true).Render(s) }
	Bold   = func(s string) string { return New().Bold(true).Render(s) }
	Italic = func(s string) string { return New().Italic(true).Render(s) }
)

var (
	Title = func(s string) string {
		return Colored(color.Ink, color.Slate).Padding(0, 1).Render(s)
	}

	ErrorTitle = func(s string) string {
		return Colored(color.Ink, color.Red).Padding(0, 1).Render(s)
	}

	// Channel renders a channel name as a header tag.
	Channel = func(s string) string {
		return Colored(color.Black, color.Brand).Bold(true).Padding(0, 1).Render(s)
	}

	// OnAir marks the program currently broadcasting.
	OnAir = func(s string) string {
		return Colored(color.Ink, color.Live).Padding(0, 1).Render(s)
	}
)

// Tag returns a renderer that puts s in a padded colored block.
func Tag(fg, bg lipgloss.Color) func(string) string {
	return func(s string) string { return Colored(fg, bg).Padding(0, 1).Render(s) }
}
