// Package color names the terminal colors used by the CLI and TUI.
package color

import "github.com/charmbracelet/lipgloss"

func New(value string) lipgloss.Color {
	return lipgloss.Color(value)
}

// ANSI palette. These follow the user's terminal theme.
var (
	Red    = New("1")
	Green  = New("2")
	Yellow = New("3")
	Blue   = New("4")
	Purple = New("5")
	Cyan   = New("6")
	White  = New("7")
	Black  = New("8")
)

// Fixed accents.
var (
	// Brand is the broadcaster's teal, used for channel headers.
	Brand  = New("#00b4c4")
	Live   = New("#f38ba8")
	Orange = New("#ffb703")
	Gray   = New("#808080")
	Ink    = New("230")
	Slate  = New("62")
)
