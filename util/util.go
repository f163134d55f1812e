// Package util holds small helpers shared by the CLI and the terminal UI.
package util

import (
	"fmt"
	"os"
	"strings"
	"time"

	"golang.org/x/exp/constraints"
	"golang.org/x/term"
)

// Quantify renders a count with the matching singular or plural label.
func Quantify(count int, singular, plural string) string {
	if count == 1 {
		return fmt.Sprintf("%d %s", count, singular)
	}
	return fmt.Sprintf("%d %s", count, plural)
}

// TerminalSize reports the character dimensions of stdout.
func TerminalSize() (width, height int, err error) {
	return term.GetSize(int(os.Stdout.Fd()))
}

// IsTerminal reports whether stdout is attached to a terminal.
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// Clock formats t as a wall-clock time in the local zone, or "--:--" for the zero time.
func Clock(t time.Time) string {
	if t.IsZero() {
		return "--:--"
	}
	return t.Local().Format("15:04")
}

// Ellipsize cuts s to at most n runes, marking the cut with "…".
func Ellipsize(s string, n int) string {
	runes := []rune(strings.TrimSpace(s))
	if n <= 0 || len(runes) <= n {
		return string(runes)
	}
	if n == 1 {
		return "…"
	}
	return string(runes[:n-1]) + "…"
}

// PrintErasable writes msg on the current line and returns a func that blanks it again.
func PrintErasable(msg string) (eraser func()) {
	fmt.Fprintf(os.Stderr, "\r%s", msg)
	return func() {
		fmt.Fprintf(os.Stderr, "\r%s\r", strings.Repeat(" ", len([]rune(msg))))
	}
}

// Max returns the largest argument.
func Max[T constraints.Ordered](items ...T) (max T) {
	if len(items) == 0 {
		return
	}
	max = items[0]
	for _, item := range items[1:] {
		if item > max {
			max = item
		}
	}
	return
}

// Min returns the smallest argument.
func Min[T constraints.Ordered](items ...T) (min T) {
	if len(items) == 0 {
		return
	}
	min = items[0]
	for _, item := range items[1:] {
		if item < min {
			min = item
		}
	}
	return
}
