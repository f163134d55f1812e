// Package tui is the interactive terminal interface.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/yleguide/yleguide/player"
	"github.com/yleguide/yleguide/router"
)

type Options struct {
	// Route is navigated to on start. Empty starts at the first channel.
	Route string

	// Player is invoked for play routes. nil only prints the stream URL.
	Player func() (player.Player, error)

	MaxBandwidth uint32
}

// Run wires a router to the terminal views and blocks until the user quits.
func Run(newRouter func(router.Views) *router.Router, options *Options) error {
	bubble := newBubble(options)
	bubble.router = newRouter(bubble.bridge.views())

	_, err := tea.NewProgram(bubble, tea.WithAltScreen()).Run()
	bubble.closePlayer()
	return err
}
