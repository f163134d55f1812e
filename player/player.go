// Package player launches an external media player for a resolved stream.
package player

import (
	"fmt"
	"os/exec"
	"runtime"
	"strings"

	"github.com/yleguide/yleguide/constant"
)

// Player is a running or startable playback process.
type Player interface {
	// Play starts playback of url with title shown in the player window.
	Play(url, title string) error

	// Wait is closed when the player process exits.
	Wait() <-chan struct{}

	Close() error
}

// Controller is implemented by players that accept commands while running.
type Controller interface {
	TogglePause() error
	Position() (float64, error)
}

// New returns the player named by player.default: mpv, iina, or any executable on PATH.
func New(name string) (Player, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "mpv":
		return NewMPV(), nil
	case "iina":
		if runtime.GOOS != constant.Darwin {
			return nil, fmt.Errorf("iina is only available on macOS")
		}
		return NewIINA(), nil
	default:
		path, err := exec.LookPath(name)
		if err != nil {
			return nil, fmt.Errorf("player %q: %w", name, err)
		}
		return NewCommand(path), nil
	}
}
