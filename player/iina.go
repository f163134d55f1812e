package player

import (
	"fmt"
	"os/exec"
)

// IINA plays through macOS LaunchServices. It has no IPC channel.
type IINA struct {
	cmd    *exec.Cmd
	exited chan struct{}
}

func NewIINA() *IINA {
	return &IINA{exited: make(chan struct{})}
}

func (p *IINA) Play(rawURL, title string) error {
	target, err := sanitizeMediaTarget(rawURL)
	if err != nil {
		return fmt.Errorf("invalid media target: %w", err)
	}

	// IINA forwards mpv options after --args
	args := []string{"-a", "IINA", "--args", "--mpv-force-media-title=" + sanitizeTitle(title), target}

	p.cmd = exec.Command("open", args...)
	if err := p.cmd.Start(); err != nil {
		return fmt.Errorf("launch IINA: %w", err)
	}

	p.exited = make(chan struct{})
	go func() {
		_ = p.cmd.Wait()
		close(p.exited)
	}()
	return nil
}

func (p *IINA) Wait() <-chan struct{} {
	return p.exited
}

func (p *IINA) Close() error {
	if p.cmd != nil && p.cmd.Process != nil {
		_ = p.cmd.Process.Kill()
	}
	return nil
}
