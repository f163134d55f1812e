package player

import (
	"fmt"
	"os/exec"
)

// Command plays with an arbitrary executable that takes the URL as its only argument.
type Command struct {
	path   string
	cmd    *exec.Cmd
	exited chan struct{}
}

func NewCommand(path string) *Command {
	return &Command{path: path, exited: make(chan struct{})}
}

func (c *Command) Play(rawURL, _ string) error {
	target, err := sanitizeMediaTarget(rawURL)
	if err != nil {
		return fmt.Errorf("invalid media target: %w", err)
	}

	c.cmd = exec.Command(c.path, target)
	c.cmd.SysProcAttr = sysProcAttr()
	if err := c.cmd.Start(); err != nil {
		return fmt.Errorf("start %s: %w", c.path, err)
	}

	c.exited = make(chan struct{})
	go func() {
		_ = c.cmd.Wait()
		close(c.exited)
	}()
	return nil
}

func (c *Command) Wait() <-chan struct{} {
	return c.exited
}

func (c *Command) Close() error {
	return killProcess(c.cmd)
}
