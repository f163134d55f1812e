package player

import (
	"crypto/rand"
	"fmt"
	"net"
	"net/url"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/yleguide/yleguide/constant"
	"github.com/yleguide/yleguide/log"
	"github.com/yleguide/yleguide/where"
)

const (
	socketWaitRetries = 10
	socketWaitDelay   = 300 * time.Millisecond
)

// MPV drives mpv over its JSON IPC socket.
type MPV struct {
	socketPath string
	cmd        *exec.Cmd
	exited     chan struct{}
	mu         sync.Mutex
}

func NewMPV() *MPV {
	return &MPV{exited: make(chan struct{})}
}

func mpvArgs(socket, title, target string) []string {
	title = sanitizeTitle(title)
	return []string{
		"--no-terminal",
		"--really-quiet",
		"--input-ipc-server=" + socket,
		"--force-media-title=" + title,
		"--title=" + title,
		"--force-window=yes",
		target,
	}
}

// Play starts mpv and waits until its IPC socket accepts connections.
// A second call on a running instance loads url into it instead.
func (m *MPV) Play(rawURL, title string) error {
	target, err := sanitizeMediaTarget(rawURL)
	if err != nil {
		return fmt.Errorf("invalid media target: %w", err)
	}

	if m.running() {
		if _, err := m.sendCommand([]any{"loadfile", target, "replace"}); err != nil {
			return fmt.Errorf("load into mpv: %w", err)
		}
		_, _ = m.sendCommand([]any{"set_property", "force-media-title", sanitizeTitle(title)})
		return nil
	}

	if m.socketPath == "" {
		suffix := make([]byte, 4)
		if _, err := rand.Read(suffix); err != nil {
			return fmt.Errorf("generate socket name: %w", err)
		}
		m.socketPath = filepath.Join(where.Temp(), fmt.Sprintf("%s-%x.sock", constant.App, suffix))
	}

	m.cmd = exec.Command("mpv", mpvArgs(m.socketPath, title, target)...)
	m.cmd.SysProcAttr = sysProcAttr()

	if err := m.cmd.Start(); err != nil {
		return fmt.Errorf("start mpv: %w", err)
	}

	m.exited = make(chan struct{})
	go func() {
		_ = m.cmd.Wait()
		close(m.exited)
	}()

	if err := m.waitForSocket(); err != nil {
		select {
		case <-m.exited:
		default:
			log.Warnf("killing mpv: %v", err)
			_ = killProcess(m.cmd)
		}
		return fmt.Errorf("mpv socket not ready: %w", err)
	}

	return nil
}

func (m *MPV) Wait() <-chan struct{} {
	return m.exited
}

func (m *MPV) running() bool {
	if m.cmd == nil {
		return false
	}
	select {
	case <-m.exited:
		return false
	default:
		return true
	}
}

func (m *MPV) waitForSocket() error {
	for i := 0; i < socketWaitRetries; i++ {
		time.Sleep(socketWaitDelay)

		select {
		case <-m.exited:
			return fmt.Errorf("mpv exited before socket was ready")
		default:
		}

		conn, err := net.Dial("unix", m.socketPath)
		if err == nil {
			conn.Close()
			return nil
		}
	}
	return fmt.Errorf("socket %s not ready after %d attempts", m.socketPath, socketWaitRetries)
}

func (m *MPV) TogglePause() error {
	_, err := m.sendCommand([]any{"cycle", "pause"})
	return err
}

// Position returns the playback position in seconds.
func (m *MPV) Position() (float64, error) {
	data, err := m.sendCommand([]any{"get_property", "time-pos"})
	if err != nil {
		return 0, err
	}
	pos, ok := data.(float64)
	if !ok {
		return 0, fmt.Errorf("time-pos: expected number, got %T", data)
	}
	return pos, nil
}

// Close asks mpv to quit and kills it if it does not exit in time.
func (m *MPV) Close() error {
	if !m.running() {
		return nil
	}

	_, _ = m.sendCommand([]any{"quit"})

	select {
	case <-m.exited:
	case <-time.After(3 * time.Second):
		_ = killProcess(m.cmd)
	}

	_ = os.Remove(m.socketPath)
	return nil
}

// sanitizeMediaTarget keeps stream URLs from being read as player flags.
func sanitizeMediaTarget(link string) (string, error) {
	l := strings.TrimSpace(link)
	if l == "" {
		return "", fmt.Errorf("empty URL")
	}
	if strings.ContainsAny(l, "\x00\n\r") {
		return "", fmt.Errorf("invalid control characters in URL")
	}
	if strings.HasPrefix(l, "-") {
		return "", fmt.Errorf("url must not start with '-'")
	}

	u, err := url.Parse(l)
	if err != nil {
		return "", fmt.Errorf("invalid URL: %w", err)
	}
	switch strings.ToLower(u.Scheme) {
	case "http", "https":
		return l, nil
	default:
		return "", fmt.Errorf("unsupported URL scheme %q", u.Scheme)
	}
}

func sanitizeTitle(title string) string {
	t := strings.NewReplacer("\n", " ", "\r", " ", "\t", " ", "\x00", "").Replace(title)
	return strings.TrimSpace(t)
}
