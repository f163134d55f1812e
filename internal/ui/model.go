// Package ui holds the transient status line shown under TUI views.
package ui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/yleguide/yleguide/color"
	"github.com/yleguide/yleguide/style"
)

// NoticeLifetime is how long a notice stays on screen.
const NoticeLifetime = 4 * time.Second

// Notice is a message that shows text in the status line.
type Notice struct {
	Text  string
	Error bool
}

type clearNoticeMsg struct {
	at time.Time
}

// Notify returns a command that posts a notice.
func Notify(text string) tea.Cmd {
	return func() tea.Msg { return Notice{Text: text} }
}

// NotifyError returns a command that posts err as an error notice.
func NotifyError(err error) tea.Cmd {
	return func() tea.Msg { return Notice{Text: err.Error(), Error: true} }
}

// Model renders at most one notice at a time. A newer notice replaces the old one.
type Model struct {
	notice     Notice
	notifiedAt time.Time
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case Notice:
		m.notice = msg
		m.notifiedAt = time.Now()
		at := m.notifiedAt
		return tea.Tick(NoticeLifetime, func(time.Time) tea.Msg { return clearNoticeMsg{at: at} })
	case clearNoticeMsg:
		// only clear the notice the tick was scheduled for
		if msg.at.Equal(m.notifiedAt) {
			m.notice = Notice{}
		}
	}
	return nil
}

func (m *Model) Current() Notice {
	return m.notice
}

// View appends the notice to the last line of content.
func (m *Model) View(content string) string {
	if m.notice.Text == "" {
		return content
	}

	render := style.Faint
	if m.notice.Error {
		render = style.Fg(color.Red)
	}

	lines := strings.Split(content, "\n")
	lines[len(lines)-1] += "  " + render(m.notice.Text)
	return strings.Join(lines, "\n")
}
