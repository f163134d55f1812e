package tui

import (
	"context"
	"errors"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/samber/mo"
	"github.com/yleguide/yleguide/guide"
	"github.com/yleguide/yleguide/log"
	"github.com/yleguide/yleguide/router"
	"github.com/yleguide/yleguide/stream"
)

type toolbarMsg struct {
	channelID string
	current   mo.Option[guide.Program]
	channels  []guide.Channel
}

type guideMsg struct {
	channelID string
	programs  []guide.Program
}

type playerMsg struct {
	playback *stream.Playback
}

type personalMsg struct {
	programs []guide.Program
}

// routedMsg carries the view updates of finished transitions, oldest first.
type routedMsg struct {
	route   router.Route
	updates []tea.Msg
	err     error
}

// bridge receives view calls on the router goroutine and queues them
// until the navigating command hands them to Update.
type bridge struct {
	mu      sync.Mutex
	pending []tea.Msg
}

func (b *bridge) push(msg tea.Msg) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.pending = append(b.pending, msg)
}

func (b *bridge) drain() []tea.Msg {
	b.mu.Lock()
	defer b.mu.Unlock()
	msgs := b.pending
	b.pending = nil
	return msgs
}

func (b *bridge) views() router.Views {
	return router.Views{Toolbar: b, Guide: b, Player: b, Personal: b}
}

func (b *bridge) ShowToolbar(channelID string, current mo.Option[guide.Program], channels []guide.Channel) {
	b.push(toolbarMsg{channelID: channelID, current: current, channels: channels})
}

func (b *bridge) ShowGuide(channelID string, programs []guide.Program) {
	b.push(guideMsg{channelID: channelID, programs: programs})
}

func (b *bridge) ShowPlayer(playback *stream.Playback) {
	b.push(playerMsg{playback: playback})
}

func (b *bridge) ShowPersonal(programs []guide.Program) {
	b.push(personalMsg{programs: programs})
}

// navigate runs a transition off the UI goroutine.
func (b *statefulBubble) navigate(path string) tea.Cmd {
	r := b.router
	return func() tea.Msg {
		err := r.Navigate(context.Background(), path)
		if errors.Is(err, router.ErrSuperseded) {
			log.Debugf("navigation to %q superseded", path)
			return nil
		}
		if err != nil {
			log.Errorf("navigate %q: %v", path, err)
		}
		return routedMsg{route: r.Current(), updates: b.bridge.drain(), err: err}
	}
}
