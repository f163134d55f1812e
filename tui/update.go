package tui

import (
	"fmt"
	"time"

	bubblesKey "github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/samber/lo"
	"github.com/yleguide/yleguide/guide"
	"github.com/yleguide/yleguide/internal/ui"
	"github.com/yleguide/yleguide/log"
	"github.com/yleguide/yleguide/open"
	"github.com/yleguide/yleguide/player"
	"github.com/yleguide/yleguide/router"
	"github.com/yleguide/yleguide/util"
)

const positionInterval = time.Second

type playerStartedMsg struct {
	player player.Player
}

type playerExitedMsg struct {
	player player.Player
}

type positionTickMsg struct{}

type positionMsg struct {
	position float64
}

type pausedMsg struct{}

func (b *statefulBubble) Init() tea.Cmd {
	return tea.Batch(b.spinnerC.Tick, textinput.Blink, b.navigate(b.options.Route))
}

func (b *statefulBubble) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	if cmd := b.notifier.Update(msg); cmd != nil {
		cmds = append(cmds, cmd)
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		b.resize(msg.Width, msg.Height)
	case spinner.TickMsg:
		var cmd tea.Cmd
		b.spinnerC, cmd = b.spinnerC.Update(msg)
		return b, tea.Batch(append(cmds, cmd)...)
	case routedMsg:
		return b, tea.Batch(append(cmds, b.route(msg))...)
	case playerStartedMsg:
		b.playerP = msg.player
		b.position = 0
		b.paused = false
		return b, tea.Batch(append(cmds, waitPlayer(msg.player), tickPosition())...)
	case playerExitedMsg:
		if b.playerP == msg.player {
			b.playerP = nil
			cmds = append(cmds, ui.Notify("Player exited"))
		}
		return b, tea.Batch(cmds...)
	case positionTickMsg:
		if b.playerP == nil {
			return b, tea.Batch(cmds...)
		}
		return b, tea.Batch(append(cmds, queryPosition(b.playerP), tickPosition())...)
	case positionMsg:
		b.position = msg.position
		return b, tea.Batch(cmds...)
	case pausedMsg:
		b.paused = !b.paused
		return b, tea.Batch(cmds...)
	case error:
		b.raiseError(msg)
		return b, tea.Batch(cmds...)
	case tea.KeyMsg:
		if bubblesKey.Matches(msg, b.keymap.forceQuit) {
			return b, tea.Quit
		}

		if cmd, handled := b.handleKey(msg); handled {
			return b, tea.Batch(append(cmds, cmd)...)
		}
	}

	var cmd tea.Cmd
	switch b.state {
	case channelsState:
		b.channelsC, cmd = b.channelsC.Update(msg)
	case guideState:
		b.guideC, cmd = b.guideC.Update(msg)
	case personalState:
		b.personalC, cmd = b.personalC.Update(msg)
	case routeState:
		b.routeC, cmd = b.routeC.Update(msg)
	}

	return b, tea.Batch(append(cmds, cmd)...)
}

// route applies the view updates of a finished transition.
func (b *statefulBubble) route(msg routedMsg) tea.Cmd {
	var cmds []tea.Cmd

	for _, update := range msg.updates {
		switch u := update.(type) {
		case toolbarMsg:
			b.channelID = u.channelID
			b.setChannels(u.channels)
			b.status = ""
			if current, ok := u.current.Get(); ok {
				b.status = current.Title
			}
		case guideMsg:
			b.setPrograms(&b.guideC, u.programs)
			b.guideC.Title = b.channelTitle(u.channelID)
			b.newState(guideState)
		case personalMsg:
			b.setPrograms(&b.personalC, u.programs)
			b.newState(personalState)
		case playerMsg:
			b.closePlayer()
			b.playback = u.playback
			b.newState(playState)
			cmds = append(cmds, b.startPlayer())
		}
	}

	if msg.err == nil {
		if b.state == loadingState {
			b.previousState()
		}
		return tea.Batch(cmds...)
	}

	if !router.IsRecoverable(msg.err) || b.statesHistory.Len() == 0 {
		b.raiseError(msg.err)
		return tea.Batch(cmds...)
	}

	if b.state == loadingState {
		b.previousState()
	}
	return tea.Batch(append(cmds, ui.NotifyError(msg.err))...)
}

func (b *statefulBubble) setChannels(channels []guide.Channel) {
	items := lo.Map(channels, func(c guide.Channel, _ int) list.Item {
		return &listItem{internal: c, selected: c.ID == b.channelID}
	})
	b.channelsC.SetItems(items)
	b.channelsC.ResetFilter()
}

func (b *statefulBubble) setPrograms(l *list.Model, programs []guide.Program) {
	items := lo.Map(programs, func(p guide.Program, _ int) list.Item {
		return &listItem{internal: p}
	})
	l.SetItems(items)
	l.ResetSelected()
	l.ResetFilter()

	// land on the program that is on air
	now := time.Now()
	if _, index, ok := lo.FindIndexOf(programs, func(p guide.Program) bool { return p.OnAir(now) }); ok {
		l.Select(index)
	}
}

func (b *statefulBubble) channelTitle(channelID string) string {
	for _, item := range b.channelsC.Items() {
		if c, ok := item.(*listItem).internal.(guide.Channel); ok && c.ID == channelID {
			return c.Title
		}
	}
	return channelID
}

func (b *statefulBubble) filtering() bool {
	switch b.state {
	case channelsState:
		return b.channelsC.FilterState() == list.Filtering
	case guideState:
		return b.guideC.FilterState() == list.Filtering
	case personalState:
		return b.personalC.FilterState() == list.Filtering
	default:
		return false
	}
}

// handleKey reports whether the key was consumed.
func (b *statefulBubble) handleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	if b.filtering() {
		return nil, false
	}

	if b.state == routeState {
		switch {
		case bubblesKey.Matches(msg, b.keymap.back):
			b.routeC.Blur()
			b.routeC.SetValue("")
			b.previousState()
			return nil, true
		case bubblesKey.Matches(msg, b.keymap.confirm):
			path := b.routeC.Value()
			b.routeC.Blur()
			b.routeC.SetValue("")
			b.previousState()
			b.newState(loadingState)
			return b.navigate(path), true
		}
		return nil, false
	}

	if b.state == loadingState {
		return nil, true
	}

	switch {
	case bubblesKey.Matches(msg, b.keymap.quit):
		return tea.Quit, true
	case bubblesKey.Matches(msg, b.keymap.back):
		return b.back(), true
	case bubblesKey.Matches(msg, b.keymap.route):
		b.newState(routeState)
		return b.routeC.Focus(), true
	case bubblesKey.Matches(msg, b.keymap.refresh) && b.state != playState:
		b.newState(loadingState)
		return b.navigate(""), true
	case bubblesKey.Matches(msg, b.keymap.playPause) && b.state == playState:
		return togglePause(b.playerP), true
	case bubblesKey.Matches(msg, b.keymap.channels) && b.state != playState:
		if b.channelsC.FilterState() != list.Unfiltered {
			b.channelsC.ResetFilter()
		}
		b.newState(channelsState)
		return nil, true
	case bubblesKey.Matches(msg, b.keymap.personal) && b.state != playState:
		b.newState(loadingState)
		return b.navigate(router.PersonalPath), true
	case bubblesKey.Matches(msg, b.keymap.openWeb) && (b.state == guideState || b.state == personalState):
		return b.openSelected(), true
	case bubblesKey.Matches(msg, b.keymap.confirm):
		return b.confirm(), true
	}

	return nil, false
}

func (b *statefulBubble) back() tea.Cmd {
	switch b.state {
	case playState:
		b.closePlayer()
		b.playback = nil
		b.previousState()
	case errorState:
		if b.statesHistory.Len() == 0 {
			b.newState(loadingState)
			return b.navigate("")
		}
		b.previousState()
	case channelsState, personalState:
		b.previousState()
	}
	return nil
}

func (b *statefulBubble) confirm() tea.Cmd {
	var l *list.Model
	switch b.state {
	case channelsState:
		l = &b.channelsC
	case guideState:
		l = &b.guideC
	case personalState:
		l = &b.personalC
	default:
		return nil
	}

	item, ok := l.SelectedItem().(*listItem)
	if !ok {
		return nil
	}

	switch e := item.internal.(type) {
	case guide.Channel:
		b.newState(loadingState)
		return b.navigate(router.ChannelPath(e.ID))
	case guide.Program:
		path, ok := e.PlaybackRoute.Get()
		if !ok {
			return ui.NotifyError(fmt.Errorf("%s is not available for playback", e.Title))
		}
		b.newState(loadingState)
		return b.navigate(path)
	}

	return nil
}

func (b *statefulBubble) openSelected() tea.Cmd {
	l := &b.guideC
	if b.state == personalState {
		l = &b.personalC
	}

	item, ok := l.SelectedItem().(*listItem)
	if !ok {
		return nil
	}

	program, ok := item.internal.(guide.Program)
	if !ok || program.ContentID == "" {
		return nil
	}

	return func() tea.Msg {
		if err := open.Start(open.WebPage(program.ContentID)); err != nil {
			return ui.Notice{Text: err.Error(), Error: true}
		}
		return ui.Notice{Text: "Opened " + program.Title}
	}
}

func (b *statefulBubble) startPlayer() tea.Cmd {
	playback := b.playback
	if playback == nil || b.options.Player == nil {
		return nil
	}

	url := playback.Pick(b.options.MaxBandwidth)
	title := playback.ContentID
	if program, ok := playback.Program.Get(); ok {
		title = program.Title
	}

	newPlayer := b.options.Player
	return func() tea.Msg {
		p, err := newPlayer()
		if err != nil {
			return ui.Notice{Text: err.Error(), Error: true}
		}

		log.With(log.Fields{"content": playback.ContentID, "media": playback.MediaID}).Info("starting player")
		if err := p.Play(url, title); err != nil {
			return ui.Notice{Text: err.Error(), Error: true}
		}
		return playerStartedMsg{player: p}
	}
}

func waitPlayer(p player.Player) tea.Cmd {
	return func() tea.Msg {
		<-p.Wait()
		return playerExitedMsg{player: p}
	}
}

func tickPosition() tea.Cmd {
	return tea.Tick(positionInterval, func(time.Time) tea.Msg {
		return positionTickMsg{}
	})
}

func queryPosition(p player.Player) tea.Cmd {
	controller, ok := p.(player.Controller)
	if !ok {
		return nil
	}

	return func() tea.Msg {
		position, err := controller.Position()
		if err != nil {
			log.Debugf("player position: %v", err)
			return nil
		}
		return positionMsg{position: util.Max(position, 0)}
	}
}

func togglePause(p player.Player) tea.Cmd {
	controller, ok := p.(player.Controller)
	if !ok {
		return ui.Notify("Player can not be paused")
	}

	return func() tea.Msg {
		if err := controller.TogglePause(); err != nil {
			return ui.Notice{Text: err.Error(), Error: true}
		}
		return pausedMsg{}
	}
}
