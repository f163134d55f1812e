package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	bubblesKey "github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
	"github.com/samber/lo"
	"github.com/spf13/viper"
	"github.com/yleguide/yleguide/color"
	"github.com/yleguide/yleguide/internal/ui"
	"github.com/yleguide/yleguide/key"
	"github.com/yleguide/yleguide/player"
	"github.com/yleguide/yleguide/router"
	"github.com/yleguide/yleguide/stream"
	"github.com/yleguide/yleguide/util"
)

type statefulBubble struct {
	state         state
	statesHistory util.Stack[state]

	keymap *statefulKeymap
	router *router.Router
	bridge *bridge

	spinnerC  spinner.Model
	routeC    textinput.Model
	channelsC list.Model
	guideC    list.Model
	personalC list.Model
	helpC     help.Model
	notifier  *ui.Model

	channelID string
	status    string
	playback  *stream.Playback
	playerP   player.Player
	position  float64
	paused    bool
	lastError error

	width, height int
	options       *Options
}

func (b *statefulBubble) raiseError(err error) {
	b.lastError = err
	b.newState(errorState)
}

func (b *statefulBubble) setState(s state) {
	b.state = s
	b.keymap.setState(s)
}

// newState moves to s, remembering the current state unless it is transient.
func (b *statefulBubble) newState(s state) {
	if b.state == s {
		return
	}

	if !lo.Contains([]state{loadingState, routeState, errorState}, b.state) {
		b.statesHistory.Push(b.state)
	}

	b.setState(s)
}

func (b *statefulBubble) previousState() {
	if b.statesHistory.Len() > 0 {
		b.setState(b.statesHistory.Pop())
	}
}

func (b *statefulBubble) resize(width, height int) {
	x, y := paddingStyle.GetFrameSize()
	xx, yy := listExtraPaddingStyle.GetFrameSize()

	listWidth := width - xx
	listHeight := height - yy

	for _, l := range []*list.Model{&b.channelsC, &b.guideC, &b.personalC} {
		l.SetSize(listWidth, listHeight)
		l.Help.Width = listWidth
	}

	b.routeC.Width = listWidth
	b.width = width - x
	b.height = height - y
	b.helpC.Width = listWidth
}

func newBubble(options *Options) *statefulBubble {
	bubble := &statefulBubble{
		statesHistory: util.Stack[state]{},
		keymap:        newStatefulKeymap(),
		bridge:        &bridge{},
		notifier:      &ui.Model{},
		options:       options,
	}

	makeList := func(title string, description bool, titleColor lipgloss.Color) list.Model {
		delegate := list.NewDefaultDelegate()
		delegate.SetSpacing(viper.GetInt(key.TUIItemSpacing))
		delegate.ShowDescription = description
		delegate.Styles.SelectedTitle = lipgloss.NewStyle().
			Border(lipgloss.ThickBorder(), false, false, false, true).
			BorderForeground(color.Brand).
			Foreground(color.Brand).
			Padding(0, 0, 0, 1)
		delegate.Styles.SelectedDesc = delegate.Styles.SelectedTitle

		l := list.New([]list.Item{}, delegate, 0, 0)
		l.KeyMap = bubble.keymap.forList()
		l.AdditionalShortHelpKeys = bubble.keymap.ShortHelp
		l.AdditionalFullHelpKeys = func() []bubblesKey.Binding {
			return bubble.keymap.FullHelp()[0]
		}
		l.Title = title
		l.Styles.Title = lipgloss.NewStyle().Foreground(color.Black).Background(titleColor).Padding(0, 1)
		l.Styles.NoItems = paddingStyle
		l.StatusMessageLifetime = time.Hour
		l.SetShowPagination(false)
		return l
	}

	descriptions := viper.GetBool(key.TUIShowDescriptions)

	bubble.helpC = help.New()

	bubble.spinnerC = spinner.New()
	bubble.spinnerC.Spinner = spinner.Dot
	bubble.spinnerC.Style = lipgloss.NewStyle().Foreground(color.Brand)

	bubble.routeC = textinput.New()
	bubble.routeC.Placeholder = "channels/yle-tv1, personal, play/<content>/<media>"
	bubble.routeC.CharLimit = 120
	bubble.routeC.Prompt = viper.GetString(key.TUIRoutePromptString)

	bubble.channelsC = makeList("Channels", true, color.Brand)
	bubble.channelsC.SetStatusBarItemName("channel", "channels")

	bubble.guideC = makeList("Guide", descriptions, color.Cyan)
	bubble.guideC.SetStatusBarItemName("program", "programs")

	bubble.personalC = makeList("Personal", descriptions, color.Orange)
	bubble.personalC.SetStatusBarItemName("program", "programs")

	if w, h, err := util.TerminalSize(); err == nil {
		bubble.resize(w, h)
	}

	bubble.setState(loadingState)
	return bubble
}

func (b *statefulBubble) closePlayer() {
	if b.playerP != nil {
		_ = b.playerP.Close()
		b.playerP = nil
	}
}
