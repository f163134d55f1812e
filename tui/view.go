package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wrap"
	"github.com/yleguide/yleguide/color"
	"github.com/yleguide/yleguide/icon"
	"github.com/yleguide/yleguide/style"
)

var (
	listExtraPaddingStyle = lipgloss.NewStyle().Padding(1, 2, 1, 0)
	paddingStyle          = lipgloss.NewStyle().Padding(1, 2)
)

func (b *statefulBubble) View() string {
	var output string

	switch b.state {
	case loadingState:
		output = b.viewLoading()
	case channelsState:
		output = listExtraPaddingStyle.Render(b.channelsC.View())
	case guideState:
		output = b.viewGuide()
	case personalState:
		output = listExtraPaddingStyle.Render(b.personalC.View())
	case playState:
		output = b.viewPlay()
	case routeState:
		output = b.viewRoute()
	case errorState:
		output = b.viewError()
	default:
		output = "Unknown state"
	}

	return b.notifier.View(output)
}

func (b *statefulBubble) viewLoading() string {
	return b.renderLines(
		true,
		[]string{
			style.Title("Loading"),
			"",
			b.spinnerC.View() + " Fetching the guide",
		},
	)
}

func (b *statefulBubble) viewGuide() string {
	if b.status == "" {
		return listExtraPaddingStyle.Render(b.guideC.View())
	}

	toolbar := style.Truncate(b.width)(icon.Get(icon.Channel) + " " + style.Channel(b.guideC.Title) + " " + style.Faint(b.status))
	return lipgloss.JoinVertical(lipgloss.Left, paddingStyle.PaddingBottom(0).Render(toolbar), listExtraPaddingStyle.Render(b.guideC.View()))
}

func (b *statefulBubble) viewRoute() string {
	return b.renderLines(
		true,
		[]string{
			style.Title("Go to route"),
			"",
			b.routeC.View(),
		},
	)
}

func (b *statefulBubble) viewPlay() string {
	playback := b.playback
	if playback == nil {
		return b.renderLines(true, []string{style.Title("Now Playing")})
	}

	title := playback.ContentID
	if program, ok := playback.Program.Get(); ok {
		title = program.Title
	}

	lines := []string{
		style.Title("Now Playing"),
		"",
		style.Truncate(b.width)(fmt.Sprintf("%s %s", icon.Get(icon.Play), style.Fg(color.Brand)(title))),
		"",
	}

	switch {
	case b.options.Player == nil:
		lines = append(lines, style.Faint("No player configured. Stream URL:"), wrap.String(playback.URL, b.width))
	case b.playerP == nil:
		lines = append(lines, b.spinnerC.View()+" Starting player")
	default:
		position := time.Duration(b.position * float64(time.Second)).Round(time.Second)
		status := icon.Get(icon.Progress) + " " + position.String()
		if b.paused {
			status += " " + style.Faint("paused")
		}
		lines = append(lines, status)
	}

	if len(playback.Variants) > 0 {
		selected := playback.Pick(b.options.MaxBandwidth)
		lines = append(lines, "", style.Bold("Variants"))
		for _, v := range playback.Variants {
			line := "  " + v.String()
			if v.URL == selected {
				line = icon.Get(icon.Arrow) + " " + v.String()
			}
			lines = append(lines, style.Truncate(b.width)(line))
		}
	}

	return b.renderLines(true, lines)
}

func (b *statefulBubble) viewError() string {
	errorMsg := wrap.String(style.Fg(color.Red)(b.lastError.Error()), b.width)
	return b.renderLines(
		true,
		[]string{
			style.ErrorTitle("Error"),
			"",
			icon.Get(icon.Fail) + " Something went wrong:",
			"",
			errorMsg,
		},
	)
}

func (b *statefulBubble) renderLines(addHelp bool, lines []string) string {
	h := len(lines)
	l := strings.Join(lines, "\n")
	if addHelp {
		if b.height > h {
			l += strings.Repeat("\n", b.height-h)
		}
		l += b.helpC.View(b.keymap)
	}

	return paddingStyle.Render(l)
}
