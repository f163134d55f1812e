// Package inline renders routes as plain text or JSON for scripts and pipes.
package inline

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/wordwrap"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/yleguide/yleguide/guide"
	"github.com/yleguide/yleguide/icon"
	"github.com/yleguide/yleguide/stream"
	"github.com/yleguide/yleguide/style"
	"github.com/yleguide/yleguide/util"
)

type Options struct {
	Out          io.Writer
	Json         bool
	Descriptions bool
	Variants     bool
	MaxBandwidth uint32
	Width        int
	Now          func() time.Time
}

// Renderer collects what the router shows and writes it on Flush.
type Renderer struct {
	options  Options
	output   Output
	playback *stream.Playback
}

func New(options Options) *Renderer {
	if options.Out == nil {
		options.Out = os.Stdout
	}
	if options.Now == nil {
		options.Now = time.Now
	}
	if options.Width <= 0 {
		options.Width = 80
	}
	return &Renderer{options: options}
}

func (r *Renderer) ShowToolbar(channelID string, current mo.Option[guide.Program], channels []guide.Channel) {
	r.output.Channel = channelID
	r.output.Channels = channels
	if p, ok := current.Get(); ok {
		program := newProgram(p, r.options.Now())
		r.output.Current = &program
	}
}

func (r *Renderer) ShowGuide(channelID string, programs []guide.Program) {
	r.output.Route = "channels/" + channelID
	r.output.Programs = r.programs(programs)
}

func (r *Renderer) ShowPlayer(playback *stream.Playback) {
	r.playback = playback
	r.output.Route = guide.PlaybackRoute(playback.ContentID, playback.MediaID)
	r.output.Playback = &Playback{
		URL:       playback.URL,
		Selected:  playback.Pick(r.options.MaxBandwidth),
		ContentID: playback.ContentID,
		MediaID:   playback.MediaID,
		Variants:  playback.Variants,
	}
	if p, ok := playback.Program.Get(); ok {
		program := newProgram(p, r.options.Now())
		r.output.Playback.Program = &program
	}
}

func (r *Renderer) ShowPersonal(programs []guide.Program) {
	r.output.Route = "personal"
	r.output.Programs = r.programs(programs)
}

// ShowChannels lists channels without a selection.
func (r *Renderer) ShowChannels(channels []guide.Channel) {
	r.output.Route = "channels"
	r.output.Channels = channels
}

// Playback returns the last playback shown, if any.
func (r *Renderer) Playback() mo.Option[*stream.Playback] {
	return mo.EmptyableToOption(r.playback)
}

func (r *Renderer) programs(programs []guide.Program) []Program {
	now := r.options.Now()
	return lo.Map(programs, func(p guide.Program, _ int) Program { return newProgram(p, now) })
}

// Flush writes everything collected so far.
func (r *Renderer) Flush() error {
	if r.options.Json {
		return json.NewEncoder(r.options.Out).Encode(r.output)
	}

	var b strings.Builder
	switch {
	case r.output.Playback != nil:
		r.writePlayback(&b)
	case r.output.Route == "channels":
		r.writeChannels(&b, "")
	case r.output.Route == "personal":
		b.WriteString(style.Title(icon.Get(icon.Personal)+" Personal") + "\n\n")
		r.writePrograms(&b)
	default:
		r.writeChannels(&b, r.output.Channel)
		b.WriteString("\n")
		r.writePrograms(&b)
	}

	_, err := io.WriteString(r.options.Out, b.String())
	return err
}

func (r *Renderer) writeChannels(b *strings.Builder, selected string) {
	for _, c := range r.output.Channels {
		marker := "  "
		if c.ID == selected {
			marker = icon.Get(icon.Arrow) + " "
		}
		fmt.Fprintf(b, "%s%s %s\n", marker, style.Bold(c.Title), style.Faint(c.ID))
	}
}

func (r *Renderer) writePrograms(b *strings.Builder) {
	if len(r.output.Programs) == 0 {
		b.WriteString(style.Faint("No programs") + "\n")
		return
	}

	for _, p := range r.output.Programs {
		when := util.Clock(p.StartTime) + "-" + util.Clock(p.EndTime)
		if !p.StartTime.IsZero() && r.output.Route == "personal" {
			when = p.StartTime.Local().Format("2006-01-02 15:04") + " " + style.Faint(humanize.Time(p.StartTime))
		}

		line := fmt.Sprintf("%s  %s", when, style.Bold(p.Title))
		if p.OnAir {
			line += " " + style.OnAir("ON AIR")
		}
		if r.output.Route == "personal" {
			line += " " + style.Faint(p.Channel)
		}
		b.WriteString(line + "\n")

		if p.PlaybackRoute != nil {
			b.WriteString(indent.String(style.Faint(icon.Get(icon.Play)+" "+*p.PlaybackRoute), 4) + "\n")
		}
		if r.options.Descriptions && p.Description != "" {
			text := wordwrap.String(p.Description, util.Max(r.options.Width-4, 20))
			b.WriteString(indent.String(style.Faint(text), 4) + "\n")
		}
	}
}

func (r *Renderer) writePlayback(b *strings.Builder) {
	pb := r.output.Playback
	if pb.Program != nil {
		fmt.Fprintf(b, "%s %s\n", style.Channel(pb.Program.Channel), style.Bold(pb.Program.Title))
	}

	if r.options.Variants {
		for _, v := range pb.Variants {
			marker := "  "
			if v.URL == pb.Selected {
				marker = icon.Get(icon.Arrow) + " "
			}
			fmt.Fprintf(b, "%s%-24s %s\n", marker, v.String(), v.URL)
		}
		if len(pb.Variants) > 0 {
			b.WriteString("\n")
		}
	}

	b.WriteString(pb.Selected + "\n")
}
