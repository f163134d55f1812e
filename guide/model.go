// Package guide turns upstream schedule data into the channel and program
// collections shown by the views.
package guide

import (
	"time"

	"github.com/samber/lo"
	"github.com/samber/mo"
)

type Channel struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// Program is a broadcast flattened onto its canonical publication event.
type Program struct {
	// ID is the canonical publication event id.
	ID          string    `json:"id"`
	ContentID   string    `json:"contentId"`
	ChannelID   string    `json:"channelId"`
	ImageID     string    `json:"imageId"`
	Title       string    `json:"title"`
	Channel     string    `json:"channel"`
	Description string    `json:"description"`
	StartTime   time.Time `json:"startTime"`
	EndTime     time.Time `json:"endTime"`

	// PlaybackRoute is "play/{contentID}/{mediaID}" when the program can be played.
	PlaybackRoute mo.Option[string] `json:"playbackRoute"`
}

// OnAir reports whether at falls within the program's airing window.
func (p Program) OnAir(at time.Time) bool {
	if p.StartTime.IsZero() || p.EndTime.IsZero() {
		return false
	}
	return !at.Before(p.StartTime) && at.Before(p.EndTime)
}

// Catalog is an immutable snapshot of channels and their programs.
type Catalog struct {
	Channels  []Channel
	Programs  []Program
	FetchedAt time.Time
}

// Channel looks up a channel by id.
func (c *Catalog) Channel(id string) mo.Option[Channel] {
	channel, ok := lo.Find(c.Channels, func(ch Channel) bool { return ch.ID == id })
	if !ok {
		return mo.None[Channel]()
	}
	return mo.Some(channel)
}

// ProgramsOn returns the programs of one channel in collection order.
func (c *Catalog) ProgramsOn(channelID string) []Program {
	return lo.Filter(c.Programs, func(p Program, _ int) bool { return p.ChannelID == channelID })
}

// ProgramByContent returns the first program with the given content id.
func (c *Catalog) ProgramByContent(contentID string) mo.Option[Program] {
	program, ok := lo.Find(c.Programs, func(p Program) bool { return p.ContentID == contentID })
	if !ok {
		return mo.None[Program]()
	}
	return mo.Some(program)
}

// Current returns the program on air at the given time for a channel, if known.
func (c *Catalog) Current(channelID string, at time.Time) mo.Option[Program] {
	program, ok := lo.Find(c.ProgramsOn(channelID), func(p Program) bool { return p.OnAir(at) })
	if !ok {
		return mo.None[Program]()
	}
	return mo.Some(program)
}

func (c *Catalog) Empty() bool {
	return len(c.Channels) == 0
}
