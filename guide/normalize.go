package guide

import (
	"slices"
	"time"

	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/yleguide/yleguide/yle"
)

// DefaultLocales is the title and description preference when none is configured.
var DefaultLocales = []string{"fi", "sv"}

// PlaybackRoute builds the route that plays mediaID of contentID.
func PlaybackRoute(contentID, mediaID string) string {
	return "play/" + contentID + "/" + mediaID
}

// Normalizer flattens upstream broadcasts into Programs.
type Normalizer struct {
	locales []string
}

// NewNormalizer returns a Normalizer preferring locales in order.
func NewNormalizer(locales ...string) Normalizer {
	locales = lo.Compact(locales)
	if len(locales) == 0 {
		locales = DefaultLocales
	}
	return Normalizer{locales: locales}
}

func (n Normalizer) Locales() []string {
	if len(n.locales) == 0 {
		return DefaultLocales
	}
	return n.locales
}

// Channel converts a service into a Channel.
func (n Normalizer) Channel(s yle.Service) Channel {
	return Channel{ID: s.ID, Title: s.Title.Prefer(n.Locales()...)}
}

type timedEvent struct {
	event yle.PublicationEvent
	start time.Time
}

// Normalize picks the earliest publication event of b that airs on one of
// channels and builds a Program from it. Broadcasts with no such event yield None.
func (n Normalizer) Normalize(b yle.Broadcast, channels []Channel) mo.Option[Program] {
	known := lo.SliceToMap(channels, func(c Channel) (string, Channel) { return c.ID, c })

	events := lo.Map(b.PublicationEvent, func(e yle.PublicationEvent, _ int) timedEvent {
		start, _ := yle.ParseTime(e.StartTime)
		return timedEvent{event: e, start: start}
	})
	slices.SortStableFunc(events, func(a, b timedEvent) int {
		return a.start.Compare(b.start)
	})

	canonical, ok := lo.Find(events, func(e timedEvent) bool {
		_, found := known[e.event.Service.ID]
		return found
	})
	if !ok {
		return mo.None[Program]()
	}

	channel := known[canonical.event.Service.ID]
	end, _ := yle.ParseTime(canonical.event.EndTime)

	program := Program{
		ID:          canonical.event.ID,
		ContentID:   b.ID,
		ChannelID:   channel.ID,
		ImageID:     imageID(b),
		Title:       b.Title.Prefer(n.Locales()...),
		Channel:     channel.Title,
		Description: b.Description.Prefer(n.Locales()...),
		StartTime:   canonical.start,
		EndTime:     end,
	}

	if canonical.event.ID != "" {
		program.PlaybackRoute = mo.Some(PlaybackRoute(b.ID, canonical.event.ID))
	}

	return mo.Some(program)
}

func imageID(b yle.Broadcast) string {
	if b.Image != nil && b.Image.ID != "" {
		return b.Image.ID
	}
	if b.PartOfSeries != nil && b.PartOfSeries.CoverImage != nil {
		return b.PartOfSeries.CoverImage.ID
	}
	return ""
}
