package guide

import (
	"context"
	"errors"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/yleguide/yleguide/yle"
)

type fakeSource struct {
	services    []yle.Service
	servicesErr error
	schedule    []yle.ScheduleEntry
	items       []yle.Broadcast

	serviceCalls  int
	scheduleCalls int
	lastQuery     yle.ItemsQuery
}

func (f *fakeSource) Services(_ context.Context, _ string) ([]yle.Service, error) {
	f.serviceCalls++
	return f.services, f.servicesErr
}

func (f *fakeSource) CurrentPrograms(_ context.Context, _ []string, _, _ int) ([]yle.ScheduleEntry, error) {
	f.scheduleCalls++
	return f.schedule, nil
}

func (f *fakeSource) Items(_ context.Context, q yle.ItemsQuery) ([]yle.Broadcast, error) {
	f.lastQuery = q
	return f.items, nil
}

func event(id, service, start string) yle.PublicationEvent {
	return yle.PublicationEvent{ID: id, Service: yle.ServiceRef{ID: service}, StartTime: start}
}

func broadcast(id string, events ...yle.PublicationEvent) yle.Broadcast {
	return yle.Broadcast{
		ID:               id,
		Title:            yle.LocalizedText{"fi": "Ohjelma " + id},
		Description:      yle.LocalizedText{"sv": "Program " + id},
		PublicationEvent: events,
	}
}

var channels = []Channel{{ID: "yle-tv1", Title: "Yle TV1"}, {ID: "yle-tv2", Title: "Yle TV2"}}

func TestNormalize(t *testing.T) {
	n := NewNormalizer()

	Convey("Given a broadcast with no event on a known channel", t, func() {
		b := broadcast("1-1", event("4-1", "yle-radio1", "2024-03-01T18:00:00+0200"))

		Convey("It should yield no program", func() {
			So(n.Normalize(b, channels).IsAbsent(), ShouldBeTrue)
		})
	})

	Convey("Given a broadcast without publication events", t, func() {
		So(n.Normalize(broadcast("1-1"), channels).IsAbsent(), ShouldBeTrue)
	})

	Convey("Given a broadcast airing on several services", t, func() {
		b := broadcast("1-2",
			event("4-late", "yle-tv1", "2024-03-01T21:00:00+0200"),
			event("4-unknown", "yle-radio1", "2024-03-01T17:00:00+0200"),
			event("4-early", "yle-tv2", "2024-03-01T19:00:00+0200"),
		)
		b.PublicationEvent[2].EndTime = "2024-03-01T20:00:00+0200"

		program, ok := n.Normalize(b, channels).Get()
		So(ok, ShouldBeTrue)

		Convey("The earliest event on a known channel is canonical", func() {
			So(program.ID, ShouldEqual, "4-early")
			So(program.ChannelID, ShouldEqual, "yle-tv2")
			So(program.Channel, ShouldEqual, "Yle TV2")
			So(program.EndTime.Sub(program.StartTime), ShouldEqual, time.Hour)
		})

		Convey("Text falls back through the locale list", func() {
			So(program.Title, ShouldEqual, "Ohjelma 1-2")
			So(program.Description, ShouldEqual, "Program 1-2")
		})

		Convey("The playback route carries both ids", func() {
			So(program.PlaybackRoute.MustGet(), ShouldEqual, "play/1-2/4-early")
		})
	})

	Convey("Given an event without an id", t, func() {
		b := broadcast("1-3", event("", "yle-tv1", "2024-03-01T18:00:00+0200"))
		program, ok := n.Normalize(b, channels).Get()
		So(ok, ShouldBeTrue)
		So(program.PlaybackRoute.IsAbsent(), ShouldBeTrue)
	})

	Convey("Given events with unparsable start times", t, func() {
		b := broadcast("1-4",
			event("4-a", "yle-tv1", "2024-03-01T18:00:00+0200"),
			event("4-b", "yle-tv1", "soon"),
		)
		program := n.Normalize(b, channels).MustGet()

		Convey("They sort as the zero time", func() {
			So(program.ID, ShouldEqual, "4-b")
			So(program.StartTime.IsZero(), ShouldBeTrue)
		})
	})

	Convey("Given image references", t, func() {
		b := broadcast("1-5", event("4-1", "yle-tv1", "2024-03-01T18:00:00+0200"))

		Convey("The broadcast image wins", func() {
			b.Image = &yle.Image{ID: "13-1"}
			b.PartOfSeries = &yle.Series{CoverImage: &yle.Image{ID: "13-2"}}
			So(n.Normalize(b, channels).MustGet().ImageID, ShouldEqual, "13-1")
		})

		Convey("The series cover is the fallback", func() {
			b.PartOfSeries = &yle.Series{CoverImage: &yle.Image{ID: "13-2"}}
			So(n.Normalize(b, channels).MustGet().ImageID, ShouldEqual, "13-2")
		})

		Convey("No image is empty", func() {
			So(n.Normalize(b, channels).MustGet().ImageID, ShouldBeEmpty)
		})
	})

	Convey("Given a swedish-first normalizer", t, func() {
		sv := NewNormalizer("sv", "fi")
		b := broadcast("1-6", event("4-1", "yle-tv1", "2024-03-01T18:00:00+0200"))
		b.Title["sv"] = "Nyheter"
		So(sv.Normalize(b, channels).MustGet().Title, ShouldEqual, "Nyheter")
	})
}

func scheduleFixture() *fakeSource {
	return &fakeSource{
		services: []yle.Service{
			{ID: "yle-tv1", Title: yle.LocalizedText{"fi": "Yle TV1"}},
			{ID: "yle-tv2", Title: yle.LocalizedText{"fi": "Yle TV2"}},
			{ID: "yle-fem", Title: yle.LocalizedText{"sv": "Yle Fem"}},
		},
		schedule: []yle.ScheduleEntry{
			{Service: yle.ServiceRef{ID: "yle-tv1"}, Content: broadcast("1-1", event("4-1", "yle-tv1", "2024-03-01T18:00:00+0200"))},
			{Service: yle.ServiceRef{ID: "yle-fem"}, Content: broadcast("1-2", event("4-2", "yle-fem", "2024-03-01T18:30:00+0200"))},
			{Service: yle.ServiceRef{ID: "yle-tv1"}, Content: broadcast("1-3", event("4-3", "yle-tv1", "2024-03-01T19:00:00+0200"))},
		},
	}
}

func TestRefresh(t *testing.T) {
	ctx := context.Background()

	Convey("Given an upstream with three services, two on air", t, func() {
		source := scheduleFixture()
		state := NewState()
		fetcher := NewFetcher(source, state, DefaultOptions())

		So(state.Snapshot().Empty(), ShouldBeTrue)

		catalog, err := fetcher.Refresh(ctx)
		So(err, ShouldBeNil)

		Convey("Only services with a current program become channels", func() {
			So(catalog.Channels, ShouldResemble, []Channel{
				{ID: "yle-tv1", Title: "Yle TV1"},
				{ID: "yle-fem", Title: "Yle Fem"},
			})
		})

		Convey("Every program refers to a channel of the same snapshot", func() {
			So(catalog.Programs, ShouldHaveLength, 3)
			for _, p := range catalog.Programs {
				So(catalog.Channel(p.ChannelID).IsPresent(), ShouldBeTrue)
			}
		})

		Convey("The snapshot is published", func() {
			So(state.Snapshot(), ShouldEqual, catalog)
		})

		Convey("Refreshing unchanged data yields identical collections", func() {
			again, err := fetcher.Refresh(ctx)
			So(err, ShouldBeNil)
			So(again.Channels, ShouldResemble, catalog.Channels)
			So(again.Programs, ShouldResemble, catalog.Programs)
		})
	})

	Convey("Given a failing services endpoint", t, func() {
		source := scheduleFixture()
		state := NewState()
		fetcher := NewFetcher(source, state, DefaultOptions())
		previous, err := fetcher.Refresh(ctx)
		So(err, ShouldBeNil)

		source.servicesErr = errors.New("connection reset")
		_, err = fetcher.Refresh(ctx)

		Convey("The error is typed", func() {
			So(errors.Is(err, ErrServicesUnavailable), ShouldBeTrue)
		})

		Convey("The previous snapshot stays in place", func() {
			So(state.Snapshot(), ShouldEqual, previous)
		})
	})

	Convey("Given no services at all", t, func() {
		source := &fakeSource{}
		fetcher := NewFetcher(source, NewState(), DefaultOptions())

		catalog, err := fetcher.Refresh(ctx)
		So(err, ShouldBeNil)
		So(catalog.Empty(), ShouldBeTrue)
		So(source.scheduleCalls, ShouldEqual, 0)
	})
}

func TestPersonal(t *testing.T) {
	ctx := context.Background()

	Convey("Given search results out of order", t, func() {
		source := scheduleFixture()
		source.items = []yle.Broadcast{
			broadcast("1-old", event("4-old", "yle-tv1", "2020-01-01T12:00:00+0200")),
			broadcast("1-radio", event("4-radio", "yle-radio1", "2020-03-01T12:00:00+0200")),
			broadcast("1-new", event("4-new", "yle-fem", "2020-06-01T12:00:00+0200")),
		}
		fetcher := NewFetcher(source, NewState(), DefaultOptions())

		programs, err := fetcher.Personal(ctx)
		So(err, ShouldBeNil)

		Convey("The empty catalog is refreshed first", func() {
			So(source.serviceCalls, ShouldEqual, 1)
		})

		Convey("Programs off the known channels are dropped", func() {
			So(programs, ShouldHaveLength, 2)
		})

		Convey("Programs are ordered newest first", func() {
			So(programs[0].ContentID, ShouldEqual, "1-new")
			So(programs[1].ContentID, ShouldEqual, "1-old")
		})

		Convey("The configured query is sent", func() {
			So(source.lastQuery.Query, ShouldEqual, "Eränkävijät")
			So(source.lastQuery.Order, ShouldEqual, "publication.starttime:desc")
		})
	})
}

func TestCatalog(t *testing.T) {
	Convey("Given a catalog", t, func() {
		at := time.Date(2024, 3, 1, 18, 15, 0, 0, time.UTC)
		catalog := &Catalog{
			Channels: channels,
			Programs: []Program{
				{ID: "p1", ContentID: "c1", ChannelID: "yle-tv1", StartTime: at.Add(-time.Hour), EndTime: at.Add(-30 * time.Minute)},
				{ID: "p2", ContentID: "c2", ChannelID: "yle-tv1", StartTime: at.Add(-30 * time.Minute), EndTime: at.Add(time.Hour)},
				{ID: "p3", ContentID: "c3", ChannelID: "yle-tv2"},
			},
		}

		So(catalog.ProgramsOn("yle-tv1"), ShouldHaveLength, 2)
		So(catalog.ProgramByContent("c3").MustGet().ID, ShouldEqual, "p3")
		So(catalog.ProgramByContent("nope").IsAbsent(), ShouldBeTrue)
		So(catalog.Current("yle-tv1", at).MustGet().ID, ShouldEqual, "p2")
		So(catalog.Current("yle-tv2", at).IsAbsent(), ShouldBeTrue)
	})
}

func TestFilterChannels(t *testing.T) {
	Convey("FilterChannels", t, func() {
		list := []Channel{
			{ID: "yle-tv1", Title: "Yle TV1"},
			{ID: "yle-tv2", Title: "Yle TV2"},
			{ID: "yle-teema-fem", Title: "Yle Teema & Fem"},
		}

		So(FilterChannels(list, ""), ShouldResemble, list)
		So(FilterChannels(list, "teema"), ShouldResemble, []Channel{list[2]})
		So(FilterChannels(list, "tv2")[0].ID, ShouldEqual, "yle-tv2")
		So(FilterChannels(list, "zzz"), ShouldBeEmpty)
	})
}
