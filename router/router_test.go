package router

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/samber/mo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/yleguide/yleguide/guide"
	"github.com/yleguide/yleguide/stream"
	"github.com/yleguide/yleguide/yle"
)

type fakeFetcher struct {
	state        *guide.State
	next         *guide.Catalog
	refreshErr   error
	refreshCalls int
	personal     []guide.Program
}

func (f *fakeFetcher) State() *guide.State { return f.state }

func (f *fakeFetcher) Refresh(context.Context) (*guide.Catalog, error) {
	f.refreshCalls++
	if f.refreshErr != nil {
		return nil, f.refreshErr
	}
	f.state.Store(f.next)
	return f.next, nil
}

func (f *fakeFetcher) Personal(context.Context) ([]guide.Program, error) {
	return f.personal, nil
}

type fakeResolver struct {
	started chan struct{}
	block   bool
	err     error
}

func (f *fakeResolver) Resolve(ctx context.Context, contentID, mediaID string) (*stream.Playback, error) {
	if f.started != nil {
		close(f.started)
	}
	if f.block {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	if f.err != nil {
		return nil, f.err
	}
	return &stream.Playback{URL: "https://cdn.example/" + mediaID + ".m3u8", ContentID: contentID, MediaID: mediaID}, nil
}

type recorder struct {
	mu       sync.Mutex
	toolbar  []string
	current  mo.Option[guide.Program]
	channels []guide.Channel
	guide    []guide.Program
	played   []*stream.Playback
	personal []guide.Program
}

func (r *recorder) ShowToolbar(channelID string, current mo.Option[guide.Program], channels []guide.Channel) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.toolbar = append(r.toolbar, channelID)
	r.current = current
	r.channels = channels
}

func (r *recorder) ShowGuide(_ string, programs []guide.Program) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.guide = programs
}

func (r *recorder) ShowPlayer(playback *stream.Playback) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.played = append(r.played, playback)
}

func (r *recorder) ShowPersonal(programs []guide.Program) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.personal = programs
}

func (r *recorder) views() Views {
	return Views{Toolbar: r, Guide: r, Player: r, Personal: r}
}

var (
	t0 = time.Date(2024, 3, 1, 18, 0, 0, 0, time.UTC)
	t1 = t0.Add(time.Hour)
)

func fixture() *guide.Catalog {
	return &guide.Catalog{
		Channels: []guide.Channel{{ID: "tv1", Title: "Yle TV1"}, {ID: "tv2", Title: "Yle TV2"}},
		Programs: []guide.Program{
			{ID: "p1", ContentID: "c1", ChannelID: "tv1", StartTime: t0},
			{ID: "p2", ContentID: "c2", ChannelID: "tv1", StartTime: t1},
			{ID: "p3", ContentID: "c3", ChannelID: "tv2", StartTime: t0},
		},
	}
}

func loaded() *fakeFetcher {
	state := guide.NewState()
	state.Store(fixture())
	return &fakeFetcher{state: state, next: fixture()}
}

func TestParse(t *testing.T) {
	Convey("Parse", t, func() {
		So(Parse("channels/yle-tv1"), ShouldResemble, Route{Kind: KindChannels, ChannelID: "yle-tv1", Path: "channels/yle-tv1"})
		So(Parse("#play/1-100/4-200").ContentID, ShouldEqual, "1-100")
		So(Parse("/play/1-100/4-200").MediaID, ShouldEqual, "4-200")
		So(Parse("personal").Kind, ShouldEqual, KindPersonal)
		So(Parse("foo/bar").Kind, ShouldEqual, KindUnknown)
		So(Parse("").Kind, ShouldEqual, KindUnknown)
		So(Parse("play").MediaID, ShouldBeEmpty)
	})

	Convey("A playback route round-trips through Parse", t, func() {
		route := Parse(guide.PlaybackRoute("1-100", "4-200"))
		So(route.Kind, ShouldEqual, KindPlay)
		So(route.ContentID, ShouldEqual, "1-100")
		So(route.MediaID, ShouldEqual, "4-200")
	})
}

func TestNavigate(t *testing.T) {
	ctx := context.Background()

	Convey("Given a loaded catalog", t, func() {
		fetcher := loaded()
		views := &recorder{}
		r := New(fetcher, &fakeResolver{}, views.views(), time.Second)

		Convey("channels/tv1 selects the first program in collection order", func() {
			So(r.Navigate(ctx, "channels/tv1"), ShouldBeNil)
			So(views.current.MustGet().ID, ShouldEqual, "p1")
			So(views.guide, ShouldHaveLength, 2)
			So(views.channels, ShouldHaveLength, 2)
			So(fetcher.refreshCalls, ShouldEqual, 0)
			So(r.Current().Kind, ShouldEqual, KindChannels)
		})

		Convey("An unknown channel shows an empty guide", func() {
			So(r.Navigate(ctx, "channels/nope"), ShouldBeNil)
			So(views.current.IsAbsent(), ShouldBeTrue)
			So(views.guide, ShouldBeEmpty)
		})

		Convey("An unknown route refreshes and lands on the first channel", func() {
			So(r.Navigate(ctx, "foo/bar"), ShouldBeNil)
			So(fetcher.refreshCalls, ShouldEqual, 1)
			So(views.toolbar, ShouldResemble, []string{"tv1"})
			So(r.Current().Path, ShouldEqual, "channels/tv1")
		})

		Convey("play resolves the stream and attaches the program", func() {
			So(r.Navigate(ctx, "play/c2/m2"), ShouldBeNil)
			So(views.played, ShouldHaveLength, 1)
			So(views.played[0].URL, ShouldEqual, "https://cdn.example/m2.m3u8")
			So(views.played[0].Program.MustGet().ID, ShouldEqual, "p2")
		})

		Convey("play of an unknown program still plays", func() {
			So(r.Navigate(ctx, "play/zzz/m9"), ShouldBeNil)
			So(views.played[0].Program.IsAbsent(), ShouldBeTrue)
		})

		Convey("play without ids fails", func() {
			So(r.Navigate(ctx, "play/c2"), ShouldNotBeNil)
			So(views.played, ShouldBeEmpty)
		})

		Convey("personal shows the personal programs", func() {
			fetcher.personal = []guide.Program{{ID: "x"}}
			So(r.Navigate(ctx, "personal"), ShouldBeNil)
			So(views.personal, ShouldHaveLength, 1)
		})
	})

	Convey("Given an empty catalog", t, func() {
		fetcher := &fakeFetcher{state: guide.NewState(), next: fixture()}
		views := &recorder{}
		r := New(fetcher, &fakeResolver{}, views.views(), time.Second)

		Convey("A channel route refreshes first", func() {
			So(r.Navigate(ctx, "channels/tv2"), ShouldBeNil)
			So(fetcher.refreshCalls, ShouldEqual, 1)
			So(views.current.MustGet().ID, ShouldEqual, "p3")
		})

		Convey("Init with no channels upstream fails with ErrNoChannels", func() {
			fetcher.next = &guide.Catalog{}
			err := r.Init(ctx)
			So(errors.Is(err, guide.ErrNoChannels), ShouldBeTrue)
			So(IsRecoverable(err), ShouldBeTrue)
			So(views.toolbar, ShouldBeEmpty)
		})

		Convey("A failed refresh propagates", func() {
			fetcher.refreshErr = fmt.Errorf("%w: offline", guide.ErrServicesUnavailable)
			err := r.Init(ctx)
			So(errors.Is(err, guide.ErrServicesUnavailable), ShouldBeTrue)
		})
	})

	Convey("Given no playout for the media", t, func() {
		views := &recorder{}
		r := New(loaded(), &fakeResolver{err: stream.ErrUnavailable}, views.views(), time.Second)

		err := r.Navigate(ctx, "play/c1/m1")
		So(errors.Is(err, stream.ErrUnavailable), ShouldBeTrue)
		So(views.played, ShouldBeEmpty)
	})
}

func TestSupersede(t *testing.T) {
	Convey("Given a slow transition in flight", t, func() {
		started := make(chan struct{})
		views := &recorder{}
		r := New(loaded(), &fakeResolver{started: started, block: true}, views.views(), time.Minute)

		done := make(chan error, 1)
		go func() {
			done <- r.Navigate(context.Background(), "play/c1/m1")
		}()
		<-started

		Convey("A newer navigation cancels it and wins", func() {
			So(r.Navigate(context.Background(), "channels/tv2"), ShouldBeNil)
			So(<-done, ShouldEqual, ErrSuperseded)

			views.mu.Lock()
			defer views.mu.Unlock()
			So(views.played, ShouldBeEmpty)
			So(views.toolbar, ShouldResemble, []string{"tv2"})
			So(r.Current().ChannelID, ShouldEqual, "tv2")
		})
	})

	Convey("Given a transition exceeding the deadline", t, func() {
		views := &recorder{}
		r := New(loaded(), &fakeResolver{block: true}, views.views(), 20*time.Millisecond)

		err := r.Navigate(context.Background(), "play/c1/m1")
		So(errors.Is(err, context.DeadlineExceeded), ShouldBeTrue)
		So(IsRecoverable(err), ShouldBeTrue)
	})
}

func TestIsRecoverable(t *testing.T) {
	Convey("IsRecoverable", t, func() {
		So(IsRecoverable(nil), ShouldBeTrue)
		So(IsRecoverable(ErrSuperseded), ShouldBeTrue)
		So(IsRecoverable(fmt.Errorf("x: %w", stream.ErrUnavailable)), ShouldBeTrue)
		So(IsRecoverable(&yle.StatusError{Code: http.StatusBadGateway}), ShouldBeTrue)
		So(IsRecoverable(&yle.StatusError{Code: http.StatusUnauthorized}), ShouldBeFalse)
		So(IsRecoverable(&stream.DecryptError{Reason: "bad padding"}), ShouldBeFalse)
		So(IsRecoverable(errors.New("unexpected")), ShouldBeFalse)
	})
}
