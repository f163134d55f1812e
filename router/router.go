// Package router dispatches route paths to the guide, player and personal views.
package router

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/yleguide/yleguide/guide"
	"github.com/yleguide/yleguide/log"
	"github.com/yleguide/yleguide/stream"
)

// DefaultTimeout bounds a single transition.
const DefaultTimeout = 30 * time.Second

type Fetcher interface {
	State() *guide.State
	Refresh(ctx context.Context) (*guide.Catalog, error)
	Personal(ctx context.Context) ([]guide.Program, error)
}

type Resolver interface {
	Resolve(ctx context.Context, contentID, mediaID string) (*stream.Playback, error)
}

// Router runs one transition at a time. Starting a new one cancels the one in
// flight, and a cancelled transition never reaches the views.
type Router struct {
	fetcher  Fetcher
	resolver Resolver
	views    Views
	timeout  time.Duration

	mu         sync.Mutex
	generation uint64
	cancel     context.CancelFunc
	current    Route
}

func New(fetcher Fetcher, resolver Resolver, views Views, timeout time.Duration) *Router {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Router{
		fetcher:  fetcher,
		resolver: resolver,
		views:    views,
		timeout:  timeout,
	}
}

// Current returns the route of the last completed transition.
func (r *Router) Current() Route {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.current
}

// Navigate performs the transition for path. Unknown paths re-initialize the
// catalog and land on the first channel.
func (r *Router) Navigate(ctx context.Context, path string) error {
	ctx, gen := r.begin(ctx)
	defer r.finish(gen)

	route := Parse(path)
	log.With(log.Fields{"route": route.Path, "kind": route.Kind.String()}).Debug("navigate")

	var err error
	switch route.Kind {
	case KindChannels:
		err = r.channels(ctx, gen, route)
	case KindPlay:
		err = r.play(ctx, gen, route)
	case KindPersonal:
		err = r.personal(ctx, gen, route)
	default:
		log.Infof("no route handler for %q, reinitializing", route.Path)
		err = r.init(ctx, gen)
	}

	if err != nil && r.stale(gen) {
		return ErrSuperseded
	}
	return err
}

// Init refreshes the catalog and shows the first channel.
func (r *Router) Init(ctx context.Context) error {
	return r.Navigate(ctx, "")
}

func (r *Router) begin(parent context.Context) (context.Context, uint64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.cancel != nil {
		r.cancel()
	}

	r.generation++
	ctx, cancel := context.WithTimeout(parent, r.timeout)
	r.cancel = cancel
	return ctx, r.generation
}

func (r *Router) finish(gen uint64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if gen == r.generation && r.cancel != nil {
		r.cancel()
		r.cancel = nil
	}
}

func (r *Router) stale(gen uint64) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return gen != r.generation
}

// commit runs render only if gen is still the newest transition.
func (r *Router) commit(gen uint64, route Route, render func()) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if gen != r.generation {
		return ErrSuperseded
	}

	render()
	r.current = route
	return nil
}

func (r *Router) snapshot(ctx context.Context) (*guide.Catalog, error) {
	catalog := r.fetcher.State().Snapshot()
	if !catalog.Empty() {
		return catalog, nil
	}
	return r.fetcher.Refresh(ctx)
}

func (r *Router) init(ctx context.Context, gen uint64) error {
	catalog, err := r.fetcher.Refresh(ctx)
	if err != nil {
		return err
	}

	first, ok := lo.First(catalog.Channels)
	if !ok {
		return guide.ErrNoChannels
	}

	return r.channels(ctx, gen, Parse(ChannelPath(first.ID)))
}

func (r *Router) channels(ctx context.Context, gen uint64, route Route) error {
	catalog, err := r.snapshot(ctx)
	if err != nil {
		return err
	}

	programs := catalog.ProgramsOn(route.ChannelID)
	channels := slices.Clone(catalog.Channels)

	// first match in collection order, not the one on air
	current := mo.None[guide.Program]()
	if first, ok := lo.First(programs); ok {
		current = mo.Some(first)
	}

	return r.commit(gen, route, func() {
		r.views.Toolbar.ShowToolbar(route.ChannelID, current, channels)
		r.views.Guide.ShowGuide(route.ChannelID, programs)
	})
}

func (r *Router) play(ctx context.Context, gen uint64, route Route) error {
	if route.ContentID == "" || route.MediaID == "" {
		return fmt.Errorf("route %q: content and media ids are required", route.Path)
	}

	playback, err := r.resolver.Resolve(ctx, route.ContentID, route.MediaID)
	if err != nil {
		return err
	}
	playback.Program = r.fetcher.State().Snapshot().ProgramByContent(route.ContentID)

	return r.commit(gen, route, func() {
		r.views.Player.ShowPlayer(playback)
	})
}

func (r *Router) personal(ctx context.Context, gen uint64, route Route) error {
	programs, err := r.fetcher.Personal(ctx)
	if err != nil {
		return err
	}

	return r.commit(gen, route, func() {
		r.views.Personal.ShowPersonal(programs)
	})
}
