package guide

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/samber/lo"
	"github.com/yleguide/yleguide/log"
	"github.com/yleguide/yleguide/yle"
)

// Source is the upstream API as the fetcher uses it. *yle.Client implements it.
type Source interface {
	Services(ctx context.Context, serviceType string) ([]yle.Service, error)
	CurrentPrograms(ctx context.Context, serviceIDs []string, start, end int) ([]yle.ScheduleEntry, error)
	Items(ctx context.Context, q yle.ItemsQuery) ([]yle.Broadcast, error)
}

const personalOrder = "publication.starttime:desc"

type Options struct {
	ServiceType   string
	WindowStart   int
	WindowEnd     int
	PersonalQuery string
	Locales       []string
}

// DefaultOptions match the upstream web guide.
func DefaultOptions() Options {
	return Options{
		ServiceType:   "TVChannel",
		WindowStart:   -1,
		WindowEnd:     10,
		PersonalQuery: "Eränkävijät",
		Locales:       DefaultLocales,
	}
}

// Fetcher builds catalogs from a Source and publishes them to a State.
type Fetcher struct {
	source     Source
	state      *State
	normalizer Normalizer
	options    Options
	now        func() time.Time
}

func NewFetcher(source Source, state *State, options Options) *Fetcher {
	defaults := DefaultOptions()
	if options.ServiceType == "" {
		options.ServiceType = defaults.ServiceType
	}
	if options.PersonalQuery == "" {
		options.PersonalQuery = defaults.PersonalQuery
	}

	return &Fetcher{
		source:     source,
		state:      state,
		normalizer: NewNormalizer(options.Locales...),
		options:    options,
		now:        time.Now,
	}
}

func (f *Fetcher) State() *State {
	return f.state
}

// Services lists upstream services of serviceType, or of the configured type when empty.
// Failures are logged and returned wrapped in ErrServicesUnavailable.
func (f *Fetcher) Services(ctx context.Context, serviceType string) ([]yle.Service, error) {
	if serviceType == "" {
		serviceType = f.options.ServiceType
	}

	services, err := f.source.Services(ctx, serviceType)
	if err != nil {
		log.Warnf("fetch services (%s): %v", serviceType, err)
		return nil, fmt.Errorf("%w: %w", ErrServicesUnavailable, err)
	}
	return services, nil
}

// CurrentPrograms returns the schedule window around now for serviceIDs.
func (f *Fetcher) CurrentPrograms(ctx context.Context, serviceIDs []string) ([]yle.ScheduleEntry, error) {
	entries, err := f.source.CurrentPrograms(ctx, serviceIDs, f.options.WindowStart, f.options.WindowEnd)
	if err != nil {
		return nil, fmt.Errorf("fetch current programs: %w", err)
	}
	return entries, nil
}

// Refresh fetches services and their current programs and swaps the result into the State.
// On error the previous catalog stays in place.
func (f *Fetcher) Refresh(ctx context.Context) (*Catalog, error) {
	services, err := f.Services(ctx, "")
	if err != nil {
		return nil, err
	}

	var entries []yle.ScheduleEntry
	if len(services) > 0 {
		ids := lo.Map(services, func(s yle.Service, _ int) string { return s.ID })
		if entries, err = f.CurrentPrograms(ctx, ids); err != nil {
			return nil, err
		}
	}

	catalog := f.build(services, entries)
	f.state.Store(catalog)

	log.Infof("catalog refreshed: %d channels, %d programs", len(catalog.Channels), len(catalog.Programs))
	return catalog, nil
}

func (f *Fetcher) build(services []yle.Service, entries []yle.ScheduleEntry) *Catalog {
	airing := lo.SliceToMap(entries, func(e yle.ScheduleEntry) (string, struct{}) {
		return e.Service.ID, struct{}{}
	})

	channels := lo.FilterMap(services, func(s yle.Service, _ int) (Channel, bool) {
		_, ok := airing[s.ID]
		return f.normalizer.Channel(s), ok
	})

	programs := lo.FilterMap(entries, func(e yle.ScheduleEntry, _ int) (Program, bool) {
		return f.normalizer.Normalize(e.Content, channels).Get()
	})

	return &Catalog{
		Channels:  channels,
		Programs:  programs,
		FetchedAt: f.now(),
	}
}

// Personal searches the configured personal query and returns matches airing
// on known channels, newest first. An empty catalog is refreshed first.
func (f *Fetcher) Personal(ctx context.Context) ([]Program, error) {
	return f.Search(ctx, f.options.PersonalQuery)
}

// Search runs Personal with an explicit query.
func (f *Fetcher) Search(ctx context.Context, query string) ([]Program, error) {
	snapshot := f.state.Snapshot()
	if snapshot.Empty() {
		refreshed, err := f.Refresh(ctx)
		if err != nil {
			return nil, err
		}
		snapshot = refreshed
	}

	items, err := f.source.Items(ctx, yle.ItemsQuery{Query: query, Order: personalOrder})
	if err != nil {
		return nil, fmt.Errorf("fetch personal programs: %w", err)
	}

	programs := lo.FilterMap(items, func(b yle.Broadcast, _ int) (Program, bool) {
		return f.normalizer.Normalize(b, snapshot.Channels).Get()
	})
	SortNewestFirst(programs)

	return programs, nil
}

// SortNewestFirst orders programs by start time, latest first. Equal times keep their order.
func SortNewestFirst(programs []Program) {
	slices.SortStableFunc(programs, func(a, b Program) int {
		return b.StartTime.Compare(a.StartTime)
	})
}
