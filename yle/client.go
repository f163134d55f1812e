// Package yle is a client for the Yle external programs and media API.
package yle

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/yleguide/yleguide/constant"
	"github.com/yleguide/yleguide/log"
	"golang.org/x/time/rate"
)

const (
	endpointServices  = "programs/services.json"
	endpointSchedules = "programs/schedules/now.json"
	endpointItems     = "programs/items.json"
	endpointPlayouts  = "media/playouts.json"
)

// Doer sends an HTTP request. *http.Client satisfies it.
type Doer interface {
	Do(*http.Request) (*http.Response, error)
}

// StatusError is returned for any non-200 response.
type StatusError struct {
	Endpoint string
	Code     int
	Body     string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("%s: unexpected status %d", e.Endpoint, e.Code)
	}
	return fmt.Sprintf("%s: unexpected status %d: %s", e.Endpoint, e.Code, e.Body)
}

type Client struct {
	doer    Doer
	base    *url.URL
	appID   string
	appKey  string
	limiter *rate.Limiter
}

type Option func(*Client)

// WithRateLimit paces requests to perSecond. Zero or less disables pacing.
func WithRateLimit(perSecond float64) Option {
	return func(c *Client) {
		if perSecond <= 0 {
			c.limiter = nil
			return
		}
		c.limiter = rate.NewLimiter(rate.Limit(perSecond), 1)
	}
}

func NewClient(doer Doer, baseURL, appID, appKey string, opts ...Option) (*Client, error) {
	base, err := url.Parse(strings.TrimSuffix(baseURL, "/") + "/")
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("base url %q must be absolute", baseURL)
	}

	c := &Client{
		doer:   doer,
		base:   base,
		appID:  appID,
		appKey: appKey,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Services lists services of the given type, e.g. "TVChannel".
func (c *Client) Services(ctx context.Context, serviceType string) ([]Service, error) {
	params := url.Values{}
	params.Set("type", serviceType)
	return get[Service](ctx, c, endpointServices, params)
}

// CurrentPrograms returns the schedule around now for the given services.
// start and end count programs before and after the one on air.
func (c *Client) CurrentPrograms(ctx context.Context, serviceIDs []string, start, end int) ([]ScheduleEntry, error) {
	params := url.Values{}
	params.Set("service", strings.Join(serviceIDs, ","))
	params.Set("start", strconv.Itoa(start))
	params.Set("end", strconv.Itoa(end))
	return get[ScheduleEntry](ctx, c, endpointSchedules, params)
}

type ItemsQuery struct {
	Query    string
	Order    string
	Services []string
	Limit    int
}

// Items searches program items.
func (c *Client) Items(ctx context.Context, q ItemsQuery) ([]Broadcast, error) {
	params := url.Values{}
	params.Set("q", q.Query)
	if q.Order != "" {
		params.Set("order", q.Order)
	}
	if len(q.Services) > 0 {
		params.Set("service", strings.Join(q.Services, ","))
	}
	if q.Limit > 0 {
		params.Set("limit", strconv.Itoa(q.Limit))
	}
	return get[Broadcast](ctx, c, endpointItems, params)
}

// Playouts lists playable renditions of a media item for one protocol, e.g. "HLS".
func (c *Client) Playouts(ctx context.Context, programID, mediaID, protocol string) ([]Playout, error) {
	params := url.Values{}
	params.Set("program_id", programID)
	params.Set("media_id", mediaID)
	params.Set("protocol", protocol)
	return get[Playout](ctx, c, endpointPlayouts, params)
}

func get[T any](ctx context.Context, c *Client, endpoint string, params url.Values) ([]T, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("%s: %w", endpoint, err)
		}
	}

	params.Set("app_id", c.appID)
	params.Set("app_key", c.appKey)

	u := c.base.ResolveReference(&url.URL{Path: endpoint})
	u.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", constant.UserAgent)

	log.With(log.Fields{"endpoint": endpoint}).Debug("upstream request")

	resp, err := c.doer.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, &StatusError{
			Endpoint: endpoint,
			Code:     resp.StatusCode,
			Body:     strings.TrimSpace(string(snippet)),
		}
	}

	var envelope Envelope[T]
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("decode %s: %w", endpoint, err)
	}

	return envelope.Data, nil
}
