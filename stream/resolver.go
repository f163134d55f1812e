// Package stream resolves program ids into playable HLS URLs.
package stream

import (
	"context"
	"errors"
	"fmt"

	"github.com/samber/mo"
	"github.com/yleguide/yleguide/guide"
	"github.com/yleguide/yleguide/log"
	"github.com/yleguide/yleguide/yle"
)

const protocolHLS = "HLS"

// ErrUnavailable means upstream returned no playout for the requested media.
var ErrUnavailable = errors.New("stream unavailable")

// PlayoutSource is the playouts endpoint. *yle.Client implements it.
type PlayoutSource interface {
	Playouts(ctx context.Context, programID, mediaID, protocol string) ([]yle.Playout, error)
}

type Playback struct {
	URL       string
	ContentID string
	MediaID   string
	Program   mo.Option[guide.Program]
	Variants  []Variant
}

type Resolver struct {
	source   PlayoutSource
	secret   string
	playlist yle.Doer
}

type Option func(*Resolver)

// WithVariants makes Resolve also list the HLS renditions, fetched with doer.
func WithVariants(doer yle.Doer) Option {
	return func(r *Resolver) {
		r.playlist = doer
	}
}

func NewResolver(source PlayoutSource, secret string, opts ...Option) *Resolver {
	r := &Resolver{source: source, secret: secret}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve fetches the first HLS playout of mediaID and decrypts its URL.
func (r *Resolver) Resolve(ctx context.Context, contentID, mediaID string) (*Playback, error) {
	playouts, err := r.source.Playouts(ctx, contentID, mediaID, protocolHLS)
	if err != nil {
		return nil, fmt.Errorf("fetch playouts: %w", err)
	}

	if len(playouts) == 0 {
		log.Warnf("no playouts for %s/%s", contentID, mediaID)
		return nil, fmt.Errorf("%s/%s: %w", contentID, mediaID, ErrUnavailable)
	}

	url, err := Decrypt(playouts[0].URL, r.secret)
	if err != nil {
		return nil, err
	}

	playback := &Playback{
		URL:       url,
		ContentID: contentID,
		MediaID:   mediaID,
	}

	if r.playlist != nil {
		variants, err := Variants(ctx, r.playlist, url)
		if err != nil {
			// the master URL still plays
			log.Warnf("list variants: %v", err)
		}
		playback.Variants = variants
	}

	return playback, nil
}
