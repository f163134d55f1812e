package stream

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"sort"

	"github.com/dustin/go-humanize"
	"github.com/grafov/m3u8"
	"github.com/yleguide/yleguide/yle"
)

// Variant is one rendition listed in an HLS master playlist.
type Variant struct {
	URL        string `json:"url"`
	Bandwidth  uint32 `json:"bandwidth"`
	Resolution string `json:"resolution,omitempty"`
	Codecs     string `json:"codecs,omitempty"`
}

func (v Variant) String() string {
	label := humanize.SI(float64(v.Bandwidth), "bit/s")
	if v.Resolution != "" {
		label = v.Resolution + " " + label
	}
	return label
}

// Variants fetches the playlist at masterURL and lists its renditions,
// highest bandwidth first. A media playlist has no variants.
func Variants(ctx context.Context, doer yle.Doer, masterURL string) ([]Variant, error) {
	base, err := url.Parse(masterURL)
	if err != nil {
		return nil, fmt.Errorf("parse playlist url: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, masterURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := doer.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch playlist: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch playlist: %s", resp.Status)
	}

	playlist, listType, err := m3u8.DecodeFrom(resp.Body, false)
	if err != nil {
		return nil, fmt.Errorf("decode playlist: %w", err)
	}
	if listType != m3u8.MASTER {
		return nil, nil
	}

	master := playlist.(*m3u8.MasterPlaylist)
	variants := make([]Variant, 0, len(master.Variants))
	for _, v := range master.Variants {
		if v == nil || v.Iframe {
			continue
		}
		ref, err := url.Parse(v.URI)
		if err != nil {
			continue
		}
		variants = append(variants, Variant{
			URL:        base.ResolveReference(ref).String(),
			Bandwidth:  v.Bandwidth,
			Resolution: v.Resolution,
			Codecs:     v.Codecs,
		})
	}

	sort.SliceStable(variants, func(i, j int) bool {
		return variants[i].Bandwidth > variants[j].Bandwidth
	})

	return variants, nil
}

// Pick returns the URL to hand to a player. With maxBandwidth set it picks the
// best variant not above the cap, or the lowest one when all exceed it.
// Without a cap or without variants it returns the master URL.
func (p *Playback) Pick(maxBandwidth uint32) string {
	if maxBandwidth == 0 || len(p.Variants) == 0 {
		return p.URL
	}

	best := -1
	lowest := 0
	for i, v := range p.Variants {
		if v.Bandwidth < p.Variants[lowest].Bandwidth {
			lowest = i
		}
		if v.Bandwidth <= maxBandwidth && (best < 0 || v.Bandwidth > p.Variants[best].Bandwidth) {
			best = i
		}
	}

	if best < 0 {
		best = lowest
	}
	return p.Variants[best].URL
}
