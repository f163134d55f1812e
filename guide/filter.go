package guide

import (
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/samber/lo"
)

// FilterChannels returns the channels whose id or title fuzzily matches query,
// closest first. An empty query returns channels unchanged.
func FilterChannels(channels []Channel, query string) []Channel {
	query = strings.TrimSpace(query)
	if query == "" {
		return channels
	}

	best := make(map[int]int)
	for _, target := range []func(Channel) string{
		func(c Channel) string { return c.Title },
		func(c Channel) string { return c.ID },
	} {
		targets := lo.Map(channels, func(c Channel, _ int) string { return target(c) })
		for _, rank := range fuzzy.RankFindNormalizedFold(query, targets) {
			if d, ok := best[rank.OriginalIndex]; !ok || rank.Distance < d {
				best[rank.OriginalIndex] = rank.Distance
			}
		}
	}

	indices := lo.Keys(best)
	sort.Slice(indices, func(i, j int) bool {
		a, b := indices[i], indices[j]
		if best[a] != best[b] {
			return best[a] < best[b]
		}
		return a < b
	})

	return lo.Map(indices, func(i int, _ int) Channel { return channels[i] })
}
