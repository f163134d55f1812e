package yle

import (
	"strings"
	"time"
)

// LocalizedText maps a locale code such as "fi" or "sv" to text.
type LocalizedText map[string]string

// Prefer returns the first non-empty value among locales, or "".
func (t LocalizedText) Prefer(locales ...string) string {
	for _, locale := range locales {
		if v := strings.TrimSpace(t[locale]); v != "" {
			return v
		}
	}
	return ""
}

// Service is a broadcast outlet, for example a TV channel.
type Service struct {
	ID    string        `json:"id"`
	Type  string        `json:"type"`
	Title LocalizedText `json:"title"`
}

type Image struct {
	ID        string `json:"id"`
	Available bool   `json:"available"`
}

type Series struct {
	ID         string        `json:"id"`
	Title      LocalizedText `json:"title"`
	CoverImage *Image        `json:"coverImage"`
}

// ServiceRef points a publication event at a Service.
type ServiceRef struct {
	ID string `json:"id"`
}

type Media struct {
	ID        string `json:"id"`
	Type      string `json:"type"`
	Available bool   `json:"available"`
	Duration  string `json:"duration"`
}

// PublicationEvent is one airing of a broadcast on a service.
// Times are kept as sent; see ParseTime.
type PublicationEvent struct {
	ID             string     `json:"id"`
	Type           string     `json:"type"`
	TemporalStatus string     `json:"temporalStatus"`
	StartTime      string     `json:"startTime"`
	EndTime        string     `json:"endTime"`
	Service        ServiceRef `json:"service"`
	Media          *Media     `json:"media"`
}

// Broadcast is an upstream program record.
type Broadcast struct {
	ID               string             `json:"id"`
	Type             string             `json:"type"`
	Title            LocalizedText      `json:"title"`
	Description      LocalizedText      `json:"description"`
	PublicationEvent []PublicationEvent `json:"publicationEvent"`
	Image            *Image             `json:"image"`
	PartOfSeries     *Series            `json:"partOfSeries"`
}

// ScheduleEntry is one row of the schedules endpoint.
type ScheduleEntry struct {
	Service ServiceRef `json:"service"`
	Content Broadcast  `json:"content"`
}

type Playout struct {
	URL          string `json:"url"`
	Protocol     string `json:"protocol"`
	ProtocolType string `json:"protocolType"`
	Live         bool   `json:"live"`
}

// Envelope is the response body shared by every endpoint.
type Envelope[T any] struct {
	Data []T `json:"data"`
	Meta Meta `json:"meta"`
}

type Meta struct {
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
	Count  int `json:"count"`
}

var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05-0700",
	"2006-01-02T15:04:05.000-0700",
}

// ParseTime parses an upstream timestamp. The API writes zone offsets without a colon.
func ParseTime(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
