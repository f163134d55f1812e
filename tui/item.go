package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/yleguide/yleguide/guide"
	"github.com/yleguide/yleguide/icon"
	"github.com/yleguide/yleguide/style"
	"github.com/yleguide/yleguide/util"
)

// listItem adapts channels and programs to list.Item.
type listItem struct {
	internal any
	selected bool
	now      func() time.Time
}

func (t *listItem) clock() time.Time {
	if t.now == nil {
		return time.Now()
	}
	return t.now()
}

func (t *listItem) Title() string {
	switch e := t.internal.(type) {
	case guide.Channel:
		if t.selected {
			return e.Title + " " + icon.Get(icon.Arrow)
		}
		return e.Title
	case guide.Program:
		title := fmt.Sprintf("%s %s", style.Faint(util.Clock(e.StartTime)), e.Title)
		if e.OnAir(t.clock()) {
			title += " " + style.OnAir("ON AIR")
		}
		if e.PlaybackRoute.IsAbsent() {
			title += " " + icon.Get(icon.Lock)
		}
		return title
	default:
		return t.FilterValue()
	}
}

func (t *listItem) Description() string {
	switch e := t.internal.(type) {
	case guide.Channel:
		return e.ID
	case guide.Program:
		var parts []string
		if e.Channel != "" {
			parts = append(parts, e.Channel)
		}
		if !e.StartTime.IsZero() {
			parts = append(parts, humanize.RelTime(e.StartTime, t.clock(), "ago", "from now"))
		}
		if e.Description != "" {
			parts = append(parts, util.Ellipsize(e.Description, 80))
		}
		return strings.Join(parts, " • ")
	default:
		return ""
	}
}

func (t *listItem) FilterValue() string {
	switch e := t.internal.(type) {
	case guide.Channel:
		return e.Title
	case guide.Program:
		return e.Title
	case string:
		return e
	default:
		return ""
	}
}
