package router

import (
	"github.com/samber/mo"
	"github.com/yleguide/yleguide/guide"
	"github.com/yleguide/yleguide/stream"
)

// ToolbarView shows the channel list and the program considered current.
type ToolbarView interface {
	ShowToolbar(channelID string, current mo.Option[guide.Program], channels []guide.Channel)
}

// GuideView shows the programs of one channel.
type GuideView interface {
	ShowGuide(channelID string, programs []guide.Program)
}

type PlayerView interface {
	ShowPlayer(playback *stream.Playback)
}

type PersonalView interface {
	ShowPersonal(programs []guide.Program)
}

// Views bundles the presentation targets of the router.
// Views never retain or mutate the slices they receive across calls.
type Views struct {
	Toolbar  ToolbarView
	Guide    GuideView
	Player   PlayerView
	Personal PersonalView
}
