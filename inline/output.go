package inline

import (
	"time"

	"github.com/yleguide/yleguide/guide"
	"github.com/yleguide/yleguide/stream"
)

// Output is the document written by --json. `yleguide schema` describes it.
type Output struct {
	Route    string          `json:"route" jsonschema:"description=Route that produced this output"`
	Channel  string          `json:"channel,omitempty" jsonschema:"description=Selected channel id"`
	Current  *Program        `json:"current,omitempty" jsonschema:"description=First program of the selected channel"`
	Channels []guide.Channel `json:"channels,omitempty"`
	Programs []Program       `json:"programs,omitempty"`
	Playback *Playback       `json:"playback,omitempty"`
}

type Program struct {
	ID            string    `json:"id"`
	ContentID     string    `json:"contentId"`
	ChannelID     string    `json:"channelId"`
	Channel       string    `json:"channel"`
	Title         string    `json:"title"`
	Description   string    `json:"description,omitempty"`
	ImageID       string    `json:"imageId,omitempty"`
	StartTime     time.Time `json:"startTime"`
	EndTime       time.Time `json:"endTime"`
	OnAir         bool      `json:"onAir"`
	PlaybackRoute *string   `json:"playbackRoute,omitempty" jsonschema:"description=Route that plays this program"`
}

type Playback struct {
	URL       string           `json:"url"`
	Selected  string           `json:"selected" jsonschema:"description=URL handed to the player after the bandwidth cap"`
	ContentID string           `json:"contentId"`
	MediaID   string           `json:"mediaId"`
	Program   *Program         `json:"program,omitempty"`
	Variants  []stream.Variant `json:"variants,omitempty"`
}

func newProgram(p guide.Program, now time.Time) Program {
	return Program{
		ID:            p.ID,
		ContentID:     p.ContentID,
		ChannelID:     p.ChannelID,
		Channel:       p.Channel,
		Title:         p.Title,
		Description:   p.Description,
		ImageID:       p.ImageID,
		StartTime:     p.StartTime,
		EndTime:       p.EndTime,
		OnAir:         p.OnAir(now),
		PlaybackRoute: p.PlaybackRoute.ToPointer(),
	}
}
