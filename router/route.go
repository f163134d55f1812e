package router

import "strings"

type Kind int

const (
	KindUnknown Kind = iota
	KindChannels
	KindPlay
	KindPersonal
)

func (k Kind) String() string {
	switch k {
	case KindChannels:
		return "channels"
	case KindPlay:
		return "play"
	case KindPersonal:
		return "personal"
	default:
		return "unknown"
	}
}

// Route is a parsed route path such as "channels/yle-tv1" or "play/1-100/4-200".
type Route struct {
	Kind      Kind
	ChannelID string
	ContentID string
	MediaID   string
	Path      string
}

// Parse splits path into a Route. A leading "#" or "/" is ignored, so
// browser-style fragments such as "#channels/yle-tv1" parse too.
func Parse(path string) Route {
	path = strings.TrimLeft(strings.TrimSpace(path), "#/")
	segments := strings.Split(path, "/")

	route := Route{Path: path}
	segment := func(i int) string {
		if i < len(segments) {
			return segments[i]
		}
		return ""
	}

	switch segments[0] {
	case "channels":
		route.Kind = KindChannels
		route.ChannelID = segment(1)
	case "play":
		route.Kind = KindPlay
		route.ContentID = segment(1)
		route.MediaID = segment(2)
	case "personal":
		route.Kind = KindPersonal
	}

	return route
}

func (r Route) String() string {
	return r.Path
}

func ChannelPath(channelID string) string {
	return "channels/" + channelID
}

const PersonalPath = "personal"
