// Package icon resolves UI symbols for the configured icon variant.
package icon

import (
	"github.com/spf13/viper"
	"github.com/yleguide/yleguide/key"
)

const (
	emoji = "emoji"
	nerd  = "nerd"
	plain = "plain"
)

// AvailableVariants lists the accepted values of icons.variant.
func AvailableVariants() []string {
	return []string{emoji, nerd, plain}
}

type Icon int

const (
	Success Icon = iota
	Fail
	Progress
	Channel
	Program
	Play
	Personal
	Lock
	Arrow
)

type iconDef struct {
	emoji string
	nerd  string
	plain string
}

var icons = map[Icon]*iconDef{
	Success:  {emoji: "✅", nerd: "", plain: "+"},
	Fail:     {emoji: "❌", nerd: "", plain: "x"},
	Progress: {emoji: "⏳", nerd: "", plain: "~"},
	Channel:  {emoji: "📺", nerd: "", plain: "#"},
	Program:  {emoji: "🎬", nerd: "", plain: "*"},
	Play:     {emoji: "▶️", nerd: "", plain: ">"},
	Personal: {emoji: "⭐", nerd: "", plain: "@"},
	Lock:     {emoji: "🔒", nerd: "", plain: "!"},
	Arrow:    {emoji: "➜", nerd: "", plain: "->"},
}

func (d *iconDef) get() string {
	switch viper.GetString(key.IconsVariant) {
	case emoji:
		return d.emoji
	case nerd:
		return d.nerd
	case plain:
		return d.plain
	default:
		return ""
	}
}

// Get renders i for the configured variant. Unknown variants render nothing.
func Get(i Icon) string {
	def, ok := icons[i]
	if !ok {
		return ""
	}
	return def.get()
}
