// Package config provides centralized management for application settings, defaults, and the Viper-based configuration engine.
package config

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"text/template"

	"github.com/samber/lo"
	"github.com/spf13/viper"
	"github.com/yleguide/yleguide/color"
	"github.com/yleguide/yleguide/constant"
	"github.com/yleguide/yleguide/key"
	"github.com/yleguide/yleguide/style"
)

// Field represents a configuration field definition.
type Field struct {
	Key         string
	Value       any
	Description string
}

// Pretty returns a colored string representation of the field for display.
func (f *Field) Pretty() string {
	var b strings.Builder
	lo.Must0(prettyTemplate.Execute(&b, f))
	return b.String()
}

// Env returns the environment variable name for this field.
func (f *Field) Env() string {
	env := strings.ToUpper(EnvKeyReplacer.Replace(f.Key))
	prefix := strings.ToUpper(constant.App + "_")
	if strings.HasPrefix(env, prefix) {
		return env
	}
	return prefix + env
}

// Secret reports whether the field holds a credential that should not be echoed back.
func (f *Field) Secret() bool {
	return lo.Contains(secretKeys, f.Key)
}

// MarshalJSON customizes JSON output to include current and default values.
func (f *Field) MarshalJSON() ([]byte, error) {
	value := viper.Get(f.Key)
	if f.Secret() && viper.GetString(f.Key) != "" {
		value = redacted
	}

	return json.Marshal(struct {
		Key         string `json:"key"`
		Value       any    `json:"value"`
		Default     any    `json:"default"`
		Description string `json:"description"`
		Type        string `json:"type"`
	}{
		Key:         f.Key,
		Value:       value,
		Default:     f.Value,
		Description: f.Description,
		Type:        f.typeName(),
	})
}

func (f *Field) typeName() string {
	switch f.Value.(type) {
	case string:
		return "string"
	case int:
		return "int"
	case bool:
		return "bool"
	case []string:
		return "[]string"
	default:
		return "unknown"
	}
}

const redacted = "********"

var secretKeys = []string{key.APIAppKey, key.APISecret}

// Default holds the map of all configuration fields.
var Default = make(map[string]Field)

// EnvExposed holds keys that are bound to environment variables.
var EnvExposed []string

func init() {
	register := func(k string, v any, desc string) {
		if _, exists := Default[k]; exists {
			panic("Duplicate config key: " + k)
		}
		Default[k] = Field{Key: k, Value: v, Description: desc}
		EnvExposed = append(EnvExposed, k)
	}

	register(key.APIAppID, "", "Application id issued by the Yle developer portal")
	register(key.APIAppKey, "", "Application key issued by the Yle developer portal.\nFalls back to the system keyring (see \"yleguide auth set\")")
	register(key.APISecret, "", "Shared secret used to decrypt playout URLs.\nFalls back to the system keyring")
	register(key.APIBaseURL, "https://external.api.yle.fi/v1", "Base URL of the upstream API")
	register(key.APITimeout, "30s", "Deadline for a single route transition, e.g. 10s or 1m")
	register(key.APIRateLimit, 5, "Maximum upstream requests per second")
	register(key.APIWindowStart, -1, "Schedule lookback relative to now, in upstream units")
	register(key.APIWindowEnd, 10, "Schedule lookahead relative to now, in upstream units")
	register(key.APIServiceType, "TVChannel", "Type of upstream services listed as channels")
	register(key.APILocales, []string{"fi", "sv"}, "Locale preference for titles and descriptions, most preferred first")
	register(key.PersonalQuery, "Eränkävijät", "Search term used to build the personal guide")
	register(key.PushVapidPublicKey, "", "VAPID application server public key (URL-safe base64)")
	register(key.NetworkFingerprint, false, "Use a browser-like TLS fingerprint for upstream requests")
	register(key.Player, "mpv", "Media player to use (mpv, iina, or a command on PATH)")
	register(key.PlayerMaxBandwidth, 0, "Highest HLS variant bandwidth in bits/s to play.\n0 plays the master playlist")
	register(key.TUIItemSpacing, 1, "Spacing between items in the TUI")
	register(key.TUIShowDescriptions, true, "Show program descriptions under guide items")
	register(key.TUIRoutePromptString, "# ", "Prompt shown when typing a route")
	register(key.IconsVariant, "plain", "Icons variant.\nAvailable options are: emoji, plain, nerd (nerd-font required)")
	register(key.LogsWrite, false, "Write logs")
	register(key.LogsLevel, "info", "Available options are: (from less to most verbose)\npanic, fatal, error, warn, info, debug, trace")
	register(key.LogsJson, false, "Use json format for logs")
	register(key.CliColored, true, "Enable colored CLI output")
}

var prettyTemplate = lo.Must(template.New("pretty").Funcs(template.FuncMap{
	"faint":    style.Faint,
	"bold":     style.Bold,
	"purple":   style.Fg(color.Purple),
	"blue":     style.Fg(color.Blue),
	"cyan":     style.Fg(color.Cyan),
	"typename": func(v any) string { return reflect.TypeOf(v).String() },
	"value": func(f *Field) any {
		if f.Secret() && viper.GetString(f.Key) != "" {
			return redacted
		}
		return viper.Get(f.Key)
	},
	"hl": func(v any) string {
		switch value := v.(type) {
		case bool:
			b := strconv.FormatBool(value)
			if value {
				return style.Fg(color.Green)(b)
			}
			return style.Fg(color.Red)(b)
		case string:
			return style.Fg(color.Yellow)(value)
		default:
			return fmt.Sprint(value)
		}
	},
}).Parse(`{{ faint .Description }}
{{ blue "Key:" }}     {{ purple .Key }}
{{ blue "Env:" }}     {{ .Env }}
{{ blue "Value:" }}   {{ hl (value .) }}
{{ blue "Default:" }} {{ hl (.Value) }}
{{ blue "Type:" }}    {{ typename .Value }}`))
