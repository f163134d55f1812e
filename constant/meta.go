// Package constant defines immutable application-level identifiers and configuration defaults.
package constant

const (
	// App is the canonical application identifier used for filesystem paths and CLI branding.
	App = "yleguide"

	// Version is the current application semantic version string.
	Version = "0.3.0"

	// UserAgent is sent with every upstream API request.
	UserAgent = App + "/" + Version

	// WebURL prefixes a content id to form its page on the broadcaster's site.
	WebURL = "https://areena.yle.fi/"
)

// Build metadata, set through -ldflags at release time.
var (
	BuiltAt  string
	BuiltBy  string
	Revision string
)

// Logo is printed above the root command help.
const Logo = `
 _   _ _        ____       _     _
| | | | | ___  / ___|_   _(_) __| | ___
| |_| | |/ _ \| |  _| | | | |/ _` + "`" + ` |/ _ \
 \__, | |  __/| |_| | |_| | | (_| |  __/
 |___/|_|\___| \____|\__,_|_|\__,_|\___|`
