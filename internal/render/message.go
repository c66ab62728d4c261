package render

// Format is the wire shape of a rendered body.
type Format string

const (
	FormatPlain    Format = "plain"
	FormatMarkdown Format = "markdown"
	FormatHTML     Format = "html"
)

// Message is channel-ready content. A fresh value is produced per
// render call and never cached across events.
type Message struct {
	Subject string
	Body    string
	Format  Format
}

// Options carries per-channel rendering preferences from the config.
type Options struct {
	IncludeTimestamp     bool
	IncludeSeverityEmoji bool

	// DashboardURL backs the quick links sections; defaults to the
	// local dashboard when empty.
	DashboardURL string

	// Origin identifies the sending channel and is echoed only in
	// test messages.
	Origin Origin
}

// Origin describes the configured channel identity for test messages.
type Origin struct {
	Server string
	User   string
	Device string
}
