package toolgate

import "regexp"

// FieldKind is the primitive type a parameter must have.
type FieldKind int

const (
	KindString FieldKind = iota
	KindInt
)

// Field describes one parameter of a tool. Constraints are checked in
// declaration order after type checks; the `://` reject-rule is global and
// applies to every string field regardless of its other constraints.
type Field struct {
	Name     string
	Kind     FieldKind
	Required bool
	Desc     string

	// string constraints
	MinLen           int
	MaxLen           int
	Pattern          *regexp.Regexp
	PatternDesc      string
	RejectHTTPPrefix bool

	// int constraints
	Min     int
	Max     int
	Default int // applied when the field is optional and absent
}

// Schema is the full argument contract for one tool. A nil/empty Fields
// slice means the tool takes no arguments at all.
type Schema struct {
	Desc   string
	Fields []Field
}

// cityPattern matches plain city names: letters, spaces, hyphens,
// apostrophes and dots. Everything else is considered an injection attempt.
var cityPattern = regexp.MustCompile(`^[a-zA-Z\s\-'\.]+$`)

var schemas = map[ToolName]Schema{
	ToolPlaySong: {
		Desc: "Play a song on Spotify",
		Fields: []Field{
			{
				Name:             "song",
				Kind:             KindString,
				Required:         true,
				Desc:             "Song name and optionally artist",
				MinLen:           1,
				MaxLen:           500,
				RejectHTTPPrefix: true,
			},
		},
	},
	ToolPausePlayback:   {Desc: "Pause Spotify playback"},
	ToolResumePlayback:  {Desc: "Resume Spotify playback"},
	ToolNextTrack:       {Desc: "Skip to the next track"},
	ToolPreviousTrack:   {Desc: "Go back to the previous track"},
	ToolGetCurrentTrack: {Desc: "Get the currently playing track"},
	ToolCheckWeather: {
		Desc: "Get current weather for a city",
		Fields: []Field{
			{
				Name:        "city",
				Kind:        KindString,
				Required:    true,
				Desc:        "City name, e.g. New York",
				MinLen:      1,
				MaxLen:      100,
				Pattern:     cityPattern,
				PatternDesc: "letters, spaces, hyphens, apostrophes and dots only",
			},
		},
	},
	ToolGetForecast: {
		Desc: "Get weather forecast for a city",
		Fields: []Field{
			{
				Name:        "city",
				Kind:        KindString,
				Required:    true,
				Desc:        "City name, e.g. New York",
				MinLen:      1,
				MaxLen:      100,
				Pattern:     cityPattern,
				PatternDesc: "letters, spaces, hyphens, apostrophes and dots only",
			},
			{
				Name:    "days",
				Kind:    KindInt,
				Desc:    "Number of days, 1 to 14",
				Min:     1,
				Max:     14,
				Default: 5,
			},
		},
	},
	ToolSearchWiki: {
		Desc: "Search Wikipedia for information",
		Fields: []Field{
			{
				Name:             "query",
				Kind:             KindString,
				Required:         true,
				Desc:             "Search query",
				MinLen:           1,
				MaxLen:           500,
				RejectHTTPPrefix: true,
			},
			{
				Name:    "sentences",
				Kind:    KindInt,
				Desc:    "Number of sentences to return, 1 to 10",
				Min:     1,
				Max:     10,
				Default: 3,
			},
		},
	},
	ToolGetWikiSummary: {
		Desc: "Get a summary of a Wikipedia page",
		Fields: []Field{
			{
				Name:             "page_title",
				Kind:             KindString,
				Required:         true,
				Desc:             "Wikipedia page title",
				MinLen:           1,
				MaxLen:           500,
				RejectHTTPPrefix: true,
			},
		},
	},
}

// SchemaFor returns the argument schema bound to a whitelisted tool.
func SchemaFor(name ToolName) (Schema, bool) {
	s, ok := schemas[name]
	return s, ok
}
