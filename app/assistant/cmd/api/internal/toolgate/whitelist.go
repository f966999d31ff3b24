package toolgate

// ToolName identifies one invocable capability. The set of values below is
// closed: adding a tool means adding a const, a schema and a binding, all of
// which are cross-checked when the gate is constructed.
type ToolName string

const (
	// Spotify
	ToolPlaySong        ToolName = "play_song"
	ToolPausePlayback   ToolName = "pause_playback"
	ToolResumePlayback  ToolName = "resume_playback"
	ToolNextTrack       ToolName = "next_track"
	ToolPreviousTrack   ToolName = "previous_track"
	ToolGetCurrentTrack ToolName = "get_current_track"

	// Weather
	ToolCheckWeather ToolName = "check_weather"
	ToolGetForecast  ToolName = "get_forecast"

	// Wikipedia
	ToolSearchWiki     ToolName = "search_wiki"
	ToolGetWikiSummary ToolName = "get_wiki_summary"
)

var whitelist = map[ToolName]struct{}{
	ToolPlaySong:        {},
	ToolPausePlayback:   {},
	ToolResumePlayback:  {},
	ToolNextTrack:       {},
	ToolPreviousTrack:   {},
	ToolGetCurrentTrack: {},
	ToolCheckWeather:    {},
	ToolGetForecast:     {},
	ToolSearchWiki:      {},
	ToolGetWikiSummary:  {},
}

// IsKnown reports whether a raw, model-supplied name is in the whitelist.
// Case-sensitive exact match, no normalization.
func IsKnown(raw string) bool {
	_, ok := whitelist[ToolName(raw)]
	return ok
}

// AllTools returns the whitelist in a stable order.
func AllTools() []ToolName {
	return []ToolName{
		ToolPlaySong,
		ToolPausePlayback,
		ToolResumePlayback,
		ToolNextTrack,
		ToolPreviousTrack,
		ToolGetCurrentTrack,
		ToolCheckWeather,
		ToolGetForecast,
		ToolSearchWiki,
		ToolGetWikiSummary,
	}
}
