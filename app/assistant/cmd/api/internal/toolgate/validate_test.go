package toolgate

import (
	"strings"
	"testing"
)

func TestValidateRuleOrder(t *testing.T) {
	tests := []struct {
		name     string
		tool     string
		args     map[string]any
		wantKind ErrorKind
	}{
		{
			name:     "unknown tool",
			tool:     "delete_database",
			args:     map[string]any{},
			wantKind: ErrUnknownAction,
		},
		{
			name:     "missing required argument",
			tool:     "check_weather",
			args:     map[string]any{},
			wantKind: ErrMissingArgument,
		},
		{
			name:     "unexpected argument",
			tool:     "check_weather",
			args:     map[string]any{"city": "London", "country": "UK"},
			wantKind: ErrUnexpectedArgument,
		},
		{
			name:     "no-arg tool given arguments",
			tool:     "pause_playback",
			args:     map[string]any{"device": "kitchen"},
			wantKind: ErrUnexpectedArgument,
		},
		{
			name:     "string where int expected",
			tool:     "get_forecast",
			args:     map[string]any{"city": "London", "days": "five"},
			wantKind: ErrTypeMismatch,
		},
		{
			name:     "int where string expected",
			tool:     "check_weather",
			args:     map[string]any{"city": 42},
			wantKind: ErrTypeMismatch,
		},
		{
			name:     "fractional number for int field",
			tool:     "get_forecast",
			args:     map[string]any{"city": "London", "days": 2.5},
			wantKind: ErrTypeMismatch,
		},
		{
			name:     "embedded url in song",
			tool:     "play_song",
			args:     map[string]any{"song": "spotify://track/123"},
			wantKind: ErrInjectionSuspected,
		},
		{
			name:     "http prefix in query",
			tool:     "search_wiki",
			args:     map[string]any{"query": "http injection attempt"},
			wantKind: ErrInjectionSuspected,
		},
		{
			name:     "url beats allow-pattern",
			tool:     "get_wiki_summary",
			args:     map[string]any{"page_title": "Go (language) see also https://go.dev"},
			wantKind: ErrInjectionSuspected,
		},
		{
			name:     "city pattern violation",
			tool:     "check_weather",
			args:     map[string]any{"city": "New York<script>"},
			wantKind: ErrConstraintViolation,
		},
		{
			name:     "over max length",
			tool:     "play_song",
			args:     map[string]any{"song": strings.Repeat("a", 501)},
			wantKind: ErrConstraintViolation,
		},
		{
			name:     "empty required string",
			tool:     "check_weather",
			args:     map[string]any{"city": ""},
			wantKind: ErrConstraintViolation,
		},
		{
			name:     "days out of range",
			tool:     "get_forecast",
			args:     map[string]any{"city": "London", "days": 15},
			wantKind: ErrConstraintViolation,
		},
		{
			name:     "sentences out of range",
			tool:     "search_wiki",
			args:     map[string]any{"query": "golang", "sentences": 0},
			wantKind: ErrConstraintViolation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv, verr := validate(tt.tool, tt.args)
			if verr == nil {
				t.Fatalf("validate(%s, %v) accepted, want %s", tt.tool, tt.args, tt.wantKind)
			}
			if inv != nil {
				t.Errorf("validate returned both an invocation and an error")
			}
			if verr.Kind != tt.wantKind {
				t.Errorf("kind = %s, want %s (message: %s)", verr.Kind, tt.wantKind, verr.Message)
			}
		})
	}
}

func TestValidateAccepts(t *testing.T) {
	tests := []struct {
		name string
		tool string
		args map[string]any
	}{
		{"simple city", "check_weather", map[string]any{"city": "New York"}},
		{"city with punctuation", "check_weather", map[string]any{"city": "Coeur d'Alene"}},
		{"no-arg tool", "next_track", map[string]any{}},
		{"no-arg tool nil args", "get_current_track", nil},
		{"forecast with days", "get_forecast", map[string]any{"city": "London", "days": 7}},
		{"json float for int", "get_forecast", map[string]any{"city": "London", "days": float64(3)}},
		{"wiki with sentences", "search_wiki", map[string]any{"query": "Alan Turing", "sentences": 5}},
		{"song name", "play_song", map[string]any{"song": "Paranoid Android - Radiohead"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv, verr := validate(tt.tool, tt.args)
			if verr != nil {
				t.Fatalf("validate(%s, %v) rejected: %v", tt.tool, tt.args, verr)
			}
			if string(inv.Name()) != tt.tool {
				t.Errorf("Name() = %s, want %s", inv.Name(), tt.tool)
			}
		})
	}
}

func TestValidateAppliesDefaults(t *testing.T) {
	inv, verr := validate("get_forecast", map[string]any{"city": "London"})
	if verr != nil {
		t.Fatalf("validate rejected: %v", verr)
	}
	if got := inv.Args().Int("days"); got != 5 {
		t.Errorf("default days = %d, want 5", got)
	}

	inv, verr = validate("search_wiki", map[string]any{"query": "golang"})
	if verr != nil {
		t.Fatalf("validate rejected: %v", verr)
	}
	if got := inv.Args().Int("sentences"); got != 3 {
		t.Errorf("default sentences = %d, want 3", got)
	}
}

func TestValidateNeverCoerces(t *testing.T) {
	// an out-of-range value must be rejected, not clamped to the default
	_, verr := validate("get_forecast", map[string]any{"city": "London", "days": 99})
	if verr == nil || verr.Kind != ErrConstraintViolation {
		t.Fatalf("expected ConstraintViolation, got %v", verr)
	}
}
