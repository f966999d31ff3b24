package toolgate

import "testing"

func TestIsKnown(t *testing.T) {
	for _, name := range AllTools() {
		if !IsKnown(string(name)) {
			t.Errorf("IsKnown(%q) = false, want true", name)
		}
	}

	unknown := []string{
		"delete_database",
		"Play_Song",
		"PLAY_SONG",
		"play_song ",
		"play",
		"",
	}
	for _, name := range unknown {
		if IsKnown(name) {
			t.Errorf("IsKnown(%q) = true, want false", name)
		}
	}
}

func TestEveryToolHasSchema(t *testing.T) {
	for _, name := range AllTools() {
		if _, ok := SchemaFor(name); !ok {
			t.Errorf("tool %q has no schema", name)
		}
	}
}

func TestDefinitionsMatchWhitelist(t *testing.T) {
	defs := Definitions()
	if len(defs) != len(AllTools()) {
		t.Fatalf("Definitions() returned %d tools, want %d", len(defs), len(AllTools()))
	}
	for i, name := range AllTools() {
		if defs[i].Function.Name != string(name) {
			t.Errorf("Definitions()[%d] = %q, want %q", i, defs[i].Function.Name, name)
		}
	}
}
