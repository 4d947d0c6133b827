package core

import "testing"

func TestKeyEventString(t *testing.T) {
	tests := []struct {
		ev       KeyEvent
		expected string
	}{
		{RuneKey('q'), "q"},
		{RuneKey(' '), " "},
		{KeyPress(KeyUp), "up"},
		{KeyPress(KeyEnter), "enter"},
		{KeyPress(KeyEsc), "esc"},
		{KeyPress(KeyCtrlC), "ctrl+c"},
	}

	for _, tc := range tests {
		if got := tc.ev.String(); got != tc.expected {
			t.Errorf("String() = %q, expected %q", got, tc.expected)
		}
	}
}

func TestParseKeyRoundTrip(t *testing.T) {
	for _, name := range []string{"up", "down", "left", "right", "enter", "esc", "ctrl+c", "r", "+"} {
		ev, ok := ParseKey(name)
		if !ok {
			t.Errorf("ParseKey(%q) failed", name)
			continue
		}
		if ev.String() != name {
			t.Errorf("ParseKey(%q).String() = %q", name, ev.String())
		}
	}

	if _, ok := ParseKey("hyper+x"); ok {
		t.Error("ParseKey should reject unknown names")
	}
}

func TestKeys(t *testing.T) {
	evs := Keys("left left space q")
	if len(evs) != 4 {
		t.Fatalf("Keys() returned %d events, expected 4", len(evs))
	}
	if evs[2] != RuneKey(' ') {
		t.Errorf("space should parse to ' ', got %+v", evs[2])
	}
	if evs[0] != KeyPress(KeyLeft) {
		t.Errorf("left should parse to KeyLeft, got %+v", evs[0])
	}
}

func TestGameActionString(t *testing.T) {
	if ActionRestart.String() != "Restart" {
		t.Errorf("ActionRestart.String() = %q", ActionRestart.String())
	}
	if GameAction(42).String() != "Unknown" {
		t.Error("out-of-range action should be Unknown")
	}
}
