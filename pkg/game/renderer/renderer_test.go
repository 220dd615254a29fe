package renderer

import (
	"math"
	"strings"
	"testing"

	"mazeroll/pkg/engine/input"
	"mazeroll/pkg/game/config"
	"mazeroll/pkg/game/progress"
	"mazeroll/pkg/game/state"
)

func TestSegments_SplitsMarkup(t *testing.T) {
	got := Segments("Press ACTION{next} on LEVEL{3} now")
	want := []Segment{
		{"Press ", StyleNormal},
		{"n", StyleActionShort},
		{"ext", StyleAction},
		{" on ", StyleNormal},
		{"3", StyleLevel},
		{" now", StyleNormal},
	}
	if len(got) != len(want) {
		t.Fatalf("Segments() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("segment %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestSegments_UnknownFunctionKeptVerbatim(t *testing.T) {
	got := Segments("a BOGUS{x} b")
	if len(got) != 1 || got[0].Text != "a BOGUS{x} b" || got[0].Style != StyleNormal {
		t.Errorf("Segments() = %v, want one normal segment", got)
	}
}

func TestStripMarkup(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"plain", "plain"},
		{"WIN{Win!} done", "WIN{Win!} done"}, // '!' is outside the operand alphabet
		{"GOAL{goal} reached", "goal reached"},
		{"ACTION{C}: Toggle", "C: Toggle"},
		{"GT{Quit}", "Quit"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := StripMarkup(tt.in); got != tt.want {
			t.Errorf("StripMarkup(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestApplyMarkup_FormatsAndKeepsStyles(t *testing.T) {
	got := ApplyMarkup("Level LEVEL{%d} GT{ready}", 4)
	if got != "Level LEVEL{4} ready" {
		t.Errorf("ApplyMarkup() = %q", got)
	}
}

func TestFormatText_WithoutRendererStrips(t *testing.T) {
	prev := Current
	Current = nil
	defer func() { Current = prev }()

	if got := FormatText("Press ACTION{%s}", "r"); got != "Press r" {
		t.Errorf("FormatText() = %q, want %q", got, "Press r")
	}
	if got := StyleText("x", StyleWall); got != "x" {
		t.Errorf("StyleText() = %q, want x", got)
	}
}

func newGame(t *testing.T) *state.Game {
	t.Helper()
	return state.NewGame(config.Default(), progress.NewMemoryStore(0), 1)
}

func TestHUDLines(t *testing.T) {
	g := newGame(t)
	if got := LevelText(g); got != "Level 1 | Best 1" {
		t.Errorf("LevelText() = %q", got)
	}
	if got := ModeText(g); got != "Mode: Top-Down" {
		t.Errorf("ModeText() = %q", got)
	}
	g.Camera.Toggle(0)
	if got := ModeText(g); got != "Mode: First Person" {
		t.Errorf("ModeText() = %q", got)
	}

	if got := StripMarkup(StatusText(g)); got != "Reach the goal! (Press C to toggle camera)" {
		t.Errorf("StatusText() = %q", got)
	}
	g.HasWon = true
	if got := StatusText(g); !strings.HasPrefix(got, "WIN{Win}!") {
		t.Errorf("StatusText() after win = %q", got)
	}
}

func TestHelpLines_OnePerAction(t *testing.T) {
	lines := HelpLines(input.DefaultBindings())
	if len(lines) != int(input.ActionQuit) {
		t.Fatalf("len(HelpLines) = %d, want %d", len(lines), int(input.ActionQuit))
	}
	if got := StripMarkup(lines[0]); got != "Up W: Move Forward" {
		t.Errorf("first help line = %q", got)
	}
	if got := StripMarkup(lines[len(lines)-1]); got != "Ctrl C: Quit" {
		t.Errorf("last help line = %q", got)
	}
}

func TestGlowIntensity(t *testing.T) {
	if GlowIntensity(0) != 1.2 || math.Abs(GlowIntensity(1)-2.2) > 1e-12 {
		t.Errorf("GlowIntensity = %v..%v, want 1.2..2.2", GlowIntensity(0), GlowIntensity(1))
	}
}
