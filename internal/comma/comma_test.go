package comma

import (
	"math"
	"testing"

	"github.com/bcelen/Fret-calculator/internal/pitch"
)

func TestDefaultCoversParserTags(t *testing.T) {
	tags := []string{"", "b", "b1", "b2", "b3", "b4", "#", "#1", "#2", "#3", "#5"}
	tbl := Default()
	for _, tag := range tags {
		if _, err := tbl.Lookup(pitch.Accidental(tag)); err != nil {
			t.Fatalf("default table missing %q: %v", tag, err)
		}
	}
	if tbl[""] != 0 {
		t.Fatalf("natural must be 0 cents, got %v", tbl[""])
	}
}

func TestApplyPresetKeepsAlias(t *testing.T) {
	tbl := Default()
	tbl.Apply(PresetEDO24)
	if tbl["b"] != -50 || tbl["b2"] != -100 || tbl["#3"] != 150 {
		t.Fatalf("24edo preset not applied: %v", tbl)
	}
	if tbl["b1"] != tbl["b"] {
		t.Fatalf("b1 alias out of step: b1=%v b=%v", tbl["b1"], tbl["b"])
	}
}

func TestFromComma(t *testing.T) {
	tbl := FromComma(22.64)
	if math.Abs(tbl["b2"]+45.28) > 1e-9 {
		t.Fatalf("expected b2 = -45.28, got %v", tbl["b2"])
	}
	if math.Abs(tbl["#3"]-67.92) > 1e-9 {
		t.Fatalf("expected #3 = +67.92, got %v", tbl["#3"])
	}
	if tbl["#"] != 100 {
		t.Fatalf("plain sharp must stay the tempered semitone, got %v", tbl["#"])
	}
}

func TestCloneIsIndependent(t *testing.T) {
	a := Default()
	b := a.Clone()
	b["b"] = -99
	if a["b"] == -99 {
		t.Fatalf("clone shares storage with original")
	}
}

func TestParsePreset(t *testing.T) {
	if _, err := ParsePreset(" Folk "); err != nil {
		t.Fatalf("expected folk to parse: %v", err)
	}
	if _, err := ParsePreset("nope"); err == nil {
		t.Fatalf("expected error for unknown preset")
	}
}

func TestLookupUnknown(t *testing.T) {
	if _, err := Default().Lookup("b9"); err == nil {
		t.Fatalf("expected error for unknown accidental")
	}
}
