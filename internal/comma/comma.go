// Package comma holds the accidental-to-cents tables. The table is
// configuration, not a constant: a preset, a directly edited symbol, or a
// one-comma size all produce the same shape of table the resolver consumes.
package comma

import (
	"fmt"
	"strings"

	"github.com/bcelen/Fret-calculator/internal/pitch"
)

// DefaultCommaCents is the Holdrian comma used by the folk and AEU
// presets (1200/53 cents, rounded as the tradition quotes it).
const DefaultCommaCents = 22.64

// Table maps an accidental tag to its signed cents delta. The empty tag
// (natural) is always present and worth 0.
type Table map[pitch.Accidental]float64

// Default returns the full working table: the three primary folk commas
// plus the extra tags the parser can extract.
func Default() Table {
	return Table{
		"":   0,
		"b":  -22.64,
		"b1": -22.64, // alias of b
		"b2": -45.28,
		"#3": 67.92,
		"#":  100,
		"#1": 22.64,
		"#2": 45.28,
		"#5": 113.20,
		"b3": -67.92,
		"b4": -90.57,
	}
}

// FromComma builds a table from a single one-comma size in cents. The
// plain sharp stays the tempered 100-cent semitone.
func FromComma(size float64) Table {
	counts := map[pitch.Accidental]float64{
		"b": -1, "b1": -1, "b2": -2, "b3": -3, "b4": -4,
		"#1": 1, "#2": 2, "#3": 3, "#5": 5,
	}
	t := Table{"": 0, "#": 100}
	for tag, n := range counts {
		t[tag] = n * size
	}
	return t
}

// Preset names a calibration of the three primary comma accidentals.
type Preset string

const (
	PresetFolk  Preset = "folk"  // b=-22.64, b2=-45.28, #3=+67.92
	PresetAEU   Preset = "aeu"   // ~53-comma, #3 = 3 commas exactly
	PresetEDO24 Preset = "24edo" // quarter-tone grid, 50c per step
)

var presetValues = map[Preset]map[pitch.Accidental]float64{
	PresetFolk:  {"b": -22.64, "b2": -45.28, "#3": 67.92},
	PresetAEU:   {"b": -DefaultCommaCents, "b2": -2 * DefaultCommaCents, "#3": 3 * DefaultCommaCents},
	PresetEDO24: {"b": -50, "b2": -100, "#3": 150},
}

// ParsePreset resolves a preset name, case-insensitively.
func ParsePreset(name string) (Preset, error) {
	switch Preset(strings.ToLower(strings.TrimSpace(name))) {
	case PresetFolk:
		return PresetFolk, nil
	case PresetAEU:
		return PresetAEU, nil
	case PresetEDO24:
		return PresetEDO24, nil
	default:
		return "", fmt.Errorf("invalid preset %q (expected folk|aeu|24edo)", name)
	}
}

// Apply overlays the preset's primary symbols on the table, keeping the
// b1 alias in step with b.
func (t Table) Apply(p Preset) {
	for tag, cents := range presetValues[p] {
		t[tag] = cents
	}
	t["b1"] = t["b"]
}

// Clone copies the table so one computation cannot see another's edits.
func (t Table) Clone() Table {
	out := make(Table, len(t))
	for tag, cents := range t {
		out[tag] = cents
	}
	return out
}

// Lookup returns the delta for a tag, or an error if the active table
// does not cover it.
func (t Table) Lookup(acc pitch.Accidental) (float64, error) {
	cents, ok := t[acc]
	if !ok {
		return 0, fmt.Errorf("unknown accidental %q", string(acc))
	}
	return cents, nil
}
