package main

import (
	"math"
	"testing"

	fretcalc "github.com/bcelen/Fret-calculator"
)

func tableFor(t *testing.T, preset string, presetSet bool, commaSize float64) *fretcalc.Calculator {
	t.Helper()
	opts, err := buildOptions(preset, presetSet, commaSize, "", 100)
	if err != nil {
		t.Fatalf("buildOptions: %v", err)
	}
	calc, err := fretcalc.New(440, 580, opts...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return calc
}

func checkAccidental(t *testing.T, calc *fretcalc.Calculator, symbol string, want float64) {
	t.Helper()
	got, err := calc.AccidentalCents(symbol)
	if err != nil {
		t.Fatalf("AccidentalCents(%q): %v", symbol, err)
	}
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("AccidentalCents(%q) = %v, want %v", symbol, got, want)
	}
}

func TestBuildOptionsCommaSizeWithoutPreset(t *testing.T) {
	// -comma 50 alone derives every symbol from the given size; the
	// default -preset value must not overwrite the primaries.
	calc := tableFor(t, "folk", false, 50)
	checkAccidental(t, calc, "b", -50)
	checkAccidental(t, calc, "b2", -100)
	checkAccidental(t, calc, "#1", 50)
	checkAccidental(t, calc, "#3", 150)
}

func TestBuildOptionsExplicitPresetOverComma(t *testing.T) {
	// An explicit -preset still wins over -comma for the symbols it
	// defines, while the rest keep the derived values.
	calc := tableFor(t, "folk", true, 50)
	checkAccidental(t, calc, "b", -22.64)
	checkAccidental(t, calc, "#3", 67.92)
	checkAccidental(t, calc, "#1", 50)
}

func TestBuildOptionsDefaultPreset(t *testing.T) {
	calc := tableFor(t, "folk", false, 0)
	checkAccidental(t, calc, "b", -22.64)
	checkAccidental(t, calc, "b2", -45.28)
}

func TestBuildOptionsBadPreset(t *testing.T) {
	if _, err := buildOptions("nope", true, 0, "", 100); err == nil {
		t.Fatal("expected an error for an unknown preset")
	}
}
