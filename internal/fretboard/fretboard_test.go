package fretboard

import (
	"math"
	"testing"
)

func TestOpenStringFixedPoints(t *testing.T) {
	if got := Frequency(440, 0); got != 440 {
		t.Fatalf("frequency at 0 cents must equal the reference, got %v", got)
	}
	if got := NutDistance(580, 0); got != 0 {
		t.Fatalf("distance at 0 cents must be 0, got %v", got)
	}
}

func TestOctave(t *testing.T) {
	if got := Frequency(440, 1200); math.Abs(got-880) > 1e-9 {
		t.Fatalf("one octave must double the frequency, got %v", got)
	}
	if got := NutDistance(580, 1200); math.Abs(got-290) > 1e-9 {
		t.Fatalf("the octave fret must halve the string, got %v", got)
	}
}

func TestRoundTrip(t *testing.T) {
	for _, c := range []float64{-45.28, 0, 154.72, 367.92, 700, 1200, 1354.72} {
		d := NutDistance(580, c)
		if back := CentsFromDistance(580, d); math.Abs(back-c) > 1e-6 {
			t.Fatalf("distance round-trip at %v cents: got %v", c, back)
		}
		f := Frequency(440, c)
		if back := CentsFromFrequency(440, f); math.Abs(back-c) > 1e-6 {
			t.Fatalf("frequency round-trip at %v cents: got %v", c, back)
		}
	}
}

func TestMonotonicity(t *testing.T) {
	prevF, prevD := 0.0, -1.0
	for c := 0.0; c <= 1400; c += 25 {
		f := Frequency(440, c)
		d := NutDistance(580, c)
		if f <= prevF || d <= prevD {
			t.Fatalf("frequency and distance must strictly increase with cents (at %v)", c)
		}
		prevF, prevD = f, d
	}
}

func TestNegativeCentsBehindNut(t *testing.T) {
	if d := NutDistance(580, -45.28); d >= 0 {
		t.Fatalf("negative cents must land behind the nut, got %v", d)
	}
	if f := Frequency(440, -45.28); f >= 440 {
		t.Fatalf("negative cents must fall below the reference, got %v", f)
	}
}

func TestBuildRows(t *testing.T) {
	rows := BuildRows(440, 580, []string{"mi", "fa", "fa#3"}, []float64{200, 300, 367.92})
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}
	if rows[0].Index != 1 || rows[0].Pitch != "mi" {
		t.Fatalf("first row mislabeled: %+v", rows[0])
	}
	if rows[0].Spacing != 0 {
		t.Fatalf("first row spacing must be 0, got %v", rows[0].Spacing)
	}
	if rows[2].Cents != 367.92 {
		t.Fatalf("expected 367.92 cents, got %v", rows[2].Cents)
	}
	// Spacing is consistent with the rounded distance column.
	gap := rows[1].Distance - rows[0].Distance
	if math.Abs(rows[1].Spacing-gap) > 1e-9 {
		t.Fatalf("spacing %v disagrees with distance delta %v", rows[1].Spacing, gap)
	}
	// mi at 200 cents above 440 Hz, rounded to 5 decimals.
	wantF := math.Round(440*math.Pow(2, 200.0/1200)*1e5) / 1e5
	if rows[0].Frequency != wantF {
		t.Fatalf("expected %v Hz, got %v", wantF, rows[0].Frequency)
	}
}
