// Package fretboard turns absolute cents into physical fret placements.
package fretboard

import "math"

// Ratio converts cents to a frequency ratio.
func Ratio(cents float64) float64 {
	return math.Pow(2, cents/1200)
}

// Frequency returns the pitch, in the reference's unit, at the given cents
// above the open string.
func Frequency(refHz, cents float64) float64 {
	return refHz * Ratio(cents)
}

// NutDistance returns how far from the nut a fret sits for the given cents.
// The vibrating length obeys L = L0 / 2^(c/1200), so the fret is at
// L0 - L = L0 * (1 - 2^(-c/1200)). Negative cents land behind the nut;
// callers decide whether to flag that as off-fretboard.
func NutDistance(length, cents float64) float64 {
	return length * (1 - math.Pow(2, -cents/1200))
}

// CentsFromFrequency inverts Frequency for a given reference.
func CentsFromFrequency(refHz, freq float64) float64 {
	return 1200 * math.Log2(freq/refHz)
}

// CentsFromDistance inverts NutDistance for a given string length.
func CentsFromDistance(length, dist float64) float64 {
	return -1200 * math.Log2(1-dist/length)
}

// Row is one computed fret, in input order. Values carry the rounding
// applied by BuildRows; Spacing is the distance from the previous row's
// fret (0 for the first).
type Row struct {
	Index     int
	Pitch     string
	Cents     float64
	Frequency float64
	Distance  float64
	Spacing   float64
}

// Decimal places per column, matching the exported table.
const (
	centsDecimals = 3
	freqDecimals  = 5
	distDecimals  = 3
)

func round(v float64, decimals int) float64 {
	scale := math.Pow(10, float64(decimals))
	return math.Round(v*scale) / scale
}

// BuildRows derives the final table from resolved cents. tokens and cents
// run in parallel; spacing is computed on the rounded distances so the
// printed columns stay self-consistent.
func BuildRows(refHz, length float64, tokens []string, cents []float64) []Row {
	rows := make([]Row, 0, len(cents))
	prevDist := 0.0
	for i, c := range cents {
		dist := round(NutDistance(length, c), distDecimals)
		spacing := 0.0
		if i > 0 {
			spacing = round(dist-prevDist, distDecimals)
		}
		rows = append(rows, Row{
			Index:     i + 1,
			Pitch:     tokens[i],
			Cents:     round(c, centsDecimals),
			Frequency: round(Frequency(refHz, c), freqDecimals),
			Distance:  dist,
			Spacing:   spacing,
		})
		prevDist = dist
	}
	return rows
}
