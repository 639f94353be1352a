// Package fretcalc computes physical fret placements and pitches for a
// string tuned to the comma-based scale of Turkish folk music. The open
// string is the reference at 0 cents; octave wraps happen only after
// backward jumps larger than one semitone, so comma-flat backsteps stay
// in the same octave.
package fretcalc

import (
	"errors"
	"fmt"

	"github.com/bcelen/Fret-calculator/internal/comma"
	"github.com/bcelen/Fret-calculator/internal/fretboard"
	"github.com/bcelen/Fret-calculator/internal/pitch"
	"github.com/bcelen/Fret-calculator/internal/resolver"
)

// Row is one computed fret: index, original token, cents from the open
// string, frequency, nut-to-fret distance and spacing from the previous
// fret. Distances share the unit of the string length.
type Row = fretboard.Row

// DefaultOrder is the corrected lower-string run for a short-neck
// bağlama, flatter to sharper, ending an octave above its start.
const DefaultOrder = "mi b2, mi b, mi,\n" +
	"fa, fa#3, fa#,\n" +
	"sol, sol#3, sol#,\n" +
	"la,\n" +
	"si b2, si b, si,\n" +
	"do, do #3, do #,\n" +
	"re,\n" +
	"mi b2, mi b, mi"

type Preset = comma.Preset

const (
	PresetFolk  = comma.PresetFolk
	PresetAEU   = comma.PresetAEU
	PresetEDO24 = comma.PresetEDO24
)

// ParsePreset resolves a preset by name (folk|aeu|24edo).
func ParsePreset(name string) (Preset, error) { return comma.ParsePreset(name) }

type Option func(*config)

type config struct {
	commaSize float64
	preset    Preset
	hasPreset bool
	edits     map[pitch.Accidental]float64
	tolerance float64
}

func defaultConfig() config {
	return config{tolerance: resolver.DefaultTolerance}
}

// WithPreset overlays a named comma calibration on the accidental table.
func WithPreset(p Preset) Option {
	return func(cfg *config) {
		cfg.preset = p
		cfg.hasPreset = true
	}
}

// WithCommaSize rebuilds the accidental table from a one-comma size in
// cents (the plain sharp stays a tempered semitone). Applied before any
// preset or per-symbol edit.
func WithCommaSize(cents float64) Option {
	return func(cfg *config) {
		cfg.commaSize = cents
	}
}

// WithAccidentalCents pins one accidental symbol to an exact cents value,
// after preset application.
func WithAccidentalCents(symbol string, cents float64) Option {
	return func(cfg *config) {
		if cfg.edits == nil {
			cfg.edits = make(map[pitch.Accidental]float64)
		}
		cfg.edits[pitch.Accidental(symbol)] = cents
	}
}

// WithWrapTolerance overrides the octave-wrap backstep tolerance.
func WithWrapTolerance(cents float64) Option {
	return func(cfg *config) {
		cfg.tolerance = cents
	}
}

// Calculator holds one tuning: reference frequency, string length and a
// fully populated accidental table. It keeps no state between Compute
// calls, so independent calculators (or repeated calls on one) never
// influence each other.
type Calculator struct {
	refHz     float64
	length    float64
	table     comma.Table
	tolerance float64
}

func New(refHz, length float64, opts ...Option) (*Calculator, error) {
	if refHz <= 0 {
		return nil, errors.New("reference frequency must be positive")
	}
	if length <= 0 {
		return nil, errors.New("string length must be positive")
	}
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	table := comma.Default()
	if cfg.commaSize != 0 {
		table = comma.FromComma(cfg.commaSize)
	}
	if cfg.hasPreset {
		table.Apply(cfg.preset)
	}
	for sym, cents := range cfg.edits {
		table[sym] = cents
	}
	return &Calculator{
		refHz:     refHz,
		length:    length,
		table:     table,
		tolerance: cfg.tolerance,
	}, nil
}

// ReferenceHz echoes the open-string frequency.
func (c *Calculator) ReferenceHz() float64 { return c.refHz }

// StringLength echoes the string length, in the caller's unit.
func (c *Calculator) StringLength() float64 { return c.length }

// AccidentalCents returns the configured delta for a symbol.
func (c *Calculator) AccidentalCents(symbol string) (float64, error) {
	return c.table.Lookup(pitch.Accidental(symbol))
}

// Compute resolves a free-text pitch order into the final fret table.
// Tokens split on newlines and commas, in fretboard order. Any token
// that fails to resolve aborts the whole computation: a later wrap
// decision cannot be trusted past an unresolved entry, so there is no
// partial table.
func (c *Calculator) Compute(pitchListText string) ([]Row, error) {
	tokens := pitch.SplitList(pitchListText)
	if len(tokens) == 0 {
		return nil, errors.New("pitch list is empty")
	}
	entries := make([]resolver.Entry, 0, len(tokens))
	for _, tok := range tokens {
		n, acc, err := pitch.ParseToken(tok)
		if err != nil {
			return nil, fmt.Errorf("pitch list: %w", err)
		}
		entries = append(entries, resolver.Entry{Token: tok, Note: n, Acc: acc})
	}
	cents, err := resolver.New(c.table.Clone(), c.tolerance).Resolve(entries)
	if err != nil {
		return nil, fmt.Errorf("pitch list: %w", err)
	}
	return fretboard.BuildRows(c.refHz, c.length, tokens, cents), nil
}
