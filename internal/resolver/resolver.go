// Package resolver walks an ordered pitch sequence and assigns each entry
// its absolute cents from the open string, deciding where the sequence
// genuinely crosses an octave.
package resolver

import (
	"fmt"

	"github.com/bcelen/Fret-calculator/internal/comma"
	"github.com/bcelen/Fret-calculator/internal/pitch"
)

// DefaultTolerance is the largest backward step, in cents, that does not
// count as an octave wrap. It must sit below the smallest real ascending
// gap between sequential frets and above the largest comma-sized
// backstep, so one semitone.
const DefaultTolerance = 100.0

// Entry is one parsed pitch in fretboard order. Token keeps the original
// text for error reporting.
type Entry struct {
	Token string
	Note  pitch.Note
	Acc   pitch.Accidental
}

// Resolver resolves entries against one accidental table. All running
// state lives in the Resolve call, so a Resolver may be shared; two
// passes never see each other's shift.
type Resolver struct {
	table     comma.Table
	tolerance float64
}

func New(table comma.Table, tolerance float64) *Resolver {
	if tolerance <= 0 {
		tolerance = DefaultTolerance
	}
	return &Resolver{table: table, tolerance: tolerance}
}

// Resolve returns one absolute cents value per entry.
//
// A naive "wrap on any decrease" would bump an octave every time a
// comma-flat lands a few cents under the previous fret. Instead a step is
// only a wrap when it falls more than the tolerance below the previous
// absolute value; then the cumulative shift gains exactly one +1200.
// Lists that descend overall are outside this heuristic and stay
// undefined.
func (r *Resolver) Resolve(entries []Entry) ([]float64, error) {
	out := make([]float64, 0, len(entries))
	shift := 0.0
	last := -1e9
	for _, e := range entries {
		accCents, err := r.table.Lookup(e.Acc)
		if err != nil {
			return nil, fmt.Errorf("token %q: %w", e.Token, err)
		}
		unshifted := e.Note.Cents() + accCents
		proposed := unshifted + shift
		if proposed < last-r.tolerance {
			shift += 1200
			proposed = unshifted + shift
		}
		out = append(out, proposed)
		last = proposed
	}
	return out, nil
}
