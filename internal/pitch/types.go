package pitch

// Note is a base scale degree on the lower string, with the open string
// (re) at 0 cents. The compound syllable "sib" is its own degree, not
// si + flat.
type Note int

const (
	NoteRe Note = iota + 1
	NoteMi
	NoteFa
	NoteFaSharp
	NoteSol
	NoteSolSharp
	NoteLa
	NoteSib
	NoteSi
	NoteDo
	NoteDoSharp
)

// Accidental is the raw comma-accidental tag attached to a token ("b2",
// "#3", ...). The cents it is worth is configuration, resolved later
// against the active comma table.
type Accidental string

// baseCents maps each degree to its offset from the open string, one
// octave in 100-cent steps, strictly ascending in canonical order.
var baseCents = map[Note]float64{
	NoteRe:       0,
	NoteMi:       200,
	NoteFa:       300,
	NoteFaSharp:  400,
	NoteSol:      500,
	NoteSolSharp: 600,
	NoteLa:       700,
	NoteSib:      800,
	NoteSi:       900,
	NoteDo:       1000,
	NoteDoSharp:  1100,
}

var noteNames = map[string]Note{
	"re":   NoteRe,
	"mi":   NoteMi,
	"fa":   NoteFa,
	"fa#":  NoteFaSharp,
	"sol":  NoteSol,
	"sol#": NoteSolSharp,
	"la":   NoteLa,
	"sib":  NoteSib,
	"si":   NoteSi,
	"do":   NoteDo,
	"do#":  NoteDoSharp,
}

// Cents returns the degree's offset from the open string.
func (n Note) Cents() float64 { return baseCents[n] }

func (n Note) String() string {
	for name, note := range noteNames {
		if note == n {
			return name
		}
	}
	return "?"
}
