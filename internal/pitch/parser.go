package pitch

import (
	"fmt"
	"strings"
)

// accidentalSuffixes is ordered longest-match-first so a compound tag is
// never split into a shorter tag plus leftover characters ("fa#3" must
// strip "#3", not "#").
var accidentalSuffixes = []string{"#5", "#3", "#2", "#1", "#", "b4", "b3", "b2", "b1", "b"}

// ParseToken decodes one pitch token into its base degree and raw
// accidental tag.
//
//	"mi b"  -> (NoteMi, "b")
//	"mi b2" -> (NoteMi, "b2")
//	"fa#3"  -> (NoteFa, "#3")
//	"do #"  -> (NoteDo, "#")
//	"si"    -> (NoteSi, "")
//	"sib"   -> (NoteSib, "")   alias for "si b"
//
// The accidental is not validated here; the resolver checks it against
// the active comma table.
func ParseToken(tok string) (Note, Accidental, error) {
	t := strings.ToLower(strings.TrimSpace(tok))
	t = strings.Join(strings.Fields(t), " ")
	t = strings.ReplaceAll(t, "♯", "#")
	t = strings.ReplaceAll(t, "♭", "b")

	switch t {
	case "sib", "si b", "si bb":
		return NoteSib, "", nil
	}

	if base, acc, ok := strings.Cut(t, " "); ok {
		n, found := noteNames[base]
		if !found {
			return 0, "", fmt.Errorf("unknown base note %q in token %q", base, tok)
		}
		return n, Accidental(acc), nil
	}

	for _, tag := range accidentalSuffixes {
		if rest, ok := strings.CutSuffix(t, tag); ok {
			if n, found := noteNames[rest]; found {
				return n, Accidental(tag), nil
			}
		}
	}

	n, found := noteNames[t]
	if !found {
		return 0, "", fmt.Errorf("unknown base note %q", tok)
	}
	return n, "", nil
}

// SplitList splits a free-text pitch order into tokens: lines first, then
// commas within each line. Blank segments from trailing commas or empty
// lines are dropped. Order is fretboard order and is preserved.
func SplitList(text string) []string {
	var parts []string
	for _, line := range strings.Split(text, "\n") {
		for _, seg := range strings.Split(line, ",") {
			if s := strings.TrimSpace(seg); s != "" {
				parts = append(parts, s)
			}
		}
	}
	return parts
}
