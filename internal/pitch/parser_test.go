package pitch

import "testing"

func TestParseTokenSpaced(t *testing.T) {
	n, acc, err := ParseToken("mi b2")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if n != NoteMi || acc != "b2" {
		t.Fatalf("expected (mi, b2), got (%v, %q)", n, acc)
	}
}

func TestParseTokenSuffix(t *testing.T) {
	cases := []struct {
		tok  string
		note Note
		acc  Accidental
	}{
		{"fa#3", NoteFa, "#3"},
		{"fa#", NoteFa, "#"},
		{"sol#3", NoteSol, "#3"},
		{"mib2", NoteMi, "b2"},
		{"do #", NoteDo, "#"},
		{"si", NoteSi, ""},
		{"la", NoteLa, ""},
	}
	for _, c := range cases {
		n, acc, err := ParseToken(c.tok)
		if err != nil {
			t.Fatalf("parse %q failed: %v", c.tok, err)
		}
		if n != c.note || acc != c.acc {
			t.Fatalf("parse %q: expected (%v, %q), got (%v, %q)", c.tok, c.note, c.acc, n, acc)
		}
	}
}

func TestParseTokenLongestSuffixFirst(t *testing.T) {
	// "#3" must not be split into "#" plus a leftover "3".
	n, acc, err := ParseToken("do#3")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if n != NoteDo || acc != "#3" {
		t.Fatalf("expected (do, #3), got (%v, %q)", n, acc)
	}
}

func TestParseTokenSibAlias(t *testing.T) {
	for _, tok := range []string{"sib", "si b", "Si B", "si bb"} {
		n, acc, err := ParseToken(tok)
		if err != nil {
			t.Fatalf("parse %q failed: %v", tok, err)
		}
		if n != NoteSib || acc != "" {
			t.Fatalf("parse %q: expected (sib, \"\"), got (%v, %q)", tok, n, acc)
		}
	}
}

func TestParseTokenUnicodeGlyphs(t *testing.T) {
	n, acc, err := ParseToken("fa♯3")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if n != NoteFa || acc != "#3" {
		t.Fatalf("expected (fa, #3), got (%v, %q)", n, acc)
	}
	n, acc, err = ParseToken("mi ♭2")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if n != NoteMi || acc != "b2" {
		t.Fatalf("expected (mi, b2), got (%v, %q)", n, acc)
	}
}

func TestParseTokenCaseAndSpace(t *testing.T) {
	n, acc, err := ParseToken("  FA#3 ")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if n != NoteFa || acc != "#3" {
		t.Fatalf("expected (fa, #3), got (%v, %q)", n, acc)
	}
}

func TestParseTokenUnknownBase(t *testing.T) {
	if _, _, err := ParseToken("xyz"); err == nil {
		t.Fatalf("expected error for unknown base note")
	}
	if _, _, err := ParseToken("qu b2"); err == nil {
		t.Fatalf("expected error for unknown spaced base note")
	}
}

func TestParseTokenUnvalidatedAccidental(t *testing.T) {
	// A spaced accidental is carried verbatim; only the resolver owns the
	// comma table and can reject it.
	n, acc, err := ParseToken("mi b9")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if n != NoteMi || acc != "b9" {
		t.Fatalf("expected (mi, b9), got (%v, %q)", n, acc)
	}
}

func TestBaseCentsAscending(t *testing.T) {
	order := []Note{
		NoteRe, NoteMi, NoteFa, NoteFaSharp, NoteSol, NoteSolSharp,
		NoteLa, NoteSib, NoteSi, NoteDo, NoteDoSharp,
	}
	prev := -1.0
	for _, n := range order {
		c := n.Cents()
		if c <= prev {
			t.Fatalf("base cents not strictly ascending at %v: %v <= %v", n, c, prev)
		}
		prev = c
	}
	if NoteRe.Cents() != 0 {
		t.Fatalf("open string must sit at 0 cents, got %v", NoteRe.Cents())
	}
}

func TestSplitList(t *testing.T) {
	text := "mi b2, mi b, mi,\nfa, fa#3,\n\n la ,"
	got := SplitList(text)
	want := []string{"mi b2", "mi b", "mi", "fa", "fa#3", "la"}
	if len(got) != len(want) {
		t.Fatalf("expected %d tokens, got %d: %v", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("token %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestSplitListEmpty(t *testing.T) {
	if got := SplitList(" \n , ,\n"); len(got) != 0 {
		t.Fatalf("expected no tokens, got %v", got)
	}
}
