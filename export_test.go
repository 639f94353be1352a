package fretcalc

import (
	"strings"
	"testing"
)

func TestEncodeCSVStableColumns(t *testing.T) {
	calc, err := New(440, 580)
	if err != nil {
		t.Fatalf("new calculator: %v", err)
	}
	rows, err := calc.Compute("mi, fa, fa#3")
	if err != nil {
		t.Fatalf("compute failed: %v", err)
	}
	out := string(EncodeCSV(rows))
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected header plus 3 rows, got %d lines", len(lines))
	}
	if lines[0] != "#,pitch,cents_from_re,frequency_hz,nut_to_fret,spacing" {
		t.Fatalf("column order changed: %q", lines[0])
	}
	first := strings.Split(lines[1], ",")
	if first[0] != "1" || first[1] != "mi" || first[2] != "200.000" {
		t.Fatalf("unexpected first record: %v", first)
	}
	last := strings.Split(lines[3], ",")
	if last[2] != "367.920" {
		t.Fatalf("expected 367.920 cents in last record, got %v", last[2])
	}
	// Fixed precision per column: Hz carries five decimals.
	if !strings.Contains(first[3], ".") || len(strings.Split(first[3], ".")[1]) != 5 {
		t.Fatalf("frequency must carry 5 decimals, got %q", first[3])
	}
}

func TestWriteCSVMatchesEncode(t *testing.T) {
	calc, err := New(440, 580)
	if err != nil {
		t.Fatalf("new calculator: %v", err)
	}
	rows, err := calc.Compute(DefaultOrder)
	if err != nil {
		t.Fatalf("compute failed: %v", err)
	}
	var sb strings.Builder
	if err := WriteCSV(&sb, rows); err != nil {
		t.Fatalf("write csv: %v", err)
	}
	if sb.String() != string(EncodeCSV(rows)) {
		t.Fatalf("WriteCSV and EncodeCSV disagree")
	}
}
