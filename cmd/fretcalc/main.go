package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	fretcalc "github.com/bcelen/Fret-calculator"
)

func main() {
	var (
		refHz     = flag.Float64("ref", 440, "open string reference frequency (Hz)")
		length    = flag.Float64("length", 580, "string length (any unit; output distances match)")
		preset    = flag.String("preset", "folk", "comma preset: folk|aeu|24edo")
		commaSize = flag.Float64("comma", 0, "derive the accidental table from a one-comma size in cents")
		sets      = flag.String("set", "", "per-symbol overrides, e.g. \"b=-23,#3=68.5\"")
		tolerance = flag.Float64("tolerance", 100, "octave-wrap backstep tolerance in cents")
		listPath  = flag.String("file", "", "path to a pitch-order file")
		inline    = flag.String("pitches", "", "inline pitch order (comma/newline separated)")
		csvOut    = flag.String("o", "", "write CSV to this path instead of printing a table")
		csvStdout = flag.Bool("csv", false, "print CSV to stdout instead of an aligned table")
	)
	flag.Parse()
	presetSet := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "preset" {
			presetSet = true
		}
	})

	text, err := resolvePitchInput(*listPath, *inline)
	if err != nil {
		log.Fatal(err)
	}

	opts, err := buildOptions(*preset, presetSet, *commaSize, *sets, *tolerance)
	if err != nil {
		log.Fatal(err)
	}

	calc, err := fretcalc.New(*refHz, *length, opts...)
	if err != nil {
		log.Fatal(err)
	}
	rows, err := calc.Compute(text)
	if err != nil {
		log.Fatal(err)
	}

	switch {
	case *csvOut != "":
		f, err := os.Create(*csvOut)
		if err != nil {
			log.Fatal(err)
		}
		if err := fretcalc.WriteCSV(f, rows); err != nil {
			f.Close()
			log.Fatal(err)
		}
		if err := f.Close(); err != nil {
			log.Fatal(err)
		}
		fmt.Printf("wrote %d rows to %s\n", len(rows), *csvOut)
	case *csvStdout:
		if err := fretcalc.WriteCSV(os.Stdout, rows); err != nil {
			log.Fatal(err)
		}
	default:
		printTable(rows)
	}
}

// buildOptions assembles the calculator options from the flag values. A
// preset is layered on only when the user asked for one or gave no -comma
// size; otherwise -preset's default would clobber the derived b/b2/#3 values.
func buildOptions(preset string, presetSet bool, commaSize float64, sets string, tolerance float64) ([]fretcalc.Option, error) {
	opts := []fretcalc.Option{fretcalc.WithWrapTolerance(tolerance)}
	if commaSize > 0 {
		opts = append(opts, fretcalc.WithCommaSize(commaSize))
	}
	if presetSet || commaSize <= 0 {
		p, err := fretcalc.ParsePreset(preset)
		if err != nil {
			return nil, err
		}
		opts = append(opts, fretcalc.WithPreset(p))
	}
	overrides, err := parseOverrides(sets)
	if err != nil {
		return nil, err
	}
	return append(opts, overrides...), nil
}

func resolvePitchInput(path string, inline string) (string, error) {
	if strings.TrimSpace(inline) != "" {
		return inline, nil
	}
	if strings.TrimSpace(path) != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return "", err
		}
		return string(data), nil
	}
	return fretcalc.DefaultOrder, nil
}

func parseOverrides(spec string) ([]fretcalc.Option, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return nil, nil
	}
	var opts []fretcalc.Option
	for _, pair := range strings.Split(spec, ",") {
		sym, val, ok := strings.Cut(strings.TrimSpace(pair), "=")
		if !ok {
			return nil, fmt.Errorf("invalid -set entry %q (expected symbol=cents)", pair)
		}
		cents, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid cents in -set entry %q: %v", pair, err)
		}
		opts = append(opts, fretcalc.WithAccidentalCents(strings.TrimSpace(sym), cents))
	}
	return opts, nil
}

func printTable(rows []fretcalc.Row) {
	w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(w, "#\tpitch\tcents\tHz\tnut->fret\tspacing\t")
	for _, r := range rows {
		fmt.Fprintf(w, "%d\t%s\t%.3f\t%.5f\t%.3f\t%.3f\t\n",
			r.Index, r.Pitch, r.Cents, r.Frequency, r.Distance, r.Spacing)
	}
	w.Flush()
}
