package fretcalc

import (
	"bytes"
	"encoding/csv"
	"io"
	"strconv"
)

// CSVHeader is the stable column order downstream spreadsheets rely on.
var CSVHeader = []string{"#", "pitch", "cents_from_re", "frequency_hz", "nut_to_fret", "spacing"}

func csvRecord(r Row) []string {
	return []string{
		strconv.Itoa(r.Index),
		r.Pitch,
		strconv.FormatFloat(r.Cents, 'f', 3, 64),
		strconv.FormatFloat(r.Frequency, 'f', 5, 64),
		strconv.FormatFloat(r.Distance, 'f', 3, 64),
		strconv.FormatFloat(r.Spacing, 'f', 3, 64),
	}
}

// WriteCSV writes the table to w with the CSVHeader column order.
func WriteCSV(w io.Writer, rows []Row) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(CSVHeader); err != nil {
		return err
	}
	for _, r := range rows {
		if err := cw.Write(csvRecord(r)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// EncodeCSV renders the table to bytes, for download-style consumers.
func EncodeCSV(rows []Row) []byte {
	var buf bytes.Buffer
	_ = WriteCSV(&buf, rows)
	return buf.Bytes()
}
