package levels

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Decode reads a comma separated grid, one row per line.
func Decode(r io.Reader, level int) (Grid, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	var g Grid
	for row := 0; ; row++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, &LoadError{Level: level, Row: row, Col: -1, Reason: "malformed row", Err: err}
		}
		cells := make([]int, len(rec))
		for col, field := range rec {
			v, err := strconv.Atoi(strings.TrimSpace(field))
			if err != nil {
				return nil, &LoadError{Level: level, Row: row, Col: col, Reason: "non-integer cell", Err: err}
			}
			cells[col] = v
		}
		g = append(g, cells)
	}
	return g, nil
}

// Encode writes g in the format Decode reads.
func Encode(w io.Writer, g Grid) error {
	cw := csv.NewWriter(w)
	rec := make([]string, 0, g.Cols())
	for _, row := range g {
		rec = rec[:0]
		for _, v := range row {
			rec = append(rec, strconv.Itoa(v))
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("levels: encode: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("levels: encode: %w", err)
	}
	return nil
}

// FileName is the on-disk name for a level id.
func FileName(level int) string {
	return fmt.Sprintf("level%d_data.csv", level)
}
