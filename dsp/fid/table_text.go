package fid

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"
)

// ParseTable reads one component per line as four numbers
// (amplitude, phase, frequency, damping) separated by whitespace or commas.
// Text after '#' and blank lines are ignored.
//
// A line with the wrong number of fields yields an error matching [ErrShape];
// an unparsable number yields an error matching [ErrSyntax].
func ParseTable(r io.Reader) (Table, error) {
	var rows []Component
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text, _, _ := strings.Cut(sc.Text(), "#")
		fields := strings.FieldsFunc(text, func(c rune) bool {
			return c == ',' || unicode.IsSpace(c)
		})
		if len(fields) == 0 {
			continue
		}
		if len(fields) != 4 {
			return Table{}, fmt.Errorf("fid: line %d: %w", line, &ShapeError{Row: len(rows), Width: len(fields)})
		}

		var v [4]float64
		for j, f := range fields {
			x, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return Table{}, fmt.Errorf("fid: line %d: %w: %q", line, ErrSyntax, f)
			}
			v[j] = x
		}
		rows = append(rows, Component{Amplitude: v[0], Phase: v[1], Frequency: v[2], Damping: v[3]})
	}
	if err := sc.Err(); err != nil {
		return Table{}, fmt.Errorf("fid: read table: %w", err)
	}
	return Table{rows: rows}, nil
}

// WriteTable writes table in the form accepted by [ParseTable].
func WriteTable(w io.Writer, table Table) error {
	bw := bufio.NewWriter(w)
	if _, err := bw.WriteString("# amplitude phase frequency damping\n"); err != nil {
		return fmt.Errorf("fid: write table: %w", err)
	}
	for _, c := range table.rows {
		_, err := fmt.Fprintf(bw, "%s %s %s %s\n",
			strconv.FormatFloat(c.Amplitude, 'g', -1, 64),
			strconv.FormatFloat(c.Phase, 'g', -1, 64),
			strconv.FormatFloat(c.Frequency, 'g', -1, 64),
			strconv.FormatFloat(c.Damping, 'g', -1, 64))
		if err != nil {
			return fmt.Errorf("fid: write table: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("fid: write table: %w", err)
	}
	return nil
}
