package fid

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// WriteText writes one "<real> + <imag>i" line per sample in time order.
// Numbers use the shortest decimal form that round-trips, without exponent.
// Infinities are written as "inf" and "-inf", NaN as "NaN".
func WriteText(w io.Writer, s Signal) error {
	bw := bufio.NewWriter(w)
	buf := make([]byte, 0, 64)
	for k, v := range s {
		buf = AppendSample(buf[:0], v)
		buf = append(buf, '\n')
		if _, err := bw.Write(buf); err != nil {
			return fmt.Errorf("fid: write sample %d: %w", k, err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("fid: flush: %w", err)
	}
	return nil
}

// AppendSample appends the "<real> + <imag>i" form of v to dst.
func AppendSample(dst []byte, v complex128) []byte {
	dst = appendFloat(dst, real(v))
	dst = append(dst, " + "...)
	dst = appendFloat(dst, imag(v))
	return append(dst, 'i')
}

func appendFloat(dst []byte, x float64) []byte {
	switch {
	case math.IsInf(x, 1):
		return append(dst, "inf"...)
	case math.IsInf(x, -1):
		return append(dst, "-inf"...)
	}
	return strconv.AppendFloat(dst, x, 'f', -1, 64)
}

// ParseSample parses a single "<real> + <imag>i" value.
func ParseSample(s string) (complex128, error) {
	re, im, ok := strings.Cut(strings.TrimSpace(s), " + ")
	if !ok {
		return 0, fmt.Errorf("%w: missing \" + \" in %q", ErrSyntax, s)
	}
	im, ok = strings.CutSuffix(im, "i")
	if !ok {
		return 0, fmt.Errorf("%w: missing imaginary unit in %q", ErrSyntax, s)
	}

	r, err := strconv.ParseFloat(strings.TrimSpace(re), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: real part %q", ErrSyntax, re)
	}
	i, err := strconv.ParseFloat(strings.TrimSpace(im), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: imaginary part %q", ErrSyntax, im)
	}
	return complex(r, i), nil
}

// ReadText reads samples written by [WriteText]. Blank lines are skipped.
func ReadText(r io.Reader) (Signal, error) {
	var out Signal
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		v, err := ParseSample(text)
		if err != nil {
			return nil, fmt.Errorf("fid: line %d: %w", line, err)
		}
		out = append(out, v)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("fid: read: %w", err)
	}
	return out, nil
}
