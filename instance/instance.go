package instance

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/gils/matrix"
)

var (
	// ErrFormat is returned for malformed or truncated input.
	ErrFormat = errors.New("instance: malformed input")

	// ErrUnsupported is returned for a valid TSPLIB keyword this package does not handle.
	ErrUnsupported = errors.New("instance: unsupported format")
)

// Instance is a loaded problem.
type Instance struct {
	Name      string
	Type      string
	Comment   string
	Dimension int

	// EdgeWeightType and EdgeWeightFormat echo the TSPLIB header; both are
	// empty for plain files.
	EdgeWeightType   string
	EdgeWeightFormat string

	// Weights is the N×N distance matrix with a zero diagonal.
	Weights *matrix.Dense
}

// Load opens path and parses it.
func Load(path string) (*Instance, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("instance: open %s: %w", path, err)
	}
	defer f.Close()

	inst, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return inst, nil
}

// Parse reads an instance from r, detecting the format from the first token.
func Parse(r io.Reader) (*Instance, error) {
	lines, err := readLines(r)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("instance: empty input: %w", ErrFormat)
	}
	if _, err = strconv.Atoi(strings.Fields(lines[0])[0]); err == nil {
		return parsePlain(lines)
	}

	return parseTSPLIB(lines)
}

// readLines returns the non-blank, trimmed lines of r.
func readLines(r io.Reader) ([]string, error) {
	var (
		out []string
		sc  = bufio.NewScanner(r)
	)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line != "" {
			out = append(out, line)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("instance: read: %w", err)
	}

	return out, nil
}

// parseNumbers converts every field to float64.
func parseNumbers(fields []string) ([]float64, error) {
	out := make([]float64, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, fmt.Errorf("instance: bad number %q: %w", f, ErrFormat)
		}
		out = append(out, v)
	}

	return out, nil
}

// parsePlain reads "N" followed by N×N weights.
func parsePlain(lines []string) (*Instance, error) {
	var fields []string
	for _, l := range lines {
		fields = append(fields, strings.Fields(l)...)
	}
	n, err := strconv.Atoi(fields[0])
	if err != nil || n < 1 {
		return nil, fmt.Errorf("instance: bad dimension %q: %w", fields[0], ErrFormat)
	}
	vals, err := parseNumbers(fields[1:])
	if err != nil {
		return nil, err
	}
	if len(vals) != n*n {
		return nil, fmt.Errorf("instance: want %d weights, got %d: %w", n*n, len(vals), ErrFormat)
	}

	w, err := fullMatrix(n, vals)
	if err != nil {
		return nil, err
	}

	return &Instance{Dimension: n, Weights: w}, nil
}

// newMatrix allocates an n×n Dense, wrapping the matrix error.
func newMatrix(n int) (*matrix.Dense, error) {
	m, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, fmt.Errorf("instance: %w: %w", ErrFormat, err)
	}

	return m, nil
}

// fullMatrix fills an n×n matrix row by row, zeroing the diagonal.
func fullMatrix(n int, vals []float64) (*matrix.Dense, error) {
	m, err := newMatrix(n)
	if err != nil {
		return nil, err
	}
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if i == j {
				continue
			}
			if err = m.Set(i, j, vals[i*n+j]); err != nil {
				return nil, fmt.Errorf("instance: %w: %w", ErrFormat, err)
			}
		}
	}

	return m, nil
}
