package instance

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/gils/matrix"
)

// TSPLIB section keywords.
const (
	secNodeCoord   = "NODE_COORD_SECTION"
	secEdgeWeight  = "EDGE_WEIGHT_SECTION"
	secDisplayData = "DISPLAY_DATA_SECTION"
	keyEOF         = "EOF"
)

// header splits "KEY : VALUE" (or "KEY: VALUE", "KEY VALUE").
func header(line string) (key, value string) {
	if k, v, ok := strings.Cut(line, ":"); ok {
		return strings.ToUpper(strings.TrimSpace(k)), strings.TrimSpace(v)
	}
	f := strings.Fields(line)
	key = strings.ToUpper(f[0])
	if len(f) > 1 {
		value = strings.Join(f[1:], " ")
	}

	return key, value
}

// isSection reports whether key opens a data section.
func isSection(key string) bool {
	return strings.HasSuffix(key, "_SECTION")
}

// parseTSPLIB reads the header, collects the numeric payload of every section
// and builds the matrix.
func parseTSPLIB(lines []string) (*Instance, error) {
	var (
		inst     Instance
		section  string
		sections = map[string][]string{}
		err      error
	)

scan:
	for _, line := range lines {
		if section != "" {
			first := strings.Fields(line)[0]
			if _, perr := strconv.ParseFloat(first, 64); perr == nil {
				sections[section] = append(sections[section], strings.Fields(line)...)
				continue
			}
			section = ""
		}

		key, value := header(line)
		switch {
		case key == keyEOF:
			break scan
		case isSection(key):
			section = key
			if rest := strings.Fields(strings.ReplaceAll(line, ":", " "))[1:]; len(rest) > 0 {
				sections[section] = append(sections[section], rest...)
			}
		case key == "NAME":
			inst.Name = value
		case key == "TYPE":
			inst.Type = strings.ToUpper(value)
		case key == "COMMENT":
			inst.Comment = value
		case key == "DIMENSION":
			if inst.Dimension, err = strconv.Atoi(value); err != nil || inst.Dimension < 1 {
				return nil, fmt.Errorf("instance: bad DIMENSION %q: %w", value, ErrFormat)
			}
		case key == "EDGE_WEIGHT_TYPE":
			inst.EdgeWeightType = strings.ToUpper(value)
		case key == "EDGE_WEIGHT_FORMAT":
			inst.EdgeWeightFormat = strings.ToUpper(value)
		}
	}

	if inst.Dimension == 0 {
		return nil, fmt.Errorf("instance: missing DIMENSION: %w", ErrFormat)
	}

	switch inst.EdgeWeightType {
	case "EXPLICIT":
		vals, perr := parseNumbers(sections[secEdgeWeight])
		if perr != nil {
			return nil, perr
		}
		inst.Weights, err = explicit(inst.Dimension, inst.EdgeWeightFormat, vals)
	case "":
		return nil, fmt.Errorf("instance: missing EDGE_WEIGHT_TYPE: %w", ErrFormat)
	default:
		dist, ok := metrics[inst.EdgeWeightType]
		if !ok {
			return nil, fmt.Errorf("instance: EDGE_WEIGHT_TYPE %s: %w", inst.EdgeWeightType, ErrUnsupported)
		}
		pts, perr := coordinates(inst.Dimension, sections[secNodeCoord])
		if perr != nil {
			return nil, perr
		}
		inst.Weights, err = fromCoordinates(pts, dist)
	}
	if err != nil {
		return nil, err
	}

	return &inst, nil
}

// coordinates reads n "id x y" triples. Node ids are 1-based and may come in any order.
func coordinates(n int, fields []string) ([][2]float64, error) {
	if len(fields) != 3*n {
		return nil, fmt.Errorf("instance: want %d coordinate triples, got %d fields: %w", n, len(fields), ErrFormat)
	}
	vals, err := parseNumbers(fields)
	if err != nil {
		return nil, err
	}

	var (
		pts  = make([][2]float64, n)
		seen = make([]bool, n)
		k    int
	)
	for k = 0; k < n; k++ {
		id := int(vals[3*k]) - 1
		if id < 0 || id >= n || seen[id] {
			return nil, fmt.Errorf("instance: bad node id %g: %w", vals[3*k], ErrFormat)
		}
		seen[id] = true
		pts[id] = [2]float64{vals[3*k+1], vals[3*k+2]}
	}

	return pts, nil
}

// fromCoordinates evaluates dist over every ordered pair.
func fromCoordinates(pts [][2]float64, dist func(a, b [2]float64) float64) (*matrix.Dense, error) {
	n := len(pts)
	m, err := newMatrix(n)
	if err != nil {
		return nil, err
	}
	var i, j int
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			d := dist(pts[i], pts[j])
			if err = m.Set(i, j, d); err != nil {
				return nil, fmt.Errorf("instance: %w: %w", ErrFormat, err)
			}
			if err = m.Set(j, i, d); err != nil {
				return nil, fmt.Errorf("instance: %w: %w", ErrFormat, err)
			}
		}
	}

	return m, nil
}

// explicit lays out vals according to an EDGE_WEIGHT_FORMAT.
func explicit(n int, format string, vals []float64) (*matrix.Dense, error) {
	if format == "FULL_MATRIX" {
		if len(vals) != n*n {
			return nil, fmt.Errorf("instance: FULL_MATRIX wants %d weights, got %d: %w", n*n, len(vals), ErrFormat)
		}
		return fullMatrix(n, vals)
	}

	// triangular layouts, stored row-major over the kept triangle
	var (
		diag  bool
		upper bool
	)
	switch format {
	case "UPPER_ROW", "LOWER_COL":
		upper = true
	case "LOWER_ROW", "UPPER_COL":
	case "UPPER_DIAG_ROW", "LOWER_DIAG_COL":
		upper, diag = true, true
	case "LOWER_DIAG_ROW", "UPPER_DIAG_COL":
		diag = true
	case "":
		return nil, fmt.Errorf("instance: missing EDGE_WEIGHT_FORMAT: %w", ErrFormat)
	default:
		return nil, fmt.Errorf("instance: EDGE_WEIGHT_FORMAT %s: %w", format, ErrUnsupported)
	}

	want := n * (n - 1) / 2
	if diag {
		want += n
	}
	if len(vals) != want {
		return nil, fmt.Errorf("instance: %s wants %d weights, got %d: %w", format, want, len(vals), ErrFormat)
	}

	m, err := newMatrix(n)
	if err != nil {
		return nil, err
	}
	var (
		i, j, lo, hi int
		p            int
	)
	for i = 0; i < n; i++ {
		if upper {
			lo, hi = i+1, n
			if diag {
				lo = i
			}
		} else {
			lo, hi = 0, i
			if diag {
				hi = i + 1
			}
		}
		for j = lo; j < hi; j++ {
			v := vals[p]
			p++
			if i == j {
				continue
			}
			if err = m.Set(i, j, v); err != nil {
				return nil, fmt.Errorf("instance: %w: %w", ErrFormat, err)
			}
			if err = m.Set(j, i, v); err != nil {
				return nil, fmt.Errorf("instance: %w: %w", ErrFormat, err)
			}
		}
	}

	return m, nil
}
