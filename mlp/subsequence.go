package mlp

import "github.com/katalvlaran/gils/tour"

// Subsequence is the cost triple of a contiguous route range.
type Subsequence struct {
	T float64
	C float64
	W int
}

// Concat joins a and b through an arc of weight d.
//
// Complexity: O(1).
func Concat(a Subsequence, d float64, b Subsequence) Subsequence {
	return Subsequence{
		T: a.T + d + b.T,
		C: a.C + float64(b.W)*(a.T+d) + b.C,
		W: a.W + b.W,
	}
}

// Table holds the Subsequence of every ordered pair of route positions.
type Table struct {
	size int
	seq  []Subsequence
}

// NewTable allocates a table for route and fills it.
//
// Errors: ErrDimensionMismatch for routes shorter than 2 or with out-of-range nodes.
//
// Complexity: O(N²) time and space.
func NewTable(costs *tour.Costs, route []int) (*Table, error) {
	t := &Table{}
	if err := t.Fill(costs, route); err != nil {
		return nil, err
	}

	return t, nil
}

// Fill recomputes every entry for route, reusing the buffer when it fits.
//
// Complexity: O(N²).
func (t *Table) Fill(costs *tour.Costs, route []int) error {
	if costs == nil {
		return ErrInvalidInput
	}
	if len(route) < 2 {
		return ErrDimensionMismatch
	}
	for _, v := range route {
		if v < 0 || v >= costs.N() {
			return ErrDimensionMismatch
		}
	}

	size := len(route)
	if cap(t.seq) < size*size {
		t.seq = make([]Subsequence, size*size)
	}
	t.size = size
	t.seq = t.seq[:size*size]

	var (
		last = size - 1
		i, j int
	)
	for i = 0; i < size; i++ {
		w := 1
		if i == 0 || i == last {
			w = 0
		}
		t.seq[i*size+i] = Subsequence{W: w}
	}

	for i = 0; i < size; i++ {
		for j = i + 1; j < size; j++ {
			t.seq[i*size+j] = Concat(t.seq[i*size+j-1], costs.At(route[j-1], route[j]), t.seq[j*size+j])
		}
	}
	for j = 0; j < size; j++ {
		for i = j - 1; i >= 0; i-- {
			t.seq[j*size+i] = Concat(t.seq[j*size+i+1], costs.At(route[i+1], route[i]), t.seq[i*size+i])
		}
	}

	return nil
}

// At returns the Subsequence of positions i..j; i > j means traversed backwards.
// Indices are not checked.
func (t *Table) At(i, j int) Subsequence { return t.seq[i*t.size+j] }

// Size returns the number of route positions covered (N+1).
func (t *Table) Size() int { return t.size }

// Cost returns the latency of the whole route, C(0, last).
func (t *Table) Cost() float64 { return t.At(0, t.size-1).C }
