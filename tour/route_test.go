package tour_test

import (
	"testing"

	"github.com/katalvlaran/gils/tour"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	t.Parallel()

	require.NoError(t, tour.Validate([]int{0, 2, 1, 3, 0}, 4, 0))
	require.NoError(t, tour.Validate([]int{2, 0, 1, 3, 2}, 4, 2))

	require.ErrorIs(t, tour.Validate([]int{0, 1, 2, 0}, 4, 0), tour.ErrDimensionMismatch)
	require.ErrorIs(t, tour.Validate([]int{0, 1, 1, 3, 0}, 4, 0), tour.ErrDimensionMismatch)
	require.ErrorIs(t, tour.Validate([]int{0, 1, 2, 3, 1}, 4, 0), tour.ErrDimensionMismatch)
	require.ErrorIs(t, tour.Validate([]int{0, 1, 2, 3, 0}, 4, 9), tour.ErrStartOutOfRange)
}

func TestDebugString(t *testing.T) {
	t.Parallel()

	require.Equal(t, "[0 3 1 2 | 0]", tour.DebugString([]int{0, 3, 1, 2, 0}))
	require.Equal(t, "[]", tour.DebugString(nil))
}

func TestSwapAndReverse(t *testing.T) {
	t.Parallel()

	r := identity(5)
	require.NoError(t, tour.Swap(r, 1, 4))
	require.Equal(t, []int{0, 4, 2, 3, 1, 0}, r)

	r = identity(5)
	require.NoError(t, tour.Reverse(r, 1, 3))
	require.Equal(t, []int{0, 3, 2, 1, 4, 0}, r)

	require.ErrorIs(t, tour.Swap(r, 0, 2), tour.ErrDimensionMismatch)
	require.ErrorIs(t, tour.Reverse(r, 3, 1), tour.ErrDimensionMismatch)
	require.ErrorIs(t, tour.Reverse(r, 1, 5), tour.ErrDimensionMismatch)
}

func TestReinsert(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		i, j, k int
		want    []int
	}{
		{"forward pair", 1, 3, 2, []int{0, 3, 4, 1, 2, 5, 0}},
		{"backward single", 4, 1, 1, []int{0, 4, 1, 2, 3, 5, 0}},
		{"backward triple", 3, 1, 3, []int{0, 3, 4, 5, 1, 2, 0}},
		{"same position", 2, 2, 2, identity(6)},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			r := identity(6)
			require.NoError(t, tour.Reinsert(r, tc.i, tc.j, tc.k))
			require.Equal(t, tc.want, r)
			require.NoError(t, tour.Validate(r, 6, 0))
		})
	}

	r := identity(6)
	require.ErrorIs(t, tour.Reinsert(r, 4, 1, 3), tour.ErrDimensionMismatch)
	require.ErrorIs(t, tour.Reinsert(r, 1, 5, 2), tour.ErrDimensionMismatch)
}

func TestReinsert_RoundTrip(t *testing.T) {
	t.Parallel()

	var i, j, k int
	for k = 1; k <= 3; k++ {
		for i = 1; i+k-1 <= 6; i++ {
			for j = 1; j+k-1 <= 6; j++ {
				r := identity(7)
				require.NoError(t, tour.Reinsert(r, i, j, k))
				require.NoError(t, tour.Reinsert(r, j, i, k))
				require.Equal(t, identity(7), r, "i=%d j=%d k=%d", i, j, k)
			}
		}
	}
}
