package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitOctantsTilesParentExactly(t *testing.T) {
	parent := NewRangeWithExtent(NewVector3i(-64, 0, 32), 64)
	octants := parent.SplitOctants()

	covered := make(map[Vector3i]int)
	for _, octant := range octants {
		assert.Equal(t, int32(32), octant.Extent)
		for z := octant.Origin.Z; z < octant.Origin.Z+octant.Extent; z += 8 {
			for y := octant.Origin.Y; y < octant.Origin.Y+octant.Extent; y += 8 {
				for x := octant.Origin.X; x < octant.Origin.X+octant.Extent; x += 8 {
					covered[NewVector3i(x, y, z)]++
				}
			}
		}
	}

	// every probe point of the parent is covered by exactly one octant
	for z := parent.Origin.Z; z < parent.Origin.Z+parent.Extent; z += 8 {
		for y := parent.Origin.Y; y < parent.Origin.Y+parent.Extent; y += 8 {
			for x := parent.Origin.X; x < parent.Origin.X+parent.Extent; x += 8 {
				require.Equal(t, 1, covered[NewVector3i(x, y, z)], "point %d,%d,%d", x, y, z)
			}
		}
	}
}

func TestSplitOctantsOrderMatchesChildIndex(t *testing.T) {
	parent := NewRangeWithExtent(NewVector3i(0, 0, 0), 64)
	octants := parent.SplitOctants()

	// index = x + 2y + 4z, x varies fastest
	assert.Equal(t, NewVector3i(0, 0, 0), octants[0].Origin)
	assert.Equal(t, NewVector3i(32, 0, 0), octants[1].Origin)
	assert.Equal(t, NewVector3i(0, 32, 0), octants[2].Origin)
	assert.Equal(t, NewVector3i(32, 32, 0), octants[3].Origin)
	assert.Equal(t, NewVector3i(0, 0, 32), octants[4].Origin)
	assert.Equal(t, NewVector3i(32, 32, 32), octants[7].Origin)
}

func TestContainsIsHalfOpen(t *testing.T) {
	r := NewRangeWithExtent(NewVector3i(0, 0, 0), 32)

	assert.True(t, r.Contains(NewVector3i(0, 0, 0)))
	assert.True(t, r.Contains(NewVector3i(31, 31, 31)))
	assert.False(t, r.Contains(NewVector3i(32, 0, 0)))
	assert.False(t, r.Contains(NewVector3i(0, -1, 0)))
}

func TestPaddedShiftsOriginBackward(t *testing.T) {
	r := NewRangeWithExtent(NewVector3i(0, 0, 0), 32)
	padded := r.Padded(4)

	assert.Equal(t, NewVector3i(-4, -4, -4), padded.Origin)
	assert.Equal(t, int32(40), padded.Extent)

	// the far shared face is now inside
	assert.True(t, padded.Contains(NewVector3i(32, 0, 0)))
	assert.True(t, padded.Contains(NewVector3i(-4, -4, -4)))
	assert.False(t, padded.Contains(NewVector3i(36, 0, 0)))
}

func TestRescaleRebasesOriginAndExtent(t *testing.T) {
	r := NewRangeWithExtent(NewVector3i(128, -128, 0), 1024)
	rescaled := r.Rescale(32)

	assert.Equal(t, NewVector3i(4, -4, 0), rescaled.Origin)
	assert.Equal(t, int32(32), rescaled.Extent)
}

func TestIsPowerOfTwoExtent(t *testing.T) {
	tests := []struct {
		extent int32
		want   bool
	}{
		{extent: 0, want: false},
		{extent: 1, want: true},
		{extent: 32, want: true},
		{extent: 33, want: false},
		{extent: 128, want: true},
		{extent: -8, want: false},
	}

	for _, tt := range tests {
		r := NewRangeWithExtent(Vector3i{}, tt.extent)
		assert.Equal(t, tt.want, r.IsPowerOfTwoExtent(), "extent %d", tt.extent)
	}
}

func TestVectorIsDivisibleBy(t *testing.T) {
	assert.True(t, NewVector3i(64, -32, 0).IsDivisibleBy(4))
	assert.False(t, NewVector3i(64, -31, 0).IsDivisibleBy(4))
	assert.True(t, NewVector3i(-1, 5, 7).IsDivisibleBy(1))
}
