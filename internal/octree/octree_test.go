package octree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voxelforge/svo_baker/internal/geometry"
)

// classifier subdividing down to a fixed leaf edge, payload = the range edge
func edgeClassifier(leafExtent int32) Classifier[int32] {
	return func(r geometry.Range) (int32, Verdict) {
		if r.Extent <= leafExtent {
			return r.Extent, VerdictLeaf
		}
		return r.Extent, VerdictSubdivide
	}
}

func TestBuildStopsAtLeafVerdict(t *testing.T) {
	tree := Build(geometry.Vector3i{}, 64, edgeClassifier(32))

	require.False(t, tree.Root.IsLeaf())
	require.Len(t, tree.Root.Children, 8)
	for _, child := range tree.Root.Children {
		assert.True(t, child.IsLeaf())
		assert.Equal(t, int32(32), child.Value)
	}
}

func TestBuildSingleLeaf(t *testing.T) {
	tree := Build(geometry.Vector3i{}, 16, edgeClassifier(32))
	assert.True(t, tree.Root.IsLeaf())
	assert.Equal(t, int32(16), tree.Root.Value)
}

func TestBuildRejectsInvalidExtent(t *testing.T) {
	assert.Panics(t, func() { Build(geometry.Vector3i{}, 0, edgeClassifier(32)) })
	assert.Panics(t, func() { Build(geometry.Vector3i{}, 48, edgeClassifier(32)) })
	assert.Panics(t, func() { Build(geometry.Vector3i{}, -64, edgeClassifier(32)) })
}

func TestFoldDistinguishesLeafFromInternal(t *testing.T) {
	tree := Build(geometry.Vector3i{}, 64, edgeClassifier(32))

	leaves := 0
	internals := 0
	total := Fold(tree, func(r geometry.Range, value int32, children []int) int {
		if children == nil {
			leaves++
			return 1
		}
		internals++
		require.Len(t, children, 8)
		sum := 1
		for _, c := range children {
			sum += c
		}
		return sum
	})

	assert.Equal(t, 9, total)
	assert.Equal(t, 8, leaves)
	assert.Equal(t, 1, internals)
}

func TestFoldPassesRecursiveRanges(t *testing.T) {
	tree := Build(geometry.NewVector3i(0, 0, 0), 64, edgeClassifier(32))

	Fold(tree, func(r geometry.Range, value int32, children []int) int {
		// the payload recorded each node's edge at build time; the fold
		// must hand back the same range assignment
		assert.Equal(t, value, r.Extent)
		return 0
	})
}

func TestMapPreservesStructureAndRanges(t *testing.T) {
	tree := Build(geometry.Vector3i{}, 64, edgeClassifier(32))
	mapped := Map(tree, func(edge int32) string {
		if edge == 32 {
			return "leaf"
		}
		return "internal"
	})

	assert.Equal(t, tree.Range, mapped.Range)
	require.False(t, mapped.Root.IsLeaf())
	assert.Equal(t, "internal", mapped.Root.Value)
	for _, child := range mapped.Root.Children {
		require.True(t, child.IsLeaf())
		assert.Equal(t, "leaf", child.Value)
	}
}

func TestNewInternalRequiresEightChildren(t *testing.T) {
	assert.Panics(t, func() {
		NewInternal(0, []*Node[int]{NewLeaf(1), NewLeaf(2)})
	})
}
