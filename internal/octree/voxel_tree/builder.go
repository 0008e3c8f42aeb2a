package voxel_tree

import (
	"fmt"

	"github.com/voxelforge/svo_baker/internal/geometry"
	"github.com/voxelforge/svo_baker/internal/octree"
	"github.com/voxelforge/svo_baker/internal/voxel"
)

const (
	// LeafGranularity is the edge length of every node's inner voxel cube.
	// A node stops subdividing once its range reaches this edge.
	LeafGranularity int32 = 32

	// The outer cube adds one unit of neighbor-boundary padding on every
	// side of the inner cube.
	outerGridExtent int32 = 35

	// MinHeight is the smallest supported tree height. The height formulas
	// are undefined below it, so smaller values abort the build.
	MinHeight = 5
)

// RootExtent returns the root edge length for a tree of the given height.
func RootExtent(height int) int32 {
	return 128 << (height - MinHeight)
}

// LeafDepth returns the depth at which nodes stop subdividing.
func LeafDepth(height int) int {
	return height - 3
}

// InitialScale returns the lattice spacing at the root of a tree of the
// given height. It halves at every depth and reaches 1 at the leaves.
func InitialScale(height int) int32 {
	return 1 << (height - 3)
}

// BuildDense builds a fully dense voxel tree of the given height, with a
// fresh payload allocated at every node, leaves and internals alike. Each
// payload receives its own copy of the material mapping.
func BuildDense(origin geometry.Vector3i, height int, mapping *voxel.MaterialMapper) *Tree {
	if height < MinHeight {
		panic(fmt.Sprintf("voxel_tree: height %d below minimum %d", height, MinHeight))
	}
	rootExtent := RootExtent(height)
	maxDepth := LeafDepth(height)

	return octree.Build(origin, rootExtent, func(r geometry.Range) (*voxel.CellData, octree.Verdict) {
		cell := newCellData(r, mapping)
		if r.Extent <= LeafGranularity || depthOf(rootExtent, r.Extent) >= maxDepth {
			return cell, octree.VerdictLeaf
		}
		return cell, octree.VerdictSubdivide
	})
}

// depthOf recovers a node's depth from its edge length, since every octant
// split exactly halves the edge.
func depthOf(rootExtent, extent int32) int {
	depth := 0
	for e := rootExtent; e > extent; e /= 2 {
		depth++
	}
	return depth
}

// newCellData allocates a node payload against its two coordinate frames:
// the inner cube at the node's origin and the padded outer cube starting one
// unit before it.
func newCellData(r geometry.Range, mapping *voxel.MaterialMapper) *voxel.CellData {
	inner := geometry.NewRangeWithExtent(r.Origin, LeafGranularity)
	outer := geometry.NewRangeWithExtent(r.Origin.AddScalar(-1), outerGridExtent)
	return voxel.NewCellData(voxel.NewVertexGrid(outer, inner), mapping.Clone())
}
