package io

import (
	"github.com/voxelforge/svo_baker/internal/voxel"
)

// WorkUnit carries one live node payload to the encoding workers, keyed by
// the node's octant path in the tree.
type WorkUnit struct {
	Cell     *voxel.CellData
	NodePath string
}

// ChunkResult is one encoded chunk ready for embedding in the blueprint.
type ChunkResult struct {
	NodePath string
	Chunk    string
}
