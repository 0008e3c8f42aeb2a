package data

import "github.com/voxelforge/svo_baker/internal/geometry"

// MaterialSample is one voxel-center occupancy sample: a lattice position
// plus the per-tree material index to record there.
type MaterialSample struct {
	Position geometry.Vector3i
	Material uint8
}

// OffsetSample is one explicit sub-voxel corner displacement. It overrides
// the neutral default offset seeded by material samples at the same corner.
type OffsetSample struct {
	Position geometry.Vector3i
	Offset   [3]uint8
}

func NewMaterialSample(position geometry.Vector3i, material uint8) *MaterialSample {
	return &MaterialSample{Position: position, Material: material}
}

func NewOffsetSample(position geometry.Vector3i, offset [3]uint8) *OffsetSample {
	return &OffsetSample{Position: position, Offset: offset}
}
