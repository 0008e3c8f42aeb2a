package voxel

import (
	"github.com/golang/glog"

	"github.com/voxelforge/svo_baker/internal/geometry"
)

// DefaultVertexOffset is the neutral "no displacement" corner marker seeded
// by material stamps. A later explicit offset pass only has to override the
// corners that actually move.
var DefaultVertexOffset = [3]uint8{126, 126, 126}

// VertexGrid stores the voxel data of one octree node: a material index per
// cell of the node's inner cube plus a sub-voxel corner displacement per
// lattice corner of the outer cube. The outer cube extends one unit beyond
// the inner one on every side and carries neighbor-boundary data so that
// adjacent leaves stitch seamlessly.
//
// Cells are addressed with global lattice coordinates together with the
// lattice spacing of the node's depth; the grid converts them into
// node-local cells. Storage is sparse since most cells never receive data.
type VertexGrid struct {
	inner     geometry.Range
	outer     geometry.Range
	materials map[geometry.Vector3i]uint8
	offsets   map[geometry.Vector3i][3]uint8
}

// NewVertexGrid builds an empty grid over the given outer and inner ranges.
func NewVertexGrid(outer geometry.Range, inner geometry.Range) *VertexGrid {
	return &VertexGrid{
		inner:     inner,
		outer:     outer,
		materials: make(map[geometry.Vector3i]uint8),
		offsets:   make(map[geometry.Vector3i][3]uint8),
	}
}

func (g *VertexGrid) InnerRange() geometry.Range {
	return g.inner
}

func (g *VertexGrid) OuterRange() geometry.Range {
	return g.outer
}

// localCell converts a global lattice position into the grid's local cell
// coordinate for the given lattice spacing. Positions that do not land on
// the node's lattice are reported as misses, not errors.
func (g *VertexGrid) localCell(pos geometry.Vector3i, scale int32) (geometry.Vector3i, bool) {
	delta := pos.Sub(g.inner.Origin)
	if !delta.IsDivisibleBy(scale) {
		return geometry.Vector3i{}, false
	}
	return delta.DivScalar(scale), true
}

// SetMaterialAt writes a material index at the given global position.
// Writes that miss the node's lattice or fall outside the outer cube are
// silently dropped. Samples on faces shared with sibling nodes land in the
// one-unit boundary ring, which is what lets adjacent leaves stitch.
func (g *VertexGrid) SetMaterialAt(pos geometry.Vector3i, scale int32, index uint8) bool {
	local, ok := g.localCell(pos, scale)
	if !ok {
		return false
	}
	if !g.localOuterRange().Contains(local) {
		glog.V(2).Infof("material write at %v (scale %d) outside outer cube, dropped", pos, scale)
		return false
	}
	g.materials[local] = index
	return true
}

// SetVertexOffsetAt writes a 3-byte corner displacement at the given global
// lattice corner. Corners may land in the one-unit outer ring.
func (g *VertexGrid) SetVertexOffsetAt(pos geometry.Vector3i, scale int32, offset [3]uint8) bool {
	local, ok := g.localCell(pos, scale)
	if !ok {
		return false
	}
	if !g.localOuterRange().Contains(local) {
		glog.V(2).Infof("offset write at %v (scale %d) outside outer cube, dropped", pos, scale)
		return false
	}
	g.offsets[local] = offset
	return true
}

// MaterialAt reads back the material index at a global position, if any.
func (g *VertexGrid) MaterialAt(pos geometry.Vector3i, scale int32) (uint8, bool) {
	local, ok := g.localCell(pos, scale)
	if !ok {
		return 0, false
	}
	index, ok := g.materials[local]
	return index, ok
}

// VertexOffsetAt reads back the corner displacement at a global position.
func (g *VertexGrid) VertexOffsetAt(pos geometry.Vector3i, scale int32) ([3]uint8, bool) {
	local, ok := g.localCell(pos, scale)
	if !ok {
		return [3]uint8{}, false
	}
	offset, ok := g.offsets[local]
	return offset, ok
}

// IsEmpty reports whether the grid holds no renderable data. A grid that
// only received corner offsets is still empty: a cell with no material is
// air no matter how its corners are displaced.
func (g *VertexGrid) IsEmpty() bool {
	return len(g.materials) == 0
}

func (g *VertexGrid) MaterialCount() int {
	return len(g.materials)
}

func (g *VertexGrid) OffsetCount() int {
	return len(g.offsets)
}

// The outer cube in local cells starts one unit before the local origin.
func (g *VertexGrid) localOuterRange() geometry.Range {
	return geometry.NewRangeWithExtent(geometry.NewVector3i(-1, -1, -1), g.outer.Extent)
}
