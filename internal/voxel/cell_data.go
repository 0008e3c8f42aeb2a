package voxel

import "github.com/voxelforge/svo_baker/internal/geometry"

// CellData is the full payload carried by one octree node: the vertex grid
// plus the material registry that interprets the grid's material indices.
type CellData struct {
	Grid    *VertexGrid
	Mapping *MaterialMapper
}

func NewCellData(grid *VertexGrid, mapping *MaterialMapper) *CellData {
	return &CellData{Grid: grid, Mapping: mapping}
}

func (c *CellData) SetMaterialAt(pos geometry.Vector3i, scale int32, index uint8) bool {
	return c.Grid.SetMaterialAt(pos, scale, index)
}

func (c *CellData) SetVertexOffsetAt(pos geometry.Vector3i, scale int32, offset [3]uint8) bool {
	return c.Grid.SetVertexOffsetAt(pos, scale, offset)
}

// IsEmpty reports whether the payload carries no renderable data.
func (c *CellData) IsEmpty() bool {
	return c.Grid.IsEmpty()
}
