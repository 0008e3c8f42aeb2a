package pkg

import (
	"github.com/voxelforge/svo_baker/internal/voxel"
	"github.com/voxelforge/svo_baker/tools"
)

type chunkSummary struct {
	InnerOrigin [3]int32          `json:"inner_origin"`
	InnerExtent int32             `json:"inner_extent"`
	OuterOrigin [3]int32          `json:"outer_origin"`
	OuterExtent int32             `json:"outer_extent"`
	Materials   int               `json:"materials"`
	Offsets     int               `json:"offsets"`
	Mapping     map[uint8]voxel.Material `json:"mapping"`
	Empty       bool              `json:"empty"`
}

// DumpChunk decodes one base64 voxel chunk and renders a readable summary.
// Diagnostic tooling for inspecting chunks lifted out of a save file.
func DumpChunk(encoded string) (string, error) {
	cell, err := voxel.DecodeChunk(encoded)
	if err != nil {
		return "", err
	}

	inner := cell.Grid.InnerRange()
	outer := cell.Grid.OuterRange()
	mapping := make(map[uint8]voxel.Material)
	for _, index := range cell.Mapping.Indexes() {
		mat, _ := cell.Mapping.Get(index)
		mapping[index] = mat
	}

	return tools.FmtJSONString(chunkSummary{
		InnerOrigin: [3]int32{inner.Origin.X, inner.Origin.Y, inner.Origin.Z},
		InnerExtent: inner.Extent,
		OuterOrigin: [3]int32{outer.Origin.X, outer.Origin.Y, outer.Origin.Z},
		OuterExtent: outer.Extent,
		Materials:   cell.Grid.MaterialCount(),
		Offsets:     cell.Grid.OffsetCount(),
		Mapping:     mapping,
		Empty:       cell.IsEmpty(),
	}), nil
}
