package document

import (
	"io"
	"sort"
	"strconv"

	"github.com/pkg/errors"
	"github.com/segmentio/encoding/json"

	"github.com/voxelforge/svo_baker/internal/voxel"
)

// Document is the structured input consumed by the ingestion path. It
// provides voxel-center positions either as a flat list sharing one material
// or as a mapping from material identifier to positions, plus optional
// 6-component vertex records carrying explicit sub-voxel corner offsets.
// An external mesh voxelizer is expected to produce the same shape.
type Document struct {
	Positions [][]float64            `json:"positions,omitempty"`
	Materials map[string][][]float64 `json:"materials,omitempty"`
	Vertices  [][]float64            `json:"vertices,omitempty"`
}

// Parse reads and validates an input document. Malformed or missing fields
// are contract violations that abort the bake.
func Parse(r io.Reader) (*Document, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, errors.Wrap(err, "parsing input document")
	}
	if err := doc.validate(); err != nil {
		return nil, err
	}
	return &doc, nil
}

func (d *Document) validate() error {
	if len(d.Positions) == 0 && len(d.Materials) == 0 {
		return errors.New("input document provides neither 'positions' nor 'materials'")
	}
	for i, pos := range d.Positions {
		if len(pos) != 3 {
			return errors.Errorf("position %d has %d components, want 3", i, len(pos))
		}
	}
	for key, positions := range d.Materials {
		if _, err := strconv.ParseUint(key, 10, 64); err != nil {
			return errors.Errorf("material key %q is not a numeric identifier", key)
		}
		for i, pos := range positions {
			if len(pos) != 3 {
				return errors.Errorf("material %s position %d has %d components, want 3", key, i, len(pos))
			}
		}
	}
	for i, vert := range d.Vertices {
		if len(vert) != 6 {
			return errors.Errorf("vertex record %d has %d components, want 6", i, len(vert))
		}
	}
	return nil
}

// MaterialIDs returns the document's material identifiers in ascending
// order, so registry index assignment is deterministic.
func (d *Document) MaterialIDs() []uint64 {
	ids := make([]uint64, 0, len(d.Materials))
	for key := range d.Materials {
		id, _ := strconv.ParseUint(key, 10, 64)
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// BuildRegistry builds the material registry for the document: index 1 is
// the built-in debug material, document materials follow from index 2 in
// ascending identifier order. When the document only carries a flat
// position list, the fallback material is registered instead.
func (d *Document) BuildRegistry(fallback voxel.Material) *voxel.MaterialMapper {
	registry := voxel.NewMaterialMapper()
	ids := d.MaterialIDs()
	if len(ids) == 0 {
		registry.Register(fallback)
		return registry
	}
	for _, id := range ids {
		registry.Register(voxel.Material{ID: id, ShortName: "Material"})
	}
	if len(d.Positions) > 0 {
		registry.Register(fallback)
	}
	return registry
}
