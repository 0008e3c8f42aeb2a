package voxel

import (
	"sort"

	"github.com/pkg/errors"
)

const (
	// DebugMaterialIndex is reserved in every mapper for a built-in
	// diagnostic material. Caller materials are assigned from
	// FirstCallerIndex upward.
	DebugMaterialIndex uint8 = 1
	FirstCallerIndex   uint8 = 2

	DebugMaterialID uint64 = 157903047
)

// Material identifies one voxel material as known to the game: a numeric
// identifier plus a short display name (at most 8 bytes on the wire).
type Material struct {
	ID        uint64
	ShortName string
}

// MaterialMapper translates game material identifiers into the compact
// per-tree indices stored in the voxel grids.
type MaterialMapper struct {
	byIndex map[uint8]Material
	byID    map[uint64]uint8
	next    uint8
}

// NewMaterialMapper builds a mapper with the debug material pre-registered
// at index 1.
func NewMaterialMapper() *MaterialMapper {
	m := &MaterialMapper{
		byIndex: make(map[uint8]Material),
		byID:    make(map[uint64]uint8),
		next:    FirstCallerIndex,
	}
	m.Insert(DebugMaterialIndex, Material{ID: DebugMaterialID, ShortName: "Debug1"})
	return m
}

// Insert binds an index to a material, replacing any previous binding.
func (m *MaterialMapper) Insert(index uint8, mat Material) {
	m.byIndex[index] = mat
	m.byID[mat.ID] = index
	if index >= m.next {
		m.next = index + 1
	}
}

// Register assigns the next free index to the material and returns it.
// Registering an identifier twice returns the existing index.
func (m *MaterialMapper) Register(mat Material) uint8 {
	if index, ok := m.byID[mat.ID]; ok {
		return index
	}
	index := m.next
	m.Insert(index, mat)
	return index
}

// IndexOf resolves a game material identifier. A position referencing an
// identifier absent from the registry is a contract violation, surfaced by
// the caller.
func (m *MaterialMapper) IndexOf(id uint64) (uint8, error) {
	index, ok := m.byID[id]
	if !ok {
		return 0, errors.Errorf("material id %d is not registered", id)
	}
	return index, nil
}

func (m *MaterialMapper) Get(index uint8) (Material, bool) {
	mat, ok := m.byIndex[index]
	return mat, ok
}

// Indexes returns the registered indices in ascending order.
func (m *MaterialMapper) Indexes() []uint8 {
	indexes := make([]uint8, 0, len(m.byIndex))
	for index := range m.byIndex {
		indexes = append(indexes, index)
	}
	sort.Slice(indexes, func(i, j int) bool { return indexes[i] < indexes[j] })
	return indexes
}

// Clone returns an independent copy of the mapper. The dense builder hands
// one copy to every node payload.
func (m *MaterialMapper) Clone() *MaterialMapper {
	clone := &MaterialMapper{
		byIndex: make(map[uint8]Material, len(m.byIndex)),
		byID:    make(map[uint64]uint8, len(m.byID)),
		next:    m.next,
	}
	for index, mat := range m.byIndex {
		clone.byIndex[index] = mat
		clone.byID[mat.ID] = index
	}
	return clone
}
