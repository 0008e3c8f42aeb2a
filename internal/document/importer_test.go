package document

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voxelforge/svo_baker/internal/converters/decimal_snapper"
	"github.com/voxelforge/svo_baker/internal/geometry"
	"github.com/voxelforge/svo_baker/internal/octree/voxel_tree"
	"github.com/voxelforge/svo_baker/internal/voxel"
)

const fallbackID uint64 = 1971262921

func TestMaterialSamplesSnapPositions(t *testing.T) {
	doc, err := Parse(strings.NewReader(`{"materials": {"42": [[63.6, 64.4, -0.5]]}}`))
	require.NoError(t, err)

	registry := doc.BuildRegistry(voxel.Material{ID: fallbackID, ShortName: "Material"})
	importer := NewImporter(decimal_snapper.NewDecimalSnapper())

	samples, err := importer.MaterialSamples(doc, registry, fallbackID)
	require.NoError(t, err)
	require.Len(t, samples, 1)

	assert.Equal(t, geometry.NewVector3i(64, 64, -1), samples[0].Position)
	assert.Equal(t, voxel.FirstCallerIndex, samples[0].Material)
}

func TestMaterialSamplesUnknownIdentifierFails(t *testing.T) {
	doc, err := Parse(strings.NewReader(`{"materials": {"42": [[1, 2, 3]]}}`))
	require.NoError(t, err)

	// a registry built elsewhere that never saw material 42
	registry := voxel.NewMaterialMapper()
	importer := NewImporter(decimal_snapper.NewDecimalSnapper())

	_, err = importer.MaterialSamples(doc, registry, fallbackID)
	assert.Error(t, err)
}

func TestIngestRecordsMaterialAndOverridesOffset(t *testing.T) {
	doc, err := Parse(strings.NewReader(`{
		"materials": {"42": [[40.2, 39.9, 40.0]]},
		"vertices": [[40, 40, 40, 10, 20, 30]]
	}`))
	require.NoError(t, err)

	registry := doc.BuildRegistry(voxel.Material{ID: fallbackID, ShortName: "Material"})
	tree := voxel_tree.BuildDense(geometry.Vector3i{}, 5, registry)

	importer := NewImporter(decimal_snapper.NewDecimalSnapper())
	require.NoError(t, importer.Ingest(doc, tree, 5, registry, fallbackID))

	pos := geometry.NewVector3i(40, 40, 40)
	leaf := findLeaf(tree, pos)
	require.NotNil(t, leaf)

	index, ok := leaf.Value.Grid.MaterialAt(pos, 1)
	require.True(t, ok)
	assert.Equal(t, voxel.FirstCallerIndex, index)

	// the explicit record overrides the seeded default at the sample corner
	offset, ok := leaf.Value.Grid.VertexOffsetAt(pos, 1)
	require.True(t, ok)
	assert.Equal(t, [3]uint8{10, 20, 30}, offset)

	// neighboring seeded corners keep the default
	offset, ok = leaf.Value.Grid.VertexOffsetAt(pos.AddScalar(-1), 1)
	require.True(t, ok)
	assert.Equal(t, voxel.DefaultVertexOffset, offset)
}

func findLeaf(tree *voxel_tree.Tree, pos geometry.Vector3i) *voxel_tree.Node {
	node := tree.Root
	r := tree.Range
	for !node.IsLeaf() {
		octants := r.SplitOctants()
		found := false
		for i, octant := range octants {
			if octant.Contains(pos) {
				node = node.Children[i]
				r = octants[i]
				found = true
				break
			}
		}
		if !found {
			return nil
		}
	}
	return node
}
