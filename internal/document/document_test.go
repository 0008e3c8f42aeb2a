package document

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voxelforge/svo_baker/internal/voxel"
)

func TestParseRejectsEmptyDocument(t *testing.T) {
	_, err := Parse(strings.NewReader(`{}`))
	assert.Error(t, err)
}

func TestParseRejectsMalformedJSON(t *testing.T) {
	_, err := Parse(strings.NewReader(`{"positions": [[1,2`))
	assert.Error(t, err)
}

func TestParseRejectsBadPositionArity(t *testing.T) {
	_, err := Parse(strings.NewReader(`{"positions": [[1, 2]]}`))
	assert.Error(t, err)
}

func TestParseRejectsBadVertexArity(t *testing.T) {
	_, err := Parse(strings.NewReader(`{"positions": [[1,2,3]], "vertices": [[1,2,3,4]]}`))
	assert.Error(t, err)
}

func TestParseRejectsNonNumericMaterialKey(t *testing.T) {
	_, err := Parse(strings.NewReader(`{"materials": {"stone": [[1,2,3]]}}`))
	assert.Error(t, err)
}

func TestParseAcceptsMaterialMap(t *testing.T) {
	doc, err := Parse(strings.NewReader(`{
		"materials": {"42": [[64, 64, 64]], "7": [[0, 0, 0]]},
		"vertices": [[64, 64, 64, 10, 20, 30]]
	}`))
	require.NoError(t, err)

	assert.Equal(t, []uint64{7, 42}, doc.MaterialIDs())
	assert.Len(t, doc.Vertices, 1)
}

func TestBuildRegistryAssignsDocumentMaterialsFromTwo(t *testing.T) {
	doc, err := Parse(strings.NewReader(`{"materials": {"42": [[1, 2, 3]]}}`))
	require.NoError(t, err)

	registry := doc.BuildRegistry(voxel.Material{ID: 999, ShortName: "Material"})

	index, err := registry.IndexOf(42)
	require.NoError(t, err)
	assert.Equal(t, voxel.FirstCallerIndex, index)

	// the fallback is not registered when the document maps materials itself
	_, err = registry.IndexOf(999)
	assert.Error(t, err)
}

func TestBuildRegistryFallsBackForFlatPositions(t *testing.T) {
	doc, err := Parse(strings.NewReader(`{"positions": [[1, 2, 3]]}`))
	require.NoError(t, err)

	registry := doc.BuildRegistry(voxel.Material{ID: 999, ShortName: "Material"})

	index, err := registry.IndexOf(999)
	require.NoError(t, err)
	assert.Equal(t, voxel.FirstCallerIndex, index)
}
