package pkg

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/segmentio/encoding/json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voxelforge/svo_baker/internal/baker"
	"github.com/voxelforge/svo_baker/internal/converters/decimal_snapper"
	"github.com/voxelforge/svo_baker/internal/geometry"
	"github.com/voxelforge/svo_baker/internal/io"
	"github.com/voxelforge/svo_baker/internal/voxel"
	"github.com/voxelforge/svo_baker/tools"
)

func TestMain(m *testing.M) {
	tools.DisableLogger()
	os.Exit(m.Run())
}

func bakeTestDocument(t *testing.T, content string) *Blueprint {
	t.Helper()
	dir := t.TempDir()
	input := filepath.Join(dir, "model.json")
	output := filepath.Join(dir, "model.blueprint")
	require.NoError(t, os.WriteFile(input, []byte(content), 0644))

	opts := &baker.BakerOptions{
		Input:      input,
		Output:     output,
		Name:       "model",
		Size:       baker.CoreSizeSmall,
		Type:       baker.CoreTypeDynamic,
		MaterialID: 1971262921,
		Command:    tools.CommandBake,
	}

	err := NewBaker(decimal_snapper.NewDecimalSnapper()).RunBaker(opts)
	require.NoError(t, err)

	rendered, err := os.ReadFile(output)
	require.NoError(t, err)

	var bp Blueprint
	require.NoError(t, json.Unmarshal(rendered, &bp))
	return &bp
}

func TestRunBakerWritesBlueprint(t *testing.T) {
	bp := bakeTestDocument(t, `{"materials": {"42": [[64, 64, 64]]}}`)

	assert.Equal(t, "model", bp.Name)
	assert.Equal(t, "DYNAMIC", bp.CoreType)
	assert.Equal(t, "SMALL", bp.CoreSize)
	assert.Equal(t, 5, bp.Height)
	assert.Equal(t, uint64(1971262921), bp.Material)

	// root range rebased into the output unit
	assert.Equal(t, [3]int32{0, 0, 0}, bp.Model.RangeOrigin)
	assert.Equal(t, int32(4), bp.Model.RangeExtent)

	// every live node ships a chunk, and the root carries the sample
	assert.Len(t, bp.Model.Chunks, bp.Model.LiveCount)
	assert.GreaterOrEqual(t, bp.Model.NodeCount, bp.Model.LiveCount)

	rootChunk, ok := bp.Model.Chunks[io.RootNodePath]
	require.True(t, ok)

	cell, err := voxel.DecodeChunk(rootChunk)
	require.NoError(t, err)

	index, ok := cell.Grid.MaterialAt(geometry.NewVector3i(64, 64, 64), 4)
	require.True(t, ok)
	assert.Equal(t, voxel.FirstCallerIndex, index)
	assert.False(t, cell.IsEmpty())
}

func TestRunBakerRejectsUnknownCoreSize(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "model.json")
	require.NoError(t, os.WriteFile(input, []byte(`{"positions": [[1, 2, 3]]}`), 0644))

	opts := &baker.BakerOptions{
		Input:      input,
		Output:     filepath.Join(dir, "model.blueprint"),
		Name:       "model",
		Size:       baker.CoreSize("HUGE"),
		Type:       baker.CoreTypeDynamic,
		MaterialID: 1971262921,
	}

	err := NewBaker(decimal_snapper.NewDecimalSnapper()).RunBaker(opts)
	assert.Error(t, err)
}

func TestRunBakerFailsOnMissingInput(t *testing.T) {
	dir := t.TempDir()
	opts := &baker.BakerOptions{
		Input:      filepath.Join(dir, "absent.json"),
		Output:     filepath.Join(dir, "model.blueprint"),
		Name:       "model",
		Size:       baker.CoreSizeSmall,
		Type:       baker.CoreTypeDynamic,
		MaterialID: 1971262921,
	}

	err := NewBaker(decimal_snapper.NewDecimalSnapper()).RunBaker(opts)
	assert.Error(t, err)
}

func TestDumpChunkRendersSummary(t *testing.T) {
	bp := bakeTestDocument(t, `{"materials": {"42": [[64, 64, 64]]}}`)

	rootChunk := bp.Model.Chunks[io.RootNodePath]
	summary, err := DumpChunk(rootChunk)
	require.NoError(t, err)

	assert.Contains(t, summary, `"inner_extent":32`)
	assert.Contains(t, summary, `"empty":false`)
	assert.Contains(t, summary, `"Debug1"`)
}

func TestDumpChunkRejectsGarbage(t *testing.T) {
	_, err := DumpChunk("not a chunk")
	assert.Error(t, err)
}
