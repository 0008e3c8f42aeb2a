package document

import (
	"strconv"

	"github.com/pkg/errors"

	"github.com/voxelforge/svo_baker/internal/converters"
	"github.com/voxelforge/svo_baker/internal/data"
	"github.com/voxelforge/svo_baker/internal/geometry"
	"github.com/voxelforge/svo_baker/internal/octree/voxel_tree"
	"github.com/voxelforge/svo_baker/internal/voxel"
	"github.com/voxelforge/svo_baker/tools"
)

// Importer turns a parsed document into propagator samples and writes them
// into a dense voxel tree.
type Importer struct {
	snapper converters.CoordinateSnapper
}

func NewImporter(snapper converters.CoordinateSnapper) *Importer {
	return &Importer{snapper: snapper}
}

// MaterialSamples resolves every document position into a lattice sample
// carrying its registry material index. A position under an identifier the
// registry does not know is a contract violation.
func (imp *Importer) MaterialSamples(doc *Document, registry *voxel.MaterialMapper, fallbackID uint64) ([]*data.MaterialSample, error) {
	var samples []*data.MaterialSample

	for _, id := range doc.MaterialIDs() {
		index, err := registry.IndexOf(id)
		if err != nil {
			return nil, err
		}
		for _, pos := range doc.Materials[strconv.FormatUint(id, 10)] {
			samples = append(samples, data.NewMaterialSample(imp.snapPosition(pos), index))
		}
	}

	if len(doc.Positions) > 0 {
		index, err := registry.IndexOf(fallbackID)
		if err != nil {
			return nil, err
		}
		for _, pos := range doc.Positions {
			samples = append(samples, data.NewMaterialSample(imp.snapPosition(pos), index))
		}
	}

	return samples, nil
}

// OffsetSamples converts the document's 6-component vertex records into
// explicit corner displacement samples.
func (imp *Importer) OffsetSamples(doc *Document) []*data.OffsetSample {
	samples := make([]*data.OffsetSample, 0, len(doc.Vertices))
	for _, vert := range doc.Vertices {
		offset := [3]uint8{uint8(vert[3]), uint8(vert[4]), uint8(vert[5])}
		samples = append(samples, data.NewOffsetSample(imp.snapPosition(vert[:3]), offset))
	}
	return samples
}

// Ingest propagates every document sample into the tree: material samples
// first, so the explicit offset records can override the default corner
// offsets the material stamps seed.
func (imp *Importer) Ingest(doc *Document, tree *voxel_tree.Tree, height int, registry *voxel.MaterialMapper, fallbackID uint64) error {
	materials, err := imp.MaterialSamples(doc, registry, fallbackID)
	if err != nil {
		return errors.Wrap(err, "resolving material samples")
	}
	offsets := imp.OffsetSamples(doc)

	tools.LogOutput("> propagating", len(materials), "material samples")
	for _, sample := range materials {
		voxel_tree.Propagate(tree, sample.Position, height, voxel_tree.MaterialStamp(sample.Material))
	}

	tools.LogOutput("> propagating", len(offsets), "offset samples")
	for _, sample := range offsets {
		voxel_tree.Propagate(tree, sample.Position, height, voxel_tree.OffsetStamp(sample.Offset))
	}

	return nil
}

func (imp *Importer) snapPosition(pos []float64) geometry.Vector3i {
	return imp.snapper.SnapCoordinate(pos[0], pos[1], pos[2])
}
