package pkg

import (
	"github.com/pkg/errors"
	"github.com/segmentio/encoding/json"

	"github.com/voxelforge/svo_baker/internal/baker"
	"github.com/voxelforge/svo_baker/internal/geometry"
	"github.com/voxelforge/svo_baker/internal/octree"
	"github.com/voxelforge/svo_baker/internal/octree/voxel_tree"
	"github.com/voxelforge/svo_baker/internal/voxel"
)

// Blueprint is the save document embedding the baked octree. Chunks are
// text encoded, keyed by octant path from the root.
type Blueprint struct {
	Name     string         `json:"name"`
	CoreType string         `json:"core_type"`
	CoreSize string         `json:"core_size"`
	Height   int            `json:"height"`
	Material uint64         `json:"material"`
	Model    BlueprintModel `json:"model"`
}

type BlueprintModel struct {
	RangeOrigin [3]int32          `json:"range_origin"`
	RangeExtent int32             `json:"range_extent"`
	NodeCount   int               `json:"node_count"`
	LiveCount   int               `json:"live_count"`
	Chunks      map[string]string `json:"chunks"`
}

func NewBlueprint(opts *baker.BakerOptions, tree *voxel_tree.Tree, chunks map[string]string) *Blueprint {
	total, live := countNodes(tree)
	return &Blueprint{
		Name:     opts.Name,
		CoreType: opts.Type.String(),
		CoreSize: opts.Size.String(),
		Height:   opts.Size.Height(),
		Material: opts.MaterialID,
		Model: BlueprintModel{
			RangeOrigin: [3]int32{tree.Range.Origin.X, tree.Range.Origin.Y, tree.Range.Origin.Z},
			RangeExtent: tree.Range.Extent,
			NodeCount:   total,
			LiveCount:   live,
			Chunks:      chunks,
		},
	}
}

func (bp *Blueprint) ToJSON() ([]byte, error) {
	rendered, err := json.Marshal(bp)
	if err != nil {
		return nil, errors.Wrap(err, "rendering blueprint")
	}
	return rendered, nil
}

type nodeCounts struct {
	total int
	live  int
}

// countNodes aggregates tree statistics with a single fold.
func countNodes(tree *voxel_tree.Tree) (int, int) {
	counts := octree.Fold(tree, func(r geometry.Range, cell *voxel.CellData, children []nodeCounts) nodeCounts {
		c := nodeCounts{total: 1}
		if cell != nil {
			c.live = 1
		}
		for _, child := range children {
			c.total += child.total
			c.live += child.live
		}
		return c
	})
	return counts.total, counts.live
}
