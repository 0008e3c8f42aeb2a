package voxel_tree

import (
	"github.com/voxelforge/svo_baker/internal/geometry"
	"github.com/voxelforge/svo_baker/internal/octree"
	"github.com/voxelforge/svo_baker/internal/voxel"
)

// Prune collapses subtrees carrying no renderable data into empty marker
// leaves, bottom-up:
//
//   - a leaf whose grid is empty becomes an empty marker;
//   - an internal node with no payload becomes an empty marker outright;
//   - an internal node whose 8 pruned children are all empty markers
//     becomes an empty marker;
//   - anything else is kept with its original payload and pruned children.
//
// Pruning never changes depth or child count at surviving internal nodes,
// so index-based addressing of the tree stays valid. It is idempotent.
func Prune(t *Tree) *Tree {
	root := octree.Fold(t, func(r geometry.Range, cell *voxel.CellData, children []*Node) *Node {
		if children == nil {
			if cell == nil || cell.IsEmpty() {
				return emptyMarker()
			}
			return octree.NewLeaf(cell)
		}
		if cell == nil || allEmptyMarkers(children) {
			return emptyMarker()
		}
		return octree.NewInternal(cell, children)
	})
	return &Tree{Root: root, Range: t.Range}
}

func emptyMarker() *Node {
	return octree.NewLeaf[*voxel.CellData](nil)
}

func allEmptyMarkers(children []*Node) bool {
	for _, child := range children {
		if !IsEmptyMarker(child) {
			return false
		}
	}
	return true
}
