package voxel_tree

import (
	"github.com/voxelforge/svo_baker/internal/octree"
	"github.com/voxelforge/svo_baker/internal/voxel"
)

// Tree is the generic octree specialized to voxel payloads. A nil payload is
// the empty marker: the node holds nothing renderable. Empty markers appear
// both where the builder was never asked for data and where the pruner
// collapsed a node whose grid ended up empty; the tree does not distinguish
// the two.
type Tree = octree.Tree[*voxel.CellData]

// Node is one node of a voxel tree.
type Node = octree.Node[*voxel.CellData]

// IsEmptyMarker reports whether the node is an empty marker leaf.
func IsEmptyMarker(n *Node) bool {
	return n.IsLeaf() && n.Value == nil
}
