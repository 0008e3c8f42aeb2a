package voxel_tree

import (
	"github.com/golang/glog"

	"github.com/voxelforge/svo_baker/internal/geometry"
	"github.com/voxelforge/svo_baker/internal/voxel"
)

// StampKind enumerates the mutations the propagator can apply to a node
// payload. Dispatching on a data value instead of an opaque callback keeps
// the traversal testable.
type StampKind int

const (
	// StampKindMaterial writes a material index at the sample position and
	// seeds the neutral default offset at the 8 surrounding lattice corners.
	StampKindMaterial StampKind = iota
	// StampKindOffset writes an explicit corner displacement at the sample
	// position, overriding any previously seeded default.
	StampKindOffset
)

// Stamp is one mutation to apply at every LOD-aligned node containing a
// sample.
type Stamp struct {
	Kind     StampKind
	Material uint8
	Offset   [3]uint8
}

func MaterialStamp(index uint8) Stamp {
	return Stamp{Kind: StampKindMaterial, Material: index}
}

func OffsetStamp(offset [3]uint8) Stamp {
	return Stamp{Kind: StampKindOffset, Offset: offset}
}

// Propagate writes one global voxel sample redundantly into every node of
// the tree whose padded range contains it, at every depth, so that each
// depth stays independently renderable.
//
// The traversal is a full top-down walk, not a point descent: at each node
// the range is padded by the current depth's lattice spacing before the
// containment test, because a node's exact box may geometrically exclude a
// sample whose boundary data it still needs for corner interpolation.
// Subtrees whose padded range misses the sample are skipped outright, which
// bounds the real cost well below full-tree size. The payload is mutated
// only when all three sample components lie on the depth's lattice, and
// children always get their own independent alignment test.
func Propagate(tree *Tree, pos geometry.Vector3i, height int, stamp Stamp) {
	propagateNode(tree.Root, tree.Range, pos, InitialScale(height), stamp)
}

func propagateNode(node *Node, r geometry.Range, pos geometry.Vector3i, scale int32, stamp Stamp) {
	if !r.Padded(scale).Contains(pos) {
		// Expected for samples on faces shared between sibling octants.
		glog.V(2).Infof("sample %v outside padded range %v at scale %d", pos, r, scale)
		return
	}

	// The propagator never creates a payload, only mutates existing ones.
	if pos.IsDivisibleBy(scale) && node.Value != nil {
		applyStamp(node.Value, pos, scale, stamp)
	}

	if node.IsLeaf() {
		return
	}
	octants := r.SplitOctants()
	for i := range octants {
		propagateNode(node.Children[i], octants[i], pos, scale/2, stamp)
	}
}

func applyStamp(cell *voxel.CellData, pos geometry.Vector3i, scale int32, stamp Stamp) {
	switch stamp.Kind {
	case StampKindMaterial:
		cell.SetMaterialAt(pos, scale, stamp.Material)
		for dz := int32(0); dz <= 1; dz++ {
			for dy := int32(0); dy <= 1; dy++ {
				for dx := int32(0); dx <= 1; dx++ {
					corner := pos.Sub(geometry.NewVector3i(dx, dy, dz))
					cell.SetVertexOffsetAt(corner, scale, voxel.DefaultVertexOffset)
				}
			}
		}
	case StampKindOffset:
		cell.SetVertexOffsetAt(pos, scale, stamp.Offset)
	}
}
