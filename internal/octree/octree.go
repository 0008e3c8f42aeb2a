package octree

import (
	"fmt"

	"github.com/voxelforge/svo_baker/internal/geometry"
)

// Verdict is the decision a Classifier takes for a node range during
// construction.
type Verdict int

const (
	// VerdictLeaf stops the recursion and produces a leaf node.
	VerdictLeaf Verdict = iota
	// VerdictSubdivide produces an internal node and recurses into the
	// 8 octants of the range.
	VerdictSubdivide
)

// Classifier decides, for the range a node spans, whether the node is a leaf
// or subdivides further, and produces the payload stored at that node either
// way. Payload lives at every node, not only at leaves, which is what lets a
// single coordinate be written at several resolutions at once.
type Classifier[T any] func(r geometry.Range) (T, Verdict)

// Combiner folds a node into a result. children is nil for leaf nodes and
// holds exactly 8 ordered child results for internal nodes, letting the
// combiner distinguish the base case from the recursive case.
type Combiner[T, R any] func(r geometry.Range, value T, children []R) R

// Node is one node of a sparse voxel octree. A leaf has no children; an
// internal node owns exactly 8. Children are never shared between parents
// and never reference back up the tree.
type Node[T any] struct {
	Value    T
	Children []*Node[T]
}

func NewLeaf[T any](value T) *Node[T] {
	return &Node[T]{Value: value}
}

func NewInternal[T any](value T, children []*Node[T]) *Node[T] {
	if len(children) != 8 {
		panic(fmt.Sprintf("octree: internal node requires 8 children, got %d", len(children)))
	}
	return &Node[T]{Value: value, Children: children}
}

func (n *Node[T]) IsLeaf() bool {
	return n.Children == nil
}

// Tree pairs a root node with the cubic range it spans. Every descendant's
// range is implicit from recursive octant splitting of the root range.
type Tree[T any] struct {
	Root  *Node[T]
	Range geometry.Range
}

// Build constructs a tree top-down from a classifier. The extent must be a
// non zero power of two; anything else is a contract violation that aborts
// the build.
func Build[T any](origin geometry.Vector3i, extent int32, classify Classifier[T]) *Tree[T] {
	r := geometry.NewRangeWithExtent(origin, extent)
	if !r.IsPowerOfTwoExtent() {
		panic(fmt.Sprintf("octree: extent %d is not a non-zero power of two", extent))
	}
	return &Tree[T]{
		Root:  buildNode(r, classify),
		Range: r,
	}
}

func buildNode[T any](r geometry.Range, classify Classifier[T]) *Node[T] {
	value, verdict := classify(r)
	if verdict == VerdictLeaf {
		return NewLeaf(value)
	}
	octants := r.SplitOctants()
	children := make([]*Node[T], 8)
	for i := range octants {
		children[i] = buildNode(octants[i], classify)
	}
	return NewInternal(value, children)
}

// Fold runs a bottom-up catamorphism over the tree. Aggregate computations
// (sizes, emptiness checks, serialization walks) go through here instead of
// hand written recursion at every call site.
func Fold[T, R any](t *Tree[T], combine Combiner[T, R]) R {
	return foldNode(t.Root, t.Range, combine)
}

func foldNode[T, R any](n *Node[T], r geometry.Range, combine Combiner[T, R]) R {
	if n.IsLeaf() {
		return combine(r, n.Value, nil)
	}
	octants := r.SplitOctants()
	results := make([]R, 8)
	for i := range octants {
		results[i] = foldNode(n.Children[i], octants[i], combine)
	}
	return combine(r, n.Value, results)
}

// Map consumes the tree and produces one of a different payload type with
// the exact same leaf/internal structure and range assignment. The original
// payloads are handed to the transform and must not be used afterwards.
func Map[T, R any](t *Tree[T], transform func(T) R) *Tree[R] {
	return &Tree[R]{
		Root:  mapNode(t.Root, transform),
		Range: t.Range,
	}
}

func mapNode[T, R any](n *Node[T], transform func(T) R) *Node[R] {
	if n.IsLeaf() {
		return NewLeaf(transform(n.Value))
	}
	children := make([]*Node[R], 8)
	for i := range n.Children {
		children[i] = mapNode(n.Children[i], transform)
	}
	return NewInternal(transform(n.Value), children)
}
