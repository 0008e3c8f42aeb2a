package io

import (
	"fmt"
	"sync"

	"github.com/voxelforge/svo_baker/internal/octree/voxel_tree"
)

// RootNodePath keys the root node's chunk in the blueprint.
const RootNodePath = "0"

type StandardProducer struct{}

func NewStandardProducer() *StandardProducer {
	return &StandardProducer{}
}

// Walks a pruned tree and submits one WorkUnit per node still carrying a
// payload. Should be called only once, on the tree root. Closes the work
// channel when the whole tree has been submitted.
func (p *StandardProducer) Produce(work chan *WorkUnit, wg *sync.WaitGroup, tree *voxel_tree.Tree) {
	p.produce(RootNodePath, tree.Root, work)
	close(work)
	wg.Done()
}

func (p *StandardProducer) produce(nodePath string, node *voxel_tree.Node, work chan *WorkUnit) {
	if node.Value != nil {
		work <- &WorkUnit{
			Cell:     node.Value,
			NodePath: nodePath,
		}
	}

	// empty markers are leaves, so pruned subtrees are never walked
	for i, child := range node.Children {
		p.produce(fmt.Sprintf("%s-%d", nodePath, i), child, work)
	}
}
