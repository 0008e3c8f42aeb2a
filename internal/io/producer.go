package io

import (
	"sync"

	"github.com/voxelforge/svo_baker/internal/octree/voxel_tree"
)

type Producer interface {
	Produce(work chan *WorkUnit, wg *sync.WaitGroup, tree *voxel_tree.Tree)
}

type Consumer interface {
	Consume(work chan *WorkUnit, results chan *ChunkResult, errchan chan error, wg *sync.WaitGroup)
}
