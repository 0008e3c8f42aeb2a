package io

import (
	"sync"

	"github.com/pkg/errors"

	"github.com/voxelforge/svo_baker/internal/voxel"
)

// StandardConsumer encodes node payloads into base64 chunks. The tree is
// read-only after pruning, so any number of consumers can encode payloads
// concurrently.
type StandardConsumer struct{}

func NewStandardConsumer() *StandardConsumer {
	return &StandardConsumer{}
}

// Continually consumes WorkUnits from the work channel until it is closed
// by the producer, submitting encoded chunks to the results channel. On an
// encoding error it reports the error and quits.
func (c *StandardConsumer) Consume(work chan *WorkUnit, results chan *ChunkResult, errchan chan error, wg *sync.WaitGroup) {
	for unit := range work {
		encoded, err := voxel.EncodeChunk(unit.Cell)
		if err != nil {
			errchan <- errors.Wrapf(err, "encoding chunk for node %s", unit.NodePath)
			break
		}
		results <- &ChunkResult{
			NodePath: unit.NodePath,
			Chunk:    encoded,
		}
	}
	wg.Done()
}
