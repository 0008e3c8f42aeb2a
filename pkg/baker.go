package pkg

import (
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"github.com/pkg/errors"

	"github.com/voxelforge/svo_baker/internal/baker"
	"github.com/voxelforge/svo_baker/internal/converters"
	"github.com/voxelforge/svo_baker/internal/document"
	"github.com/voxelforge/svo_baker/internal/geometry"
	"github.com/voxelforge/svo_baker/internal/io"
	"github.com/voxelforge/svo_baker/internal/octree/voxel_tree"
	"github.com/voxelforge/svo_baker/internal/voxel"
	"github.com/voxelforge/svo_baker/tools"
)

type IBaker interface {
	RunBaker(opts *baker.BakerOptions) error
}

type Baker struct {
	snapper converters.CoordinateSnapper
}

func NewBaker(snapper converters.CoordinateSnapper) IBaker {
	return &Baker{
		snapper: snapper,
	}
}

// Starts the bake: parses the input document, builds the dense octree,
// propagates every sample at all levels of detail, prunes empty subtrees
// and writes the assembled blueprint.
func (b *Baker) RunBaker(opts *baker.BakerOptions) error {
	tools.LogOutput("> reading input document...", filepath.Base(opts.Input))
	doc, err := b.readDocument(opts.Input)
	if err != nil {
		return err
	}

	height := opts.Size.Height()
	if height < voxel_tree.MinHeight {
		return errors.Errorf("core size %q maps to height %d, below minimum %d", opts.Size, height, voxel_tree.MinHeight)
	}

	registry := doc.BuildRegistry(voxel.Material{ID: opts.MaterialID, ShortName: "Material"})

	tools.LogOutput("> building dense octree...", "height:", height)
	tree := voxel_tree.BuildDense(geometry.Vector3i{}, height, registry)

	importer := document.NewImporter(b.snapper)
	if err := importer.Ingest(doc, tree, height, registry, opts.MaterialID); err != nil {
		return err
	}

	tools.LogOutput("> pruning empty subtrees...")
	pruned := voxel_tree.Prune(tree)

	// rebase the root range into the output unit
	pruned.Range = pruned.Range.Rescale(voxel_tree.LeafGranularity)

	tools.LogOutput("> encoding chunks...")
	chunks, err := b.encodeChunks(pruned)
	if err != nil {
		return err
	}

	bp := NewBlueprint(opts, pruned, chunks)
	rendered, err := bp.ToJSON()
	if err != nil {
		return err
	}
	if err := os.WriteFile(opts.Output, rendered, 0644); err != nil {
		return errors.Wrap(err, "writing blueprint file")
	}

	tools.LogOutput("> wrote", len(chunks), "chunks to", opts.Output)
	return nil
}

func (b *Baker) readDocument(input string) (*document.Document, error) {
	file, err := os.Open(input)
	if err != nil {
		return nil, errors.Wrap(err, "opening input document")
	}
	defer file.Close()

	return document.Parse(file)
}

// encodeChunks walks the pruned tree and encodes every live payload into a
// base64 chunk, keyed by node path. The tree is no longer mutated at this
// point, so encoding fans out over all CPUs.
func (b *Baker) encodeChunks(tree *voxel_tree.Tree) (map[string]string, error) {
	workers := runtime.NumCPU()

	work := make(chan *io.WorkUnit, workers*2)
	results := make(chan *io.ChunkResult, workers*2)
	errchan := make(chan error, workers)

	var producerWG sync.WaitGroup
	producerWG.Add(1)
	go io.NewStandardProducer().Produce(work, &producerWG, tree)

	var consumerWG sync.WaitGroup
	for i := 0; i < workers; i++ {
		consumerWG.Add(1)
		go io.NewStandardConsumer().Consume(work, results, errchan, &consumerWG)
	}

	go func() {
		producerWG.Wait()
		consumerWG.Wait()
		close(results)
		close(errchan)
	}()

	chunks := make(map[string]string)
	for result := range results {
		chunks[result.NodePath] = result.Chunk
	}
	for err := range errchan {
		return nil, err
	}

	return chunks, nil
}
