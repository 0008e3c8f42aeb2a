package voxel

import (
	"bytes"
	"encoding/base64"
	"encoding/binary"
	"io"
	"sort"

	"github.com/klauspost/compress/zlib"
	"github.com/pkg/errors"

	"github.com/voxelforge/svo_baker/internal/geometry"
)

// Binary chunk codec for CellData payloads. Chunks are zlib compressed and
// usually base64 encoded on top, since the save document that embeds them is
// text based.

const codecVersion uint8 = 1

const shortNameBytes = 8

// Compress serializes the payload into a compressed binary chunk.
func Compress(c *CellData) ([]byte, error) {
	var raw bytes.Buffer

	if err := raw.WriteByte(codecVersion); err != nil {
		return nil, err
	}
	writeRange(&raw, c.Grid.InnerRange())
	writeRange(&raw, c.Grid.OuterRange())

	if err := writeMaterials(&raw, c.Grid); err != nil {
		return nil, err
	}
	if err := writeOffsets(&raw, c.Grid); err != nil {
		return nil, err
	}
	if err := writeMapping(&raw, c.Mapping); err != nil {
		return nil, err
	}

	var compressed bytes.Buffer
	zw := zlib.NewWriter(&compressed)
	if _, err := zw.Write(raw.Bytes()); err != nil {
		return nil, errors.Wrap(err, "compressing voxel chunk")
	}
	if err := zw.Close(); err != nil {
		return nil, errors.Wrap(err, "compressing voxel chunk")
	}
	return compressed.Bytes(), nil
}

// Decompress reconstructs a payload from a compressed binary chunk.
func Decompress(chunk []byte) (*CellData, error) {
	zr, err := zlib.NewReader(bytes.NewReader(chunk))
	if err != nil {
		return nil, errors.Wrap(err, "decompressing voxel chunk")
	}
	defer zr.Close()

	raw, err := io.ReadAll(zr)
	if err != nil {
		return nil, errors.Wrap(err, "decompressing voxel chunk")
	}
	buf := bytes.NewReader(raw)

	version, err := buf.ReadByte()
	if err != nil {
		return nil, errors.Wrap(err, "reading chunk header")
	}
	if version != codecVersion {
		return nil, errors.Errorf("unsupported chunk version %d", version)
	}

	inner, err := readRange(buf)
	if err != nil {
		return nil, err
	}
	outer, err := readRange(buf)
	if err != nil {
		return nil, err
	}
	grid := NewVertexGrid(outer, inner)

	if err := readMaterials(buf, grid); err != nil {
		return nil, err
	}
	if err := readOffsets(buf, grid); err != nil {
		return nil, err
	}
	mapping, err := readMapping(buf)
	if err != nil {
		return nil, err
	}

	return NewCellData(grid, mapping), nil
}

// EncodeChunk compresses the payload and renders it as base64 text, ready
// for embedding in a save document.
func EncodeChunk(c *CellData) (string, error) {
	chunk, err := Compress(c)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(chunk), nil
}

// DecodeChunk reconstructs a payload from one base64 chunk. This is the
// diagnostic decode path used by the parse-voxel command.
func DecodeChunk(encoded string) (*CellData, error) {
	chunk, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, errors.Wrap(err, "decoding base64 chunk")
	}
	return Decompress(chunk)
}

func writeRange(buf *bytes.Buffer, r geometry.Range) {
	binary.Write(buf, binary.LittleEndian, r.Origin.X)
	binary.Write(buf, binary.LittleEndian, r.Origin.Y)
	binary.Write(buf, binary.LittleEndian, r.Origin.Z)
	binary.Write(buf, binary.LittleEndian, r.Extent)
}

func readRange(buf *bytes.Reader) (geometry.Range, error) {
	var origin geometry.Vector3i
	var extent int32
	for _, field := range []*int32{&origin.X, &origin.Y, &origin.Z, &extent} {
		if err := binary.Read(buf, binary.LittleEndian, field); err != nil {
			return geometry.Range{}, errors.Wrap(err, "reading chunk range")
		}
	}
	return geometry.NewRangeWithExtent(origin, extent), nil
}

// Sparse cells are written sorted by local coordinate so encoding is
// deterministic. Local coordinates fit in a signed byte: the outer cube
// spans -1..33.
func sortedCells[V any](cells map[geometry.Vector3i]V) []geometry.Vector3i {
	keys := make([]geometry.Vector3i, 0, len(cells))
	for key := range cells {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		a, b := keys[i], keys[j]
		if a.Z != b.Z {
			return a.Z < b.Z
		}
		if a.Y != b.Y {
			return a.Y < b.Y
		}
		return a.X < b.X
	})
	return keys
}

func writeCell(buf *bytes.Buffer, local geometry.Vector3i) {
	buf.WriteByte(byte(int8(local.X)))
	buf.WriteByte(byte(int8(local.Y)))
	buf.WriteByte(byte(int8(local.Z)))
}

func readCell(buf *bytes.Reader) (geometry.Vector3i, error) {
	var raw [3]byte
	if _, err := io.ReadFull(buf, raw[:]); err != nil {
		return geometry.Vector3i{}, errors.Wrap(err, "reading chunk cell")
	}
	return geometry.NewVector3i(int32(int8(raw[0])), int32(int8(raw[1])), int32(int8(raw[2]))), nil
}

func writeMaterials(buf *bytes.Buffer, grid *VertexGrid) error {
	if err := binary.Write(buf, binary.LittleEndian, uint32(len(grid.materials))); err != nil {
		return err
	}
	for _, local := range sortedCells(grid.materials) {
		writeCell(buf, local)
		buf.WriteByte(grid.materials[local])
	}
	return nil
}

func readMaterials(buf *bytes.Reader, grid *VertexGrid) error {
	var count uint32
	if err := binary.Read(buf, binary.LittleEndian, &count); err != nil {
		return errors.Wrap(err, "reading material count")
	}
	for i := uint32(0); i < count; i++ {
		local, err := readCell(buf)
		if err != nil {
			return err
		}
		index, err := buf.ReadByte()
		if err != nil {
			return errors.Wrap(err, "reading material index")
		}
		grid.materials[local] = index
	}
	return nil
}

func writeOffsets(buf *bytes.Buffer, grid *VertexGrid) error {
	if err := binary.Write(buf, binary.LittleEndian, uint32(len(grid.offsets))); err != nil {
		return err
	}
	for _, local := range sortedCells(grid.offsets) {
		writeCell(buf, local)
		offset := grid.offsets[local]
		buf.Write(offset[:])
	}
	return nil
}

func readOffsets(buf *bytes.Reader, grid *VertexGrid) error {
	var count uint32
	if err := binary.Read(buf, binary.LittleEndian, &count); err != nil {
		return errors.Wrap(err, "reading offset count")
	}
	for i := uint32(0); i < count; i++ {
		local, err := readCell(buf)
		if err != nil {
			return err
		}
		var offset [3]uint8
		if _, err := io.ReadFull(buf, offset[:]); err != nil {
			return errors.Wrap(err, "reading offset value")
		}
		grid.offsets[local] = offset
	}
	return nil
}

func writeMapping(buf *bytes.Buffer, mapping *MaterialMapper) error {
	indexes := mapping.Indexes()
	if err := binary.Write(buf, binary.LittleEndian, uint8(len(indexes))); err != nil {
		return err
	}
	for _, index := range indexes {
		mat, _ := mapping.Get(index)
		buf.WriteByte(index)
		if err := binary.Write(buf, binary.LittleEndian, mat.ID); err != nil {
			return err
		}
		var name [shortNameBytes]byte
		copy(name[:], mat.ShortName)
		buf.Write(name[:])
	}
	return nil
}

func readMapping(buf *bytes.Reader) (*MaterialMapper, error) {
	var count uint8
	if err := binary.Read(buf, binary.LittleEndian, &count); err != nil {
		return nil, errors.Wrap(err, "reading mapping count")
	}
	mapping := &MaterialMapper{
		byIndex: make(map[uint8]Material),
		byID:    make(map[uint64]uint8),
		next:    FirstCallerIndex,
	}
	for i := uint8(0); i < count; i++ {
		index, err := buf.ReadByte()
		if err != nil {
			return nil, errors.Wrap(err, "reading mapping index")
		}
		var id uint64
		if err := binary.Read(buf, binary.LittleEndian, &id); err != nil {
			return nil, errors.Wrap(err, "reading mapping id")
		}
		var name [shortNameBytes]byte
		if _, err := io.ReadFull(buf, name[:]); err != nil {
			return nil, errors.Wrap(err, "reading mapping name")
		}
		mapping.Insert(index, Material{ID: id, ShortName: string(bytes.TrimRight(name[:], "\x00"))})
	}
	return mapping, nil
}
