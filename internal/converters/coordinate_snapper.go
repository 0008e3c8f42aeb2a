package converters

import "github.com/voxelforge/svo_baker/internal/geometry"

// CoordinateSnapper snaps floating point voxel-center coordinates onto the
// integer lattice before they are handed to the propagator.
type CoordinateSnapper interface {
	SnapCoordinate(x, y, z float64) geometry.Vector3i
}
