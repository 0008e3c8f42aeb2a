package decimal_snapper

import (
	"github.com/shopspring/decimal"

	"github.com/voxelforge/svo_baker/internal/converters"
	"github.com/voxelforge/svo_baker/internal/geometry"
)

// DecimalSnapper rounds each coordinate component to the nearest integer,
// half away from zero, using exact decimal arithmetic. Doing this in binary
// floating point misrounds values like 0.49999999999999994.
type DecimalSnapper struct{}

func NewDecimalSnapper() converters.CoordinateSnapper {
	return &DecimalSnapper{}
}

func (s *DecimalSnapper) SnapCoordinate(x, y, z float64) geometry.Vector3i {
	return geometry.NewVector3i(snap(x), snap(y), snap(z))
}

func snap(v float64) int32 {
	return int32(decimal.NewFromFloat(v).Round(0).IntPart())
}
