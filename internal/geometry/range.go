package geometry

// Range is an axis aligned cubic region of the voxel lattice, spanning
// [Origin, Origin+Extent) on every axis. Extent is kept a power of two at
// every subdivision level so that octant splitting never produces a
// fractional edge.
type Range struct {
	Origin Vector3i
	Extent int32
}

// Builds a cubic Range from its origin corner and edge length.
func NewRangeWithExtent(origin Vector3i, extent int32) Range {
	return Range{Origin: origin, Extent: extent}
}

// IsPowerOfTwoExtent reports whether the range has a non zero, power of two
// edge length. Ranges violating this cannot be subdivided losslessly.
func (r Range) IsPowerOfTwoExtent() bool {
	return r.Extent > 0 && r.Extent&(r.Extent-1) == 0
}

// Contains reports whether the given lattice point lies inside the range.
// The test is half open: a point sitting exactly on the far face belongs to
// the neighboring range, unless padding is applied first.
func (r Range) Contains(p Vector3i) bool {
	return p.X >= r.Origin.X && p.X < r.Origin.X+r.Extent &&
		p.Y >= r.Origin.Y && p.Y < r.Origin.Y+r.Extent &&
		p.Z >= r.Origin.Z && p.Z < r.Origin.Z+r.Extent
}

// Padded returns the range grown by margin units on every side. The origin
// shifts backward, so padded ranges routinely have negative coordinates.
func (r Range) Padded(margin int32) Range {
	return Range{
		Origin: r.Origin.AddScalar(-margin),
		Extent: r.Extent + 2*margin,
	}
}

// SplitOctants subdivides the range into its 8 half-edge octants.
// The octant order is fixed and must match child storage order everywhere:
// index = x + 2y + 4z, with x varying fastest. The octants tile the parent
// exactly, with no gaps or overlaps.
func (r Range) SplitOctants() [8]Range {
	half := r.Extent / 2
	var octants [8]Range
	for i := int32(0); i < 8; i++ {
		offset := Vector3i{
			X: (i & 1) * half,
			Y: ((i >> 1) & 1) * half,
			Z: ((i >> 2) & 1) * half,
		}
		octants[i] = Range{Origin: r.Origin.Add(offset), Extent: half}
	}
	return octants
}

// Rescale divides both origin and edge by the given factor, rebasing the
// range into a coarser coordinate unit. Used once per bake to express the
// root range in the output unit after ingestion.
func (r Range) Rescale(divisor int32) Range {
	return Range{
		Origin: r.Origin.DivScalar(divisor),
		Extent: r.Extent / divisor,
	}
}
