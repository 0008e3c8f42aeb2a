package geometry

// Vector3i addresses a point on the integer voxel lattice.
// Coordinates may be negative since padded ranges shift their origin backward.
type Vector3i struct {
	X int32
	Y int32
	Z int32
}

func NewVector3i(x, y, z int32) Vector3i {
	return Vector3i{X: x, Y: y, Z: z}
}

func (v Vector3i) Add(other Vector3i) Vector3i {
	return Vector3i{X: v.X + other.X, Y: v.Y + other.Y, Z: v.Z + other.Z}
}

func (v Vector3i) Sub(other Vector3i) Vector3i {
	return Vector3i{X: v.X - other.X, Y: v.Y - other.Y, Z: v.Z - other.Z}
}

func (v Vector3i) AddScalar(s int32) Vector3i {
	return Vector3i{X: v.X + s, Y: v.Y + s, Z: v.Z + s}
}

func (v Vector3i) DivScalar(s int32) Vector3i {
	return Vector3i{X: v.X / s, Y: v.Y / s, Z: v.Z / s}
}

// IsDivisibleBy reports whether every component is an exact multiple of s.
// This is the LOD alignment test: a sample belongs to a given octree depth
// only when it lies on that depth's lattice.
func (v Vector3i) IsDivisibleBy(s int32) bool {
	return v.X%s == 0 && v.Y%s == 0 && v.Z%s == 0
}
