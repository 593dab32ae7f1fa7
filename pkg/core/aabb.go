package core

// AABB represents an axis-aligned bounding box
type AABB struct {
	Min Vec3 // Minimum corner
	Max Vec3 // Maximum corner
}

// NewAABB creates a new AABB from min and max points
func NewAABB(min, max Vec3) AABB {
	return AABB{Min: min, Max: max}
}

// NewAABBFromPoints creates an AABB that bounds all given points
func NewAABBFromPoints(points ...Vec3) AABB {
	if len(points) == 0 {
		return AABB{}
	}

	min := points[0]
	max := points[0]

	for _, point := range points[1:] {
		min.X = lesser(min.X, point.X)
		min.Y = lesser(min.Y, point.Y)
		min.Z = lesser(min.Z, point.Z)

		max.X = greater(max.X, point.X)
		max.Y = greater(max.Y, point.Y)
		max.Z = greater(max.Z, point.Z)
	}

	return AABB{Min: min, Max: max}
}

// SlabTest reports whether the ray's line passes through the box in front of its origin.
//
// Zero direction components are not special-cased: the divisions produce
// ±Inf (or NaN when the origin sits exactly on a slab) and the ordered
// comparisons below absorb them.
func (aabb AABB) SlabTest(ray Ray) bool {
	tx1 := (aabb.Min.X - ray.Origin.X) / ray.Direction.X
	tx2 := (aabb.Max.X - ray.Origin.X) / ray.Direction.X

	tmin := lesser(tx1, tx2)
	tmax := greater(tx1, tx2)

	ty1 := (aabb.Min.Y - ray.Origin.Y) / ray.Direction.Y
	ty2 := (aabb.Max.Y - ray.Origin.Y) / ray.Direction.Y

	tmin = greater(tmin, lesser(ty1, ty2))
	tmax = lesser(tmax, greater(ty1, ty2))

	tz1 := (aabb.Min.Z - ray.Origin.Z) / ray.Direction.Z
	tz2 := (aabb.Max.Z - ray.Origin.Z) / ray.Direction.Z

	tmin = greater(tmin, lesser(tz1, tz2))
	tmax = lesser(tmax, greater(tz1, tz2))

	return tmax > 0 && tmax >= tmin
}

// lesser and greater keep the first operand when the comparison is false,
// so a NaN in b never replaces a. The builtin min/max propagate NaN instead.
func lesser(a, b float64) float64 {
	if b < a {
		return b
	}
	return a
}

func greater(a, b float64) float64 {
	if a < b {
		return b
	}
	return a
}
