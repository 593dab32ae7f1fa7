package core

import "math"

// HitRecord is the result of a single intersection query
type HitRecord struct {
	DidHit        bool
	Origin        Vec3 // World-space hit point
	Normal        Vec3 // Unit surface normal
	T             float64
	MaterialIndex int
}

// NewHitRecord returns an empty record whose T loses to any real hit
func NewHitRecord() HitRecord {
	return HitRecord{T: math.MaxFloat64}
}

// Closer returns candidate if it hit strictly nearer than h, otherwise h
func (h HitRecord) Closer(candidate HitRecord) HitRecord {
	if candidate.DidHit && candidate.T < h.T {
		return candidate
	}
	return h
}
