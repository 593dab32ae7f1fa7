package geometry

import "github.com/df07/go-whitted-raytracer/pkg/core"

// Primitive is anything a ray can be tested against.
// Hit is the closest-hit form and fills a record; DoesHit is the any-hit
// form used for shadow rays and never builds a record.
type Primitive interface {
	Hit(ray core.Ray) (core.HitRecord, bool)
	DoesHit(ray core.Ray) bool
}

// epsilon guards the near-parallel checks of the triangle tests
const epsilon = 1e-7
