package geometry

import "github.com/df07/go-raytracer-core/pkg/core"

// Nearest intersects the ray with every primitive and returns the hit with the
// smallest t. On equal t the earlier primitive wins.
func Nearest(ray core.Ray, primitives ...Primitive) (Hit, bool) {
	var closest Hit
	hitAnything := false

	for _, p := range primitives {
		hit, ok := p.Intersect(ray)
		if !ok {
			continue
		}
		if !hitAnything || hit.T < closest.T {
			closest = hit
			hitAnything = true
		}
	}

	return closest, hitAnything
}
