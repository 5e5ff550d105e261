package lights

import (
	"github.com/df07/go-raytracer-core/pkg/core"
	"github.com/df07/go-raytracer-core/pkg/geometry"
)

// Light interface for sources evaluated with the Phong local illumination model.
// Implementations never modify the hit.
type Light interface {
	// DiffuseLight returns the Lambert term at the hit
	DiffuseLight(hit geometry.Hit) core.Vec3

	// SpecularLight returns the Blinn-Phong highlight at the hit as seen along eyeRay.
	// eyeRay.Direction points from the eye toward the hit.
	SpecularLight(hit geometry.Hit, eyeRay core.Ray) core.Vec3
}

// Shade returns ambient + diffuse + specular for a single light.
// Reflection and the sum over several lights belong to the caller.
func Shade(light Light, hit geometry.Hit, eyeRay core.Ray) core.Vec3 {
	return hit.AmbientColor().
		Add(light.DiffuseLight(hit)).
		Add(light.SpecularLight(hit, eyeRay))
}
