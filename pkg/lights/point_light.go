package lights

import (
	"math"

	"github.com/df07/go-raytracer-core/pkg/core"
	"github.com/df07/go-raytracer-core/pkg/geometry"
)

// PointLight is an isotropic point source with no distance falloff
type PointLight struct {
	position core.Vec3
	color    core.Vec3 // RGB intensity
}

// NewPointLight creates a new point light
func NewPointLight(position, color core.Vec3) *PointLight {
	return &PointLight{position: position, color: color}
}

func (pl *PointLight) Position() core.Vec3 { return pl.position }
func (pl *PointLight) Color() core.Vec3    { return pl.color }

// toLight returns the unit direction from the hit point to the light.
// A hit point at the light position yields NaN.
func (pl *PointLight) toLight(hit geometry.Hit) core.Vec3 {
	return pl.position.Subtract(hit.Point).Normalize()
}

// DiffuseLight returns diffuse ⊙ light color scaled by max(0, N·L).
// Surfaces facing away from the light get black.
func (pl *PointLight) DiffuseLight(hit geometry.Hit) core.Vec3 {
	nl := math.Max(0, hit.Normal.Dot(pl.toLight(hit)))
	return hit.DiffuseColor().MultiplyVec(pl.color).Multiply(nl)
}

// SpecularLight returns specular ⊙ light color scaled by max(0, H·N)^exponent,
// with the half vector H = normalize(L - D). D is used as given.
func (pl *PointLight) SpecularLight(hit geometry.Hit, eyeRay core.Ray) core.Vec3 {
	half := pl.toLight(hit).Subtract(eyeRay.Direction).Normalize()
	coeff := math.Pow(math.Max(0, half.Dot(hit.Normal)), hit.SpecularExponent())
	return hit.SpecularColor().MultiplyVec(pl.color).Multiply(coeff)
}
