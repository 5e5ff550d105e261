package material

import (
	"fmt"
	"math"

	"github.com/df07/go-raytracer-core/pkg/core"
)

// Material holds the Phong surface parameters attached to a primitive.
// Colors are RGB stored in Vec3.
type Material struct {
	Diffuse          core.Vec3 // Diffuse color
	Ambient          core.Vec3 // Ambient color
	Specular         core.Vec3 // Specular color
	SpecularExponent float64   // Phong exponent, >= 0
	Reflectivity     float64   // Mirror coefficient in [0, 1]
}

// New creates a material and validates its scalar parameters
func New(diffuse, ambient, specular core.Vec3, specularExponent, reflectivity float64) (Material, error) {
	m := Material{
		Diffuse:          diffuse,
		Ambient:          ambient,
		Specular:         specular,
		SpecularExponent: specularExponent,
		Reflectivity:     reflectivity,
	}
	if err := m.Validate(); err != nil {
		return Material{}, err
	}
	return m, nil
}

// Matte returns a diffuse-only material with no specular or mirror term
func Matte(diffuse core.Vec3) Material {
	return Material{Diffuse: diffuse}
}

// Validate checks the specular exponent and reflectivity ranges
func (m Material) Validate() error {
	if math.IsNaN(m.SpecularExponent) || m.SpecularExponent < 0 {
		return fmt.Errorf("%w: specular exponent %g must be >= 0", core.ErrInvalidMaterial, m.SpecularExponent)
	}
	if math.IsNaN(m.Reflectivity) || m.Reflectivity < 0 || m.Reflectivity > 1 {
		return fmt.Errorf("%w: reflectivity %g must be in [0, 1]", core.ErrInvalidMaterial, m.Reflectivity)
	}
	return nil
}
