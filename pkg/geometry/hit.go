package geometry

import "github.com/df07/go-raytracer-core/pkg/core"

// Hit contains information about a ray-primitive intersection.
// Fields may be overwritten by the caller between shading passes.
type Hit struct {
	Object Primitive // Primitive that was struck, owned by the scene
	Normal core.Vec3 // Surface normal at the intersection
	T      float64   // Parameter t along the ray
	Point  core.Vec3 // World-space point of intersection
}

// NewHit creates a new hit record
func NewHit(object Primitive, normal core.Vec3, t float64, point core.Vec3) Hit {
	return Hit{Object: object, Normal: normal, T: t, Point: point}
}

// Copy returns a shallow copy that shares the primitive
func (h Hit) Copy() Hit {
	return h
}

func (h *Hit) SetObject(object Primitive) { h.Object = object }
func (h *Hit) SetNormal(normal core.Vec3) { h.Normal = normal }
func (h *Hit) SetPoint(point core.Vec3)   { h.Point = point }

// DiffuseColor returns the diffuse color of the struck primitive
func (h Hit) DiffuseColor() core.Vec3 {
	return h.Object.Material().Diffuse
}

// AmbientColor returns the ambient color of the struck primitive
func (h Hit) AmbientColor() core.Vec3 {
	return h.Object.Material().Ambient
}

// SpecularColor returns the specular color of the struck primitive
func (h Hit) SpecularColor() core.Vec3 {
	return h.Object.Material().Specular
}

func (h Hit) SpecularExponent() float64 {
	return h.Object.Material().SpecularExponent
}

func (h Hit) Reflectivity() float64 {
	return h.Object.Material().Reflectivity
}
