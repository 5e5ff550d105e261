package material

import (
	"errors"
	"math"
	"testing"

	"github.com/df07/go-raytracer-core/pkg/core"
)

func TestNew_Validation(t *testing.T) {
	red := core.NewVec3(1, 0, 0)

	tests := []struct {
		name         string
		exponent     float64
		reflectivity float64
		expectError  bool
	}{
		{"plain", 0, 0, false},
		{"shiny mirror", 64, 1, false},
		{"negative exponent", -1, 0.5, true},
		{"NaN exponent", math.NaN(), 0.5, true},
		{"reflectivity above one", 10, 1.5, true},
		{"negative reflectivity", 10, -0.1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := New(red, red, red, tt.exponent, tt.reflectivity)
			if tt.expectError {
				if !errors.Is(err, core.ErrInvalidMaterial) {
					t.Errorf("Expected ErrInvalidMaterial, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if m.SpecularExponent != tt.exponent || m.Reflectivity != tt.reflectivity {
				t.Errorf("Parameters not stored: %+v", m)
			}
		})
	}
}

func TestMatte(t *testing.T) {
	m := Matte(core.NewVec3(0.5, 0.5, 0.5))
	if m.Specular != (core.Vec3{}) || m.Reflectivity != 0 {
		t.Errorf("Expected no specular or mirror term, got %+v", m)
	}
	if err := m.Validate(); err != nil {
		t.Errorf("Matte material should validate: %v", err)
	}
}
