// Package alignment supplies the transform between raw mesh-local
// coordinates and user-aligned scene coordinates, plus the opaque settings
// mapping the plane model persists on its behalf.
package alignment

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"
)

// Adapter maps positions between raw mesh-local coordinates and scene
// coordinates, and owns its own settings mapping.
type Adapter interface {
	// SceneTransformationFromAdjustedPosition maps a raw position into
	// scene coordinates.
	SceneTransformationFromAdjustedPosition(raw r3.Vec) r3.Vec

	// SceneTransformationToAdjustedPosition maps a scene position back into
	// raw coordinates. It is the inverse of the forward transform.
	SceneTransformationToAdjustedPosition(scene r3.Vec) r3.Vec

	// AlignSettings returns the adapter's current settings mapping.
	AlignSettings() map[string]any

	// SetAlignSettings merges a partial settings mapping into the adapter's
	// state. Unrecognized keys are preserved and round-tripped.
	SetAlignSettings(settings map[string]any) error
}

// Settings keys understood by the rigid adapter.
const (
	KeyEulerAngles = "euler-angles" // [3]float64, degrees, applied X then Y then Z
	KeyScale       = "scale"        // float64, uniform, > 0
	KeyOffset      = "offset"       // [3]float64, scene-coordinate translation
)

// RigidAdapter is a rotation/uniform-scale/translation alignment:
//
//	scene = R(euler) * (raw * scale) + offset
//
// The zero settings are the identity transform.
type RigidAdapter struct {
	eulerDeg [3]float64
	scale    float64
	offset   r3.Vec

	// extra holds settings keys this adapter does not interpret, preserved
	// so partial updates never drop a collaborator's state.
	extra map[string]any

	rotation *mat.Dense
	inverse  *mat.Dense
}

// NewRigidAdapter returns an identity alignment.
func NewRigidAdapter() *RigidAdapter {
	a := &RigidAdapter{
		scale: 1,
		extra: make(map[string]any),
	}
	a.refreshRotation()
	return a
}

// SceneTransformationFromAdjustedPosition maps raw into scene coordinates.
func (a *RigidAdapter) SceneTransformationFromAdjustedPosition(raw r3.Vec) r3.Vec {
	scaled := r3.Scale(a.scale, raw)
	return r3.Add(mulVec(a.rotation, scaled), a.offset)
}

// SceneTransformationToAdjustedPosition maps scene back into raw coordinates.
func (a *RigidAdapter) SceneTransformationToAdjustedPosition(scene r3.Vec) r3.Vec {
	shifted := r3.Sub(scene, a.offset)
	return r3.Scale(1/a.scale, mulVec(a.inverse, shifted))
}

// AlignSettings returns the adapter's settings, including preserved
// unrecognized keys.
func (a *RigidAdapter) AlignSettings() map[string]any {
	out := make(map[string]any, len(a.extra)+3)
	for k, v := range a.extra {
		out[k] = v
	}
	out[KeyEulerAngles] = []float64{a.eulerDeg[0], a.eulerDeg[1], a.eulerDeg[2]}
	out[KeyScale] = a.scale
	out[KeyOffset] = []float64{a.offset.X, a.offset.Y, a.offset.Z}
	return out
}

// SetAlignSettings merges settings into the adapter. Keys absent from the
// input keep their current values.
func (a *RigidAdapter) SetAlignSettings(settings map[string]any) error {
	for key, value := range settings {
		switch key {
		case KeyEulerAngles:
			angles, err := toVec3(value)
			if err != nil {
				return fmt.Errorf("alignment setting %q: %w", key, err)
			}
			a.eulerDeg = angles
		case KeyScale:
			s, err := toFloat(value)
			if err != nil {
				return fmt.Errorf("alignment setting %q: %w", key, err)
			}
			if s <= 0 {
				return fmt.Errorf("alignment setting %q: must be positive, got %v", key, s)
			}
			a.scale = s
		case KeyOffset:
			off, err := toVec3(value)
			if err != nil {
				return fmt.Errorf("alignment setting %q: %w", key, err)
			}
			a.offset = r3.Vec{X: off[0], Y: off[1], Z: off[2]}
		default:
			a.extra[key] = value
		}
	}
	a.refreshRotation()
	return nil
}

// refreshRotation recomputes the cached rotation matrix and its inverse
// (transpose, since the rotation is orthonormal).
func (a *RigidAdapter) refreshRotation() {
	rx := rotationX(a.eulerDeg[0] * math.Pi / 180)
	ry := rotationY(a.eulerDeg[1] * math.Pi / 180)
	rz := rotationZ(a.eulerDeg[2] * math.Pi / 180)

	r := mat.NewDense(3, 3, nil)
	r.Mul(ry, rx)
	full := mat.NewDense(3, 3, nil)
	full.Mul(rz, r)

	inv := mat.NewDense(3, 3, nil)
	inv.CloneFrom(full.T())

	a.rotation = full
	a.inverse = inv
}

func rotationX(rad float64) *mat.Dense {
	c, s := math.Cos(rad), math.Sin(rad)
	return mat.NewDense(3, 3, []float64{
		1, 0, 0,
		0, c, -s,
		0, s, c,
	})
}

func rotationY(rad float64) *mat.Dense {
	c, s := math.Cos(rad), math.Sin(rad)
	return mat.NewDense(3, 3, []float64{
		c, 0, s,
		0, 1, 0,
		-s, 0, c,
	})
}

func rotationZ(rad float64) *mat.Dense {
	c, s := math.Cos(rad), math.Sin(rad)
	return mat.NewDense(3, 3, []float64{
		c, -s, 0,
		s, c, 0,
		0, 0, 1,
	})
}

func mulVec(m *mat.Dense, v r3.Vec) r3.Vec {
	return r3.Vec{
		X: m.At(0, 0)*v.X + m.At(0, 1)*v.Y + m.At(0, 2)*v.Z,
		Y: m.At(1, 0)*v.X + m.At(1, 1)*v.Y + m.At(1, 2)*v.Z,
		Z: m.At(2, 0)*v.X + m.At(2, 1)*v.Y + m.At(2, 2)*v.Z,
	}
}

// toFloat coerces the numeric representations a yaml round-trip can produce.
func toFloat(v any) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	default:
		return 0, fmt.Errorf("expected a number, got %T", v)
	}
}

func toVec3(v any) ([3]float64, error) {
	var out [3]float64
	switch seq := v.(type) {
	case []float64:
		if len(seq) != 3 {
			return out, fmt.Errorf("expected 3 components, got %d", len(seq))
		}
		copy(out[:], seq)
		return out, nil
	case []any:
		if len(seq) != 3 {
			return out, fmt.Errorf("expected 3 components, got %d", len(seq))
		}
		for i, item := range seq {
			f, err := toFloat(item)
			if err != nil {
				return out, err
			}
			out[i] = f
		}
		return out, nil
	default:
		return out, fmt.Errorf("expected a 3-component sequence, got %T", v)
	}
}
