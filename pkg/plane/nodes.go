package plane

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"
)

// NodeLocations returns the plane's node positions in scene coordinates, in
// the fieldmodule's stable node order. Each raw coordinate passes through
// the alignment transform. The whole read runs inside one change bracket.
func (m *Model) NodeLocations() ([]r3.Vec, error) {
	if m.fm == nil {
		return nil, fmt.Errorf("%w: no image set loaded", ErrInvalidState)
	}
	fm := m.fm
	fm.BeginChange()
	defer fm.EndChange()

	cache := fm.CreateFieldcache()
	nodes := fm.Nodes()
	out := make([]r3.Vec, 0, len(nodes))
	for _, node := range nodes {
		cache.SetNode(node)
		values, err := m.coordinateField.EvaluateReal(cache)
		if err != nil {
			return nil, fmt.Errorf("evaluate node %d: %w", node.ID(), err)
		}
		raw := r3.Vec{X: values[0], Y: values[1], Z: values[2]}
		out = append(out, m.adapter.SceneTransformationFromAdjustedPosition(raw))
	}
	return out, nil
}

// SetNodeLocations writes scene-coordinate positions back through the
// alignment transform, one position per node in stable node order. Arity is
// validated before any node is touched, and the whole write coalesces into
// one change notification.
func (m *Model) SetNodeLocations(positions []r3.Vec) error {
	if m.fm == nil {
		return fmt.Errorf("%w: no image set loaded", ErrInvalidState)
	}
	nodes := m.fm.Nodes()
	if len(positions) != len(nodes) {
		return fmt.Errorf("%w: got %d positions for %d nodes", ErrArity, len(positions), len(nodes))
	}

	fm := m.fm
	fm.BeginChange()
	defer fm.EndChange()

	cache := fm.CreateFieldcache()
	for i, node := range nodes {
		cache.SetNode(node)
		raw := m.adapter.SceneTransformationToAdjustedPosition(positions[i])
		if err := m.coordinateField.AssignReal(cache, []float64{raw.X, raw.Y, raw.Z}); err != nil {
			return fmt.Errorf("assign node %d: %w", node.ID(), err)
		}
	}
	return nil
}
