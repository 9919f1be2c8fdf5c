package plane

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"

	"imageplane/internal/models"
)

// degenerateEps bounds the cross-product norm below which the node layout is
// treated as collinear.
const degenerateEps = 1e-12

// PlaneInfo derives the plane's unit normal, unit up vector and centroid
// from the current node positions in scene coordinates. The normal is the
// normalized cross product of the edge vectors nodes[1]-nodes[0] and
// nodes[2]-nodes[0]; up is the normalized second edge; the centre is the
// arithmetic mean of all node positions. Collinear nodes fail with
// ErrGeometry.
func (m *Model) PlaneInfo() (models.PlaneInfo, error) {
	locations, err := m.NodeLocations()
	if err != nil {
		return models.PlaneInfo{}, err
	}

	u1 := r3.Sub(locations[1], locations[0])
	u2 := r3.Sub(locations[2], locations[0])
	cross := r3.Cross(u1, u2)
	if r3.Norm(cross) < degenerateEps {
		return models.PlaneInfo{}, fmt.Errorf("%w: node edge vectors are collinear", ErrGeometry)
	}

	var centre r3.Vec
	for _, p := range locations {
		centre = r3.Add(centre, p)
	}
	centre = r3.Scale(1/float64(len(locations)), centre)

	return models.PlaneInfo{
		Normal: r3.Unit(cross),
		Up:     r3.Unit(u2),
		Centre: centre,
	}, nil
}
