package models

import (
	"gonum.org/v1/gonum/spatial/r3"
)

// ImageStack is an ordered set of image file paths treated as the frames of
// a virtual slide. All frames are assumed to share the pixel dimensions of
// the first one.
type ImageStack struct {
	// Paths holds the image file paths in display order
	Paths []string

	// Width is the pixel width of the first frame, or -1 if unknown
	Width int

	// Height is the pixel height of the first frame, or -1 if unknown
	Height int
}

// FrameCount returns the number of frames in the stack.
func (s *ImageStack) FrameCount() int {
	return len(s.Paths)
}

// PlaneInfo describes the orientation and position of a reference plane
// derived from its node positions.
type PlaneInfo struct {
	// Normal is the unit vector orthogonal to the plane
	Normal r3.Vec

	// Up is the unit vector along the plane's second edge
	Up r3.Vec

	// Centre is the arithmetic mean of the node positions
	Centre r3.Vec
}
