package plane

import (
	"fmt"

	"imageplane/internal/models"
	"imageplane/pkg/imaging"
	"imageplane/pkg/scene"
)

// LoadImageSet points the plane at a new image-set location: a directory of
// images or a single image file. The new stack is enumerated and validated
// before the existing region is torn down, so a failed load leaves the
// previously rendered state untouched. On success the plane's region, model
// and graphics are rebuilt wholesale, the geometry is rescaled to the
// stack's pixel dimensions, and the stack is bound as the surface's texture
// source.
func (m *Model) LoadImageSet(location string) error {
	stack, err := imaging.NewStackFromLocation(location)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrImageLoad, err)
	}

	if err := m.rebuild(); err != nil {
		return err
	}
	m.stack = stack
	m.frameCount = stack.FrameCount()

	if err := m.rescaleToImage(stack.Width, stack.Height); err != nil {
		return err
	}
	m.bindStackMaterial(stack)

	m.log.Info("image set loaded",
		"location", location,
		"frames", m.frameCount,
		"width", stack.Width,
		"height", stack.Height)
	return nil
}

// ImageStack returns the loaded stack, or nil before the first load.
func (m *Model) ImageStack() *models.ImageStack {
	return m.stack
}

// rescaleToImage multiplies node x and y by width/1000 and height/1000 so a
// unit-square plane becomes a rectangle matching the image aspect ratio at
// 1 unit = 1000 px. It always runs against the freshly rebuilt canonical
// unit square, so repeated loads never compound the scale. Unknown
// dimensions (probe failure) leave the unit square untouched.
func (m *Model) rescaleToImage(width, height int) error {
	if width <= 0 || height <= 0 {
		return nil
	}
	locations, err := m.NodeLocations()
	if err != nil {
		return err
	}
	sx := float64(width) / pixelsPerUnit
	sy := float64(height) / pixelsPerUnit
	for i := range locations {
		locations[i].X *= sx
		locations[i].Y *= sy
	}
	return m.SetNodeLocations(locations)
}

// bindStackMaterial binds the stack as the texture source on the plane's
// surface graphics.
func (m *Model) bindStackMaterial(stack *models.ImageStack) {
	surfaces := m.sc.FindGraphicsByName(surfaceGraphicsName)
	if surfaces == nil {
		return
	}
	material := scene.NewMaterial("image-stack")
	material.SetImageStack(stack)
	surfaces.SetMaterial(material)
}
