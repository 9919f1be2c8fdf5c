package plane

import (
	"path/filepath"
	"testing"
)

// TestSetImagePlaneFixedRebindsGraphics verifies fixed mode binds the
// constant projection to both graphics and that leaving fixed mode restores
// the alignment-derived coordinate field.
func TestSetImagePlaneFixedRebindsGraphics(t *testing.T) {
	m, root := newTestModel(t)
	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, "slide.png"), 1000, 1000)
	if err := m.LoadImageSet(dir); err != nil {
		t.Fatalf("LoadImageSet: %v", err)
	}

	surfaces, lines := planeGraphics(t, root)
	free := surfaces.CoordinateField()
	if free == nil {
		t.Fatal("no coordinate field bound after load")
	}
	if lines.CoordinateField() != free {
		t.Fatal("lines and surfaces must start on the same coordinate field")
	}

	m.SetImagePlaneFixed(true)
	if !m.IsImagePlaneFixed() {
		t.Error("IsImagePlaneFixed = false after enabling fixed mode")
	}
	fixed := surfaces.CoordinateField()
	if fixed == free {
		t.Fatal("fixed mode did not rebind the surface coordinate field")
	}
	if lines.CoordinateField() != fixed {
		t.Error("fixed mode did not rebind the line coordinate field")
	}

	m.SetImagePlaneFixed(false)
	if surfaces.CoordinateField() != free {
		t.Error("leaving fixed mode did not restore the alignment-derived field on surfaces")
	}
	if lines.CoordinateField() != free {
		t.Error("leaving fixed mode did not restore the alignment-derived field on lines")
	}
}

// TestSetImagePlaneFixedBeforeScene verifies the mode flag set before any
// scene exists is recorded and applied lazily when graphics are created.
func TestSetImagePlaneFixedBeforeScene(t *testing.T) {
	m, root := newTestModel(t)

	m.SetImagePlaneFixed(true)
	if !m.IsImagePlaneFixed() {
		t.Fatal("mode flag not recorded without a scene")
	}

	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, "slide.png"), 1000, 1000)
	if err := m.LoadImageSet(dir); err != nil {
		t.Fatalf("LoadImageSet: %v", err)
	}

	surfaces, _ := planeGraphics(t, root)
	// The fixed projection is the 16-component constant, not the 3-component
	// alignment-scaled coordinates.
	if got := surfaces.CoordinateField().ComponentCount(); got != 16 {
		t.Errorf("bound field has %d components, want the 16-component fixed projection", got)
	}
}

// TestSetImagePlaneVisible verifies the visibility flag is recorded before a
// scene exists and forwarded to the scene afterwards.
func TestSetImagePlaneVisible(t *testing.T) {
	m, root := newTestModel(t)

	m.SetImagePlaneVisible(false)
	if m.IsDisplayImagePlane() {
		t.Fatal("visibility flag not recorded without a scene")
	}

	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, "slide.png"), 1000, 1000)
	if err := m.LoadImageSet(dir); err != nil {
		t.Fatalf("LoadImageSet: %v", err)
	}
	child := root.FindChildByName("plane_mesh")
	if child.Scene().Visible() {
		t.Error("scene visible despite displayImagePlane=false")
	}

	m.SetImagePlaneVisible(true)
	if !child.Scene().Visible() {
		t.Error("scene not shown after SetImagePlaneVisible(true)")
	}
}
