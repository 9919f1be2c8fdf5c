package scene

import (
	"imageplane/internal/models"
	"imageplane/pkg/field"
)

// GraphicsType distinguishes the graphics primitives a scene can hold.
type GraphicsType int

const (
	GraphicsLines GraphicsType = iota
	GraphicsSurfaces
)

// Graphics is one retained primitive: a named binding of coordinate,
// material and texture sources the renderer reads from.
type Graphics struct {
	scene    *Scene
	typ      GraphicsType
	name     string
	exterior bool
	visible  bool

	coordinateField        field.Field
	textureCoordinateField field.Field
	material               *Material
}

// Type returns the graphics' primitive type.
func (g *Graphics) Type() GraphicsType { return g.typ }

// SetName names the graphics for later lookup.
func (g *Graphics) SetName(name string) {
	g.name = name
	g.scene.notifyChange()
}

// Name returns the graphics' name.
func (g *Graphics) Name() string { return g.name }

// SetCoordinateField binds the field the graphics' geometry is read from.
func (g *Graphics) SetCoordinateField(f field.Field) {
	g.coordinateField = f
	g.scene.notifyChange()
}

// CoordinateField returns the currently bound coordinate field.
func (g *Graphics) CoordinateField() field.Field { return g.coordinateField }

// SetTextureCoordinateField binds the field texture lookups are driven by.
func (g *Graphics) SetTextureCoordinateField(f field.Field) {
	g.textureCoordinateField = f
	g.scene.notifyChange()
}

// TextureCoordinateField returns the bound texture coordinate field.
func (g *Graphics) TextureCoordinateField() field.Field { return g.textureCoordinateField }

// SetMaterial binds the graphics' material.
func (g *Graphics) SetMaterial(m *Material) {
	g.material = m
	g.scene.notifyChange()
}

// Material returns the bound material.
func (g *Graphics) Material() *Material { return g.material }

// SetExterior restricts line graphics to exterior element faces.
func (g *Graphics) SetExterior(exterior bool) {
	g.exterior = exterior
	g.scene.notifyChange()
}

// Exterior reports whether the graphics are restricted to exterior faces.
func (g *Graphics) Exterior() bool { return g.exterior }

// SetVisibilityFlag sets whether this graphics is rendered.
func (g *Graphics) SetVisibilityFlag(visible bool) {
	g.visible = visible
	g.scene.notifyChange()
}

// Visible reports the graphics' visibility flag.
func (g *Graphics) Visible() bool { return g.visible }

// Material is a named render material. An image stack bound to it serves as
// the texture source for graphics using the material.
type Material struct {
	name  string
	stack *models.ImageStack
}

// NewMaterial returns a material with the given name.
func NewMaterial(name string) *Material {
	return &Material{name: name}
}

// Name returns the material's name.
func (m *Material) Name() string { return m.name }

// SetImageStack binds stack as the material's texture source.
func (m *Material) SetImageStack(stack *models.ImageStack) {
	m.stack = stack
}

// ImageStack returns the bound texture source, or nil.
func (m *Material) ImageStack() *models.ImageStack {
	return m.stack
}
