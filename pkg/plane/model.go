// Package plane implements the planar reference surface used to align a
// stack of 2D images against a 3D anatomical mesh. The model owns a 4-node
// rectangular plane, derives its orientation and centroid, rescales it to
// image pixel dimensions, maps between frame indices and playback time, and
// switches the rendered geometry between a fixed projection and the
// user-adjustable alignment transform.
package plane

import (
	"fmt"
	"log/slog"

	"gonum.org/v1/gonum/spatial/r3"

	"imageplane/internal/models"
	"imageplane/pkg/alignment"
	"imageplane/pkg/field"
	"imageplane/pkg/scene"
)

const (
	regionName          = "plane_mesh"
	lineGraphicsName    = "plane-lines"
	surfaceGraphicsName = "plane-surfaces"

	coordinatesFieldName = "coordinates"
	xiFieldName          = "xi"

	// nodeCount is fixed: indices 0,1,2 span the plane's two edge vectors.
	nodeCount = 4

	// pixelsPerUnit fixes the "1 unit = 1000 px" convention used when
	// rescaling the plane to image dimensions.
	pixelsPerUnit = 1000.0
)

// unitSquare is the canonical node layout parameterizing
// [-0.5,0.5]x[-0.5,0.5]. Node ordering is an invariant consumers rely on.
var unitSquare = [nodeCount]r3.Vec{
	{X: -0.5, Y: -0.5},
	{X: 0.5, Y: -0.5},
	{X: -0.5, Y: 0.5},
	{X: 0.5, Y: 0.5},
}

// identityProjection is the constant projection bound in fixed mode.
var identityProjection = []float64{
	1, 0, 0, 0,
	0, 1, 0, 0,
	0, 0, 1, 0,
	0, 0, 0, 1,
}

// Model owns the plane's region, geometry and graphics. It holds a borrowed
// reference to its parent region and to the alignment adapter; the child
// region and everything under it are owned exclusively and rebuilt wholesale
// on every image-set load.
type Model struct {
	log     *slog.Logger
	adapter alignment.Adapter

	parent     *scene.Region
	region     *scene.Region
	sc         *scene.Scene
	fm         *field.Fieldmodule
	timekeeper *field.Timekeeper

	coordinateField      *field.FiniteElementField
	scaleField           *field.ConstantField
	scaledCoordinates    field.Field
	fixedProjectionField *field.ConstantField

	stack      *models.ImageStack
	frameCount int

	displayImagePlane bool
	imagePlaneFixed   bool
	alignSettings     map[string]any
}

// New returns a plane model parented under parent. A nil adapter defaults to
// an identity rigid alignment; a nil logger defaults to slog.Default(). The
// plane's region and graphics are not created until the first image set is
// loaded.
func New(parent *scene.Region, adapter alignment.Adapter, log *slog.Logger) *Model {
	if adapter == nil {
		adapter = alignment.NewRigidAdapter()
	}
	if log == nil {
		log = slog.Default()
	}
	return &Model{
		log:               log,
		adapter:           adapter,
		parent:            parent,
		displayImagePlane: true,
		alignSettings:     make(map[string]any),
	}
}

// RegionName returns the name of the child region the plane lives in.
func (m *Model) RegionName() string {
	return regionName
}

// Timekeeper returns the timekeeper driving the texture's frame selection,
// or nil before the first image set is loaded.
func (m *Model) Timekeeper() *field.Timekeeper {
	return m.timekeeper
}

// IsDisplayImagePlane reports whether the plane is displayed.
func (m *Model) IsDisplayImagePlane() bool {
	return m.displayImagePlane
}

// SetImagePlaneVisible shows or hides the plane. The flag is recorded even
// before a scene exists and applied once one is created.
func (m *Model) SetImagePlaneVisible(visible bool) {
	m.displayImagePlane = visible
	if m.sc != nil {
		m.sc.SetVisibilityFlag(visible)
	}
}

// IsImagePlaneFixed reports whether the plane renders via the constant
// projection rather than the alignment-adjusted coordinates.
func (m *Model) IsImagePlaneFixed() bool {
	return m.imagePlaneFixed
}

// SetImagePlaneFixed switches the rendered coordinate source: fixed mode
// binds the constant projection field, free mode recomputes and rebinds the
// alignment-scaled field. The flag is recorded even before a scene exists;
// the binding is applied lazily once graphics are created. Fixed mode only
// affects rendering — node reads and writes still pass through the
// alignment transform.
func (m *Model) SetImagePlaneFixed(fixed bool) {
	m.imagePlaneFixed = fixed
	m.applyCoordinateMode()
	m.log.Debug("image plane coordinate mode set", "fixed", fixed)
}

// applyCoordinateMode rebinds the active coordinate field on both named
// graphics according to the current mode. It is a no-op until the scene and
// graphics exist.
func (m *Model) applyCoordinateMode() {
	if m.sc == nil {
		return
	}
	surfaces := m.sc.FindGraphicsByName(surfaceGraphicsName)
	lines := m.sc.FindGraphicsByName(lineGraphicsName)
	if surfaces == nil || lines == nil {
		return
	}

	m.sc.BeginChange()
	defer m.sc.EndChange()

	if m.imagePlaneFixed {
		m.refreshFixedProjection()
		surfaces.SetCoordinateField(m.fixedProjectionField)
		lines.SetCoordinateField(m.fixedProjectionField)
	} else {
		m.refreshAlignmentScale()
		surfaces.SetCoordinateField(m.scaledCoordinates)
		lines.SetCoordinateField(m.scaledCoordinates)
	}
}

// refreshFixedProjection resets the constant projection field bound in
// fixed mode.
func (m *Model) refreshFixedProjection() {
	if m.fixedProjectionField == nil {
		return
	}
	if err := m.fixedProjectionField.SetValues(identityProjection); err != nil {
		m.log.Error("refresh fixed projection", "err", err)
	}
}

// refreshAlignmentScale pushes the adapter's current scale into the scale
// field feeding the alignment-adjusted coordinates.
func (m *Model) refreshAlignmentScale() {
	if m.scaleField == nil {
		return
	}
	s, ok := settingsScale(m.adapter.AlignSettings())
	if !ok {
		return
	}
	if err := m.scaleField.SetValues([]float64{s, s, s}); err != nil {
		m.log.Error("refresh alignment scale", "err", err)
	}
}

// settingsScale extracts a positive numeric scale from an alignment
// settings mapping.
func settingsScale(settings map[string]any) (float64, bool) {
	v, ok := settings[alignment.KeyScale]
	if !ok {
		return 0, false
	}
	switch s := v.(type) {
	case float64:
		return s, s > 0
	case int:
		return float64(s), s > 0
	default:
		return 0, false
	}
}

// rebuild discards the plane's current child region, if any, and rebuilds
// the model and graphics from the canonical unit square. The old region
// handle is released before the replacement is created, so no graphics
// reference survives a reload.
func (m *Model) rebuild() error {
	if m.region != nil {
		m.parent.RemoveChild(m.region)
	}
	m.region = m.parent.CreateChild(regionName)
	m.fm = m.region.Fieldmodule()
	m.sc = m.region.Scene()

	if err := m.createModel(); err != nil {
		return err
	}
	if err := m.createGraphics(); err != nil {
		return err
	}
	return nil
}

// createModel builds the node domain and the field graph: the assignable
// coordinates, the scale constant, their product (the alignment-adjusted
// display coordinates), the fixed projection constant, and the xi chart
// field driving texture coordinates.
func (m *Model) createModel() error {
	fm := m.fm
	fm.BeginChange()
	defer fm.EndChange()

	nodes := fm.CreateNodes(nodeCount)
	m.coordinateField = fm.CreateFiniteElementField(coordinatesFieldName, 3)
	m.scaleField = fm.CreateConstantField(1, 1, 1)

	scaled, err := fm.CreateMultiplyField(m.scaleField, m.coordinateField)
	if err != nil {
		return fmt.Errorf("create scaled coordinate field: %w", err)
	}
	m.scaledCoordinates = scaled
	m.fixedProjectionField = fm.CreateConstantField(identityProjection...)

	xi := fm.CreateFiniteElementField(xiFieldName, 2)
	cache := fm.CreateFieldcache()
	for i, node := range nodes {
		cache.SetNode(node)
		p := unitSquare[i]
		if err := m.coordinateField.AssignReal(cache, []float64{p.X, p.Y, p.Z}); err != nil {
			return fmt.Errorf("assign node %d coordinates: %w", node.ID(), err)
		}
		if err := xi.AssignReal(cache, []float64{p.X + 0.5, p.Y + 0.5}); err != nil {
			return fmt.Errorf("assign node %d xi: %w", node.ID(), err)
		}
	}
	return nil
}

// createGraphics builds the plane's outline and surface graphics and the
// texture coordinate field concatenating xi with the timekeeper's time, so
// scrubbing time selects the rendered stack frame.
func (m *Model) createGraphics() error {
	sc := m.sc
	sc.BeginChange()
	defer sc.EndChange()
	sc.RemoveAllGraphics()

	m.timekeeper = field.NewTimekeeper()
	xi := m.fm.FindFieldByName(xiFieldName)

	lines := sc.CreateLineGraphics()
	lines.SetExterior(true)
	lines.SetName(lineGraphicsName)
	lines.SetCoordinateField(m.scaledCoordinates)

	surfaces := sc.CreateSurfaceGraphics()
	surfaces.SetName(surfaceGraphicsName)
	surfaces.SetCoordinateField(m.scaledCoordinates)

	xiPlanar, err := m.fm.CreateComponentField(xi, 1, 2)
	if err != nil {
		return fmt.Errorf("create texture xi components: %w", err)
	}
	timeValue := m.fm.CreateTimeField(m.timekeeper)
	surfaces.SetTextureCoordinateField(m.fm.CreateConcatenateField(xiPlanar, timeValue))
	surfaces.SetMaterial(scene.NewMaterial("silver"))

	sc.SetVisibilityFlag(m.displayImagePlane)

	// A mode recorded before the scene existed is applied now.
	m.applyCoordinateMode()
	return nil
}
