package scene

// Scene holds the retained graphics of one region. Like the fieldmodule, it
// exposes a nestable change bracket that coalesces invalidation; callers pair
// BeginChange with a deferred EndChange.
type Scene struct {
	region   *Region
	graphics []*Graphics
	visible  bool

	changeDepth int
	changed     bool
	listeners   []func()
}

func newScene(r *Region) *Scene {
	return &Scene{region: r, visible: true}
}

// BeginChange opens a change bracket; brackets nest.
func (s *Scene) BeginChange() {
	s.changeDepth++
}

// EndChange closes the innermost bracket, firing coalesced change callbacks
// when the outermost bracket closes.
func (s *Scene) EndChange() {
	if s.changeDepth > 0 {
		s.changeDepth--
	}
	if s.changeDepth == 0 && s.changed {
		s.changed = false
		s.fireChange()
	}
}

// AddChangeListener registers fn to run on scene changes, coalesced per
// bracket.
func (s *Scene) AddChangeListener(fn func()) {
	s.listeners = append(s.listeners, fn)
}

func (s *Scene) notifyChange() {
	if s.changeDepth > 0 {
		s.changed = true
		return
	}
	s.fireChange()
}

func (s *Scene) fireChange() {
	for _, fn := range s.listeners {
		fn()
	}
}

// CreateLineGraphics adds and returns new line graphics.
func (s *Scene) CreateLineGraphics() *Graphics {
	return s.createGraphics(GraphicsLines)
}

// CreateSurfaceGraphics adds and returns new surface graphics.
func (s *Scene) CreateSurfaceGraphics() *Graphics {
	return s.createGraphics(GraphicsSurfaces)
}

func (s *Scene) createGraphics(t GraphicsType) *Graphics {
	g := &Graphics{scene: s, typ: t, visible: true}
	s.graphics = append(s.graphics, g)
	s.notifyChange()
	return g
}

// FindGraphicsByName returns the first graphics with the given name, or nil.
func (s *Scene) FindGraphicsByName(name string) *Graphics {
	for _, g := range s.graphics {
		if g.name == name {
			return g
		}
	}
	return nil
}

// RemoveAllGraphics discards every graphics in the scene.
func (s *Scene) RemoveAllGraphics() {
	s.graphics = nil
	s.notifyChange()
}

// SetVisibilityFlag sets whether the scene's graphics are rendered.
func (s *Scene) SetVisibilityFlag(visible bool) {
	s.visible = visible
	s.notifyChange()
}

// Visible reports the scene's visibility flag.
func (s *Scene) Visible() bool {
	return s.visible
}
