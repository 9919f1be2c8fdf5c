// Package scene implements the retained region/scene/graphics layer the
// image plane binds its geometry and textures to. Graphics hold references
// to coordinate and texture fields; actual rendering happens elsewhere.
package scene

import (
	"imageplane/pkg/field"
)

// Region is a named node in the region tree. Each region owns one
// fieldmodule and one scene.
type Region struct {
	name     string
	parent   *Region
	children []*Region
	fm       *field.Fieldmodule
	sc       *Scene
}

// NewRegion returns a root region with the given name.
func NewRegion(name string) *Region {
	r := &Region{name: name}
	r.fm = field.NewFieldmodule()
	r.sc = newScene(r)
	return r
}

// Name returns the region's name.
func (r *Region) Name() string {
	return r.name
}

// CreateChild creates and attaches a new child region.
func (r *Region) CreateChild(name string) *Region {
	child := NewRegion(name)
	child.parent = r
	r.children = append(r.children, child)
	return child
}

// RemoveChild detaches child and its subtree from the region. The detached
// handle becomes inert; callers must not reuse it.
func (r *Region) RemoveChild(child *Region) {
	for i, c := range r.children {
		if c == child {
			r.children = append(r.children[:i], r.children[i+1:]...)
			child.parent = nil
			return
		}
	}
}

// FindChildByName returns the named direct child, or nil.
func (r *Region) FindChildByName(name string) *Region {
	for _, c := range r.children {
		if c.name == name {
			return c
		}
	}
	return nil
}

// Fieldmodule returns the region's fieldmodule.
func (r *Region) Fieldmodule() *field.Fieldmodule {
	return r.fm
}

// Scene returns the region's scene.
func (r *Region) Scene() *Scene {
	return r.sc
}
