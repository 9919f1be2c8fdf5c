// Package field implements the in-memory field and node domain the image
// plane model is built on: a fieldmodule owning a fixed node domain, fields
// evaluated through a cache, and a nestable change bracket that coalesces
// downstream invalidation.
package field

import (
	"fmt"
)

// Node is a point in a fieldmodule's node domain. Nodes are handed out in a
// stable creation order that all iteration preserves.
type Node struct {
	id int
}

// ID returns the node's identifier within its fieldmodule.
func (n Node) ID() int {
	return n.id
}

// Fieldcache addresses a node for field evaluation and assignment.
type Fieldcache struct {
	node  Node
	valid bool
}

// SetNode points the cache at node for subsequent evaluations.
func (c *Fieldcache) SetNode(n Node) {
	c.node = n
	c.valid = true
}

// Field is a source of real-valued components evaluated at a node.
type Field interface {
	// Name returns the field's registered name, or "" for derived fields.
	Name() string

	// ComponentCount returns the number of components the field evaluates to.
	ComponentCount() int

	// EvaluateReal evaluates the field at the cache's current node and
	// returns a fresh slice of ComponentCount values.
	EvaluateReal(cache *Fieldcache) ([]float64, error)
}

// Fieldmodule owns a node domain and the fields defined over it. It is not
// safe for concurrent use; callers are single-threaded and synchronous.
type Fieldmodule struct {
	nodes  []Node
	nextID int

	named map[string]Field

	changeDepth int
	changed     bool
	listeners   []func()
}

// NewFieldmodule returns an empty fieldmodule with no nodes or fields.
func NewFieldmodule() *Fieldmodule {
	return &Fieldmodule{
		nextID: 1,
		named:  make(map[string]Field),
	}
}

// CreateNodes appends n nodes to the domain and returns them. Iteration via
// Nodes always yields nodes in creation order.
func (fm *Fieldmodule) CreateNodes(n int) []Node {
	created := make([]Node, 0, n)
	for i := 0; i < n; i++ {
		node := Node{id: fm.nextID}
		fm.nextID++
		fm.nodes = append(fm.nodes, node)
		created = append(created, node)
	}
	fm.notifyChange()
	return created
}

// Nodes returns the node domain in stable creation order.
func (fm *Fieldmodule) Nodes() []Node {
	out := make([]Node, len(fm.nodes))
	copy(out, fm.nodes)
	return out
}

// CreateFieldcache returns a fresh cache for evaluating fields at nodes.
func (fm *Fieldmodule) CreateFieldcache() *Fieldcache {
	return &Fieldcache{}
}

// FindFieldByName returns the named field, or nil if none is registered.
func (fm *Fieldmodule) FindFieldByName(name string) Field {
	return fm.named[name]
}

// BeginChange opens a change bracket. Brackets nest; notifications raised
// inside are coalesced into a single callback when the outermost bracket
// closes. Callers pair BeginChange with a deferred EndChange so the bracket
// closes on error paths too.
func (fm *Fieldmodule) BeginChange() {
	fm.changeDepth++
}

// EndChange closes the innermost change bracket, firing coalesced change
// callbacks when the outermost bracket closes.
func (fm *Fieldmodule) EndChange() {
	if fm.changeDepth > 0 {
		fm.changeDepth--
	}
	if fm.changeDepth == 0 && fm.changed {
		fm.changed = false
		fm.fireChange()
	}
}

// AddChangeListener registers fn to run whenever field state changes outside
// a bracket, or once per coalesced bracket.
func (fm *Fieldmodule) AddChangeListener(fn func()) {
	fm.listeners = append(fm.listeners, fn)
}

func (fm *Fieldmodule) notifyChange() {
	if fm.changeDepth > 0 {
		fm.changed = true
		return
	}
	fm.fireChange()
}

func (fm *Fieldmodule) fireChange() {
	for _, fn := range fm.listeners {
		fn()
	}
}

func (fm *Fieldmodule) nodeFor(cache *Fieldcache) (Node, error) {
	if cache == nil || !cache.valid {
		return Node{}, fmt.Errorf("fieldcache has no node set")
	}
	return cache.node, nil
}
