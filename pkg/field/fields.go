package field

import (
	"fmt"
)

// FiniteElementField stores per-node component values and supports
// assignment. It is the only field kind registered under a name.
type FiniteElementField struct {
	fm     *Fieldmodule
	name   string
	ncomp  int
	values map[int][]float64
}

// CreateFiniteElementField registers a per-node assignable field with the
// given name and component count, replacing any field previously registered
// under that name.
func (fm *Fieldmodule) CreateFiniteElementField(name string, componentCount int) *FiniteElementField {
	f := &FiniteElementField{
		fm:     fm,
		name:   name,
		ncomp:  componentCount,
		values: make(map[int][]float64),
	}
	fm.named[name] = f
	fm.notifyChange()
	return f
}

// Name returns the field's registered name.
func (f *FiniteElementField) Name() string { return f.name }

// ComponentCount returns the field's component count.
func (f *FiniteElementField) ComponentCount() int { return f.ncomp }

// EvaluateReal returns the values assigned at the cache's node.
func (f *FiniteElementField) EvaluateReal(cache *Fieldcache) ([]float64, error) {
	node, err := f.fm.nodeFor(cache)
	if err != nil {
		return nil, err
	}
	stored, ok := f.values[node.id]
	if !ok {
		return nil, fmt.Errorf("field %q has no values at node %d", f.name, node.id)
	}
	out := make([]float64, len(stored))
	copy(out, stored)
	return out, nil
}

// AssignReal stores values at the cache's node. The value count must match
// the field's component count.
func (f *FiniteElementField) AssignReal(cache *Fieldcache, values []float64) error {
	node, err := f.fm.nodeFor(cache)
	if err != nil {
		return err
	}
	if len(values) != f.ncomp {
		return fmt.Errorf("field %q expects %d components, got %d", f.name, f.ncomp, len(values))
	}
	stored := make([]float64, len(values))
	copy(stored, values)
	f.values[node.id] = stored
	f.fm.notifyChange()
	return nil
}

// ConstantField evaluates to the same values at every node.
type ConstantField struct {
	fm     *Fieldmodule
	values []float64
}

// CreateConstantField returns a field holding the given constant components.
func (fm *Fieldmodule) CreateConstantField(values ...float64) *ConstantField {
	stored := make([]float64, len(values))
	copy(stored, values)
	return &ConstantField{fm: fm, values: stored}
}

func (f *ConstantField) Name() string        { return "" }
func (f *ConstantField) ComponentCount() int { return len(f.values) }

// EvaluateReal returns the constant components.
func (f *ConstantField) EvaluateReal(*Fieldcache) ([]float64, error) {
	out := make([]float64, len(f.values))
	copy(out, f.values)
	return out, nil
}

// SetValues replaces the constant components. The new value count must match
// the field's component count.
func (f *ConstantField) SetValues(values []float64) error {
	if len(values) != len(f.values) {
		return fmt.Errorf("constant field expects %d components, got %d", len(f.values), len(values))
	}
	copy(f.values, values)
	f.fm.notifyChange()
	return nil
}

// MultiplyField evaluates to the component-wise product of two fields.
type MultiplyField struct {
	a, b Field
}

// CreateMultiplyField returns the component-wise product of a and b, which
// must have equal component counts.
func (fm *Fieldmodule) CreateMultiplyField(a, b Field) (*MultiplyField, error) {
	if a.ComponentCount() != b.ComponentCount() {
		return nil, fmt.Errorf("multiply field operands differ: %d vs %d components",
			a.ComponentCount(), b.ComponentCount())
	}
	return &MultiplyField{a: a, b: b}, nil
}

func (f *MultiplyField) Name() string        { return "" }
func (f *MultiplyField) ComponentCount() int { return f.a.ComponentCount() }

func (f *MultiplyField) EvaluateReal(cache *Fieldcache) ([]float64, error) {
	va, err := f.a.EvaluateReal(cache)
	if err != nil {
		return nil, err
	}
	vb, err := f.b.EvaluateReal(cache)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(va))
	for i := range va {
		out[i] = va[i] * vb[i]
	}
	return out, nil
}

// ComponentField selects components of a source field by 1-based index.
type ComponentField struct {
	source  Field
	indices []int
}

// CreateComponentField returns a field selecting the given 1-based component
// indices from source.
func (fm *Fieldmodule) CreateComponentField(source Field, indices ...int) (*ComponentField, error) {
	for _, idx := range indices {
		if idx < 1 || idx > source.ComponentCount() {
			return nil, fmt.Errorf("component index %d out of range 1..%d", idx, source.ComponentCount())
		}
	}
	stored := make([]int, len(indices))
	copy(stored, indices)
	return &ComponentField{source: source, indices: stored}, nil
}

func (f *ComponentField) Name() string        { return "" }
func (f *ComponentField) ComponentCount() int { return len(f.indices) }

func (f *ComponentField) EvaluateReal(cache *Fieldcache) ([]float64, error) {
	values, err := f.source.EvaluateReal(cache)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(f.indices))
	for i, idx := range f.indices {
		out[i] = values[idx-1]
	}
	return out, nil
}

// TimeField evaluates to the current time of a timekeeper.
type TimeField struct {
	tk *Timekeeper
}

// CreateTimeField returns a 1-component field reading tk's current time.
func (fm *Fieldmodule) CreateTimeField(tk *Timekeeper) *TimeField {
	return &TimeField{tk: tk}
}

func (f *TimeField) Name() string        { return "" }
func (f *TimeField) ComponentCount() int { return 1 }

func (f *TimeField) EvaluateReal(*Fieldcache) ([]float64, error) {
	return []float64{f.tk.Time()}, nil
}

// ConcatenateField appends the components of its source fields in order.
type ConcatenateField struct {
	sources []Field
	ncomp   int
}

// CreateConcatenateField returns a field whose components are those of the
// source fields, in order.
func (fm *Fieldmodule) CreateConcatenateField(sources ...Field) *ConcatenateField {
	stored := make([]Field, len(sources))
	copy(stored, sources)
	total := 0
	for _, s := range stored {
		total += s.ComponentCount()
	}
	return &ConcatenateField{sources: stored, ncomp: total}
}

func (f *ConcatenateField) Name() string        { return "" }
func (f *ConcatenateField) ComponentCount() int { return f.ncomp }

func (f *ConcatenateField) EvaluateReal(cache *Fieldcache) ([]float64, error) {
	out := make([]float64, 0, f.ncomp)
	for _, s := range f.sources {
		values, err := s.EvaluateReal(cache)
		if err != nil {
			return nil, err
		}
		out = append(out, values...)
	}
	return out, nil
}
