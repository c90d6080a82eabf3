package merge

import (
	"fmt"

	"github.com/signadot/uniutil/debug"
	"github.com/signadot/uniutil/ir"
)

type mergeOpts struct {
	cycleCheck bool
}

type Option func(*mergeOpts)

// CycleCheck turns on detection of reference cycles in the sources.
func CycleCheck(v bool) Option {
	return func(o *mergeOpts) { o.cycleCheck = v }
}

type merger struct {
	opts   mergeOpts
	active map[*ir.Node]bool
}

// Merge deep merges sources into a new mapping, later sources winning.
// Sources which are not containers contribute nothing: strings are
// scalars, so "abc" adds no "0", "1", "2" keys, and neither do numbers,
// bools, null or funcs.  An array source contributes its indices as keys.
func Merge(sources ...*ir.Node) *ir.Node {
	m := &merger{}
	res, _ := m.merge("$", sources)
	return res
}

// MergeWith is Merge with options.  The error is non-nil only for checks
// turned on by opts.
func MergeWith(opts []Option, sources ...*ir.Node) (*ir.Node, error) {
	m := &merger{}
	for _, opt := range opts {
		opt(&m.opts)
	}
	if m.opts.cycleCheck {
		m.active = map[*ir.Node]bool{}
	}
	return m.merge("$", sources)
}

func (m *merger) merge(path string, sources []*ir.Node) (*ir.Node, error) {
	if debug.Merge() {
		debug.Logf("merge %s: %d sources", path, len(sources))
	}
	res := ir.FromKeyVals(nil)
	for _, src := range sources {
		if !src.IsContainer() {
			continue
		}
		if err := m.mergeInto(res, src, path); err != nil {
			return nil, err
		}
	}
	return res, nil
}

func (m *merger) mergeInto(res, src *ir.Node, path string) error {
	if m.active != nil {
		if m.active[src] {
			return fmt.Errorf("%w at %s", ir.ErrCycle, path)
		}
		m.active[src] = true
		defer delete(m.active, src)
	}
	return src.ForEach(func(key string, val *ir.Node) error {
		keyPath := ir.FieldPath(path, key)
		cur := ir.Get(res, key)
		if cur.IsContainer() && val.IsContainer() {
			merged, err := m.merge(keyPath, []*ir.Node{cur, val})
			if err != nil {
				return err
			}
			res.Set(key, merged)
			return nil
		}
		c, err := m.clone(keyPath, val)
		if err != nil {
			return err
		}
		res.Set(key, c)
		return nil
	})
}

func (m *merger) clone(path string, val *ir.Node) (*ir.Node, error) {
	if debug.Clone() && val.IsContainer() {
		debug.Logf("clone %s", path)
	}
	if m.active == nil {
		return ir.Clone(val), nil
	}
	c, err := ir.CloneChecked(val)
	if err != nil {
		return nil, fmt.Errorf("cloning %s: %w", path, err)
	}
	return c, nil
}

// MergeAny merges native Go values, see ir.FromAny for the accepted types.
func MergeAny(sources ...any) (any, error) {
	nodes := make([]*ir.Node, len(sources))
	for i, src := range sources {
		n, err := ir.FromAny(src)
		if err != nil {
			return nil, fmt.Errorf("source %d: %w", i, err)
		}
		nodes[i] = n
	}
	return Merge(nodes...).ToAny(), nil
}
