package ir

import "fmt"

// Clone returns a structural copy of y.  Every container in the result is
// newly allocated with the same kind as its source; scalar leaves,
// including funcs, are shared with y.
//
// Clone does not detect cycles; see CloneChecked.
func Clone(y *Node) *Node {
	if y == nil || y.Type.IsLeaf() {
		return y
	}
	res := &Node{Type: y.Type}
	if y.Type == ObjectType {
		res.Fields = make([]*Node, len(y.Fields))
		for i, f := range y.Fields {
			res.Fields[i] = FromString(f.String)
		}
	}
	res.Values = make([]*Node, len(y.Values))
	for i, v := range y.Values {
		res.Values[i] = Clone(v)
	}
	return res
}

func (y *Node) Clone() *Node {
	return Clone(y)
}

// CloneChecked is Clone with cycle detection.  A container which is
// reached again below itself yields an error wrapping ErrCycle.
func CloneChecked(y *Node) (*Node, error) {
	return cloneChecked(y, "$", map[*Node]bool{})
}

func cloneChecked(y *Node, path string, active map[*Node]bool) (*Node, error) {
	if y == nil || y.Type.IsLeaf() {
		return y, nil
	}
	if active[y] {
		return nil, fmt.Errorf("%w at %s", ErrCycle, path)
	}
	active[y] = true
	defer delete(active, y)

	res := &Node{Type: y.Type, Values: make([]*Node, len(y.Values))}
	if y.Type == ObjectType {
		res.Fields = make([]*Node, len(y.Fields))
	}
	for i, v := range y.Values {
		var childPath string
		if y.Type == ObjectType {
			res.Fields[i] = FromString(y.Fields[i].String)
			childPath = FieldPath(path, y.Fields[i].String)
		} else {
			childPath = IndexPath(path, i)
		}
		c, err := cloneChecked(v, childPath, active)
		if err != nil {
			return nil, err
		}
		res.Values[i] = c
	}
	return res, nil
}
