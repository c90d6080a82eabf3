package ir

import (
	"maps"
	"math"
	"slices"
	"strconv"
)

// Node is a recursive tagged union.  Which fields are meaningful depends on
// Type: containers use Fields and Values, scalars use one of the value slots.
type Node struct {
	Type   Type
	Fields []*Node
	Values []*Node

	String  string
	Bool    bool
	Number  string
	Float64 *float64
	Int64   *int64
	Func    any
}

func FromString(v string) *Node {
	return &Node{Type: StringType, String: v}
}

func FromInt(v int64) *Node {
	return &Node{
		Type:  NumberType,
		Int64: &v,
	}
}

func FromFloat(f float64) *Node {
	return &Node{
		Type:    NumberType,
		Float64: &f,
	}
}

// FromNumber creates a number from its textual form.  The text is kept in
// Number for integers wider than int64 and for values a float64 cannot
// hold.
func FromNumber(v string) *Node {
	if i, err := strconv.ParseInt(v, 10, 64); err == nil {
		return FromInt(i)
	}
	if isInteger(v) {
		// too wide for int64, a float would drop digits
		return &Node{Type: NumberType, Number: v}
	}
	if f, err := strconv.ParseFloat(v, 64); err == nil && !math.IsInf(f, 0) {
		return FromFloat(f)
	}
	return &Node{Type: NumberType, Number: v}
}

// isInteger reports whether v is decimal digits with an optional sign.
func isInteger(v string) bool {
	if v != "" && (v[0] == '-' || v[0] == '+') {
		v = v[1:]
	}
	if v == "" {
		return false
	}
	for i := 0; i < len(v); i++ {
		if v[i] < '0' || v[i] > '9' {
			return false
		}
	}
	return true
}

func FromBool(v bool) *Node {
	return &Node{
		Type: BoolType,
		Bool: v,
	}
}

// FromFunc wraps a callable.  The value is opaque: it is copied by
// reference and never inspected.
func FromFunc(f any) *Node {
	return &Node{Type: FuncType, Func: f}
}

func Null() *Node {
	return &Node{Type: NullType}
}

func FromMap(yMap map[string]*Node) *Node {
	res := &Node{Type: ObjectType}
	res.Fields = make([]*Node, len(yMap))
	res.Values = make([]*Node, len(yMap))
	keys := slices.Sorted(maps.Keys(yMap))
	for i, key := range keys {
		res.Fields[i] = FromString(key)
		res.Values[i] = yMap[key]
	}
	return res
}

func ToMap(node *Node) map[string]*Node {
	if node.Type != ObjectType {
		return nil
	}
	res := make(map[string]*Node, len(node.Fields))
	for i, field := range node.Fields {
		res[field.String] = node.Values[i]
	}
	return res
}

type KeyVal struct {
	Key string
	Val *Node
}

// FromKeyVals creates an object keeping the order of kvs.  A later
// duplicate key replaces the earlier value in place.
func FromKeyVals(kvs []KeyVal) *Node {
	res := &Node{Type: ObjectType}
	for _, kv := range kvs {
		res.Set(kv.Key, kv.Val)
	}
	return res
}

func FromSlice(ySlice []*Node) *Node {
	res := &Node{
		Type: ArrayType,
	}
	res.Values = make([]*Node, len(ySlice))
	copy(res.Values, ySlice)
	return res
}

func Get(y *Node, field string) *Node {
	if y == nil || y.Type != ObjectType {
		return nil
	}
	if i := y.index(field); i != -1 {
		return y.Values[i]
	}
	return nil
}

// Set stores v under key.  y must be an object; existing keys keep
// their position, new keys are appended.
func (y *Node) Set(key string, v *Node) {
	if i := y.index(key); i != -1 {
		y.Values[i] = v
		return
	}
	y.Fields = append(y.Fields, FromString(key))
	y.Values = append(y.Values, v)
}

// Delete removes key from the object y, reporting whether it was present.
func (y *Node) Delete(key string) bool {
	i := y.index(key)
	if i == -1 {
		return false
	}
	y.Fields = slices.Delete(y.Fields, i, i+1)
	y.Values = slices.Delete(y.Values, i, i+1)
	return true
}

func (y *Node) index(key string) int {
	for i, f := range y.Fields {
		if f.String == key {
			return i
		}
	}
	return -1
}

// Keys returns the own keys of a container: field names for objects and
// decimal indices for arrays.  Scalars have no keys.
func (y *Node) Keys() []string {
	if y == nil {
		return nil
	}
	switch y.Type {
	case ObjectType:
		res := make([]string, len(y.Fields))
		for i, f := range y.Fields {
			res[i] = f.String
		}
		return res
	case ArrayType:
		res := make([]string, len(y.Values))
		for i := range y.Values {
			res[i] = strconv.Itoa(i)
		}
		return res
	}
	return nil
}

func (y *Node) IsContainer() bool {
	return y != nil && !y.Type.IsLeaf()
}

func (y *Node) Len() int {
	if y == nil {
		return 0
	}
	return len(y.Values)
}

// ForEach calls fn with each key and value of y.  Arrays yield their
// indices, objects their fields.  A scalar is visited as a one element
// array and a nil node is not visited at all.  Iteration stops at the
// first error, which is returned.
func (y *Node) ForEach(fn func(key string, v *Node) error) error {
	if y == nil {
		return nil
	}
	switch y.Type {
	case ObjectType:
		for i, f := range y.Fields {
			if err := fn(f.String, y.Values[i]); err != nil {
				return err
			}
		}
	case ArrayType:
		for i, v := range y.Values {
			if err := fn(strconv.Itoa(i), v); err != nil {
				return err
			}
		}
	default:
		return fn("0", y)
	}
	return nil
}
