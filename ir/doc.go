// Package ir provides the in-memory representation of plain nested data
// handled by uniutil: scalars, sequences and mappings.
//
// # Node Structure
//
// A Node is a recursive tagged union.  The Type field says which of the other
// fields carry the value:
//
//   - NullType: null value
//   - BoolType: boolean (true/false), in Bool
//   - NumberType: numeric value, in Int64, Float64, or Number as text fallback
//   - StringType: string value, in String
//   - FuncType: an opaque callable, in Func
//   - ArrayType: ordered list of nodes, in Values
//   - ObjectType: key-value pairs, keys in Fields and values in Values
//
// Null, bool, number, string and func nodes are leaves.  Array and object
// nodes are containers.  Code dispatches on Type rather than on the Go
// dynamic type of anything.
//
// # Objects
//
// For ObjectType nodes, Fields[i] is the string key for the value at
// Values[i], so there will always be the same number of fields as values.
// Keys occur once.  Field order is kept for output but plays no part in
// comparison.
//
// # Creating Nodes
//
//	obj := ir.FromMap(map[string]*ir.Node{
//	    "key": ir.FromString("value"),
//	})
//	arr := ir.FromSlice([]*ir.Node{
//	    ir.FromInt(1),
//	    ir.FromInt(2),
//	})
//	cb := ir.FromFunc(func() {})
//
// FromAny and ToAny convert between nodes and map[string]any / []any trees.
//
// # Cloning
//
// Clone returns a copy which shares no container with its input at any
// depth.  Leaves are shared by pointer.  Clone does not detect reference
// cycles and will exhaust the stack on cyclic input; CloneChecked reports
// ErrCycle instead.
//
// # Thread Safety
//
// Node structures are not thread-safe.  Clone nodes for each goroutine or
// synchronize access.
package ir
