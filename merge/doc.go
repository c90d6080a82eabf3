// Package merge deep merges IR nodes.
//
// Merge folds its sources left to right into a new mapping.  For each own
// key of a source, when both the value merged so far and the incoming value
// are containers they are merged recursively; otherwise the incoming value
// wins.  Arrays count as containers and merge index by index into a
// mapping:
//
//	Merge({a: [1, 2]}, {a: [9]})  // {a: {"0": 9, "1": 2}}
//
// Inputs are never modified and every container in the result is new.
// Scalar leaves, funcs included, are shared with the inputs.
//
// Merge does not detect reference cycles.  MergeWith(CycleCheck(true))
// reports them as ir.ErrCycle.
//
// MergePatch and ApplyJSONPatch offer the RFC 7386 and RFC 6902 semantics
// for callers which want the standard behaviors instead.
package merge
