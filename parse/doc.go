// Package parse reads JSON and YAML documents into IR nodes.
//
// Object key order is kept in both formats.  JSON numbers keep their text
// when they fit neither int64 nor float64.
//
//	node, err := parse.Parse(data, parse.ParseYAML())
package parse
