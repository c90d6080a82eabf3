// Package encode writes IR nodes as JSON or YAML.
//
//	err := encode.Encode(node, os.Stdout, encode.EncodeFormat(format.YAMLFormat))
//
// JSON output is compact unless EncodeIndent is given.  Object field order
// is preserved.  EncodeColors colors JSON output for terminals.
package encode
