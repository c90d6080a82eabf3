// Package format names the document formats read and written by uniutil.
//
// # Related Packages
//
//   - github.com/signadot/uniutil/parse - Parse text to IR
//   - github.com/signadot/uniutil/encode - Encode IR to text
package format
