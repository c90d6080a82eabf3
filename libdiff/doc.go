// Package libdiff computes line diffs between encoded documents.
//
//	fmt.Print(libdiff.Lines(before, after))
//
// # Related Packages
//
//   - github.com/signadot/uniutil/encode - Encode IR to text
package libdiff
