// Package textfmt holds small string and number formatting helpers for
// display code.
package textfmt
