package ir

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

// FieldPath appends an object field to a JSONPath style path.
func FieldPath(base, f string) string {
	if f != "" && strings.IndexAny(f, "'.*$[]") == -1 {
		return base + "." + f
	}
	return base + ".'" + strings.ReplaceAll(f, "'", "\\'") + "'"
}

// IndexPath appends an array index to a JSONPath style path.
func IndexPath(base string, i int) string {
	return base + "[" + strconv.Itoa(i) + "]"
}

type Path struct {
	Index *int
	Field *string
	Next  *Path
}

func (p *Path) String() string {
	buf := bytes.NewBuffer([]byte{'$'})
	for x := p; x != nil; x = x.Next {
		if x.Field != nil {
			buf.WriteString(FieldPath("", *x.Field))
			continue
		}
		if x.Index != nil {
			fmt.Fprintf(buf, "[%d]", *x.Index)
		}
	}
	return buf.String()
}

// ParsePath parses paths of the form $.a.'b.c'[0].  The root path "$"
// parses to nil.
func ParsePath(p string) (*Path, error) {
	if len(p) == 0 || p[0] != '$' {
		return nil, fmt.Errorf("path %q should start with '$'", p)
	}
	var (
		root, last *Path
		frag       = p[1:]
	)
	for len(frag) != 0 {
		next := &Path{}
		switch frag[0] {
		case '.':
			field, rest, err := parseField(frag[1:])
			if err != nil {
				return nil, err
			}
			next.Field = &field
			frag = rest
		case '[':
			end := strings.IndexByte(frag, ']')
			if end == -1 {
				return nil, fmt.Errorf("unterminated index in %q", p)
			}
			i, err := strconv.Atoi(frag[1:end])
			if err != nil || i < 0 {
				return nil, fmt.Errorf("bad index %q in %q", frag[1:end], p)
			}
			next.Index = &i
			frag = frag[end+1:]
		default:
			return nil, fmt.Errorf("unexpected %q in path %q", frag[0], p)
		}
		if root == nil {
			root = next
		} else {
			last.Next = next
		}
		last = next
	}
	return root, nil
}

func parseField(frag string) (string, string, error) {
	if len(frag) != 0 && frag[0] == '\'' {
		var buf strings.Builder
		for i := 1; i < len(frag); i++ {
			c := frag[i]
			switch c {
			case '\\':
				if i+1 < len(frag) {
					i++
					buf.WriteByte(frag[i])
				}
			case '\'':
				return buf.String(), frag[i+1:], nil
			default:
				buf.WriteByte(c)
			}
		}
		return "", "", fmt.Errorf("unterminated quoted field %q", frag)
	}
	end := strings.IndexAny(frag, ".[")
	if end == -1 {
		end = len(frag)
	}
	if end == 0 {
		return "", "", fmt.Errorf("empty field in path")
	}
	return frag[:end], frag[end:], nil
}

// GetPath returns the node at path p below y, or nil if there is none.
func (y *Node) GetPath(p string) (*Node, error) {
	path, err := ParsePath(p)
	if err != nil {
		return nil, err
	}
	x := y
	for step := path; step != nil && x != nil; step = step.Next {
		switch {
		case step.Field != nil:
			x = Get(x, *step.Field)
		case x.Type == ArrayType && *step.Index < len(x.Values):
			x = x.Values[*step.Index]
		default:
			x = nil
		}
	}
	return x, nil
}
