package encode

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/signadot/uniutil/format"
	"github.com/signadot/uniutil/ir"
)

var ErrEncoding = errors.New("encoding error")

type EncState struct {
	depth, indent int

	format format.Format

	Color func(ir.Type, ColorAttr, string) string
}

// Encode writes node to w followed by a newline.
//
// Funcs have no textual form: as object values the entry is left out and
// as array elements they become null, as JSON.stringify does.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	if es.format.IsYAML() {
		return encodeYAML(node, w, es)
	}
	if err := encodeJSON(node, w, es); err != nil {
		return err
	}
	return writeString(w, "\n")
}

func writeString(w io.Writer, s string) error {
	_, err := io.WriteString(w, s)
	return err
}

func (es *EncState) color(t ir.Type, a ColorAttr, s string) string {
	if es.Color == nil {
		return s
	}
	return es.Color(t, a, s)
}

func writeNL(w io.Writer, es *EncState) error {
	if es.indent == 0 {
		return nil
	}
	return writeString(w, "\n"+strings.Repeat(" ", es.indent*es.depth))
}

func encodeJSON(node *ir.Node, w io.Writer, es *EncState) error {
	if node == nil {
		return writeString(w, es.color(ir.NullType, ValueColor, "null"))
	}
	switch node.Type {
	case ir.NullType, ir.FuncType:
		return writeString(w, es.color(ir.NullType, ValueColor, "null"))
	case ir.BoolType:
		return writeString(w, es.color(ir.BoolType, ValueColor, strconv.FormatBool(node.Bool)))
	case ir.NumberType:
		s, err := numberText(node)
		if err != nil {
			return err
		}
		return writeString(w, es.color(ir.NumberType, ValueColor, s))
	case ir.StringType:
		return writeString(w, es.color(ir.StringType, ValueColor, Quote(node.String)))
	case ir.ArrayType:
		return encodeJSONArray(node, w, es)
	case ir.ObjectType:
		return encodeJSONObject(node, w, es)
	}
	return fmt.Errorf("%w: unknown type %s", ErrEncoding, node.Type)
}

func encodeJSONArray(node *ir.Node, w io.Writer, es *EncState) error {
	if err := writeString(w, es.color(ir.ArrayType, SepColor, "[")); err != nil {
		return err
	}
	if len(node.Values) == 0 {
		return writeString(w, es.color(ir.ArrayType, SepColor, "]"))
	}
	es.depth++
	for i, v := range node.Values {
		if i != 0 {
			if err := writeString(w, es.color(ir.ArrayType, SepColor, ",")); err != nil {
				return err
			}
		}
		if err := writeNL(w, es); err != nil {
			return err
		}
		if err := encodeJSON(v, w, es); err != nil {
			return err
		}
	}
	es.depth--
	if err := writeNL(w, es); err != nil {
		return err
	}
	return writeString(w, es.color(ir.ArrayType, SepColor, "]"))
}

func encodeJSONObject(node *ir.Node, w io.Writer, es *EncState) error {
	if err := writeString(w, es.color(ir.ObjectType, SepColor, "{")); err != nil {
		return err
	}
	es.depth++
	n := 0
	kvSep := ":"
	if es.indent != 0 {
		kvSep = ": "
	}
	for i, f := range node.Fields {
		v := node.Values[i]
		if v != nil && v.Type == ir.FuncType {
			continue
		}
		if n != 0 {
			if err := writeString(w, es.color(ir.ObjectType, SepColor, ",")); err != nil {
				return err
			}
		}
		n++
		if err := writeNL(w, es); err != nil {
			return err
		}
		key := es.color(ir.ObjectType, FieldColor, Quote(f.String)) + es.color(ir.ObjectType, SepColor, kvSep)
		if err := writeString(w, key); err != nil {
			return err
		}
		if err := encodeJSON(v, w, es); err != nil {
			return err
		}
	}
	es.depth--
	if n != 0 {
		if err := writeNL(w, es); err != nil {
			return err
		}
	}
	return writeString(w, es.color(ir.ObjectType, SepColor, "}"))
}

func numberText(node *ir.Node) (string, error) {
	switch {
	case node.Int64 != nil:
		return strconv.FormatInt(*node.Int64, 10), nil
	case node.Float64 != nil:
		d, err := json.Marshal(*node.Float64)
		if err != nil {
			return "", fmt.Errorf("%w: %w", ErrEncoding, err)
		}
		return string(d), nil
	case node.Number != "":
		return node.Number, nil
	}
	return "", fmt.Errorf("%w: number without a value", ErrEncoding)
}

// Quote returns s as a JSON string literal.  Unlike encoding/json it does
// not escape <, > and &.
func Quote(s string) string {
	buf := bytes.NewBuffer(nil)
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	// strings always encode
	_ = enc.Encode(s)
	return strings.TrimSuffix(buf.String(), "\n")
}
