package encode

import (
	"fmt"
	"io"
	"regexp"

	"github.com/signadot/uniutil/ir"

	"github.com/goccy/go-yaml"
)

// rawNumber keeps number text which fits neither int64 nor float64.
type rawNumber string

func (n rawNumber) MarshalYAML() ([]byte, error) {
	return []byte(n), nil
}

// numericString is a string with the text of a number.  It is written
// quoted since a plain scalar of that text parses back as a number.
type numericString string

func (s numericString) MarshalYAML() ([]byte, error) {
	return []byte(`"` + string(s) + `"`), nil
}

var numberLike = regexp.MustCompile(`^-?(0|[1-9][0-9]*)(\.[0-9]+)?([eE][+-]?[0-9]+)?$`)

func encodeYAML(node *ir.Node, w io.Writer, es *EncState) error {
	v, err := toYAMLValue(node)
	if err != nil {
		return err
	}
	indent := es.indent
	if indent == 0 {
		indent = 2
	}
	d, err := yaml.MarshalWithOptions(v, yaml.Indent(indent), yaml.IndentSequence(true))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncoding, err)
	}
	_, err = w.Write(d)
	return err
}

func toYAMLValue(node *ir.Node) (any, error) {
	if node == nil {
		return nil, nil
	}
	switch node.Type {
	case ir.NullType, ir.FuncType:
		return nil, nil
	case ir.BoolType:
		return node.Bool, nil
	case ir.StringType:
		if numberLike.MatchString(node.String) {
			return numericString(node.String), nil
		}
		return node.String, nil
	case ir.NumberType:
		switch {
		case node.Int64 != nil:
			return *node.Int64, nil
		case node.Float64 != nil:
			return *node.Float64, nil
		case node.Number != "":
			return rawNumber(node.Number), nil
		}
		return nil, fmt.Errorf("%w: number without a value", ErrEncoding)
	case ir.ArrayType:
		res := make([]any, len(node.Values))
		for i, v := range node.Values {
			yv, err := toYAMLValue(v)
			if err != nil {
				return nil, err
			}
			res[i] = yv
		}
		return res, nil
	case ir.ObjectType:
		res := make(yaml.MapSlice, 0, len(node.Fields))
		for i, f := range node.Fields {
			v := node.Values[i]
			if v != nil && v.Type == ir.FuncType {
				continue
			}
			yv, err := toYAMLValue(v)
			if err != nil {
				return nil, err
			}
			res = append(res, yaml.MapItem{Key: f.String, Value: yv})
		}
		return res, nil
	}
	return nil, fmt.Errorf("%w: unknown type %s", ErrEncoding, node.Type)
}
