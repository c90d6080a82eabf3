package parse

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"regexp"
	"strconv"

	"github.com/signadot/uniutil/format"
	"github.com/signadot/uniutil/ir"

	"github.com/goccy/go-yaml"
	"github.com/goccy/go-yaml/ast"
	"github.com/goccy/go-yaml/parser"
	"github.com/goccy/go-yaml/token"
)

var ErrParse = errors.New("parse error")

func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	pOpts := &parseOpts{}
	for _, opt := range opts {
		opt(pOpts)
	}
	switch pOpts.format {
	case format.YAMLFormat:
		return parseYAML(d)
	default:
		return parseJSON(d)
	}
}

func parseJSON(d []byte) (*ir.Node, error) {
	dec := json.NewDecoder(bytes.NewReader(d))
	dec.UseNumber()
	node, err := decodeJSON(dec)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("%w: trailing data after document", ErrParse)
	}
	return node, nil
}

func decodeJSON(dec *json.Decoder) (*ir.Node, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	switch x := tok.(type) {
	case json.Delim:
		switch x {
		case '{':
			res := ir.FromKeyVals(nil)
			for dec.More() {
				kTok, err := dec.Token()
				if err != nil {
					return nil, err
				}
				key, ok := kTok.(string)
				if !ok {
					return nil, fmt.Errorf("unexpected key %v", kTok)
				}
				v, err := decodeJSON(dec)
				if err != nil {
					return nil, err
				}
				res.Set(key, v)
			}
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return res, nil
		case '[':
			res := ir.FromSlice(nil)
			for dec.More() {
				v, err := decodeJSON(dec)
				if err != nil {
					return nil, err
				}
				res.Values = append(res.Values, v)
			}
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return res, nil
		}
		return nil, fmt.Errorf("unexpected delimiter %s", x)
	case string:
		return ir.FromString(x), nil
	case json.Number:
		return ir.FromNumber(string(x)), nil
	case bool:
		return ir.FromBool(x), nil
	case nil:
		return ir.Null(), nil
	}
	return nil, fmt.Errorf("unexpected token %v", tok)
}

func parseYAML(d []byte) (*ir.Node, error) {
	var v any
	if err := yaml.UnmarshalWithOptions(d, &v, yaml.UseOrderedMap()); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	node, err := fromYAML(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	file, err := parser.ParseBytes(d, 0)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	if len(file.Docs) != 0 && file.Docs[0] != nil {
		restoreNumbers(node, file.Docs[0].Body)
	}
	return node, nil
}

// jsonNumber is the JSON number grammar.
var jsonNumber = regexp.MustCompile(`^-?(0|[1-9][0-9]*)(\.[0-9]+)?([eE][+-]?[0-9]+)?$`)

// restoreNumbers turns plain scalars which goccy decoded as strings
// because they overflow int64, uint64 or float64 back into numbers.  node
// and an are walked together; where their shapes differ, as with aliases
// and merge keys, that subtree is left alone.
func restoreNumbers(node *ir.Node, an ast.Node) {
	if anchor, ok := an.(*ast.AnchorNode); ok {
		restoreNumbers(node, anchor.Value)
		return
	}
	switch node.Type {
	case ir.ObjectType:
		m, ok := an.(*ast.MappingNode)
		if !ok || len(m.Values) != len(node.Values) {
			return
		}
		for _, mv := range m.Values {
			if _, merge := mv.Key.(*ast.MergeKeyNode); merge {
				return
			}
		}
		for i, mv := range m.Values {
			restoreNumbers(node.Values[i], mv.Value)
		}
	case ir.ArrayType:
		seq, ok := an.(*ast.SequenceNode)
		if !ok || len(seq.Values) != len(node.Values) {
			return
		}
		for i, v := range seq.Values {
			restoreNumbers(node.Values[i], v)
		}
	case ir.StringType:
		sn, ok := an.(*ast.StringNode)
		if !ok || sn.Token == nil || sn.Token.Type != token.StringType {
			return
		}
		if jsonNumber.MatchString(node.String) {
			*node = *ir.FromNumber(node.String)
		}
	}
}

func fromYAML(v any) (*ir.Node, error) {
	switch x := v.(type) {
	case nil:
		return ir.Null(), nil
	case yaml.MapSlice:
		res := ir.FromKeyVals(nil)
		for _, item := range x {
			c, err := fromYAML(item.Value)
			if err != nil {
				return nil, err
			}
			res.Set(fmt.Sprint(item.Key), c)
		}
		return res, nil
	case []any:
		res := &ir.Node{Type: ir.ArrayType, Values: make([]*ir.Node, len(x))}
		for i := range x {
			c, err := fromYAML(x[i])
			if err != nil {
				return nil, err
			}
			res.Values[i] = c
		}
		return res, nil
	case string:
		return ir.FromString(x), nil
	case bool:
		return ir.FromBool(x), nil
	case int:
		return ir.FromInt(int64(x)), nil
	case int64:
		return ir.FromInt(x), nil
	case uint64:
		if x > math.MaxInt64 {
			return ir.FromNumber(strconv.FormatUint(x, 10)), nil
		}
		return ir.FromInt(int64(x)), nil
	case float64:
		return ir.FromFloat(x), nil
	}
	return ir.FromAny(v)
}
