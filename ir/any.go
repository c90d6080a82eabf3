package ir

import (
	"encoding/json"
	"fmt"
	"reflect"
	"slices"
)

// FromAny converts a native Go value into a node.  Maps must have string
// keys and are converted with sorted keys.  A *Node is returned as is.
func FromAny(v any) (*Node, error) {
	switch x := v.(type) {
	case nil:
		return Null(), nil
	case *Node:
		return x, nil
	case bool:
		return FromBool(x), nil
	case string:
		return FromString(x), nil
	case int:
		return FromInt(int64(x)), nil
	case int8:
		return FromInt(int64(x)), nil
	case int16:
		return FromInt(int64(x)), nil
	case int32:
		return FromInt(int64(x)), nil
	case int64:
		return FromInt(x), nil
	case uint8:
		return FromInt(int64(x)), nil
	case uint16:
		return FromInt(int64(x)), nil
	case uint32:
		return FromInt(int64(x)), nil
	case float32:
		return FromFloat(float64(x)), nil
	case float64:
		return FromFloat(x), nil
	case json.Number:
		return FromNumber(string(x)), nil
	case map[string]any:
		res := &Node{Type: ObjectType}
		keys := make([]string, 0, len(x))
		for k := range x {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		for _, k := range keys {
			c, err := FromAny(x[k])
			if err != nil {
				return nil, err
			}
			res.Set(k, c)
		}
		return res, nil
	case []any:
		res := &Node{Type: ArrayType, Values: make([]*Node, len(x))}
		for i := range x {
			c, err := FromAny(x[i])
			if err != nil {
				return nil, err
			}
			res.Values[i] = c
		}
		return res, nil
	}
	return fromReflect(reflect.ValueOf(v))
}

func fromReflect(rv reflect.Value) (*Node, error) {
	switch rv.Kind() {
	case reflect.Func:
		if rv.IsNil() {
			return Null(), nil
		}
		return FromFunc(rv.Interface()), nil
	case reflect.Uint, reflect.Uint64, reflect.Uintptr:
		return FromNumber(fmt.Sprint(rv.Uint())), nil
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return Null(), nil
		}
		return FromAny(rv.Elem().Interface())
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.IsNil() {
			return Null(), nil
		}
		res := &Node{Type: ArrayType, Values: make([]*Node, rv.Len())}
		for i := range rv.Len() {
			c, err := FromAny(rv.Index(i).Interface())
			if err != nil {
				return nil, err
			}
			res.Values[i] = c
		}
		return res, nil
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nil, fmt.Errorf("%w: map key type %s", ErrUnsupported, rv.Type().Key())
		}
		if rv.IsNil() {
			return Null(), nil
		}
		keys := rv.MapKeys()
		slices.SortFunc(keys, func(a, b reflect.Value) int {
			switch {
			case a.String() < b.String():
				return -1
			case a.String() > b.String():
				return 1
			}
			return 0
		})
		res := &Node{Type: ObjectType}
		for _, k := range keys {
			c, err := FromAny(rv.MapIndex(k).Interface())
			if err != nil {
				return nil, err
			}
			res.Set(k.String(), c)
		}
		return res, nil
	case reflect.String:
		return FromString(rv.String()), nil
	case reflect.Bool:
		return FromBool(rv.Bool()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return FromInt(rv.Int()), nil
	case reflect.Float32, reflect.Float64:
		return FromFloat(rv.Float()), nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnsupported, rv.Type())
}

// ToAny converts y into native Go values: map[string]any, []any, string,
// bool, int64, float64, json.Number for numbers held as text, the held
// func, or nil.
func (y *Node) ToAny() any {
	if y == nil {
		return nil
	}
	switch y.Type {
	case ObjectType:
		res := make(map[string]any, len(y.Fields))
		for i, f := range y.Fields {
			res[f.String] = y.Values[i].ToAny()
		}
		return res
	case ArrayType:
		res := make([]any, len(y.Values))
		for i, v := range y.Values {
			res[i] = v.ToAny()
		}
		return res
	case StringType:
		return y.String
	case BoolType:
		return y.Bool
	case NumberType:
		switch {
		case y.Int64 != nil:
			return *y.Int64
		case y.Float64 != nil:
			return *y.Float64
		}
		return json.Number(y.Number)
	case FuncType:
		return y.Func
	}
	return nil
}
