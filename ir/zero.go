package ir

// IsZero reports whether y is nil, null, or the zero value of its type:
// an empty container, "", 0, false or a nil func.
func (y *Node) IsZero() bool {
	if y == nil {
		return true
	}
	switch y.Type {
	case ObjectType, ArrayType:
		return y.Len() == 0
	case StringType:
		return y.String == ""
	case BoolType:
		return !y.Bool
	case FuncType:
		return y.Func == nil
	case NumberType:
		switch {
		case y.Int64 != nil:
			return *y.Int64 == 0
		case y.Float64 != nil:
			return *y.Float64 == 0
		}
		return y.Number == ""
	}
	return true
}
