package fuzz

import (
	"fmt"

	"github.com/demandgen/demandgen/pkg/operation"
	"github.com/demandgen/demandgen/pkg/types"
)

// Wrapper types for the operations the fuzzer appends.
var (
	// BoxedIntType is the wrapper the short-narrowing path boxes an int
	// into before reading it back as a short.
	BoxedIntType = types.Reference("BoxedInt")

	// BuilderType is the mutable text builder string strategies go through.
	BuilderType = types.Reference("TextBuilder")
)

// textBuilder is the runtime value behind BuilderType. Mutations return a new
// value, so earlier statements' products are never aliased.
type textBuilder struct {
	s string
}

// sumOp builds the binary sum combinator for one numeric type.
func sumOp(t types.Type, add operation.InvokeFunc) operation.TypedOperation {
	return operation.NewTypedOperation(&operation.Callable{
		Kind:      operation.Method,
		Name:      "sum",
		Declaring: t,
		Static:    true,
		Params:    []types.Type{t, t},
		Returns:   t,
		Invoke:    add,
	})
}

// Builtin operations appended by the fuzzer. Each is a package-level value so
// two fuzz applications append identically equal operations.
var (
	opIntSum = sumOp(types.Int, func(args []any) (any, error) {
		return asInt(args[0]) + asInt(args[1]), nil
	})
	opLongSum = sumOp(types.Long, func(args []any) (any, error) {
		return asInt64(args[0]) + asInt64(args[1]), nil
	})
	opFloatSum = sumOp(types.Float, func(args []any) (any, error) {
		return asFloat32(args[0]) + asFloat32(args[1]), nil
	})
	opDoubleSum = sumOp(types.Double, func(args []any) (any, error) {
		return asFloat64(args[0]) + asFloat64(args[1]), nil
	})

	// opBoxInt wraps an int value; opShortValue narrows the boxed value to
	// a short. Together they convert a fuzzed-as-int short back to its own
	// kind.
	opBoxInt = operation.NewTypedOperation(&operation.Callable{
		Kind:      operation.Method,
		Name:      "valueOf",
		Declaring: BoxedIntType,
		Static:    true,
		Params:    []types.Type{types.Int},
		Returns:   BoxedIntType,
		Invoke: func(args []any) (any, error) {
			return asInt(args[0]), nil
		},
	})
	opShortValue = operation.NewTypedOperation(&operation.Callable{
		Kind:      operation.Method,
		Name:      "shortValue",
		Declaring: BoxedIntType,
		Params:    []types.Type{},
		Returns:   types.Short,
		Invoke: func(args []any) (any, error) {
			return int(int16(asInt(args[0]))), nil
		},
	})

	opNewBuilder = operation.NewTypedOperation(&operation.Callable{
		Kind:      operation.Constructor,
		Name:      "TextBuilder",
		Declaring: BuilderType,
		Params:    []types.Type{types.String},
		Returns:   BuilderType,
		Invoke: func(args []any) (any, error) {
			return textBuilder{s: args[0].(string)}, nil
		},
	})
	opInsert = operation.NewTypedOperation(&operation.Callable{
		Kind:      operation.Method,
		Name:      "insert",
		Declaring: BuilderType,
		Params:    []types.Type{types.Int, types.Char},
		Returns:   BuilderType,
		Invoke: func(args []any) (any, error) {
			b := args[0].(textBuilder)
			i := asInt(args[1])
			ch := args[2].(rune)
			if i < 0 || i > len(b.s) {
				return nil, fmt.Errorf("insert index %d out of range for length %d", i, len(b.s))
			}
			return textBuilder{s: b.s[:i] + string(ch) + b.s[i:]}, nil
		},
	})
	opDeleteCharAt = operation.NewTypedOperation(&operation.Callable{
		Kind:      operation.Method,
		Name:      "deleteCharAt",
		Declaring: BuilderType,
		Params:    []types.Type{types.Int},
		Returns:   BuilderType,
		Invoke: func(args []any) (any, error) {
			b := args[0].(textBuilder)
			i := asInt(args[1])
			if i < 0 || i >= len(b.s) {
				return nil, fmt.Errorf("delete index %d out of range for length %d", i, len(b.s))
			}
			return textBuilder{s: b.s[:i] + b.s[i+1:]}, nil
		},
	})
	opReplace = operation.NewTypedOperation(&operation.Callable{
		Kind:      operation.Method,
		Name:      "replace",
		Declaring: BuilderType,
		Params:    []types.Type{types.Int, types.Int, types.String},
		Returns:   BuilderType,
		Invoke: func(args []any) (any, error) {
			b := args[0].(textBuilder)
			start, end := asInt(args[1]), asInt(args[2])
			str := args[3].(string)
			if start < 0 || start > len(b.s) || start > end {
				return nil, fmt.Errorf("replace range [%d,%d) invalid for length %d", start, end, len(b.s))
			}
			if end > len(b.s) {
				end = len(b.s)
			}
			return textBuilder{s: b.s[:start] + str + b.s[end:]}, nil
		},
	})
	opSubstring = operation.NewTypedOperation(&operation.Callable{
		Kind:      operation.Method,
		Name:      "substring",
		Declaring: BuilderType,
		Params:    []types.Type{types.Int, types.Int},
		Returns:   types.String,
		Invoke: func(args []any) (any, error) {
			b := args[0].(textBuilder)
			start, end := asInt(args[1]), asInt(args[2])
			if start < 0 || end > len(b.s) || start > end {
				return nil, fmt.Errorf("substring range [%d,%d) invalid for length %d", start, end, len(b.s))
			}
			return b.s[start:end], nil
		},
	})
	opToString = operation.NewTypedOperation(&operation.Callable{
		Kind:      operation.Method,
		Name:      "toString",
		Declaring: BuilderType,
		Params:    []types.Type{},
		Returns:   types.String,
		Invoke: func(args []any) (any, error) {
			return args[0].(textBuilder).s, nil
		},
	})
)

// Numeric coercions. Widening assignability means a sum over long may receive
// an int produced upstream; invokes accept any numeric representation rather
// than asserting one concrete Go type.
func asInt(v any) int {
	switch n := v.(type) {
	case int:
		return n
	case int64:
		return int(n)
	case rune:
		return int(n)
	default:
		panic(fmt.Sprintf("fuzz: %T is not an integer value", v))
	}
}

func asInt64(v any) int64 {
	switch n := v.(type) {
	case int64:
		return n
	case int:
		return int64(n)
	case rune:
		return int64(n)
	default:
		panic(fmt.Sprintf("fuzz: %T is not an integer value", v))
	}
}

func asFloat32(v any) float32 {
	switch n := v.(type) {
	case float32:
		return n
	case float64:
		return float32(n)
	case int:
		return float32(n)
	case int64:
		return float32(n)
	default:
		panic(fmt.Sprintf("fuzz: %T is not a numeric value", v))
	}
}

func asFloat64(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int64:
		return float64(n)
	default:
		panic(fmt.Sprintf("fuzz: %T is not a numeric value", v))
	}
}
