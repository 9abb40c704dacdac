package operation

import (
	"strings"

	"github.com/demandgen/demandgen/pkg/types"
)

// CallKind distinguishes the two flavors of callable.
type CallKind int

const (
	// Constructor creates a fresh value of its declaring type.
	Constructor CallKind = iota

	// Method is invoked on a receiver unless static.
	Method
)

// String returns the lower-case kind name.
func (k CallKind) String() string {
	if k == Constructor {
		return "constructor"
	}
	return "method"
}

// InvokeFunc runs the underlying callable. For instance methods the receiver
// is args[0]. A panic raised by the callee is the callee's failure, not the
// engine's; the executor converts it to an exceptional outcome.
type InvokeFunc func(args []any) (any, error)

// Callable describes one accessible constructor or method of a host type.
// Callables are built by catalog implementations and treated as immutable.
type Callable struct {
	// Kind tags the callable as a constructor or a method.
	Kind CallKind

	// Name is the simple name of the callable. Constructors conventionally
	// use the declaring type's simple name.
	Name string

	// Declaring is the type that owns the callable.
	Declaring types.Type

	// Static marks methods with no receiver. Ignored for constructors.
	Static bool

	// Params are the declared parameter types in declaration order,
	// excluding any receiver.
	Params []types.Type

	// Returns is the declared return type. For constructors this is the
	// declaring type.
	Returns types.Type

	// Invoke executes the callable. May be nil for catalogs that only
	// support discovery; executing such an operation is a programming error.
	Invoke InvokeFunc
}

// TypedOperation is an immutable descriptor of one callable with its resolved
// input tuple and output type. For instance methods the receiver type is the
// first input. Two typed operations are equal when their signatures are equal.
type TypedOperation struct {
	Callable *Callable

	// Inputs is the ordered input type tuple, receiver first for instance
	// methods.
	Inputs []types.Type

	// Output is the single produced type.
	Output types.Type
}

// NewTypedOperation resolves the input tuple and output type for a callable.
func NewTypedOperation(c *Callable) TypedOperation {
	var inputs []types.Type
	if c.Kind == Method && !c.Static {
		inputs = append(inputs, c.Declaring)
	}
	inputs = append(inputs, c.Params...)
	output := c.Returns
	if c.Kind == Constructor {
		output = c.Declaring
	}
	return TypedOperation{Callable: c, Inputs: inputs, Output: output}
}

// Arity returns the number of input positions, receiver included.
func (op TypedOperation) Arity() int {
	return len(op.Inputs)
}

// Signature returns the canonical identity string of the operation, e.g.
// "method Point.translate(Point,int,int)Point". Operations with equal
// signatures are the same operation.
func (op TypedOperation) Signature() string {
	var b strings.Builder
	b.WriteString(op.Callable.Kind.String())
	b.WriteByte(' ')
	b.WriteString(op.Callable.Declaring.Name)
	b.WriteByte('.')
	b.WriteString(op.Callable.Name)
	b.WriteByte('(')
	for i, in := range op.Inputs {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(in.Name)
	}
	b.WriteByte(')')
	b.WriteString(op.Output.Name)
	return b.String()
}

// String returns the operation signature.
func (op TypedOperation) String() string {
	return op.Signature()
}
