// Package operation models the callables the engine can place in a sequence:
// constructors and methods, normalized into a uniform typed form. A Callable
// is the tagged constructor-vs-method variant with declaring type, parameter
// types and an invoke function; a TypedOperation wraps a callable with the
// resolved input tuple (receiver prepended for instance methods) and single
// output type used by search, synthesis and execution.
package operation
