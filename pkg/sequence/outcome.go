package sequence

// OutcomeKind tags the result of executing one statement.
type OutcomeKind int

const (
	// NotExecuted marks statements the executor never reached.
	NotExecuted OutcomeKind = iota

	// NormalExecution marks a statement that completed and produced a value.
	NormalExecution

	// ExceptionalExecution marks a statement whose callee failed. The error
	// belongs to the code under test, not to the engine.
	ExceptionalExecution
)

// String returns the lower-case outcome name.
func (k OutcomeKind) String() string {
	switch k {
	case NormalExecution:
		return "normal"
	case ExceptionalExecution:
		return "exceptional"
	default:
		return "not-executed"
	}
}

// Outcome is the per-statement result of executing a sequence.
type Outcome struct {
	Kind OutcomeKind

	// Value is the produced runtime value for a normal execution.
	Value any

	// Err is the captured failure for an exceptional execution.
	Err error
}

// Normal wraps a produced value.
func Normal(value any) Outcome {
	return Outcome{Kind: NormalExecution, Value: value}
}

// Exceptional wraps a captured failure.
func Exceptional(err error) Outcome {
	return Outcome{Kind: ExceptionalExecution, Err: err}
}
