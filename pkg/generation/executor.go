package generation

import (
	"fmt"

	"github.com/demandgen/demandgen/pkg/operation"
	"github.com/demandgen/demandgen/pkg/sequence"
)

// CallExecutor is the default in-process executor adapter: it runs a sequence
// statement by statement, resolving each call's arguments from the values of
// earlier statements and invoking the callable's bound invoke function. A
// panic raised by invoked code is captured as an exceptional outcome for that
// statement; statements after a failure stay NotExecuted.
type CallExecutor struct{}

// NewCallExecutor returns the default executor.
func NewCallExecutor() *CallExecutor {
	return &CallExecutor{}
}

// Execute runs seq and returns one outcome per statement.
func (e *CallExecutor) Execute(seq *sequence.Sequence) []sequence.Outcome {
	outcomes := make([]sequence.Outcome, seq.Len())
	values := make([]any, seq.Len())

	for i := 0; i < seq.Len(); i++ {
		st := seq.Statement(i)
		if st.IsLiteral() {
			values[i] = st.Literal
			outcomes[i] = sequence.Normal(st.Literal)
			continue
		}

		// An operation without an invoke binding reached execution: the
		// catalog and the executor disagree about capability. That is a
		// programming error, not a failure of the code under test.
		if st.Op.Callable.Invoke == nil {
			panic(fmt.Sprintf("generation: operation %s has no invoke binding", st.Op.Signature()))
		}

		args := make([]any, len(st.Inputs))
		for j, in := range st.Inputs {
			args[j] = values[in]
		}

		value, err := invokeGuarded(st.Op.Callable.Invoke, args)
		if err != nil {
			outcomes[i] = sequence.Exceptional(err)
			return outcomes
		}
		values[i] = value
		outcomes[i] = sequence.Normal(value)
	}
	return outcomes
}

// invokeGuarded runs fn, converting a panic from the code under test into an
// ordinary error.
func invokeGuarded(fn operation.InvokeFunc, args []any) (value any, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic during invocation: %v", r)
		}
	}()
	return fn(args)
}
