package generation

import (
	"github.com/demandgen/demandgen/pkg/operation"
	"github.com/demandgen/demandgen/pkg/sequence"
	"github.com/demandgen/demandgen/pkg/types"
)

// Catalog enumerates the accessible callables of a host type. It is the
// engine's only view of the host type system: implement it once per runtime
// (reflection, bytecode index, a hand-written table) and the search and
// synthesis algorithms stay host-independent.
type Catalog interface {
	// Callables returns the accessible constructors and methods of t, in a
	// stable order. Types with nothing accessible return an empty slice.
	Callables(t types.Type) []*operation.Callable
}

// Executor runs a sequence and reports one outcome per statement. Execution
// may have externally visible side effects; isolation is the executor's
// concern, not the engine's. An exceptional outcome at some statement leaves
// the remaining statements NotExecuted.
type Executor interface {
	Execute(seq *sequence.Sequence) []sequence.Outcome
}
