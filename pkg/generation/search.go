package generation

import (
	"github.com/demandgen/demandgen/pkg/operation"
	"github.com/demandgen/demandgen/pkg/telemetry"
	"github.com/demandgen/demandgen/pkg/types"
)

// SearchOptions configures one producer graph search.
type SearchOptions struct {
	// ConsideredTypes optionally restricts decomposition to the named
	// reference types. A demanded type outside the set is logged and not
	// decomposed. Empty means no restriction.
	ConsideredTypes []string

	// Logger receives debug-level search progress. Nil means silent.
	Logger *telemetry.Logger
}

// ProducerOperations discovers every operation that can, directly or
// transitively, produce a value of the target type: the accessible
// constructors of each reachable reference type, plus its accessible methods
// whose declared return type is exactly that type. Input types of discovered
// producers are pushed onto a FIFO worklist; a visited set checked at dequeue
// bounds enumeration to once per type, so the search terminates on any finite
// catalog. Result order is discovery order, deduplicated by operation
// identity.
func ProducerOperations(cat Catalog, target types.Type, opts SearchOptions) []operation.TypedOperation {
	log := opts.Logger
	if log == nil {
		log = telemetry.NopLogger()
	}

	considered := make(map[string]bool, len(opts.ConsideredTypes))
	for _, name := range opts.ConsideredTypes {
		considered[name] = true
	}

	visited := make(map[string]bool)
	worklist := []types.Type{target}

	var producers []operation.TypedOperation
	seen := make(map[string]bool)

	for len(worklist) > 0 {
		current := worklist[0]
		worklist = worklist[1:]

		// Terminal types are supplied by literals or fuzzing, never
		// decomposed.
		if current.Terminal() || visited[current.Name] {
			continue
		}
		visited[current.Name] = true

		if len(considered) > 0 && !considered[current.Name] {
			log.Debugf("type %s outside considered set, not decomposed", current.Name)
			continue
		}

		var pending []types.Type
		for _, callable := range cat.Callables(current) {
			if callable.Kind == operation.Method && !callable.Returns.Equal(current) {
				continue
			}
			op := operation.NewTypedOperation(callable)
			sig := op.Signature()
			if seen[sig] {
				continue
			}
			seen[sig] = true
			producers = append(producers, op)
			pending = append(pending, op.Inputs...)
		}
		worklist = append(worklist, pending...)
	}

	log.Debugf("found %d producers for %s", len(producers), target.Name)
	return producers
}
