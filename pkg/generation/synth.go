package generation

import (
	"fmt"

	"github.com/demandgen/demandgen/pkg/operation"
	"github.com/demandgen/demandgen/pkg/pool"
	"github.com/demandgen/demandgen/pkg/randomness"
	"github.com/demandgen/demandgen/pkg/sequence"
	"github.com/demandgen/demandgen/pkg/types"
)

// indexGroup records which global statement indices produce a given type
// across the sub-sequences chosen so far. Groups keep first-appearance order
// so compatible-index resolution is deterministic under a fixed seed.
type indexGroup struct {
	typ     types.Type
	indices []int
}

// Synthesize assembles one runnable sequence ending in a call to op, drawing
// a sub-sequence for every input position from the first pool (in priority
// order) that has a compatible entry. Returns nil when some input type has no
// compatible pooled sequence, or when the chosen sub-sequences do not supply
// enough distinct compatible statements for the operation's input tuple.
func Synthesize(rnd *randomness.Source, op operation.TypedOperation, pools []*pool.ObjectPool) *sequence.Sequence {
	var parts []*sequence.Sequence
	var groups []indexGroup
	groupAt := make(map[string]int)

	// Global index of the next statement across all chosen sub-sequences.
	index := 0

	for _, inputType := range op.Inputs {
		sub := firstCompatibleSubPool(pools, inputType)
		if sub == nil {
			return nil
		}

		chosen := randomness.Member(rnd, sub.Sequences())
		parts = append(parts, chosen)

		for j := 0; j < chosen.Len(); j++ {
			t := chosen.Variable(j).Type
			at, ok := groupAt[t.Name]
			if !ok {
				at = len(groups)
				groupAt[t.Name] = at
				groups = append(groups, indexGroup{typ: t})
			}
			groups[at].indices = append(groups[at].indices, index)
			index++
		}
	}

	// Resolve the call's input indices. Each occurrence of a type consumes
	// the next unused compatible index; running out means the chosen
	// sub-sequences cannot feed the operation.
	consumed := make(map[string]int)
	inputs := make([]int, 0, op.Arity())
	for _, inputType := range op.Inputs {
		var compatible []int
		for _, g := range groups {
			if g.typ.AssignableTo(inputType) {
				compatible = append(compatible, g.indices...)
			}
		}
		if len(compatible) == 0 {
			return nil
		}
		n := consumed[inputType.Name]
		if n >= len(compatible) {
			return nil
		}
		inputs = append(inputs, compatible[n])
		consumed[inputType.Name] = n + 1
	}

	seq, err := sequence.Compose(op, parts, inputs)
	if err != nil {
		// The resolution above only hands out indices of compatible
		// statements; a compose failure here is a broken invariant, not a
		// recoverable miss.
		panic(fmt.Sprintf("generation: synthesized unsound sequence for %s: %v", op.Signature(), err))
	}
	return seq
}

// firstCompatibleSubPool queries the pools in priority order and returns the
// first non-empty sub-pool of sequences producing a type assignable to t, or
// nil when every pool misses.
func firstCompatibleSubPool(pools []*pool.ObjectPool, t types.Type) *pool.ObjectPool {
	for _, p := range pools {
		if p == nil {
			continue
		}
		if sub := p.SubPoolOfType(t); !sub.IsEmpty() {
			return sub
		}
	}
	return nil
}
