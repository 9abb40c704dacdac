package pool

import (
	"reflect"

	"github.com/demandgen/demandgen/pkg/sequence"
	"github.com/demandgen/demandgen/pkg/types"
)

// entry pairs one produced runtime value with the sequence that built it. The
// value's type is the output type of the sequence's last statement.
type entry struct {
	value any
	seq   *sequence.Sequence
}

// ObjectPool stores previously produced runtime values keyed by the sequence
// that built them. Iteration order is insertion order, which keeps random
// selection over sub-pools reproducible under a fixed seed. ObjectPool is not
// safe for concurrent use; the engine is single-threaded by design.
type ObjectPool struct {
	entries []entry
}

// New returns an empty pool.
func New() *ObjectPool {
	return &ObjectPool{}
}

// Len returns the number of distinct values stored.
func (p *ObjectPool) Len() int {
	return len(p.entries)
}

// IsEmpty reports whether the pool holds no entries.
func (p *ObjectPool) IsEmpty() bool {
	return len(p.entries) == 0
}

// Put records the (value, sequence) pair. If a runtime-equal value is already
// stored its sequence is overwritten in place; duplicate producers of the
// same value have no differential effect on what the caller can test later.
func (p *ObjectPool) Put(value any, seq *sequence.Sequence) {
	for i := range p.entries {
		if valueEqual(p.entries[i].value, value) {
			p.entries[i].seq = seq
			return
		}
	}
	p.entries = append(p.entries, entry{value: value, seq: seq})
}

// SubPoolOfType returns a new pool holding the entries whose value type is
// assignable to t. The result is empty, never nil, when nothing matches.
func (p *ObjectPool) SubPoolOfType(t types.Type) *ObjectPool {
	sub := New()
	for _, e := range p.entries {
		if e.seq.LastVariable().Type.AssignableTo(t) {
			sub.entries = append(sub.entries, e)
		}
	}
	return sub
}

// SequencesOfType returns the deduplicated sequences underlying
// SubPoolOfType(t), in insertion order.
func (p *ObjectPool) SequencesOfType(t types.Type) []*sequence.Sequence {
	seen := make(map[*sequence.Sequence]bool)
	var out []*sequence.Sequence
	for _, e := range p.entries {
		if !e.seq.LastVariable().Type.AssignableTo(t) {
			continue
		}
		if seen[e.seq] {
			continue
		}
		seen[e.seq] = true
		out = append(out, e.seq)
	}
	return out
}

// Values returns the stored values in insertion order.
func (p *ObjectPool) Values() []any {
	out := make([]any, len(p.entries))
	for i, e := range p.entries {
		out[i] = e.value
	}
	return out
}

// Sequences returns the stored sequences in insertion order, one per value.
func (p *ObjectPool) Sequences() []*sequence.Sequence {
	out := make([]*sequence.Sequence, len(p.entries))
	for i, e := range p.entries {
		out[i] = e.seq
	}
	return out
}

// valueEqual is the runtime-equality relation for pool keys. Values produced
// by the system under test need not be comparable with ==, so structural
// equality is used throughout.
func valueEqual(a, b any) bool {
	return reflect.DeepEqual(a, b)
}
