package sequence

import (
	"fmt"

	"github.com/demandgen/demandgen/pkg/operation"
	"github.com/demandgen/demandgen/pkg/types"
)

// Variable is a reference to the value produced by one statement of a
// sequence.
type Variable struct {
	// Index is the position of the producing statement.
	Index int

	// Type is the produced type.
	Type types.Type
}

// Statement is one step of a sequence: either a literal value or a call to a
// typed operation with resolved input references.
type Statement struct {
	// Op is the called operation, or nil for a literal statement.
	Op *operation.TypedOperation

	// Literal holds the value of a literal statement. Unused for calls.
	Literal any

	// Type is the output type of the statement.
	Type types.Type

	// Inputs are indices of earlier statements supplying the call's
	// arguments, in input-tuple order. Empty for literal statements.
	Inputs []int
}

// IsLiteral reports whether the statement holds a literal value rather than a
// call.
func (s Statement) IsLiteral() bool {
	return s.Op == nil
}

// Sequence is an ordered, internally consistent list of statements. The last
// statement's value is the sequence's product.
type Sequence struct {
	statements []Statement
}

// Literal returns a one-statement sequence holding the given value.
func Literal(t types.Type, value any) *Sequence {
	return &Sequence{statements: []Statement{{Literal: value, Type: t}}}
}

// Len returns the number of statements.
func (s *Sequence) Len() int {
	return len(s.statements)
}

// Statement returns the statement at index i.
func (s *Sequence) Statement(i int) Statement {
	return s.statements[i]
}

// Statements returns a copy of the statement list.
func (s *Sequence) Statements() []Statement {
	out := make([]Statement, len(s.statements))
	copy(out, s.statements)
	return out
}

// Variable returns the variable produced by statement i.
func (s *Sequence) Variable(i int) Variable {
	return Variable{Index: i, Type: s.statements[i].Type}
}

// LastVariable returns the variable holding the sequence's overall product.
func (s *Sequence) LastVariable() Variable {
	return s.Variable(len(s.statements) - 1)
}

// Concat merges sequences into one, renumbering every input reference so the
// merged statement indices are contiguous. Order is preserved.
func Concat(parts ...*Sequence) *Sequence {
	total := 0
	for _, p := range parts {
		total += p.Len()
	}
	merged := make([]Statement, 0, total)
	offset := 0
	for _, p := range parts {
		for _, st := range p.statements {
			shifted := st
			if len(st.Inputs) > 0 {
				shifted.Inputs = make([]int, len(st.Inputs))
				for i, in := range st.Inputs {
					shifted.Inputs[i] = in + offset
				}
			}
			merged = append(merged, shifted)
		}
		offset += p.Len()
	}
	return &Sequence{statements: merged}
}

// Extend returns a new sequence with one appended statement calling op on the
// values produced at the given indices. The indices must reference existing
// statements whose output types are assignable to op's input tuple.
func (s *Sequence) Extend(op operation.TypedOperation, inputs []int) (*Sequence, error) {
	if len(inputs) != op.Arity() {
		return nil, fmt.Errorf("sequence: operation %s needs %d inputs, got %d",
			op.Signature(), op.Arity(), len(inputs))
	}
	for i, in := range inputs {
		if in < 0 || in >= len(s.statements) {
			return nil, fmt.Errorf("sequence: input %d of %s references statement %d, sequence has %d",
				i, op.Signature(), in, len(s.statements))
		}
		produced := s.statements[in].Type
		if !produced.AssignableTo(op.Inputs[i]) {
			return nil, fmt.Errorf("sequence: input %d of %s needs %s, statement %d produces %s",
				i, op.Signature(), op.Inputs[i], in, produced)
		}
	}
	opCopy := op
	stmts := make([]Statement, len(s.statements), len(s.statements)+1)
	copy(stmts, s.statements)
	stmts = append(stmts, Statement{
		Op:     &opCopy,
		Type:   op.Output,
		Inputs: append([]int(nil), inputs...),
	})
	return &Sequence{statements: stmts}, nil
}

// Compose concatenates the given parts and appends one call to op whose
// arguments are the statements at the given post-concatenation indices. This
// is the primitive both the synthesizer and the fuzzer build sequences with.
func Compose(op operation.TypedOperation, parts []*Sequence, inputs []int) (*Sequence, error) {
	return Concat(parts...).Extend(op, inputs)
}

// Check re-validates the structural invariant: every input reference of every
// statement points to an earlier statement whose output type is assignable to
// the required input type. Returns nil for a sound sequence.
func (s *Sequence) Check() error {
	for i, st := range s.statements {
		if st.IsLiteral() {
			if len(st.Inputs) != 0 {
				return fmt.Errorf("sequence: literal statement %d has input references", i)
			}
			continue
		}
		if len(st.Inputs) != st.Op.Arity() {
			return fmt.Errorf("sequence: statement %d calls %s with %d inputs, needs %d",
				i, st.Op.Signature(), len(st.Inputs), st.Op.Arity())
		}
		for j, in := range st.Inputs {
			if in < 0 || in >= i {
				return fmt.Errorf("sequence: statement %d input %d references %d, must be in [0,%d)",
					i, j, in, i)
			}
			produced := s.statements[in].Type
			if !produced.AssignableTo(st.Op.Inputs[j]) {
				return fmt.Errorf("sequence: statement %d input %d needs %s, statement %d produces %s",
					i, j, st.Op.Inputs[j], in, produced)
			}
		}
	}
	return nil
}

// String renders the sequence one statement per line for logs and test
// failures.
func (s *Sequence) String() string {
	out := ""
	for i, st := range s.statements {
		if st.IsLiteral() {
			out += fmt.Sprintf("v%d: %s = literal %v\n", i, st.Type, st.Literal)
			continue
		}
		out += fmt.Sprintf("v%d: %s = %s%v\n", i, st.Type, st.Op.Signature(), st.Inputs)
	}
	return out
}
