package sequence

import (
	"testing"

	"github.com/demandgen/demandgen/pkg/operation"
	"github.com/demandgen/demandgen/pkg/types"
)

var pointType = types.Reference("Point")

func pointCtor() operation.TypedOperation {
	return operation.NewTypedOperation(&operation.Callable{
		Kind:      operation.Constructor,
		Name:      "Point",
		Declaring: pointType,
		Params:    []types.Type{types.Int, types.Int},
	})
}

func TestLiteralSequence(t *testing.T) {
	s := Literal(types.Int, 3)
	if s.Len() != 1 {
		t.Fatalf("literal sequence length: got %d, want 1", s.Len())
	}
	v := s.LastVariable()
	if v.Index != 0 || !v.Type.Equal(types.Int) {
		t.Errorf("last variable: got %+v", v)
	}
	if err := s.Check(); err != nil {
		t.Errorf("literal sequence should be sound: %v", err)
	}
}

func TestConcatRenumbersInputs(t *testing.T) {
	a, err := Compose(pointCtor(), []*Sequence{Literal(types.Int, 1), Literal(types.Int, 2)}, []int{0, 1})
	if err != nil {
		t.Fatalf("compose: %v", err)
	}
	b := Literal(types.Int, 9)

	merged := Concat(b, a)
	if merged.Len() != 4 {
		t.Fatalf("merged length: got %d, want 4", merged.Len())
	}
	// a's call statement referenced 0 and 1; after one leading statement it
	// must reference 1 and 2.
	call := merged.Statement(3)
	if call.Inputs[0] != 1 || call.Inputs[1] != 2 {
		t.Errorf("renumbered inputs: got %v, want [1 2]", call.Inputs)
	}
	if err := merged.Check(); err != nil {
		t.Errorf("merged sequence should be sound: %v", err)
	}
}

func TestExtendValidatesArity(t *testing.T) {
	s := Literal(types.Int, 1)
	if _, err := s.Extend(pointCtor(), []int{0}); err == nil {
		t.Error("extend with wrong arity should fail")
	}
}

func TestExtendValidatesIndexRange(t *testing.T) {
	s := Concat(Literal(types.Int, 1), Literal(types.Int, 2))
	if _, err := s.Extend(pointCtor(), []int{0, 5}); err == nil {
		t.Error("extend with out-of-range index should fail")
	}
	if _, err := s.Extend(pointCtor(), []int{-1, 0}); err == nil {
		t.Error("extend with negative index should fail")
	}
}

func TestExtendValidatesTypes(t *testing.T) {
	s := Concat(Literal(types.Int, 1), Literal(types.String, "x"))
	if _, err := s.Extend(pointCtor(), []int{0, 1}); err == nil {
		t.Error("extend with incompatible input type should fail")
	}
}

func TestExtendDoesNotMutateReceiver(t *testing.T) {
	s := Concat(Literal(types.Int, 1), Literal(types.Int, 2))
	out, err := s.Extend(pointCtor(), []int{0, 1})
	if err != nil {
		t.Fatalf("extend: %v", err)
	}
	if s.Len() != 2 {
		t.Errorf("receiver grew: length %d", s.Len())
	}
	if out.Len() != 3 {
		t.Errorf("result length: got %d, want 3", out.Len())
	}
}

func TestCheckRejectsForwardReference(t *testing.T) {
	op := pointCtor()
	bad := &Sequence{statements: []Statement{
		{Op: &op, Type: pointType, Inputs: []int{1, 2}},
		{Literal: 1, Type: types.Int},
		{Literal: 2, Type: types.Int},
	}}
	if err := bad.Check(); err == nil {
		t.Error("forward references should fail the check")
	}
}

func TestCheckRejectsTypeMismatch(t *testing.T) {
	op := pointCtor()
	bad := &Sequence{statements: []Statement{
		{Literal: 1, Type: types.Int},
		{Literal: "x", Type: types.String},
		{Op: &op, Type: pointType, Inputs: []int{0, 1}},
	}}
	if err := bad.Check(); err == nil {
		t.Error("incompatible input types should fail the check")
	}
}

func TestCheckAcceptsWidenedInput(t *testing.T) {
	op := pointCtor()
	s, err := Compose(op, []*Sequence{Literal(types.Short, 1), Literal(types.Int, 2)}, []int{0, 1})
	if err != nil {
		t.Fatalf("compose with widening input: %v", err)
	}
	if err := s.Check(); err != nil {
		t.Errorf("short input to an int parameter should be sound: %v", err)
	}
}
