package generation

import (
	"testing"

	"github.com/demandgen/demandgen/pkg/operation"
	"github.com/demandgen/demandgen/pkg/types"
)

// Shared fixture: a tiny host type system around Point.
type point struct{ X, Y int }

var pointType = types.Reference("Point")

// pointConstructor is Point(int, int) with a working invoke binding.
func pointConstructor() *operation.Callable {
	return &operation.Callable{
		Kind:      operation.Constructor,
		Name:      "Point",
		Declaring: pointType,
		Params:    []types.Type{types.Int, types.Int},
		Invoke: func(args []any) (any, error) {
			return point{X: args[0].(int), Y: args[1].(int)}, nil
		},
	}
}

// pointCatalog returns a catalog knowing only Point(int,int).
func pointCatalog(t *testing.T) *StaticCatalog {
	t.Helper()
	cat := NewStaticCatalog()
	cat.Register(pointConstructor())
	return cat
}
