package generation

import (
	"github.com/demandgen/demandgen/pkg/operation"
	"github.com/demandgen/demandgen/pkg/types"
)

// StaticCatalog is an in-memory Catalog built by registering callables
// explicitly. It is the reference implementation used in tests and by hosts
// whose operation surface is known ahead of time.
type StaticCatalog struct {
	byType map[string][]*operation.Callable
}

// NewStaticCatalog returns an empty catalog.
func NewStaticCatalog() *StaticCatalog {
	return &StaticCatalog{byType: make(map[string][]*operation.Callable)}
}

// Register adds a callable under its declaring type. Registration order is
// the enumeration order.
func (c *StaticCatalog) Register(callables ...*operation.Callable) {
	for _, cl := range callables {
		name := cl.Declaring.Name
		c.byType[name] = append(c.byType[name], cl)
	}
}

// Callables returns the callables registered for t.
func (c *StaticCatalog) Callables(t types.Type) []*operation.Callable {
	return c.byType[t.Name]
}
