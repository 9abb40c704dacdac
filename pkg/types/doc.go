// Package types defines the semantic type model used throughout the input
// synthesis engine. A Type is a lightweight descriptor tagged with a kind:
// the primitive kinds (void, boolean, byte, char, short, int, long, float,
// double, string) are terminal and are never decomposed by producer search,
// while reference types decompose into the constructors and methods that can
// produce them.
//
// Assignability is the compatibility relation used for pool queries and input
// resolution: it is broader than equality for reference types, where a value
// may be assigned anywhere its declared supertypes (including interfaces) are
// required. Host type systems flatten their ancestor chains into the
// Supertypes list when they construct reference types, so the engine never
// touches runtime introspection facilities directly.
package types
