// Package randomness provides the single seedable random source every
// sampling component of the engine draws from. The source is an explicit
// instance threaded through constructors, never package-level state, so a
// fixed seed reproduces identical search, synthesis and fuzz output across
// runs. The stream is consumed in deterministic call order; sharing one
// source across concurrent sessions is unsupported.
package randomness
