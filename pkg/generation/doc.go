// Package generation implements the demand-driven input creation engine.
//
// The outer test generator ordinarily works bottom-up from values it already
// has. When it needs a value of a type with no pooled instances, this package
// switches to a top-down search: ProducerOperations discovers every
// constructor and method that can transitively produce the demanded type,
// Synthesize assembles a runnable sequence for one producer from pooled
// sub-sequences, and Creator glues search, synthesis, execution and pooling
// into the CreateInputsForType operation.
//
// Collaborators are injected through small interfaces: a Catalog enumerates
// the accessible callables of a host type, and an Executor runs a sequence
// and reports per-statement outcomes. CallExecutor is the default in-process
// executor adapter. Expected negatives, such as a type nothing can produce
// or a producer whose inputs cannot be satisfied, are empty or nil results,
// never errors; the caller falls back to its own strategy.
package generation
