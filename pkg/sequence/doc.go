// Package sequence defines the executable call sequences the engine
// synthesizes. A Sequence is an ordered list of statements, each either a
// literal value or a call to a typed operation whose inputs are indices of
// earlier statements in the same sequence. The structural invariant, that
// every input reference points strictly backwards to a statement of a
// compatible output type, is enforced at construction time and re-checkable
// with Check.
//
// Sequences are immutable: Concat and Extend return new sequences with
// contiguously renumbered statements, so a pooled sequence is never modified
// by later synthesis or fuzzing.
package sequence
