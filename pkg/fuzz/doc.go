// Package fuzz perturbs the final value of an already-synthesized sequence
// without discarding the construction history that produced it. Given a
// sequence whose last variable is a supported numeric kind, the fuzzer
// appends a Gaussian noise literal and a sum call; for strings it appends a
// text-builder construction, the literals and mutation call of one of four
// randomly chosen strategies (insert, delete, replace, substring), and a
// trailing conversion back to a string where the strategy needs one.
// Unsupported kinds and empty-string edge cases return the input sequence
// unchanged with zero appended statements, a defined, silent no-op.
//
// Every appended operation carries an invoke binding, so fuzzed sequences
// execute under the default executor exactly like synthesized ones.
package fuzz
