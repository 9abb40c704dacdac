// Package pool implements the object pool: an insertion-ordered store mapping
// produced runtime values to the sequences that built them, queryable by type
// compatibility. At most one sequence is kept per distinct value; a later
// insertion for a runtime-equal value overwrites the earlier sequence
// (last-write-wins). An empty query result is the pool's only "not found"
// signal; callers back off, they never get an error.
package pool
