// Package backdrop defines how a reference-counted allocation is disposed
// of once its last owner lets go.
//
// A Strategy is a type whose zero value is ready to use. It receives the
// allocation as Trash exactly once, after the count reached zero, and must
// eventually call Trash.Drop exactly once. It may do so on the releasing
// goroutine (Trivial), on a fresh goroutine (Goroutine), on a long-lived
// background worker (TrashWorker), in bounded parallel (Limited), or when
// the application asks for it (TrashQueue).
package backdrop
