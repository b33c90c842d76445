// Package arc provides atomically reference counted pointers without weak
// references, whose disposal is delegated to a backdrop.Strategy.
//
// Every value lives in one control header holding the strong count and the
// payload. Arc shares it, Unique builds it with exclusive access, Borrow
// views the payload without touching the count, Offset exposes a bare
// payload pointer that still owns a count, and Union packs one of two
// Arcs into a single tagged word.
//
// Go has no destructors: every owning handle must be released exactly once,
// either with Release or by a consuming conversion such as Shareable,
// IntoOffset, IntoRaw or NewLeft. Consuming calls empty the source handle.
package arc
