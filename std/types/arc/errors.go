package arc

import "errors"

// ErrLengthMismatch is returned when an iterator yields a different number
// of elements than it announced.
var ErrLengthMismatch = errors.New("iterator length does not match announced length")

// ErrCapacityOverflow is returned when a requested layout does not fit the
// address space.
var ErrCapacityOverflow = errors.New("capacity overflow")

// ErrUnionAlignment is the panic value when a header layout cannot carry a
// union tag bit.
var ErrUnionAlignment = errors.New("header alignment leaves no tag bit")

// ErrPoolDropper is the panic value when a pool is created for a payload
// type that needs teardown.
var ErrPoolDropper = errors.New("pooled payloads must not have a Drop method")
