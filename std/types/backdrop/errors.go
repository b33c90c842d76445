package backdrop

import "errors"

// ErrWorkerStopped is returned when stopping a worker that is not running.
var ErrWorkerStopped = errors.New("trash worker is not running")

// ErrInvalidConfig is returned when a worker configuration is rejected.
var ErrInvalidConfig = errors.New("invalid trash worker configuration")

// ErrTeardownPanic is reported by Limited when a payload teardown panicked.
var ErrTeardownPanic = errors.New("payload teardown panicked")
