package log

import "errors"

// ErrInvalidLevel is returned when a level name cannot be parsed.
var ErrInvalidLevel = errors.New("invalid log level")

// ErrInvalidFormat is returned when a log format name cannot be parsed.
var ErrInvalidFormat = errors.New("invalid log format")
