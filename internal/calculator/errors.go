package calculator

import "errors"

// ErrInvalidArgument is returned for digits outside 0-9, unknown operation symbols, equals
// without a pending binary operation, and a display that cannot be read back as a number
// (for example after it shows "Error").
var ErrInvalidArgument = errors.New("invalid argument")
