package async

import "errors"

var (
	ErrAbandoned = errors.New("async: stopped waiting before the future completed")
	ErrPanicked  = errors.New("async: function panicked")
)
