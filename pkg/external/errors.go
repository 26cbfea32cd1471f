package external

import "errors"

var (
	ErrUnexpectedStatus = errors.New("external: unexpected response status")
	ErrEmptyResponse    = errors.New("external: response carried no usable data")
	ErrDecodeResponse   = errors.New("external: failed to decode response")
	ErrBuildRequest     = errors.New("external: failed to build request")
)
