package config

import "errors"

var (
	ErrReadEnvFile   = errors.New("failed to read env file")
	ErrParsingConfig = errors.New("failed to parse environment variables into config")
	ErrInvalidConfig = errors.New("config failed validation")
)
