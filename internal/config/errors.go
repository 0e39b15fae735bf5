package config

import "errors"

var (
	ErrParseEnv       = errors.New("parse env")
	ErrBelowMinimum   = errors.New("value below minimum")
	ErrOutOfRange     = errors.New("value out of range")
	ErrUnknownFormat  = errors.New("unknown log format")
	ErrNegativeBudget = errors.New("negative retry budget")
)
