package script

import "errors"

var (
	ErrUnknownClass  = errors.New("script: unknown class")
	ErrUnknownMethod = errors.New("script: unknown method")
	ErrNoScript      = errors.New("script: sprite has no script data")
	ErrScript        = errors.New("script: lua error")
)
