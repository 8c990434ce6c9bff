package service

import "errors"

var (
	ErrInvalidRequest = errors.New("invalid request")
	ErrUnavailable    = errors.New("storage unavailable")
	ErrCorruptRecord  = errors.New("corrupt stored record")
)
