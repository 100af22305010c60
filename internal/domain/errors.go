package domain

import "errors"

var (
	ErrInvalidInput   = errors.New("invalid input")
	ErrInvalidPattern = errors.New("invalid pattern")
	ErrStateNotFound  = errors.New("state not found")
)
