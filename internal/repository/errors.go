package repository

import "errors"

var (
	ErrRecordNotFound = errors.New("validation record not found")
	ErrInvalidInput   = errors.New("invalid input parameters")
)
