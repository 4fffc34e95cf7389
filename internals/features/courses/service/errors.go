package service

import "errors"

var (
	// ErrValidation: input tidak valid (enum tak dikenal, field wajib kosong).
	ErrValidation = errors.New("validation error")
	// ErrInvalidRequest: parameter request tidak masuk akal (pagination).
	ErrInvalidRequest = errors.New("invalid request")
)
