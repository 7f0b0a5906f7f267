package set

import "github.com/pkg/errors"

var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrExhausted       = errors.New("no more elements to iterate")
	ErrTypeMismatch    = errors.New("destination type cannot hold set elements")
)
