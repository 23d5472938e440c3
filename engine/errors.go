package engine

import "errors"

// Client-recoverable failures. Handlers match these with errors.Is and map
// them to 4xx responses; anything else is a storage fault.
var (
	ErrInvalidTier         = errors.New("invalid package tier")
	ErrAmountOutOfRange    = errors.New("amount outside package range")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrAlreadyProcessed    = errors.New("transaction already processed")
	ErrNotFound            = errors.New("record not found")
	ErrValidation          = errors.New("invalid input")
)
