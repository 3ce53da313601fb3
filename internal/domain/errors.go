package domain

import "errors"

var (
	ErrRecordNotFound = errors.New("record not found")
	ErrDuplicateKey   = errors.New("duplicate key")
	ErrUnknown        = errors.New("unknown error")

	ErrUserNotFound             = errors.New("user not found")
	ErrStatementNotFound        = errors.New("statement not found")
	ErrIncorrectEmailOrPassword = errors.New("incorrect email or password")
	ErrInsufficientFunds        = errors.New("insufficient funds")
	ErrInvalidAmount            = errors.New("amount must be positive")
)
