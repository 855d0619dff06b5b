package models

import (
	"errors"
	"fmt"
)

type ErrorKind int

const (
	KindValidation ErrorKind = iota
	KindNetwork
	KindApplication
	KindState
)

func (k ErrorKind) String() string {
	switch k {
	case KindValidation:
		return "VALIDATION"
	case KindNetwork:
		return "NETWORK"
	case KindApplication:
		return "APPLICATION"
	case KindState:
		return "STATE"
	default:
		return "UNKNOWN"
	}
}

// AppError is the error every service returns to the HTTP layer. Message is
// safe to show to the user; Err keeps the underlying cause for logs.
type AppError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Is matches sentinel AppErrors by kind and message.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Kind == t.Kind && e.Message == t.Message
}

// Retryable reports whether repeating the same action may succeed.
func (e *AppError) Retryable() bool {
	return e.Kind == KindNetwork
}

var (
	ErrLoginRequired  = &AppError{Kind: KindState, Message: "Session expired, please log in again"}
	ErrNoTable        = &AppError{Kind: KindState, Message: "Please scan your table's QR code first"}
	ErrNoActiveOrder  = &AppError{Kind: KindState, Message: "There is no active order"}
	ErrSessionChanged = &AppError{Kind: KindState, Message: "Table session changed, please try again"}
	ErrCartEmpty      = &AppError{Kind: KindValidation, Message: "Cart is empty"}

	ErrCheckoutInProgress = &AppError{Kind: KindState, Message: "Your order is already being placed"}
)

func NewValidationError(format string, args ...interface{}) *AppError {
	return &AppError{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

func NewNetworkError(message string, err error) *AppError {
	return &AppError{Kind: KindNetwork, Message: message, Err: err}
}

func NewApplicationError(message string, err error) *AppError {
	return &AppError{Kind: KindApplication, Message: message, Err: err}
}

func NewStateError(format string, args ...interface{}) *AppError {
	return &AppError{Kind: KindState, Message: fmt.Sprintf(format, args...)}
}

// AsAppError unwraps err to an *AppError. Errors of any other type are
// reported as application errors carrying a generic message.
func AsAppError(err error) *AppError {
	if err == nil {
		return nil
	}
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return &AppError{Kind: KindApplication, Message: "Something went wrong, please try again", Err: err}
}
