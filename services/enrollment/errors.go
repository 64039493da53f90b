package enrollment

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// Kind classifies engine failures so the HTTP layer can map them to a
// status code without string matching.
type Kind int

const (
	KindInternal Kind = iota
	KindNotFound
	KindForbidden
	KindInvalidReference
	KindInvalidInput
)

// Error is the failure value returned by every engine operation
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func notFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

func forbidden(message string) *Error {
	return &Error{Kind: KindForbidden, Message: message}
}

func invalidReference(message string) *Error {
	return &Error{Kind: KindInvalidReference, Message: message}
}

func invalidInput(message string) *Error {
	return &Error{Kind: KindInvalidInput, Message: message}
}

// KindOf extracts the failure kind; unclassified errors are internal
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// HTTPStatus maps a failure kind to the status code surfaced at the
// request boundary
func HTTPStatus(err error) int {
	switch KindOf(err) {
	case KindNotFound:
		return fiber.StatusNotFound
	case KindForbidden:
		return fiber.StatusForbidden
	case KindInvalidReference, KindInvalidInput:
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}
