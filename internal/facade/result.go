// Package facade translates UI intent into API calls and normalizes
// every outcome into a Result. No raw error ever escapes a facade;
// callers branch on OK and show Message to the user on failure.
package facade

import (
	"github.com/go-playground/validator/v10"

	"github.com/connectify/connectify/pkg/client"
)

// Result is the uniform envelope returned by every facade call:
// exactly one of OK+Data or !OK+Message.
type Result[T any] struct {
	OK      bool
	Data    T
	Message string
}

func ok[T any](data T) Result[T] {
	return Result[T]{OK: true, Data: data}
}

func fail[T any](message string) Result[T] {
	return Result[T]{Message: message}
}

// failFrom normalizes an API error, preferring the backend's own
// message and falling back to generic text.
func failFrom[T any](err error, fallback string) Result[T] {
	return Result[T]{Message: client.ErrorMessage(err, fallback)}
}

// Done is the empty payload for write operations with no response body.
type Done = struct{}

// User-facing failure messages for client-side precondition failures.
// These are returned without any network call.
const (
	msgNotLoggedIn = "you are not logged in"
	msgNotAdmin    = "admin privileges are required for this action"
	msgInvalid     = "please fill in all required fields"
)

var validate = validator.New(validator.WithRequiredStructEnabled())
