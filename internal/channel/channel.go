// Package channel implements the named request channel between a host GUI
// runtime and native code. A caller sends an encoded method call to a channel
// name and receives exactly one encoded reply: a success value, an error
// triple, or an empty message meaning the method is not implemented.
package channel

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
)

// ErrNotImplemented is returned by InvokeMethod when the handler does not
// know the method or no handler is registered for the channel.
var ErrNotImplemented = errors.New("method not implemented")

// MethodCall is a method name plus opaque arguments
type MethodCall struct {
	Method    string
	Arguments []byte
}

// Result receives the single reply to a method call
type Result interface {
	Success(value any)
	Error(code, message string, details any)
	NotImplemented()
}

// Error is a structured error reply
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details"`
}

func (e *Error) Error() string {
	if e.Message == "" {
		return e.Code
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// MethodCallHandler answers calls arriving on a MethodChannel
type MethodCallHandler func(ctx context.Context, call *MethodCall, result Result)
