package oaskema

import (
	"errors"
	"fmt"

	"github.com/reoring/oaskema/i18n"
)

// Error codes carried by UnconvertibleError.Code.
const (
	CodeUnconvertible  = "unconvertible"
	CodeInvalidKey     = "invalid_key"
	CodeInvalidLiteral = "invalid_literal"
	CodeResolverFailed = "resolver_failed"
	CodeHookFailed     = "hook_failed"
	CodeMaxDepth       = "max_depth"
)

// ErrUnconvertible matches every *UnconvertibleError via errors.Is.
var ErrUnconvertible = errors.New("oaskema: unconvertible schema")

// ErrUnsupported is returned by a Hook to defer a node to the built-in rules.
var ErrUnsupported = errors.New("oaskema: unsupported by hook")

// UnconvertibleError reports a node that no rule could translate. Any such
// failure aborts the whole conversion; no partial document is returned.
type UnconvertibleError struct {
	Path    string // JSON Pointer into the output document (for example: /properties/tags/items).
	Code    string // One of the codes listed above.
	Message string
	Node    Node              // Offending node, nil when the node itself was nil.
	Params  map[string]string // Structured parameters used to render Message.
	Cause   error             // Optional: underlying hook or resolver error.
}

func (e *UnconvertibleError) Error() string {
	kind := "nil"
	if e.Node != nil {
		kind = e.Node.Kind().String()
	}
	msg := fmt.Sprintf("oaskema: %s at %s (%s node)", e.Message, e.Path, kind)
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func (e *UnconvertibleError) Unwrap() error { return e.Cause }

// Is makes errors.Is(err, ErrUnconvertible) succeed for every UnconvertibleError.
func (e *UnconvertibleError) Is(target error) bool { return target == ErrUnconvertible }

// AsUnconvertible extracts an *UnconvertibleError from err using errors.As.
func AsUnconvertible(err error) (*UnconvertibleError, bool) {
	if err == nil {
		return nil, false
	}
	var ue *UnconvertibleError
	if errors.As(err, &ue) {
		return ue, true
	}
	return nil, false
}

func message(code string, params map[string]string) string {
	return i18n.T(code, params)
}
