package taxonomy

import (
	"errors"
	"fmt"
	"log/slog"
)

// Error is the single failure type raised by the Tiller client core.
// It is immutable once constructed; With* methods return modified copies.
type Error struct {
	kind    Kind
	context Context
	message string
	cause   error
	fatal   bool
}

// New builds an Error whose message is rendered from the kind's template.
// It panics when kind is unknown or a required context field is absent:
// both are programming mistakes, never runtime conditions.
func New(kind Kind, ctx Context) *Error {
	tpl, ok := templates[kind]
	if !ok {
		panic(fmt.Errorf("taxonomy: unknown kind %q", kind))
	}

	message, err := tpl.render(ctx)
	if err != nil {
		panic(fmt.Errorf("taxonomy: %s: %w", kind, err))
	}

	return &Error{
		kind:    kind,
		context: ctx.clone(),
		message: message,
		fatal:   kind.Fatal(),
	}
}

// Kind returns the failure class.
func (e *Error) Kind() Kind {
	return e.kind
}

// Message returns the rendered template text.
func (e *Error) Message() string {
	return e.message
}

// Context returns a copy of the context fields.
func (e *Error) Context() Context {
	return e.context.clone()
}

// Field returns a single context value.
func (e *Error) Field(field Field) (string, bool) {
	value, ok := e.context[field]

	return value, ok
}

// Fatal reports whether the error aborts the enclosing operation.
func (e *Error) Fatal() bool {
	return e.fatal
}

func (e *Error) Error() string {
	return e.message
}

func (e *Error) Unwrap() error {
	return e.cause
}

// WithCause returns a copy that carries the low-level cause.
// The cause is reachable through errors.Unwrap but never alters the message.
func (e *Error) WithCause(cause error) *Error {
	out := e.copy()
	out.cause = cause

	return out
}

// Escalate returns a copy marked fatal regardless of the kind's default.
func (e *Error) Escalate() *Error {
	out := e.copy()
	out.fatal = true

	return out
}

func (e *Error) copy() *Error {
	return &Error{
		kind:    e.kind,
		context: e.context.clone(),
		message: e.message,
		cause:   e.cause,
		fatal:   e.fatal,
	}
}

// LogValue implements slog.LogValuer.
func (e *Error) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, len(e.context)+4)
	attrs = append(attrs,
		slog.String("kind", string(e.kind)),
		slog.String("message", e.message),
		slog.Bool("fatal", e.fatal),
	)

	for _, field := range e.context.sortedFields() {
		attrs = append(attrs, slog.String(string(field), e.context[field]))
	}

	if e.cause != nil {
		attrs = append(attrs, slog.String("cause", e.cause.Error()))
	}

	return slog.GroupValue(attrs...)
}

// As returns the first *Error in err's chain.
func As(err error) (*Error, bool) {
	var target *Error
	if errors.As(err, &target) {
		return target, true
	}

	return nil, false
}

// KindOf returns the kind of the first *Error in err's chain.
func KindOf(err error) (Kind, bool) {
	target, ok := As(err)
	if !ok {
		return "", false
	}

	return target.kind, true
}

// IsKind reports whether any *Error of the given kind appears in err's chain,
// including causes of outer taxonomy errors.
func IsKind(err error, kind Kind) bool {
	for err != nil {
		target, ok := As(err)
		if !ok {
			return false
		}

		if target.kind == kind {
			return true
		}

		err = target.cause
	}

	return false
}

// IsFatal reports whether err must abort the enclosing operation.
// Errors outside the taxonomy are treated as fatal.
func IsFatal(err error) bool {
	if err == nil {
		return false
	}

	target, ok := As(err)
	if !ok {
		return true
	}

	return target.fatal
}
