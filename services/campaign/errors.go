package campaign

import (
	"fmt"
	"strings"
)

// FieldError describes one invalid input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError signals malformed or missing input, rejected before any
// side effect.
type ValidationError struct {
	Fields []FieldError
}

func (e ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}
	return "invalid input: " + strings.Join(parts, "; ")
}

// NotFoundError signals that an id did not resolve to a campaign (or that
// a lookup produced nothing to return).
type NotFoundError struct {
	ID  string
	Msg string
}

func (e NotFoundError) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	return fmt.Sprintf("campaign %s not found", e.ID)
}

// GatewayError signals a rejected payment capture. The gateway's message is
// passed through to the caller.
type GatewayError struct {
	Err error
}

func (e GatewayError) Error() string { return e.Err.Error() }
func (e GatewayError) Unwrap() error { return e.Err }

// StoreError signals an underlying document store failure.
type StoreError struct {
	Err error
}

func (e StoreError) Error() string { return e.Err.Error() }
func (e StoreError) Unwrap() error { return e.Err }
