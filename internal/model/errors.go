package model

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates a requested record does not exist.
var ErrNotFound = errors.New("record not found")

// ErrInvalidCredentials indicates a failed login attempt. It is returned
// both for an unknown email and for a password mismatch so callers
// cannot probe which emails are registered.
var ErrInvalidCredentials = errors.New("invalid credentials")

// MissingReferenceError indicates a required foreign identifier is
// absent or does not resolve in its reference table.
type MissingReferenceError struct {
	Kind ReferenceKind
}

func (e *MissingReferenceError) Error() string {
	return fmt.Sprintf("required reference missing: %s", e.Kind)
}

// NewMissingReference builds a MissingReferenceError for the given kind.
func NewMissingReference(kind ReferenceKind) error {
	return &MissingReferenceError{Kind: kind}
}

// Photo failure reasons.
const (
	PhotoReasonEmpty  = "empty"
	PhotoReasonDecode = "decode"
)

// InvalidPhotoError indicates an empty or undecodable photo payload.
type InvalidPhotoError struct {
	Reason string
	Err    error
}

func (e *InvalidPhotoError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid photo (%s): %s", e.Reason, e.Err)
	}
	return fmt.Sprintf("invalid photo (%s)", e.Reason)
}

func (e *InvalidPhotoError) Unwrap() error {
	return e.Err
}
