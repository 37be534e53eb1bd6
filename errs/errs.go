// Package errs holds the error taxonomy shared by the richtext packages.
//
// Every error returned by this module wraps exactly one of the sentinels
// below, so callers classify failures with errors.Is:
//
//	if errors.Is(err, errs.ErrValidation) {
//	    ...
//	}
package errs

import "errors"

var (
	// ErrValidation reports a value of the wrong type or out of range for
	// a property or a leaf payload.
	ErrValidation = errors.New("validation error")

	// ErrParse reports a malformed literal for a typed value.
	ErrParse = errors.New("parse error")

	// ErrMissingRequiredProperty reports a wire document missing a
	// mandatory key.
	ErrMissingRequiredProperty = errors.New("missing required property")

	// ErrUnhandledCase reports an unexpected key or tag in a wire document.
	ErrUnhandledCase = errors.New("unhandled case")

	// ErrUnsupportedOperation reports a structurally meaningless request.
	ErrUnsupportedOperation = errors.New("unsupported operation")

	// ErrInvalidArgument reports a nil or otherwise unusable argument.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrDuplicateRegistration reports a second registration of a
	// property name.
	ErrDuplicateRegistration = errors.New("duplicate registration")

	// ErrInvalidName reports a property or placeholder name outside the
	// allowed charset or length.
	ErrInvalidName = errors.New("invalid name")
)
