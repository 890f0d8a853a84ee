// Package utils contains small helpers shared across sceneconv packages.
package utils

import (
	"fmt"

	"github.com/pkg/errors"
)

// NewUnexpectedTypeError is used when there is a type mismatch.
func NewUnexpectedTypeError(expected interface{}, actual interface{}) error {
	return errors.Errorf("expected %T but got %T", expected, actual)
}

// NewConfigValidationError returns a config validation error occurring at a given path.
func NewConfigValidationError(path string, err error) error {
	return errors.Wrapf(err, "error validating %q", path)
}

// NewConfigValidationFieldRequiredError returns a config validation error for a field missing
// at a given path.
func NewConfigValidationFieldRequiredError(path, field string) error {
	return NewConfigValidationError(path, errors.Errorf("%q is required", field))
}

// JoinPath builds the dotted config path used in validation errors, e.g. "topics.2".
func JoinPath(parent string, child interface{}) string {
	if parent == "" {
		return fmt.Sprint(child)
	}
	return fmt.Sprintf("%s.%v", parent, child)
}
