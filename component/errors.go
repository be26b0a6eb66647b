package component

import "errors"

// ErrInvalidType is returned when a type is not one of the five component types.
var ErrInvalidType = errors.New("invalid component type")

// ErrMissingParent is returned when a non-group component has no parent slug.
var ErrMissingParent = errors.New("component has no parent")
