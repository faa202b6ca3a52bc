package domain

import "errors"

// Sentinel errors for the domain layer. These provide consistent, checkable
// errors for lookups and parsing of site content.
var (
	ErrNotFound       = errors.New("requested resource not found")
	ErrUnknownTab     = errors.New("unknown menu tab")
	ErrUnknownGallery = errors.New("unknown gallery")
	ErrDuplicateID    = errors.New("duplicate id in list")
)
