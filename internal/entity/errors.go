package entity

import "errors"

var (
	// ErrStorage is returned when the catalog file can not be read or written.
	ErrStorage = errors.New("catalog storage error")

	// ErrMalformedCatalog is returned when the catalog file can not be parsed
	// or describes an inconsistent lending state.
	ErrMalformedCatalog = errors.New("malformed catalog data")
)
