package domain

import "errors"

var (
	// ErrUnitNotFound means a unit code resolved to nothing in the live
	// registry and the fallback table.
	ErrUnitNotFound = errors.New("unit not found in registry")

	// ErrUnsupportedFileType means the extractor does not understand the
	// document's format.
	ErrUnsupportedFileType = errors.New("unsupported document type")
)
