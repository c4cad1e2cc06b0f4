package cnt

import "errors"

var (
	// ErrNoPath is returned by Save when no file is bound.
	ErrNoPath    = errors.New("no file path specified")
	ErrNotObject = errors.New("document must be an object")
)
