package ir

import "errors"

var (
	// ErrWrongKind is returned by read-only accessors applied to a
	// node of the wrong container kind.
	ErrWrongKind  = errors.New("wrong kind")
	ErrNoSuchKey  = errors.New("no such key")
	ErrIndexRange = errors.New("index out of range")
	ErrPath       = errors.New("bad path")
)
