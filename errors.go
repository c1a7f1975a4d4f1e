package arbor

import "errors"

var (
	// ErrNotInitialized signals use of a nil tree handle or a tree that was
	// not created by New.
	ErrNotInitialized = errors.New("arbor: tree not initialized")
	// ErrNilCompare signals a missing comparator at construction.
	ErrNilCompare = errors.New("arbor: compare function is nil")
	// ErrEmptyKey signals a nil or zero-length search key.
	ErrEmptyKey = errors.New("arbor: key must not be empty")
	// ErrEmptyPayload signals a nil or zero-length payload offered for insertion.
	ErrEmptyPayload = errors.New("arbor: payload must not be empty")
	// ErrTreeEmpty signals an operation that requires at least one payload.
	ErrTreeEmpty = errors.New("arbor: tree is empty")
	// ErrNilWriter signals a nil output writer passed to a rendering function.
	ErrNilWriter = errors.New("arbor: writer is nil")
	// ErrMalformedTree signals a structural invariant violation detected by Check.
	ErrMalformedTree = errors.New("arbor: malformed tree")
)
