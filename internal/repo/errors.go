package repo

import (
	"errors"
	"fmt"
)

// ErrInconsistentRead is returned by Collection.Create when a freshly inserted
// document cannot be read back. It signals that the store broke its
// read-your-writes guarantee (or the document was deleted concurrently) and is
// never to be reported as "not found".
var ErrInconsistentRead = errors.New("inserted document not visible on re-read")

// StoreError wraps a failure of a store operation.
type StoreError struct {
	Op         string // create|list|get|update|delete
	Collection string
	Err        error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("repo: %s %s: %v", e.Op, e.Collection, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }
