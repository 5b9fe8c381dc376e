package coll

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrNullKey matches any *NullKeyError through errors.Is.
	ErrNullKey = errors.New("nil key")
	// ErrIndexOutOfRange matches any *IndexOutOfRangeError through errors.Is.
	ErrIndexOutOfRange = errors.New("index out of range")
)

// NullKeyError is returned when a nil key is passed to a map operation.
// Nothing has been modified when it is returned.
type NullKeyError struct {
	Op string
}

func (e *NullKeyError) Error() string {
	return e.Op + ": nil key"
}

// Is reports whether target is ErrNullKey.
func (e *NullKeyError) Is(target error) bool {
	return target == ErrNullKey
}

// IndexOutOfRangeError is returned by list operations given an index
// outside the valid range for the current size.
type IndexOutOfRangeError struct {
	Op    string
	Index int
	Size  int
}

func (e *IndexOutOfRangeError) Error() string {
	return fmt.Sprintf("%s: index %d out of range [0:%d]", e.Op, e.Index, e.Size)
}

// Is reports whether target is ErrIndexOutOfRange.
func (e *IndexOutOfRangeError) Is(target error) bool {
	return target == ErrIndexOutOfRange
}

func nullKeyError(op string) error {
	return errors.WithStack(&NullKeyError{Op: op})
}

func indexError(op string, index, size int) error {
	return errors.WithStack(&IndexOutOfRangeError{Op: op, Index: index, Size: size})
}
