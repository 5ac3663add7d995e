package types

import (
	"errors"
	"fmt"
)

// Store errors.
var (
	ErrKeyNotFound   = errors.New("key not found")
	ErrQuotaExceeded = errors.New("storage quota exceeded")
	ErrStoreClosed   = errors.New("store is closed")
)

// Import/export errors.
var (
	ErrInvalidFormat = errors.New("invalid data format")
	ErrClipboard     = errors.New("clipboard unavailable")
	ErrPrint         = errors.New("print failed")
)

// Value errors.
var (
	ErrNotFound     = errors.New("entity not found")
	ErrInvalidTheme = errors.New("invalid theme")
	ErrInvalidUnit  = errors.New("invalid unit")
)

// Storage operations recorded in a StorageError.
const (
	OpRead  = "read"
	OpWrite = "write"
)

// StorageError is a non-fatal read or write failure on one key. Read errors
// are recovered with the caller's fallback; write errors drop the write.
type StorageError struct {
	Op  string
	Key string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s %q: %v", e.Op, e.Key, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }
