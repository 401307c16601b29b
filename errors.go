package recdb

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrStoreFull is returned by Insert once a bounded store has reached
	// its capacity. The store is left unchanged.
	ErrStoreFull = errors.New("store full")

	// ErrNotFound is returned when no active record has the requested ID.
	ErrNotFound = errors.New("record not found")

	// ErrInvalidInput rejects an out-of-range or malformed field value
	// before any mutation happens.
	ErrInvalidInput = errors.New("invalid input")

	// ErrBadSnapshot reports a snapshot that cannot be decoded: wrong magic,
	// truncation, checksum mismatch or an unsupported format version.
	ErrBadSnapshot = errors.New("malformed snapshot")

	// ErrSchemaMismatch reports a snapshot written with a different schema
	// version than the caller expects.
	ErrSchemaMismatch = errors.New("snapshot schema version mismatch")
)

// RecordError annotates a sentinel error with the store and record it
// concerns.
type RecordError struct {
	Store string
	ID    int
	Msg   string
	Err   error
}

func storeErrf(store string, id int, err error, format string, args ...any) error {
	return &RecordError{store, id, fmt.Sprintf(format, args...), err}
}

func (e *RecordError) Unwrap() error {
	return e.Err
}

func (e *RecordError) Error() string {
	var buf strings.Builder
	buf.WriteString(e.Store)
	if e.ID != 0 {
		buf.WriteByte('/')
		buf.WriteString(strconv.Itoa(e.ID))
	}
	if e.Msg != "" {
		buf.WriteString(": ")
		buf.WriteString(e.Msg)
	}
	if e.Err != nil {
		buf.WriteString(": ")
		buf.WriteString(e.Err.Error())
	}
	return buf.String()
}

// DataError reports undecodable snapshot bytes together with the offending
// data, truncated for readability.
type DataError struct {
	Data []byte
	Off  int
	Err  error
	Msg  string
}

func dataErrf(data []byte, off int, err error, format string, args ...any) error {
	return &DataError{data, off, err, fmt.Sprintf(format, args...)}
}

func (e *DataError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return ErrBadSnapshot
}

func (e *DataError) Error() string {
	const prefixLen = 64
	const suffixLen = 32
	n := len(e.Data)
	if n <= prefixLen+suffixLen {
		if e.Err != nil {
			return fmt.Sprintf("%s at %d: %v: (%d) %x", e.Msg, e.Off, e.Err, n, e.Data)
		}
		return fmt.Sprintf("%s at %d: (%d) %x", e.Msg, e.Off, n, e.Data)
	}
	p, s := e.Data[:prefixLen], e.Data[n-suffixLen:]
	if e.Err != nil {
		return fmt.Sprintf("%s at %d: %v: (%d) %x...%x", e.Msg, e.Off, e.Err, n, p, s)
	}
	return fmt.Sprintf("%s at %d: (%d) %x...%x", e.Msg, e.Off, n, p, s)
}
