package recdb

import (
	"errors"
	"strings"
	"testing"
)

func TestRecordError(t *testing.T) {
	err := storeErrf("employees", 7, ErrNotFound, "while promoting")
	deepEqual(t, err.Error(), "employees/7: while promoting: record not found")
	iserr(t, err, ErrNotFound)

	err = storeErrf("employees", 0, ErrStoreFull, "capacity %d", 500)
	deepEqual(t, err.Error(), "employees: capacity 500: store full")
	iserr(t, err, ErrStoreFull)
}

func TestDataError(t *testing.T) {
	err := dataErrf([]byte{0xDE, 0xAD}, 1, nil, "invalid uvarint")
	if !strings.Contains(err.Error(), "invalid uvarint at 1") {
		t.Errorf("** got %q", err.Error())
	}
	if !strings.Contains(err.Error(), "dead") {
		t.Errorf("** got %q", err.Error())
	}
	iserr(t, err, ErrBadSnapshot)

	// Long data is elided in the message.
	long := dataErrf(make([]byte, 200), 0, errors.New("boom"), "bad payload")
	if !strings.Contains(long.Error(), "...") {
		t.Errorf("** got %q", long.Error())
	}
}
