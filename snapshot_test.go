package recdb

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSnapshotRoundTrip(t *testing.T) {
	const capacity = 5
	for _, n := range []int{0, 1, capacity} {
		s := newEmpStore(capacity)
		for i := 0; i < n; i++ {
			must(s.Insert(&Emp{Name: "emp", DeptID: i, Salary: float64(i) * 100}))
		}
		if n > 1 {
			ensure(s.Deactivate(2))
		}

		path := filepath.Join(t.TempDir(), "employees.dat")
		ensure(s.SaveSnapshot(path, 1))

		loaded := newEmpStore(capacity)
		ensure(loaded.LoadSnapshot(path, 1))
		deepEqual(t, storeRows(loaded), storeRows(s))
		deepEqual(t, loaded.Len(), n)
	}
}

func TestSnapshotLoadReplacesContents(t *testing.T) {
	s := newEmpStore(0)
	must(s.Insert(&Emp{Name: "Alice"}))
	path := filepath.Join(t.TempDir(), "employees.dat")
	ensure(s.SaveSnapshot(path, 1))

	other := newEmpStore(0)
	must(other.Insert(&Emp{Name: "Bob"}))
	must(other.Insert(&Emp{Name: "Carol"}))
	ensure(other.LoadSnapshot(path, 1))

	deepEqual(t, other.Len(), 1)
	deepEqual(t, other.Get(1).Name, "Alice")
}

func TestSnapshotSchemaMismatch(t *testing.T) {
	s := newEmpStore(0)
	must(s.Insert(&Emp{Name: "Alice"}))
	path := filepath.Join(t.TempDir(), "employees.dat")
	ensure(s.SaveSnapshot(path, 1))

	loaded := newEmpStore(0)
	err := loaded.LoadSnapshot(path, 2)
	iserr(t, err, ErrSchemaMismatch)
	deepEqual(t, loaded.Len(), 0)
}

func TestSnapshotCorruption(t *testing.T) {
	s := newEmpStore(0)
	must(s.Insert(&Emp{Name: "Alice"}))
	data := s.EncodeSnapshot(1)

	loaded := newEmpStore(0)

	flipped := append([]byte(nil), data...)
	flipped[len(flipped)/2] ^= 0xFF
	iserr(t, loaded.DecodeSnapshot(flipped, 1), ErrBadSnapshot)

	iserr(t, loaded.DecodeSnapshot(data[:4], 1), ErrBadSnapshot)
	iserr(t, loaded.DecodeSnapshot(nil, 1), ErrBadSnapshot)

	badMagic := append([]byte(nil), data...)
	copy(badMagic, "nope")
	iserr(t, loaded.DecodeSnapshot(badMagic, 1), ErrBadSnapshot)

	deepEqual(t, loaded.Len(), 0)
}

func TestSnapshotMissingFile(t *testing.T) {
	s := newEmpStore(0)
	err := s.LoadSnapshot(filepath.Join(t.TempDir(), "nope.dat"), 1)
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("** got %v, wanted fs.ErrNotExist", err)
	}
}

func TestSnapshotCapacityExceeded(t *testing.T) {
	big := newEmpStore(0)
	must(big.Insert(&Emp{Name: "Alice"}))
	must(big.Insert(&Emp{Name: "Bob"}))
	path := filepath.Join(t.TempDir(), "employees.dat")
	ensure(big.SaveSnapshot(path, 1))

	small := newEmpStore(1)
	iserr(t, small.LoadSnapshot(path, 1), ErrStoreFull)
	deepEqual(t, small.Len(), 0)
}

func TestSnapshotAtomicOverwrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "employees.dat")

	s := newEmpStore(0)
	must(s.Insert(&Emp{Name: "Alice"}))
	ensure(s.SaveSnapshot(path, 1))
	must(s.Insert(&Emp{Name: "Bob"}))
	ensure(s.SaveSnapshot(path, 1))

	loaded := newEmpStore(0)
	ensure(loaded.LoadSnapshot(path, 1))
	deepEqual(t, loaded.Len(), 2)

	// No temp files may remain after a successful save.
	for _, de := range must(os.ReadDir(dir)) {
		if strings.Contains(de.Name(), ".tmp-") {
			t.Errorf("** leftover temp file %s", de.Name())
		}
	}
}
