package hr

import (
	"errors"
	"io/fs"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recdb"
)

func populated(t *testing.T) *DB {
	t.Helper()
	db := newTestDB(t)
	d1, err := db.AddDepartment(Department{Name: "Engineering", Budget: 1000})
	require.NoError(t, err)
	boss, err := db.Hire(Employee{Name: "Bob", Position: "Manager", DepartmentID: d1, Salary: 95_000})
	require.NoError(t, err)
	_, err = db.Hire(Employee{Name: "Alice", DepartmentID: d1, ManagerID: boss, Salary: 80_000, Performance: 8.5})
	require.NoError(t, err)
	tmp, err := db.Hire(Employee{Name: "Eve", DepartmentID: d1})
	require.NoError(t, err)
	require.NoError(t, db.Terminate(tmp))
	return db
}

// employeeRows copies employees with hire dates normalized to UTC: decoding a
// snapshot yields times in a different location for the same instant.
func employeeRows(db *DB) []Employee {
	var out []Employee
	for e := range db.Employees.Everything() {
		cp := *e
		cp.HireDate = cp.HireDate.UTC()
		out = append(out, cp)
	}
	return out
}

func sameContents(t *testing.T, a, b *DB) {
	t.Helper()
	assert.Equal(t, employeeRows(a), employeeRows(b))

	var ad, bd []Department
	for d := range a.Departments.Everything() {
		ad = append(ad, *d)
	}
	for d := range b.Departments.Everything() {
		bd = append(bd, *d)
	}
	assert.Equal(t, ad, bd)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	db := populated(t)
	dir := t.TempDir()
	require.NoError(t, db.Save(dir))

	loaded := newTestDB(t)
	require.NoError(t, loaded.Load(dir))
	sameContents(t, db, loaded)

	// The terminated employee came back deactivated.
	assert.Nil(t, loaded.Employee(3))
	assert.Equal(t, 3, loaded.Employees.Len())
}

func TestLoadMissingDir(t *testing.T) {
	db := newTestDB(t)
	err := db.Load(filepath.Join(t.TempDir(), "nope"))
	assert.True(t, errors.Is(err, fs.ErrNotExist), "got %v", err)
}

func TestLoadPartialPair(t *testing.T) {
	db := populated(t)
	dir := t.TempDir()
	require.NoError(t, db.Employees.SaveSnapshot(filepath.Join(dir, EmployeesFile), 1))

	// The pair is not atomic as a group: employees load, departments fail.
	loaded := newTestDB(t)
	err := loaded.Load(dir)
	assert.True(t, errors.Is(err, fs.ErrNotExist), "got %v", err)
	assert.Equal(t, 3, loaded.Employees.Len())
	assert.Equal(t, 0, loaded.Departments.Len())
}

func TestStashRoundTrip(t *testing.T) {
	db := populated(t)
	bs, err := recdb.OpenBoltStash(filepath.Join(t.TempDir(), "hr.db"), recdb.StashOptions{IsTesting: true})
	require.NoError(t, err)
	defer bs.Close()

	require.NoError(t, db.SaveStash(bs))

	loaded := newTestDB(t)
	require.NoError(t, loaded.LoadStash(bs))
	sameContents(t, db, loaded)
}
