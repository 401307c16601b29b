package hr

import (
	"path/filepath"

	"recdb"
)

// One snapshot file per entity type, mirroring the employees.dat /
// departments.dat pair of the original programs. Each file is written
// atomically on its own, but the pair is not atomic as a group: a crash
// between the two writes leaves files from different saves behind.
const (
	EmployeesFile   = "employees.dat"
	DepartmentsFile = "departments.dat"

	employeeSchemaVersion   = 1
	departmentSchemaVersion = 1
)

// Save writes both stores into dir, one snapshot file each.
func (db *DB) Save(dir string) error {
	if err := db.Employees.SaveSnapshot(filepath.Join(dir, EmployeesFile), employeeSchemaVersion); err != nil {
		return err
	}
	return db.Departments.SaveSnapshot(filepath.Join(dir, DepartmentsFile), departmentSchemaVersion)
}

// Load replaces both stores with the snapshots in dir.
func (db *DB) Load(dir string) error {
	if err := db.Employees.LoadSnapshot(filepath.Join(dir, EmployeesFile), employeeSchemaVersion); err != nil {
		return err
	}
	return db.Departments.LoadSnapshot(filepath.Join(dir, DepartmentsFile), departmentSchemaVersion)
}

// SaveStash keeps both stores in a single Bolt file instead of the snapshot
// pair. Unlike Save, one file means one consistent unit on disk.
func (db *DB) SaveStash(bs *recdb.BoltStash) error {
	if err := recdb.StashSave(bs, db.Employees, employeeSchemaVersion); err != nil {
		return err
	}
	return recdb.StashSave(bs, db.Departments, departmentSchemaVersion)
}

// LoadStash replaces both stores with the stashed contents.
func (db *DB) LoadStash(bs *recdb.BoltStash) error {
	if err := recdb.StashLoad(bs, db.Employees, employeeSchemaVersion); err != nil {
		return err
	}
	return recdb.StashLoad(bs, db.Departments, departmentSchemaVersion)
}
