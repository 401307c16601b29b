// Package hr implements a small human-resources database: employees and
// departments kept in recdb stores, with integer cross-references between
// them.
//
// Foreign keys are validated at write time: an operation that would store a
// nonzero reference to a record that does not resolve is rejected. Records can
// still be terminated after being referenced, so read-time resolution may
// yield a missing reference; display code substitutes a placeholder.
//
// Terminating an employee cascades over manager references, clearing them on
// employees and departments alike. Department membership references are left
// in place and resolve as missing once the department is retired.
package hr

import (
	"fmt"
	"strings"
	"time"

	"recdb"
)

// Employee is one person on payroll. DepartmentID and ManagerID reference
// other records; zero means unassigned.
type Employee struct {
	recdb.Meta
	Name         string    `msgpack:"n"`
	Position     string    `msgpack:"p"`
	DepartmentID int       `msgpack:"d"`
	ManagerID    int       `msgpack:"m"`
	HireDate     time.Time `msgpack:"h"`
	Salary       float64   `msgpack:"s"`
	Performance  float64   `msgpack:"f"`
	Email        string    `msgpack:"e"`
	Phone        string    `msgpack:"t"`
	Address      string    `msgpack:"a"`
}

// Department groups employees. ManagerID references the employee running the
// department; zero means the position is vacant.
type Department struct {
	recdb.Meta
	Name        string  `msgpack:"n"`
	Description string  `msgpack:"c"`
	ManagerID   int     `msgpack:"m"`
	Budget      float64 `msgpack:"b"`
}

type Config struct {
	EmployeeCapacity   int // 0 = unbounded
	DepartmentCapacity int // 0 = unbounded
}

// DB owns one store per entity type. Operations that touch a single entity
// type take only that store; cross-entity operations live here.
type DB struct {
	Employees   *recdb.Store[Employee, *Employee]
	Departments *recdb.Store[Department, *Department]

	now func() time.Time
}

func New(cfg Config) *DB {
	return &DB{
		Employees:   recdb.NewStore[Employee, *Employee]("employees", cfg.EmployeeCapacity),
		Departments: recdb.NewStore[Department, *Department]("departments", cfg.DepartmentCapacity),
		now:         time.Now,
	}
}

// Hire validates and inserts a new employee, returning the assigned ID.
// A zero hire date defaults to the current time.
func (db *DB) Hire(e Employee) (int, error) {
	now := db.now()
	if strings.TrimSpace(e.Name) == "" {
		return 0, fmt.Errorf("%w: employee name is empty", recdb.ErrInvalidInput)
	}
	if e.Salary < 0 {
		return 0, fmt.Errorf("%w: negative salary %.2f", recdb.ErrInvalidInput, e.Salary)
	}
	if e.Performance < 0 || e.Performance > 10 {
		return 0, fmt.Errorf("%w: performance score %.1f out of range [0,10]", recdb.ErrInvalidInput, e.Performance)
	}
	if e.HireDate.IsZero() {
		e.HireDate = now
	} else if e.HireDate.After(now) {
		return 0, fmt.Errorf("%w: hire date %s is in the future", recdb.ErrInvalidInput, e.HireDate.Format("2006-01-02"))
	}
	if err := recdb.CheckRef(db.Departments, e.DepartmentID); err != nil {
		return 0, err
	}
	if err := recdb.CheckRef(db.Employees, e.ManagerID); err != nil {
		return 0, err
	}
	return db.Employees.Insert(&e)
}

// AddDepartment validates and inserts a new department.
func (db *DB) AddDepartment(d Department) (int, error) {
	if strings.TrimSpace(d.Name) == "" {
		return 0, fmt.Errorf("%w: department name is empty", recdb.ErrInvalidInput)
	}
	if d.Budget < 0 {
		return 0, fmt.Errorf("%w: negative budget %.2f", recdb.ErrInvalidInput, d.Budget)
	}
	if err := recdb.CheckRef(db.Employees, d.ManagerID); err != nil {
		return 0, err
	}
	return db.Departments.Insert(&d)
}

func (db *DB) Employee(id int) *Employee {
	return db.Employees.Get(id)
}

func (db *DB) Department(id int) *Department {
	return db.Departments.Get(id)
}

// SetPerformance records a new performance score. The bonus is derived from
// the score on read and needs no recalculation here.
func (db *DB) SetPerformance(id int, score float64) error {
	if score < 0 || score > 10 {
		return fmt.Errorf("%w: performance score %.1f out of range [0,10]", recdb.ErrInvalidInput, score)
	}
	return db.Employees.Update(id, func(e *Employee) {
		e.Performance = score
	})
}

// Promote moves an employee to a new position with a raise.
func (db *DB) Promote(id int, position string, raise float64) error {
	if strings.TrimSpace(position) == "" {
		return fmt.Errorf("%w: position is empty", recdb.ErrInvalidInput)
	}
	if raise < 0 {
		return fmt.Errorf("%w: negative raise %.2f", recdb.ErrInvalidInput, raise)
	}
	return db.Employees.Update(id, func(e *Employee) {
		e.Position = position
		e.Salary += raise
	})
}

// Transfer moves an employee to another department. Zero detaches the
// employee from any department.
func (db *DB) Transfer(id, departmentID int) error {
	if err := recdb.CheckRef(db.Departments, departmentID); err != nil {
		return err
	}
	return db.Employees.Update(id, func(e *Employee) {
		e.DepartmentID = departmentID
	})
}

// SetManager assigns a manager to an employee. Zero clears the assignment;
// an employee cannot manage themselves.
func (db *DB) SetManager(id, managerID int) error {
	if id == managerID {
		return fmt.Errorf("%w: employee %d cannot manage themselves", recdb.ErrInvalidInput, id)
	}
	if err := recdb.CheckRef(db.Employees, managerID); err != nil {
		return err
	}
	return db.Employees.Update(id, func(e *Employee) {
		e.ManagerID = managerID
	})
}

// Terminate soft-deletes an employee and clears manager references pointing
// at them, on employees and departments alike. The terminated employee's own
// department reference is left intact.
func (db *DB) Terminate(id int) error {
	if err := db.Employees.Deactivate(id); err != nil {
		return err
	}
	for e := range db.Employees.All() {
		if e.ManagerID == id {
			e.ManagerID = 0
		}
	}
	for d := range db.Departments.All() {
		if d.ManagerID == id {
			d.ManagerID = 0
		}
	}
	return nil
}

// RetireDepartment soft-deletes a department. Employee references to it are
// not cascaded; they resolve as missing from then on.
func (db *DB) RetireDepartment(id int) error {
	return db.Departments.Deactivate(id)
}

// SearchByName matches active employees by case-insensitive substring.
func (db *DB) SearchByName(query string) []*Employee {
	query = strings.ToLower(query)
	var out []*Employee
	for e := range db.Employees.Scan(func(e *Employee) bool {
		return strings.Contains(strings.ToLower(e.Name), query)
	}) {
		out = append(out, e)
	}
	return out
}

// ByDepartment lists active employees assigned to the department.
func (db *DB) ByDepartment(departmentID int) []*Employee {
	var out []*Employee
	for e := range db.Employees.Scan(func(e *Employee) bool {
		return e.DepartmentID == departmentID
	}) {
		out = append(out, e)
	}
	return out
}

// Headcount counts active employees in a department. It is computed by
// scanning, never cached on the department record.
func (db *DB) Headcount(departmentID int) int {
	return db.Employees.Count(func(e *Employee) bool {
		return e.DepartmentID == departmentID
	})
}

func (db *DB) ManagerOf(e *Employee) (*Employee, recdb.RefState) {
	return recdb.Resolve(db.Employees, e.ManagerID)
}

func (db *DB) DepartmentOf(e *Employee) (*Department, recdb.RefState) {
	return recdb.Resolve(db.Departments, e.DepartmentID)
}

func (db *DB) DepartmentManager(d *Department) (*Employee, recdb.RefState) {
	return recdb.Resolve(db.Employees, d.ManagerID)
}
