package hr

import (
	"encoding/csv"
	"fmt"
	"io"
	"slices"
	"strconv"
	"text/tabwriter"
	"time"

	"recdb"
)

// SalaryStats summarizes salaries of active employees.
type SalaryStats struct {
	Count int
	Min   float64
	Max   float64
	Mean  float64
}

func (db *DB) Stats() SalaryStats {
	var st SalaryStats
	var total float64
	for e := range db.Employees.All() {
		if st.Count == 0 || e.Salary < st.Min {
			st.Min = e.Salary
		}
		if e.Salary > st.Max {
			st.Max = e.Salary
		}
		total += e.Salary
		st.Count++
	}
	if st.Count > 0 {
		st.Mean = total / float64(st.Count)
	}
	return st
}

// TotalPayroll sums salary and derived bonus over active employees.
func (db *DB) TotalPayroll(now time.Time) float64 {
	var total float64
	for e := range db.Employees.All() {
		total += e.TotalCompensation(now)
	}
	return total
}

// TopPerformers returns up to n active employees ordered by performance
// score, highest first. Ties keep insertion order.
func (db *DB) TopPerformers(n int) []*Employee {
	var out []*Employee
	for e := range db.Employees.All() {
		out = append(out, e)
	}
	slices.SortStableFunc(out, func(a, b *Employee) int {
		switch {
		case a.Performance > b.Performance:
			return -1
		case a.Performance < b.Performance:
			return 1
		default:
			return 0
		}
	})
	if n > 0 && len(out) > n {
		out = out[:n]
	}
	return out
}

// Placeholders used when a reference does not resolve: "-" for no reference,
// refPlaceholder for a dangling one.
const refPlaceholder = "n/a"

func refLabel(name string, st recdb.RefState) string {
	switch st {
	case recdb.RefOK:
		return name
	case recdb.RefNone:
		return "-"
	default:
		return refPlaceholder
	}
}

func (db *DB) departmentLabel(e *Employee) string {
	d, st := db.DepartmentOf(e)
	var name string
	if d != nil {
		name = d.Name
	}
	return refLabel(name, st)
}

// WriteEmployeeReport renders a table of active employees with resolved
// department and manager names. Missing references show a placeholder, as the
// records themselves may outlive what they point to.
func (db *DB) WriteEmployeeReport(w io.Writer, now time.Time) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tPOSITION\tDEPARTMENT\tMANAGER\tSALARY\tBONUS\tYEARS")
	for e := range db.Employees.All() {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%.2f\t%.2f\t%d\n",
			e.ID, e.Name, e.Position,
			db.departmentLabel(e), db.managerLabel(e),
			e.Salary, e.Bonus(now), e.YearsOfService(now))
	}
	return tw.Flush()
}

func (db *DB) managerLabel(e *Employee) string {
	m, st := db.ManagerOf(e)
	var name string
	if m != nil {
		name = m.Name
	}
	return refLabel(name, st)
}

// WriteDepartmentReport renders active departments with manager and computed
// headcount.
func (db *DB) WriteDepartmentReport(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tMANAGER\tBUDGET\tHEADCOUNT")
	for d := range db.Departments.All() {
		m, st := db.DepartmentManager(d)
		var name string
		if m != nil {
			name = m.Name
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%.2f\t%d\n", d.ID, d.Name, refLabel(name, st), d.Budget, db.Headcount(d.ID))
	}
	return tw.Flush()
}

// ExportEmployeesCSV writes active employees as CSV, the corpus's plain-text
// export. Foreign keys are exported raw, not resolved.
func (db *DB) ExportEmployeesCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"id", "name", "position", "department_id", "manager_id", "hire_date", "salary", "performance", "email", "phone", "address"}); err != nil {
		return err
	}
	for e := range db.Employees.All() {
		rec := []string{
			strconv.Itoa(e.ID),
			e.Name,
			e.Position,
			strconv.Itoa(e.DepartmentID),
			strconv.Itoa(e.ManagerID),
			e.HireDate.Format("2006-01-02"),
			strconv.FormatFloat(e.Salary, 'f', 2, 64),
			strconv.FormatFloat(e.Performance, 'f', 1, 64),
			e.Email,
			e.Phone,
			e.Address,
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
