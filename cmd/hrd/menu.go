package main

import (
	"bufio"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"recdb"
	"recdb/hr"
)

type menu struct {
	db     *hr.DB
	in     *bufio.Reader
	out    io.Writer
	cfg    appConfig
	logger *zap.Logger
	eof    bool
}

func newMenu(db *hr.DB, in io.Reader, out io.Writer, cfg appConfig, logger *zap.Logger) *menu {
	return &menu{db: db, in: bufio.NewReader(in), out: out, cfg: cfg, logger: logger}
}

const menuText = `
1.  Add employee
2.  Add department
3.  List employees
4.  List departments
5.  Search employees by name
6.  List employees by department
7.  Set performance score
8.  Promote employee
9.  Transfer employee
10. Set manager
11. Terminate employee
12. Payroll summary
13. Top performers
14. Export employees to CSV
15. Save
16. Load
17. Generate sample data
0.  Exit
`

// Every operation reports its error and returns to the prompt; nothing here
// terminates the process.
func (m *menu) run() {
	for !m.eof {
		fmt.Fprint(m.out, menuText)
		choice := m.promptInt("Choice: ")
		if m.eof || choice == 0 {
			fmt.Fprintln(m.out, "Bye.")
			return
		}
		if err := m.dispatch(choice); err != nil {
			fmt.Fprintf(m.out, "Error: %v\n", err)
		}
	}
}

func (m *menu) dispatch(choice int) error {
	switch choice {
	case 1:
		return m.addEmployee()
	case 2:
		return m.addDepartment()
	case 3:
		return m.db.WriteEmployeeReport(m.out, time.Now())
	case 4:
		return m.db.WriteDepartmentReport(m.out)
	case 5:
		return m.searchByName()
	case 6:
		return m.listByDepartment()
	case 7:
		return m.db.SetPerformance(m.promptInt("Employee ID: "), m.promptFloat("Score (0-10): "))
	case 8:
		return m.db.Promote(m.promptInt("Employee ID: "), m.prompt("New position: "), m.promptFloat("Raise: "))
	case 9:
		return m.db.Transfer(m.promptInt("Employee ID: "), m.promptInt("New department ID (0 for none): "))
	case 10:
		return m.db.SetManager(m.promptInt("Employee ID: "), m.promptInt("Manager ID (0 to clear): "))
	case 11:
		return m.terminate()
	case 12:
		return m.payrollSummary()
	case 13:
		return m.topPerformers()
	case 14:
		return m.exportCSV()
	case 15:
		return m.save()
	case 16:
		return m.load()
	case 17:
		seed := uint64(time.Now().UnixNano())
		return hr.PopulateSample(m.db, rand.New(rand.NewPCG(seed, seed)))
	default:
		fmt.Fprintln(m.out, "Unknown choice.")
		return nil
	}
}

func (m *menu) addEmployee() error {
	e := hr.Employee{
		Name:         m.prompt("Name: "),
		Position:     m.prompt("Position: "),
		DepartmentID: m.promptInt("Department ID (0 for none): "),
		ManagerID:    m.promptInt("Manager ID (0 for none): "),
		Salary:       m.promptFloat("Salary: "),
		Email:        m.prompt("Email: "),
		Phone:        m.prompt("Phone: "),
		Address:      m.prompt("Address: "),
	}
	if s := m.prompt("Hire date (YYYY-MM-DD, empty for today): "); s != "" {
		d, err := time.Parse("2006-01-02", s)
		if err != nil {
			return fmt.Errorf("%w: bad date %q", recdb.ErrInvalidInput, s)
		}
		e.HireDate = d
	}
	id, err := m.db.Hire(e)
	if err != nil {
		return err
	}
	fmt.Fprintf(m.out, "Employee added with ID %d.\n", id)
	return nil
}

func (m *menu) addDepartment() error {
	d := hr.Department{
		Name:        m.prompt("Name: "),
		Description: m.prompt("Description: "),
		ManagerID:   m.promptInt("Manager ID (0 for none): "),
		Budget:      m.promptFloat("Budget: "),
	}
	id, err := m.db.AddDepartment(d)
	if err != nil {
		return err
	}
	fmt.Fprintf(m.out, "Department added with ID %d.\n", id)
	return nil
}

func (m *menu) searchByName() error {
	found := m.db.SearchByName(m.prompt("Name contains: "))
	if len(found) == 0 {
		fmt.Fprintln(m.out, "No employees found.")
		return nil
	}
	for _, e := range found {
		fmt.Fprintf(m.out, "%d: %s (%s)\n", e.ID, e.Name, e.Position)
	}
	return nil
}

func (m *menu) listByDepartment() error {
	id := m.promptInt("Department ID: ")
	if m.db.Department(id) == nil {
		return fmt.Errorf("department %d: %w", id, recdb.ErrNotFound)
	}
	for _, e := range m.db.ByDepartment(id) {
		fmt.Fprintf(m.out, "%d: %s (%s)\n", e.ID, e.Name, e.Position)
	}
	fmt.Fprintf(m.out, "Headcount: %d\n", m.db.Headcount(id))
	return nil
}

func (m *menu) terminate() error {
	id := m.promptInt("Employee ID: ")
	if err := m.db.Terminate(id); err != nil {
		return err
	}
	fmt.Fprintln(m.out, "Employee terminated; manager references cleared.")
	return nil
}

func (m *menu) payrollSummary() error {
	st := m.db.Stats()
	fmt.Fprintf(m.out, "Active employees: %d\n", st.Count)
	if st.Count > 0 {
		fmt.Fprintf(m.out, "Salary min/mean/max: %.2f / %.2f / %.2f\n", st.Min, st.Mean, st.Max)
	}
	fmt.Fprintf(m.out, "Total payroll (with bonuses): %.2f\n", m.db.TotalPayroll(time.Now()))
	return nil
}

func (m *menu) topPerformers() error {
	n := m.promptInt("How many: ")
	for i, e := range m.db.TopPerformers(n) {
		fmt.Fprintf(m.out, "%d. %s, score %.1f\n", i+1, e.Name, e.Performance)
	}
	return nil
}

func (m *menu) exportCSV() error {
	path := m.prompt("Output file: ")
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	err = m.db.ExportEmployeesCSV(f)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err == nil {
		fmt.Fprintf(m.out, "Exported to %s.\n", path)
	}
	return err
}

func (m *menu) save() error {
	if err := os.MkdirAll(m.cfg.DataDir, 0o755); err != nil {
		return err
	}
	switch m.cfg.Backend {
	case "bolt":
		bs, err := recdb.OpenBoltStash(filepath.Join(m.cfg.DataDir, m.cfg.StashFile), recdb.StashOptions{})
		if err != nil {
			return err
		}
		err = m.db.SaveStash(bs)
		if cerr := bs.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			return err
		}
	default:
		if err := m.db.Save(m.cfg.DataDir); err != nil {
			return err
		}
	}
	m.logger.Info("saved", zap.String("backend", m.cfg.Backend), zap.String("dir", m.cfg.DataDir))
	fmt.Fprintln(m.out, "Saved.")
	return nil
}

func (m *menu) load() error {
	switch m.cfg.Backend {
	case "bolt":
		bs, err := recdb.OpenBoltStash(filepath.Join(m.cfg.DataDir, m.cfg.StashFile), recdb.StashOptions{})
		if err != nil {
			return err
		}
		err = m.db.LoadStash(bs)
		if cerr := bs.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			return err
		}
	default:
		if err := m.db.Load(m.cfg.DataDir); err != nil {
			return err
		}
	}
	m.logger.Info("loaded", zap.String("backend", m.cfg.Backend), zap.String("dir", m.cfg.DataDir))
	fmt.Fprintln(m.out, "Loaded.")
	return nil
}

func (m *menu) prompt(label string) string {
	fmt.Fprint(m.out, label)
	line, err := m.in.ReadString('\n')
	if err != nil {
		m.eof = true
	}
	return strings.TrimSpace(line)
}

func (m *menu) promptInt(label string) int {
	for !m.eof {
		s := m.prompt(label)
		if s == "" {
			continue
		}
		v, err := strconv.Atoi(s)
		if err == nil {
			return v
		}
		fmt.Fprintf(m.out, "Not a number: %q\n", s)
	}
	return 0
}

func (m *menu) promptFloat(label string) float64 {
	for !m.eof {
		s := m.prompt(label)
		if s == "" {
			return 0
		}
		v, err := strconv.ParseFloat(s, 64)
		if err == nil {
			return v
		}
		fmt.Fprintf(m.out, "Not a number: %q\n", s)
	}
	return 0
}
