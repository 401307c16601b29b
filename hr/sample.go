package hr

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"time"
)

var samplePositions = []string{
	"Intern", "Junior Developer", "Developer", "Senior Developer",
	"Tech Lead", "Manager", "Senior Manager", "Director", "VP",
}

var sampleFirstNames = []string{
	"Alice", "Bob", "Carol", "David", "Erin", "Frank", "Grace", "Henry",
	"Irene", "Jack", "Karen", "Liam", "Mona", "Nate", "Olga", "Paul",
}

var sampleLastNames = []string{
	"Adams", "Baker", "Clark", "Davis", "Evans", "Foster", "Green",
	"Hughes", "Irwin", "Jones", "Klein", "Lewis", "Moore", "Norris",
}

var sampleDepartments = []struct {
	name, desc string
	budget     float64
}{
	{"Engineering", "Product development", 1_200_000},
	{"Sales", "Revenue and accounts", 600_000},
	{"Support", "Customer support", 350_000},
	{"Operations", "Internal operations", 450_000},
}

// PopulateSample fills the database with demo data: every sample department,
// one manager per department, and a handful of reports under each manager.
// The same rnd seed produces the same data.
func PopulateSample(db *DB, rnd *rand.Rand) error {
	now := db.now()
	for _, sd := range sampleDepartments {
		deptID, err := db.AddDepartment(Department{
			Name:        sd.name,
			Description: sd.desc,
			Budget:      sd.budget,
		})
		if err != nil {
			return err
		}

		mgrID, err := db.Hire(sampleEmployee(rnd, now, deptID, 0, "Manager"))
		if err != nil {
			return err
		}
		if err := db.Departments.Update(deptID, func(d *Department) { d.ManagerID = mgrID }); err != nil {
			return err
		}

		for i, n := 0, 2+rnd.IntN(4); i < n; i++ {
			pos := samplePositions[rnd.IntN(5)]
			if _, err := db.Hire(sampleEmployee(rnd, now, deptID, mgrID, pos)); err != nil {
				return err
			}
		}
	}
	return nil
}

func sampleEmployee(rnd *rand.Rand, now time.Time, deptID, managerID int, position string) Employee {
	first := sampleFirstNames[rnd.IntN(len(sampleFirstNames))]
	last := sampleLastNames[rnd.IntN(len(sampleLastNames))]
	name := first + " " + last
	return Employee{
		Name:         name,
		Position:     position,
		DepartmentID: deptID,
		ManagerID:    managerID,
		HireDate:     now.AddDate(-rnd.IntN(12), -rnd.IntN(12), 0),
		Salary:       40_000 + float64(rnd.IntN(120))*1_000,
		Performance:  float64(rnd.IntN(101)) / 10,
		Email:        strings.ToLower(first) + "." + strings.ToLower(last) + "@example.com",
		Phone:        fmt.Sprintf("555-%04d", rnd.IntN(10_000)),
		Address:      fmt.Sprintf("%d Main St", 1+rnd.IntN(999)),
	}
}
