package hr

import "time"

// Derived values are computed from stored fields on every read. Nothing here
// is cached, so a salary or score change can never leave a stale bonus
// behind.

// YearsOfService counts whole years between the hire date and now.
func (e *Employee) YearsOfService(now time.Time) int {
	years := now.Year() - e.HireDate.Year()
	if now.Month() < e.HireDate.Month() ||
		(now.Month() == e.HireDate.Month() && now.Day() < e.HireDate.Day()) {
		years--
	}
	if years < 0 {
		return 0
	}
	return years
}

// Bonus derives the annual bonus from the performance score and tenure.
// Score tiers pay 20% of salary from 9.0 up, 15% from 8.0, 10% from 7.0 and
// 5% from 6.0; ten or more years of service add 5%, five or more add 2.5%.
func (e *Employee) Bonus(now time.Time) float64 {
	var rate float64
	switch {
	case e.Performance >= 9:
		rate = 0.20
	case e.Performance >= 8:
		rate = 0.15
	case e.Performance >= 7:
		rate = 0.10
	case e.Performance >= 6:
		rate = 0.05
	}
	switch years := e.YearsOfService(now); {
	case years >= 10:
		rate += 0.05
	case years >= 5:
		rate += 0.025
	}
	return e.Salary * rate
}

// TotalCompensation is the salary plus the derived bonus.
func (e *Employee) TotalCompensation(now time.Time) float64 {
	return e.Salary + e.Bonus(now)
}
