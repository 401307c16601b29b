package hr

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recdb"
)

func TestPopulateSample(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, PopulateSample(db, rand.New(rand.NewPCG(1, 1))))

	assert.Equal(t, len(sampleDepartments), db.Departments.Len())
	assert.Greater(t, db.Employees.Len(), len(sampleDepartments))

	// Every generated reference resolves.
	for e := range db.Employees.All() {
		_, st := db.DepartmentOf(e)
		assert.Equal(t, recdb.RefOK, st, "employee %d department", e.ID)
		if e.ManagerID != 0 {
			_, st := db.ManagerOf(e)
			assert.Equal(t, recdb.RefOK, st, "employee %d manager", e.ID)
		}
	}
	for d := range db.Departments.All() {
		m, st := db.DepartmentManager(d)
		require.Equal(t, recdb.RefOK, st)
		assert.Equal(t, d.ID, m.DepartmentID)
	}
}

func TestPopulateSampleDeterministic(t *testing.T) {
	a := newTestDB(t)
	b := newTestDB(t)
	require.NoError(t, PopulateSample(a, rand.New(rand.NewPCG(7, 7))))
	require.NoError(t, PopulateSample(b, rand.New(rand.NewPCG(7, 7))))
	sameContents(t, a, b)
}
