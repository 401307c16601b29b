package recdb

import "testing"

func TestResolve(t *testing.T) {
	depts := newDeptStore(0)
	must(depts.Insert(&Dept{Name: "Engineering"}))

	// Zero means no reference, not a failed lookup.
	p, st := Resolve(depts, 0)
	isnil(t, p)
	deepEqual(t, st, RefNone)

	p, st = Resolve(depts, 1)
	isnonnil(t, p)
	deepEqual(t, st, RefOK)
	deepEqual(t, p.Name, "Engineering")

	p, st = Resolve(depts, 42)
	isnil(t, p)
	deepEqual(t, st, RefMissing)
}

func TestResolveDeactivatedTarget(t *testing.T) {
	depts := newDeptStore(0)
	emps := newEmpStore(0)
	must(depts.Insert(&Dept{Name: "Engineering"}))
	must(emps.Insert(&Emp{Name: "Alice", DeptID: 1}))

	_, st := Resolve(depts, emps.Get(1).DeptID)
	deepEqual(t, st, RefOK)

	// Deactivation leaves the reference dangling; it resolves as missing
	// while the stored key keeps its value.
	ensure(depts.Deactivate(1))
	_, st = Resolve(depts, emps.Get(1).DeptID)
	deepEqual(t, st, RefMissing)
	deepEqual(t, emps.Get(1).DeptID, 1)
}

func TestCheckRef(t *testing.T) {
	depts := newDeptStore(0)
	must(depts.Insert(&Dept{Name: "Engineering"}))

	ensure(CheckRef(depts, 0))
	ensure(CheckRef(depts, 1))
	iserr(t, CheckRef(depts, 2), ErrNotFound)

	ensure(depts.Deactivate(1))
	iserr(t, CheckRef(depts, 1), ErrNotFound)
}

func TestRefStateString(t *testing.T) {
	deepEqual(t, RefNone.String(), "none")
	deepEqual(t, RefOK.String(), "ok")
	deepEqual(t, RefMissing.String(), "missing")
	deepEqual(t, RefState(9).String(), "invalid")
}
