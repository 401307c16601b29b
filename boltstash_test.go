package recdb

import (
	"os"
	"testing"
)

func setupStash(t testing.TB) *BoltStash {
	t.Helper()

	f := must(os.CreateTemp("", "stash_test_*.db"))
	t.Logf("stash: %s", f.Name())
	f.Close()
	t.Cleanup(func() { os.Remove(f.Name()) })

	bs := must(OpenBoltStash(f.Name(), StashOptions{IsTesting: true}))
	t.Cleanup(func() { bs.Close() })
	return bs
}

func TestStashRoundTrip(t *testing.T) {
	emps := newEmpStore(0)
	depts := newDeptStore(0)
	must(depts.Insert(&Dept{Name: "Engineering"}))
	must(emps.Insert(&Emp{Name: "Alice", DeptID: 1, Salary: 100}))
	must(emps.Insert(&Emp{Name: "Bob", DeptID: 1, BossID: 1}))
	ensure(emps.Deactivate(2))

	bs := setupStash(t)
	ensure(StashSave(bs, emps, 1))
	ensure(StashSave(bs, depts, 1))

	emps2 := newEmpStore(0)
	depts2 := newDeptStore(0)
	ensure(StashLoad(bs, emps2, 1))
	ensure(StashLoad(bs, depts2, 1))

	deepEqual(t, storeRows(emps2), storeRows(emps))
	deepEqual(t, storeRows(depts2), storeRows(depts))
	isnil(t, emps2.Get(2))
}

func TestStashSaveReplaces(t *testing.T) {
	bs := setupStash(t)

	emps := newEmpStore(0)
	must(emps.Insert(&Emp{Name: "Alice"}))
	must(emps.Insert(&Emp{Name: "Bob"}))
	ensure(StashSave(bs, emps, 1))

	// Shrinking the store and re-stashing must not leave stale records.
	fresh := newEmpStore(0)
	must(fresh.Insert(&Emp{Name: "Carol"}))
	ensure(StashSave(bs, fresh, 1))

	loaded := newEmpStore(0)
	ensure(StashLoad(bs, loaded, 1))
	deepEqual(t, loaded.Len(), 1)
	deepEqual(t, loaded.Get(1).Name, "Carol")
}

func TestStashSchemaMismatch(t *testing.T) {
	bs := setupStash(t)
	emps := newEmpStore(0)
	must(emps.Insert(&Emp{Name: "Alice"}))
	ensure(StashSave(bs, emps, 1))

	loaded := newEmpStore(0)
	iserr(t, StashLoad(bs, loaded, 2), ErrSchemaMismatch)
	deepEqual(t, loaded.Len(), 0)
}

func TestStashNotStashed(t *testing.T) {
	bs := setupStash(t)
	emps := newEmpStore(0)
	iserr(t, StashLoad(bs, emps, 1), ErrNotFound)
}
