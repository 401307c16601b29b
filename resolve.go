package recdb

// RefState classifies the outcome of resolving an integer foreign key.
type RefState int

const (
	// RefNone means the key is zero: the record references nothing.
	// This is distinct from a missing target and never triggers a scan.
	RefNone RefState = iota
	// RefOK means the key resolved to an active record.
	RefOK
	// RefMissing means the key is nonzero but no active record carries that
	// ID, either because it never existed or because it was deactivated.
	RefMissing
)

func (st RefState) String() string {
	switch st {
	case RefNone:
		return "none"
	case RefOK:
		return "ok"
	case RefMissing:
		return "missing"
	default:
		return "invalid"
	}
}

// Resolve follows a foreign key into a store. Display code is expected to
// substitute a placeholder for RefNone and RefMissing rather than fail.
func Resolve[T any, P Row[T]](s *Store[T, P], fk int) (P, RefState) {
	if fk == 0 {
		return nil, RefNone
	}
	if p := s.Get(fk); p != nil {
		return p, RefOK
	}
	return nil, RefMissing
}

// CheckRef validates a foreign key at write time: zero passes, nonzero
// must resolve to an active record.
func CheckRef[T any, P Row[T]](s *Store[T, P], fk int) error {
	if _, st := Resolve(s, fk); st == RefMissing {
		return storeErrf(s.name, fk, ErrNotFound, "dangling reference")
	}
	return nil
}
