package recdb

import (
	"encoding/binary"
	"fmt"
	"time"

	"go.etcd.io/bbolt"
)

// BoltStash keeps snapshots of several stores in a single Bolt file: one
// bucket per store with big-endian ID keys and msgpack payloads, plus a state
// bucket recording each store's schema version. The contract is the same as
// snapshot files, a bulk save or load of a whole store at a time.
type BoltStash struct {
	bdb *bbolt.DB
}

var stashStateBucket = []byte("state")

type StashOptions struct {
	IsTesting bool
}

func OpenBoltStash(path string, opt StashOptions) (*BoltStash, error) {
	bopt := *bbolt.DefaultOptions
	bopt.Timeout = 10 * time.Second
	if opt.IsTesting {
		bopt.NoSync = true
		bopt.NoFreelistSync = true
		bopt.InitialMmapSize = 1024 * 1024 * 5
	}
	bdb, err := bbolt.Open(path, 0666, &bopt)
	if err != nil {
		return nil, fmt.Errorf("stash: %w", err)
	}
	return &BoltStash{bdb: bdb}, nil
}

func (bs *BoltStash) Close() error {
	return bs.bdb.Close()
}

func (bs *BoltStash) Bolt() *bbolt.DB {
	return bs.bdb
}

// StashSave replaces the store's bucket wholesale.
func StashSave[T any, P Row[T]](bs *BoltStash, s *Store[T, P], schemaVer uint64) error {
	return bs.bdb.Update(func(btx *bbolt.Tx) error {
		if err := btx.DeleteBucket([]byte(s.name)); err != nil && err != bbolt.ErrBucketNotFound {
			return err
		}
		buck, err := btx.CreateBucket([]byte(s.name))
		if err != nil {
			return err
		}
		var key [8]byte
		var payload []byte
		for i := range s.rows {
			p := P(&s.rows[i])
			binary.BigEndian.PutUint64(key[:], uint64(p.meta().ID))
			payload = defaultValueEncoding.EncodeValue(payload[:0], p)
			if err := buck.Put(key[:], payload); err != nil {
				return err
			}
		}
		state, err := btx.CreateBucketIfNotExists(stashStateBucket)
		if err != nil {
			return err
		}
		return state.Put([]byte(s.name), appendUvarint(nil, schemaVer))
	})
}

// StashLoad replaces the store contents with the stashed records. Keys sort
// in ID order, which equals insertion order, so ordering survives the trip.
func StashLoad[T any, P Row[T]](bs *BoltStash, s *Store[T, P], schemaVer uint64) error {
	return bs.bdb.View(func(btx *bbolt.Tx) error {
		state := btx.Bucket(stashStateBucket)
		if state == nil {
			return storeErrf(s.name, 0, ErrNotFound, "store not stashed")
		}
		raw := state.Get([]byte(s.name))
		if raw == nil {
			return storeErrf(s.name, 0, ErrNotFound, "store not stashed")
		}
		d := makeByteDecoder(raw)
		stashSchemaVer, err := d.Uvarint()
		if err != nil {
			return err
		}
		if stashSchemaVer != schemaVer {
			return fmt.Errorf("%s: %w: stash has v%d, expected v%d", s.name, ErrSchemaMismatch, stashSchemaVer, schemaVer)
		}
		var rows []T
		if buck := btx.Bucket([]byte(s.name)); buck != nil {
			c := buck.Cursor()
			for k, v := c.First(); k != nil; k, v = c.Next() {
				var row T
				if err := defaultValueEncoding.DecodeValue(v, P(&row)); err != nil {
					return err
				}
				rows = append(rows, row)
			}
		}
		if s.cap > 0 && len(rows) > s.cap {
			return storeErrf(s.name, 0, ErrStoreFull, "stash has %d records, capacity %d", len(rows), s.cap)
		}
		s.rows = rows
		return nil
	})
}
