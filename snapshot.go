package recdb

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"

	"github.com/cespare/xxhash/v2"
)

// Snapshot layout is documented in doc.go. A snapshot always covers the whole
// store, deactivated records included, and loading replaces the whole store.

var snapshotMagic = []byte("rdbs")

const snapshotFormatVersion = 1

// EncodeSnapshot serializes the entire store.
func (s *Store[T, P]) EncodeSnapshot(schemaVer uint64) []byte {
	bb := bytesBuilder{make([]byte, 0, 64+64*len(s.rows))}
	bb.Write(snapshotMagic)
	bb.AppendUvarint(snapshotFormatVersion)
	bb.AppendUvarint(schemaVer)
	bb.AppendUvarint(uint64(len(s.rows)))
	var payload []byte
	for i := range s.rows {
		payload = defaultValueEncoding.EncodeValue(payload[:0], &s.rows[i])
		bb.AppendUvarint(uint64(len(payload)))
		bb.Write(payload)
	}
	sum := xxhash.Sum64(bb.Buf)
	bb.AppendFixedUint64(sum)
	return bb.Buf
}

// DecodeSnapshot replaces the store contents with the records in data.
// The store is left unchanged on error.
func (s *Store[T, P]) DecodeSnapshot(data []byte, schemaVer uint64) error {
	if len(data) < len(snapshotMagic)+8 {
		return dataErrf(data, 0, ErrBadSnapshot, "too short")
	}
	body, trailer := data[:len(data)-8], data[len(data)-8:]
	if binary.BigEndian.Uint64(trailer) != xxhash.Sum64(body) {
		return dataErrf(data, len(body), ErrBadSnapshot, "checksum mismatch")
	}
	d := makeByteDecoder(body)
	magic, err := d.Raw(len(snapshotMagic))
	if err != nil {
		return err
	}
	if !bytes.Equal(magic, snapshotMagic) {
		return dataErrf(data, 0, ErrBadSnapshot, "bad magic")
	}
	formatVer, err := d.Uvarint()
	if err != nil {
		return err
	}
	if formatVer != snapshotFormatVersion {
		return dataErrf(data, d.Off(), ErrBadSnapshot, "unsupported format version %d", formatVer)
	}
	fileSchemaVer, err := d.Uvarint()
	if err != nil {
		return err
	}
	if fileSchemaVer != schemaVer {
		return fmt.Errorf("%s: %w: file has v%d, expected v%d", s.name, ErrSchemaMismatch, fileSchemaVer, schemaVer)
	}
	n, err := d.Uvarinti()
	if err != nil {
		return err
	}
	if s.cap > 0 && n > s.cap {
		return storeErrf(s.name, 0, ErrStoreFull, "snapshot has %d records, capacity %d", n, s.cap)
	}
	rows := make([]T, n)
	for i := 0; i < n; i++ {
		payload, err := d.VarBytes()
		if err != nil {
			return err
		}
		if err := defaultValueEncoding.DecodeValue(payload, P(&rows[i])); err != nil {
			return err
		}
	}
	s.rows = rows
	return nil
}

// SaveSnapshot writes the store to path atomically: the snapshot goes to a
// temp file in the same directory first and is renamed over path only after a
// complete write, so a crash cannot leave a truncated snapshot behind.
func (s *Store[T, P]) SaveSnapshot(path string, schemaVer uint64) error {
	data := s.EncodeSnapshot(schemaVer)
	f, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("save %s: %w", s.name, err)
	}
	tmp := f.Name()
	_, err = f.Write(data)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err == nil {
		err = os.Rename(tmp, path)
	}
	if err != nil {
		os.Remove(tmp)
		return fmt.Errorf("save %s: %w", s.name, err)
	}
	return nil
}

// LoadSnapshot reads path and replaces the store contents wholesale.
// A missing file surfaces as a wrapped fs.ErrNotExist.
func (s *Store[T, P]) LoadSnapshot(path string, schemaVer uint64) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("load %s: %w", s.name, err)
	}
	return s.DecodeSnapshot(data, schemaVer)
}
