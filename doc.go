/*
Package recdb implements the in-memory record store shared by small
management systems: one bounded store per entity type, sequential integer IDs,
soft deletion, linear scans, and bulk snapshot persistence.

We implement:

1. Stores, ordered collections of records of one struct type, with an optional
capacity limit. Records embed Meta, which carries the ID and the active flag.
IDs are assigned sequentially on insert and never reused; deactivating a record
hides it from lookups but keeps it in place.

2. Reference resolution for integer foreign keys. A key of zero means "no
reference" and never triggers a scan; a nonzero key either resolves to an
active record or reports the reference as missing. Deactivation does not
cascade, so references can dangle and resolve as missing later.

3. Snapshots, bulk serialization of a whole store to a file or a Bolt stash.
A snapshot is always written and read in one piece; there are no partial
updates.

# Snapshot encoding

**File layout**:
1. Magic "rdbs".
2. Format version (uvarint).
3. Schema version (uvarint), supplied by the caller.
4. Record count (uvarint).
5. For each record: payload size (uvarint), payload bytes.
6. xxhash64 checksum of everything above (8 bytes, big-endian).

**Payload**: msgpack of the record struct, Meta included.

All multi-byte fixed-width values are big-endian, so snapshot files are
portable across platforms. A schema version mismatch is a hard error; the
caller bumps the version whenever the record struct changes incompatibly.

**Bolt stash**: one bucket per store with big-endian ID keys and msgpack
payloads, plus a state bucket recording each store's schema version. Keys sort
in ID order, which equals insertion order, so loading preserves ordering.
*/
package recdb
