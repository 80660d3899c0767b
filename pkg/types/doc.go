// Package types defines the value types shared across the giapha engine:
// persons, typed relations between them, the addressing result returned to
// callers, and the snapshot envelope used for import/export.
//
// The engine never mutates these values; a snapshot is owned by the caller
// and treated as immutable for the lifetime of the derived graph structures.
package types
