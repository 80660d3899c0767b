// Package giapha is a Vietnamese kinship addressing engine. Given a family
// tree — persons and typed relations between them — it derives, for any
// member, the culturally correct address term (Chú, Dì, Anh họ, ...)
// relative to one designated reference person, together with the
// generational offset, paternal/maternal lineage, and a confidence score.
//
// The engine is a pure function over an immutable snapshot: it performs no
// I/O, raises no errors for malformed graph data, and expresses failure as
// a low-confidence "Không xác định" result. Derived graph structures are
// cached per snapshot and safe for concurrent readers.
package giapha
