// Package ir provides the in-memory value model for cnt documents.
//
// # Overview
//
// Every value in a cnt document, whether parsed from text or built in code,
// is an *ir.Node. A Node is a tagged union: the Type field says which of the
// payload fields is meaningful.
//
//   - NoneType: the absent value, written None
//   - IntType: 64 bit signed integer (Int64)
//   - FloatType: 64 bit float (Float64)
//   - BoolType: true or false (Bool)
//   - StringType: UTF-8 text (String)
//   - CharType: a single code point (Char)
//   - ObjectType: string keys (Fields) mapped to values (Values), kept sorted by key
//   - ArrayType: ordered values (Values)
//
// Trees are acyclic and exclusively owned: a Node never appears twice in a
// tree and carries no parent pointer. Clone produces an independent copy.
//
// # Reading and writing
//
// The As* accessors never fail; they report whether the value could be
// viewed as the requested kind. Int and Float view as each other, and a Char
// views as a one rune String and back.
//
// Writes through Field and Index coerce the receiver: Field turns any
// non-object into an empty object first, and Index turns any non-array into
// an empty array and grows it with None values as needed. The read-only
// counterparts At and AtIndex never modify the receiver and return
// ErrWrongKind when the container kind does not match.
//
// # Paths
//
// ParsePath accepts paths of the form $.a.b[2].'odd key' which GetPath and
// SetPath use to address nested values.
package ir
