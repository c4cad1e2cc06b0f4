// Package gomap maps documents to and from Go values.
//
// Struct fields are matched by their `cnt` tag, which has the form
// `cnt:"name[,omitempty]"`. Untagged exported fields use the field
// name. The tag "-" skips a field.
//
// A field of type *ir.Node or ir.Node receives a copy of the value
// unchanged, and a field of type any receives ir.ToAny of it.
package gomap
