// Package parse reads cnt documents.
//
// A document is a sequence of key: value entries. Values are None, true,
// false, integers, floats, "strings", 'c'haracters, [arrays] and
// {objects}. Commas between entries and elements are optional and may
// trail. Line comments (//) and block comments (/* */) may appear
// wherever whitespace may.
//
// By default the parser is permissive: unterminated strings and
// containers stop at end of input, a missing ':' is tolerated and text
// that does not start any value reads as None. The only hard failure is
// a numeric literal that does not convert. ParseStrict turns all of the
// above into errors.
//
// ParseFormat reads JSON or YAML instead, producing the same tree.
package parse
