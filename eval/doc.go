// Package eval evaluates expr-lang expressions against cnt documents.
//
// The top level entries of a document become variables (see DocEnv), and
// the functions getenv(name), getpath(path) and haspath(path) are
// available. Strings may embed expressions as $[expr]; ExpandNode expands
// them throughout a tree.
package eval
