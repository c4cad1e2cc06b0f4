package cnt

import "github.com/cntlib/cnt/libdiff"

// Diff lists the changes turning document from into to.
func Diff(from, to *Config) []libdiff.Change {
	return libdiff.Diff(from.data, to.data)
}
