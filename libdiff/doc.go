// Package libdiff computes structural differences between IR trees.
//
// Objects are compared key by key and arrays are aligned element by element
// using the diff-match-patch algorithm over element fingerprints, so that an
// insertion in the middle of an array reports one insertion rather than a
// replacement of every following element. Matching containers are compared
// recursively; everything else is compared by value.
package libdiff
