// Package version parses game version strings.
//
// Releases before 26 are numbered 1.minor[.patch] (Before26). From 26 on
// the leading component is the major release, major.minor[.patch]
// (After26). Both dialects order numerically component by component, and
// any Before26 version sorts before any After26 version.
package version

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
)

var ErrVersion = errors.New("invalid version")

var versionRE = regexp.MustCompile(`^(\d+)\.(\d+)(?:\.(\d+))?$`)

// Version is implemented by Before26 and After26.
type Version interface {
	fmt.Stringer
	// Compare returns -1, 0 or 1 as the receiver is older than, equal to or
	// newer than o.
	Compare(o Version) int
}

func split(s string) (major, minor, patch int, err error) {
	m := versionRE.FindStringSubmatch(s)
	if m == nil {
		return 0, 0, 0, fmt.Errorf("%w: %q is not major.minor[.patch]", ErrVersion, s)
	}
	nums := [3]int{}
	for i, g := range m[1:] {
		if g == "" {
			continue
		}
		n, err := strconv.Atoi(g)
		if err != nil {
			return 0, 0, 0, fmt.Errorf("%w: %q: %w", ErrVersion, s, err)
		}
		nums[i] = n
	}
	return nums[0], nums[1], nums[2], nil
}

// Parse reads s in whichever dialect it belongs to.
func Parse(s string) (Version, error) {
	major, _, _, err := split(s)
	if err != nil {
		return nil, err
	}
	if major == 1 {
		return ParseBefore26(s)
	}
	return ParseAfter26(s)
}

// Compare parses a and b and compares them.
func Compare(a, b string) (int, error) {
	va, err := Parse(a)
	if err != nil {
		return 0, err
	}
	vb, err := Parse(b)
	if err != nil {
		return 0, err
	}
	return va.Compare(vb), nil
}

func cmp3(a, b [3]int) int {
	for i := range a {
		switch {
		case a[i] < b[i]:
			return -1
		case a[i] > b[i]:
			return 1
		}
	}
	return 0
}
