package version

import (
	"fmt"
	"strconv"
)

// After26 is a major.minor[.patch] version with major at least 26.
type After26 struct {
	Major int
	Minor int
	Patch int
}

func ParseAfter26(s string) (After26, error) {
	major, minor, patch, err := split(s)
	if err != nil {
		return After26{}, err
	}
	if major < 26 {
		return After26{}, fmt.Errorf("%w: %q: major version must be 26 or greater", ErrVersion, s)
	}
	return After26{Major: major, Minor: minor, Patch: patch}, nil
}

// String leaves out a zero patch component.
func (v After26) String() string {
	s := strconv.Itoa(v.Major) + "." + strconv.Itoa(v.Minor)
	if v.Patch > 0 {
		s += "." + strconv.Itoa(v.Patch)
	}
	return s
}

func (v After26) Compare(o Version) int {
	switch x := o.(type) {
	case After26:
		return cmp3([3]int{v.Major, v.Minor, v.Patch}, [3]int{x.Major, x.Minor, x.Patch})
	case *After26:
		return v.Compare(*x)
	}
	return 1
}

func (v After26) Less(o After26) bool {
	return v.Compare(o) < 0
}

func (v After26) Equal(o After26) bool {
	return v == o
}

func (v After26) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

func (v *After26) UnmarshalText(d []byte) error {
	p, err := ParseAfter26(string(d))
	if err != nil {
		return err
	}
	*v = p
	return nil
}
