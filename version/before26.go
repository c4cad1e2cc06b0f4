package version

import (
	"fmt"
	"strconv"
)

// Before26 is a 1.minor.patch version.
type Before26 struct {
	Minor int
	Patch int
}

func ParseBefore26(s string) (Before26, error) {
	major, minor, patch, err := split(s)
	if err != nil {
		return Before26{}, err
	}
	if major != 1 {
		return Before26{}, fmt.Errorf("%w: %q: major version must be 1", ErrVersion, s)
	}
	return Before26{Minor: minor, Patch: patch}, nil
}

// String always includes the patch component.
func (v Before26) String() string {
	return "1." + strconv.Itoa(v.Minor) + "." + strconv.Itoa(v.Patch)
}

func (v Before26) Compare(o Version) int {
	switch x := o.(type) {
	case Before26:
		return cmp3([3]int{1, v.Minor, v.Patch}, [3]int{1, x.Minor, x.Patch})
	case *Before26:
		return v.Compare(*x)
	}
	return -1
}

func (v Before26) Less(o Before26) bool {
	return v.Compare(o) < 0
}

func (v Before26) Equal(o Before26) bool {
	return v == o
}

func (v Before26) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

func (v *Before26) UnmarshalText(d []byte) error {
	p, err := ParseBefore26(string(d))
	if err != nil {
		return err
	}
	*v = p
	return nil
}
