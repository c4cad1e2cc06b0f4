// Package format names the three document encodings cnt reads and
// writes.
package format

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

type Format int

const (
	CNTFormat Format = iota
	YAMLFormat
	JSONFormat
)

var ErrBadFormat = errors.New("bad format")

// names[f] is the canonical name of f followed by its aliases.
var names = [...][]string{
	CNTFormat:  {"cnt", "c"},
	YAMLFormat: {"yaml", "y", "yml"},
	JSONFormat: {"json", "j"},
}

func ParseFormat(v string) (Format, error) {
	for f, ns := range names {
		for _, n := range ns {
			if n == v {
				return Format(f), nil
			}
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrBadFormat, v)
}

// FromPath guesses the format of a file from its extension. Unknown
// or missing extensions are cnt.
func FromPath(p string) Format {
	f, err := ParseFormat(strings.TrimPrefix(filepath.Ext(p), "."))
	if err != nil {
		return CNTFormat
	}
	return f
}

func (f Format) valid() bool { return f >= 0 && int(f) < len(names) }

func (f Format) String() string {
	if !f.valid() {
		return fmt.Sprintf("Format(%d)", int(f))
	}
	return names[f][0]
}

func (f Format) MarshalText() ([]byte, error) {
	if !f.valid() {
		return nil, fmt.Errorf("%w: %d", ErrBadFormat, int(f))
	}
	return []byte(names[f][0]), nil
}

func (f *Format) UnmarshalText(d []byte) error {
	pf, err := ParseFormat(string(d))
	if err != nil {
		return err
	}
	*f = pf
	return nil
}

func (f Format) IsJSON() bool { return f == JSONFormat }
func (f Format) IsCNT() bool  { return f == CNTFormat }
func (f Format) IsYAML() bool { return f == YAMLFormat }

// Suffix is the usual file extension, with its dot.
func (f Format) Suffix() string {
	if !f.valid() {
		return ""
	}
	return "." + names[f][0]
}

// AllFormats lists the formats in preference order.
func AllFormats() []Format {
	res := make([]Format, len(names))
	for i := range res {
		res[i] = Format(i)
	}
	return res
}
