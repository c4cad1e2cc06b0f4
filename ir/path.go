package ir

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Path addresses a value nested in a tree. Each step is either a field
// or an index.
type Path struct {
	Index *int
	Field *string
	Next  *Path
}

// FieldPath extends the path string prefix by a field step.
func FieldPath(prefix, f string) string {
	if f != "" && strings.IndexAny(f, "'.*$[] ") == -1 {
		return prefix + "." + f
	}
	return prefix + ".'" + strings.ReplaceAll(f, "'", "\\'") + "'"
}

// IndexPath extends the path string prefix by an index step.
func IndexPath(prefix string, i int) string {
	return prefix + "[" + strconv.Itoa(i) + "]"
}

func (p *Path) String() string {
	var sb strings.Builder
	sb.WriteByte('$')
	for x := p; x != nil; x = x.Next {
		if x.Field != nil {
			sb.WriteString(FieldPath("", *x.Field))
		} else if x.Index != nil {
			sb.WriteString(IndexPath("", *x.Index))
		}
	}
	return sb.String()
}

// ParsePath parses a path such as $.a.b[2].'c.d'. The path "$" is the
// root and parses to a nil *Path.
func ParsePath(p string) (*Path, error) {
	rest, ok := strings.CutPrefix(p, "$")
	if !ok {
		return nil, fmt.Errorf("%w: %q should start with '$'", ErrPath, p)
	}
	var head, tail *Path
	for rest != "" {
		step := &Path{}
		var err error
		switch rest[0] {
		case '.':
			var f string
			f, rest, err = cutField(rest[1:])
			step.Field = &f
		case '[':
			var i int
			i, rest, err = cutIndex(rest[1:])
			step.Index = &i
		default:
			err = fmt.Errorf("expected '.' or '[' at %q", rest)
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %w", ErrPath, p, err)
		}
		if head == nil {
			head = step
		} else {
			tail.Next = step
		}
		tail = step
	}
	return head, nil
}

// cutIndex reads "<digits>]".
func cutIndex(s string) (int, string, error) {
	digits, rest, ok := strings.Cut(s, "]")
	if !ok {
		return 0, "", fmt.Errorf("unterminated index")
	}
	u, err := strconv.ParseUint(digits, 10, 31)
	if err != nil {
		return 0, "", err
	}
	return int(u), rest, nil
}

// cutField reads a bare field up to the next step, or a single quoted
// field in which \ escapes the next byte.
func cutField(s string) (string, string, error) {
	if s == "" {
		return "", "", fmt.Errorf("missing field name")
	}
	if s[0] != '\'' {
		i := strings.IndexAny(s, ".[")
		switch i {
		case -1:
			return s, "", nil
		case 0:
			return "", "", fmt.Errorf("empty field")
		}
		return s[:i], s[i:], nil
	}
	var field []byte
	for i := 1; i < len(s); i++ {
		switch s[i] {
		case '\\':
			if i+1 < len(s) {
				i++
				field = append(field, s[i])
			}
		case '\'':
			return string(field), s[i+1:], nil
		default:
			field = append(field, s[i])
		}
	}
	return "", "", fmt.Errorf("unterminated quoted field")
}

// step follows one path step from y without creating anything.
func (y *Node) step(x *Path) (*Node, error) {
	if x.Field != nil {
		return y.At(*x.Field)
	}
	return y.AtIndex(*x.Index)
}

// GetPath returns the value at path under y without modifying y.
func (y *Node) GetPath(path string) (*Node, error) {
	p, err := ParsePath(path)
	if err != nil {
		return nil, err
	}
	res := y
	for x := p; x != nil; x = x.Next {
		if res, err = res.step(x); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
	}
	return res, nil
}

// MaxPathGrowth bounds how far past the end of an array SetPath may
// write; the gap is filled with None.
const MaxPathGrowth = 1 << 16

// SetPath stores a copy of v at path under y, coercing containers along
// the way as Field and Index do. Nothing is modified when an index
// would grow an array by more than MaxPathGrowth.
func (y *Node) SetPath(path string, v *Node) error {
	p, err := ParsePath(path)
	if err != nil {
		return err
	}
	if err := checkGrowth(y, p); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrPath, path, err)
	}
	res := y
	for x := p; x != nil; x = x.Next {
		if x.Field != nil {
			res = res.Field(*x.Field)
		} else {
			res = res.Index(*x.Index)
		}
	}
	res.Assign(v)
	return nil
}

func checkGrowth(y *Node, p *Path) error {
	cur := y
	for x := p; x != nil; x = x.Next {
		if x.Index != nil {
			n := 0
			if cur != nil && cur.Type == ArrayType {
				n = len(cur.Values)
			}
			if *x.Index-n > MaxPathGrowth {
				return fmt.Errorf("index %d is more than %d past the end", *x.Index, MaxPathGrowth)
			}
		}
		if cur != nil {
			cur, _ = cur.step(x)
		}
	}
	return nil
}

// DeletePath removes the value at path. Deleting an array element
// shifts the following elements down.
func (y *Node) DeletePath(path string) error {
	p, err := ParsePath(path)
	if err != nil {
		return err
	}
	if p == nil {
		return fmt.Errorf("%w: cannot delete the root", ErrPath)
	}
	parent, x := y, p
	for ; x.Next != nil; x = x.Next {
		if parent, err = parent.step(x); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
	}
	if _, err := parent.step(x); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	if x.Field != nil {
		parent.Delete(*x.Field)
	} else {
		parent.Values = slices.Delete(parent.Values, *x.Index, *x.Index+1)
	}
	return nil
}
