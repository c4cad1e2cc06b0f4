package version

import (
	"errors"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want string
		err  bool
	}{
		{in: "1.20.4", want: "1.20.4"},
		{in: "1.8", want: "1.8.0"},
		{in: "26.1", want: "26.1"},
		{in: "26.1.0", want: "26.1"},
		{in: "27.0.3", want: "27.0.3"},
		{in: "2.0", err: true},
		{in: "25.9", err: true},
		{in: "1.x", err: true},
		{in: "1", err: true},
		{in: "1.2.3.4", err: true},
		{in: " 1.2", err: true},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			v, err := Parse(tc.in)
			if tc.err {
				if !errors.Is(err, ErrVersion) {
					t.Fatalf("expected ErrVersion, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if got := v.String(); got != tc.want {
				t.Errorf("got %q want %q", got, tc.want)
			}
		})
	}
}

func TestDialectBounds(t *testing.T) {
	if _, err := ParseBefore26("26.1"); err == nil {
		t.Error("expected error parsing 26.1 as Before26")
	}
	if _, err := ParseAfter26("1.20"); err == nil {
		t.Error("expected error parsing 1.20 as After26")
	}
}

func TestCompare(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"1.20.4", "1.20.4", 0},
		{"1.20", "1.20.0", 0},
		{"1.8.9", "1.20", -1},
		{"1.20.1", "1.20", 1},
		{"1.21", "26.0", -1},
		{"26.0", "1.21", 1},
		{"26.1", "26.1.0", 0},
		{"26.2", "27.0", -1},
		{"26.1.2", "26.1.1", 1},
	}
	for _, tc := range tests {
		t.Run(tc.a+" "+tc.b, func(t *testing.T) {
			got, err := Compare(tc.a, tc.b)
			if err != nil {
				t.Fatal(err)
			}
			if got != tc.want {
				t.Errorf("Compare(%s, %s) = %d, want %d", tc.a, tc.b, got, tc.want)
			}
		})
	}
}

func TestLess(t *testing.T) {
	a := Before26{Minor: 12, Patch: 2}
	b := Before26{Minor: 12, Patch: 10}
	if !a.Less(b) || b.Less(a) {
		t.Errorf("expected %s < %s", a, b)
	}
	x := After26{Major: 26, Minor: 3}
	y := After26{Major: 26, Minor: 10}
	if !x.Less(y) || y.Less(x) {
		t.Errorf("expected %s < %s", x, y)
	}
	if !a.Equal(Before26{Minor: 12, Patch: 2}) || a.Equal(b) {
		t.Errorf("Before26 equality")
	}
	if !x.Equal(After26{Major: 26, Minor: 3}) || x.Equal(y) {
		t.Errorf("After26 equality")
	}
}

func TestText(t *testing.T) {
	var b Before26
	if err := b.UnmarshalText([]byte("1.16.5")); err != nil {
		t.Fatal(err)
	}
	d, _ := b.MarshalText()
	if string(d) != "1.16.5" {
		t.Errorf("got %q", d)
	}
	var a After26
	if err := a.UnmarshalText([]byte("30.2.0")); err != nil {
		t.Fatal(err)
	}
	d, _ = a.MarshalText()
	if string(d) != "30.2" {
		t.Errorf("got %q", d)
	}
	if err := a.UnmarshalText([]byte("1.2")); err == nil {
		t.Error("expected error")
	}
}
