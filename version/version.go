// Package version orders major.minor.patch triples. Every relational
// operator is derived from the single Compare function.
package version

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
)

var ErrInvalidVersion = errors.New("invalid version")

// Ordering is the result of Compare.
type Ordering int

const (
	Less    Ordering = -1
	Equal   Ordering = 0
	Greater Ordering = 1
)

func (o Ordering) String() string {
	switch o {
	case Less:
		return "<"
	case Equal:
		return "=="
	case Greater:
		return ">"
	default:
		return fmt.Sprintf("Ordering(%d)", int(o))
	}
}

// Version is an immutable value; compare with == or Compare.
type Version struct {
	Major uint
	Minor uint
	Patch uint
}

func New(major, minor, patch uint) Version {
	return Version{Major: major, Minor: minor, Patch: patch}
}

// Parse reads "major.minor.patch". A leading "v" is accepted.
func Parse(s string) (Version, error) {
	parts := strings.Split(strings.TrimPrefix(s, "v"), ".")
	if len(parts) != 3 {
		return Version{}, fmt.Errorf("parse %q: %w: want major.minor.patch", s, ErrInvalidVersion)
	}
	var nums [3]uint
	for i, p := range parts {
		n, err := strconv.ParseUint(p, 10, 0)
		if err != nil {
			return Version{}, fmt.Errorf("parse %q: %w: %v", s, ErrInvalidVersion, err)
		}
		nums[i] = uint(n)
	}
	return New(nums[0], nums[1], nums[2]), nil
}

// Compare orders a and b by major, then minor, then patch.
func Compare(a, b Version) Ordering {
	if c := cmp.Compare(a.Major, b.Major); c != 0 {
		return Ordering(c)
	}
	if c := cmp.Compare(a.Minor, b.Minor); c != 0 {
		return Ordering(c)
	}
	return Ordering(cmp.Compare(a.Patch, b.Patch))
}

func (v Version) Less(o Version) bool           { return Compare(v, o) == Less }
func (v Version) LessOrEqual(o Version) bool    { return Compare(v, o) != Greater }
func (v Version) Greater(o Version) bool        { return Compare(v, o) == Greater }
func (v Version) GreaterOrEqual(o Version) bool { return Compare(v, o) != Less }
func (v Version) Equal(o Version) bool          { return Compare(v, o) == Equal }

func (v Version) String() string { return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch) }

// Sort orders vs ascending in place.
func Sort(vs []Version) {
	slices.SortFunc(vs, func(a, b Version) int { return int(Compare(a, b)) })
}
