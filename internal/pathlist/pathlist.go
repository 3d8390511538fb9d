// Package pathlist holds the ordered list of PATH directories and the pure
// operations that edit it. Nothing here reads or writes process state: the
// caller supplies the list and receives a new one back.
package pathlist

import (
	"path/filepath"
	"strings"
)

// Entry is a normalized directory path.
type Entry string

// List is an ordered sequence of entries. Earlier entries take priority.
type List []Entry

// Normalize turns raw into an Entry: relative paths are resolved against
// cwd, trailing separators are dropped and the result is cleaned. The
// filesystem root keeps its separator. An empty raw value stays empty.
func Normalize(raw, cwd string) Entry {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	p := filepath.FromSlash(raw)
	if !filepath.IsAbs(p) && cwd != "" {
		p = filepath.Join(cwd, p)
	}
	return Entry(filepath.Clean(p))
}

// FromStrings normalizes every raw value, skipping empty ones.
func FromStrings(raw []string, cwd string) List {
	out := make(List, 0, len(raw))
	for _, r := range raw {
		if e := Normalize(r, cwd); e != "" {
			out = append(out, e)
		}
	}
	return out
}

// Strings returns the entries as plain strings.
func (l List) Strings() []string {
	out := make([]string, len(l))
	for i, e := range l {
		out[i] = string(e)
	}
	return out
}

// Index returns the position of the first occurrence of e, or -1.
func (l List) Index(e Entry) int {
	for i, x := range l {
		if x == e {
			return i
		}
	}
	return -1
}

// Contains reports whether e is in the list.
func (l List) Contains(e Entry) bool {
	return l.Index(e) >= 0
}
