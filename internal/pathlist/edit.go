package pathlist

import (
	"pathed/internal/errors"
)

// Add inserts entries at the front (prepend) or the back of list, keeping
// their input order. Repeats inside entries collapse to the first one. If
// any entry is already present nothing is added and the error names the
// first conflict.
func Add(list List, entries []Entry, prepend bool) (List, error) {
	batch := Dedupe(entries)
	for _, e := range batch {
		if e == "" {
			return nil, errors.New(errors.ErrInvalidInput, "cannot add an empty directory")
		}
		if list.Contains(e) {
			return nil, errors.Newf(errors.ErrAlreadyExists,
				"directory `%s` already exists in PATH, use `up`/`dn` to change its priority; no changes made", e).
				WithDetail("entry", string(e))
		}
	}

	out := make(List, 0, len(list)+len(batch))
	if prepend {
		out = append(out, batch...)
		out = append(out, list...)
	} else {
		out = append(out, list...)
		out = append(out, batch...)
	}
	return out, nil
}

// Remove deletes the first occurrence of target.
func Remove(list List, target Entry) (List, error) {
	i := list.Index(target)
	if i < 0 {
		return nil, notFound(target)
	}
	out := make(List, 0, len(list)-1)
	out = append(out, list[:i]...)
	out = append(out, list[i+1:]...)
	return out, nil
}
