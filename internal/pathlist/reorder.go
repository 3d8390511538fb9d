package pathlist

import (
	"pathed/internal/errors"
)

// Reorder moves target by jump positions. A negative jump moves it toward the
// front (higher priority), a positive one toward the end. The destination is
// clamped to the list bounds, so an oversized jump parks the entry at
// whichever end it was heading for. Every other entry keeps its relative order.
func Reorder(list List, target Entry, jump int) (List, error) {
	i := list.Index(target)
	if i < 0 {
		return nil, notFound(target)
	}
	n := len(list)

	// clamp without computing i+jump, which could overflow for extreme jumps
	var newIdx int
	switch {
	case jump < 0 && jump <= -i:
		newIdx = 0
	case jump > 0 && jump >= n-1-i:
		newIdx = n - 1
	default:
		newIdx = i + jump
	}

	out := make(List, 0, n)
	switch {
	case jump == 0:
		out = append(out, list...)
	case jump < 0:
		out = append(out, list[:newIdx]...)
		out = append(out, target)
		out = append(out, list[newIdx:i]...)
		out = append(out, list[i+1:]...)
	default:
		// the target vacated a slot before newIdx, so the shifted block
		// runs through newIdx inclusive
		out = append(out, list[:i]...)
		out = append(out, list[i+1:newIdx+1]...)
		out = append(out, target)
		out = append(out, list[newIdx+1:]...)
	}
	return out, nil
}

// Up raises the priority of target by the given number of positions.
func Up(list List, target Entry, by int) (List, error) {
	if by < 0 {
		return nil, errors.Newf(errors.ErrInvalidInput, "jump must not be negative, got %d", by)
	}
	return Reorder(list, target, -by)
}

// Down lowers the priority of target by the given number of positions.
func Down(list List, target Entry, by int) (List, error) {
	if by < 0 {
		return nil, errors.Newf(errors.ErrInvalidInput, "jump must not be negative, got %d", by)
	}
	return Reorder(list, target, by)
}

func notFound(e Entry) error {
	return errors.Newf(errors.ErrNotFound, "directory `%s` not found in PATH, no changes made", e).
		WithDetail("entry", string(e))
}
