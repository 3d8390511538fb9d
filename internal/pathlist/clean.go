package pathlist

// Clean drops entries for which exists returns false and every repeat of an
// entry already seen. Survivors keep their original order, so the result of
// a lookup through the cleaned list is unchanged. A nil exists keeps all
// entries.
func Clean(list List, exists func(Entry) bool) List {
	seen := make(map[Entry]struct{}, len(list))
	out := make(List, 0, len(list))
	for _, e := range list {
		if _, ok := seen[e]; ok {
			continue
		}
		if exists != nil && !exists(e) {
			continue
		}
		seen[e] = struct{}{}
		out = append(out, e)
	}
	return out
}

// Dedupe removes repeated entries while preserving the first occurrence order.
func Dedupe(list []Entry) List {
	return Clean(list, nil)
}
