package config

// merge returns target with incoming folded into it:
//   - a container value is merged recursively into the entry with the same
//     key, which is created (or replaces a non-container) as an empty
//     container of the incoming kind;
//   - a scalar under an index key (any key of a List, or a canonical decimal
//     Map key) is appended after the target's last index, so lists
//     concatenate instead of aligning by position;
//   - any other scalar overwrites the entry by name.
//
// Entries of target that incoming does not mention are kept.
func merge(target, incoming Value) Value {
	out := target.container()
	if !target.IsContainer() {
		out = emptyLike(incoming)
	}

	fromList := incoming.Kind() == KindList

	incoming.each(func(key string, value Value) {
		switch {
		case value.IsContainer():
			existing, ok := out.child(key)
			if !ok || !existing.IsContainer() {
				existing = emptyLike(value)
			}

			out.setChild(key, merge(existing, value))
		case fromList || isIndexKey(key):
			out.appendChild(value)
		default:
			out.setChild(key, value)
		}
	})

	return out
}
