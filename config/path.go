package config

import "strings"

// splitPath breaks a raw path into segments. An empty path yields a single
// empty segment, which only resolves against a root key named "".
func splitPath(raw, delimiter string) []string {
	return strings.Split(raw, delimiter)
}

func joinPath(segments []string, delimiter string) string {
	return strings.Join(segments, delimiter)
}

// navigate walks root segment by segment. It fails on the first absent
// segment and on any Null met along the way, including the final node.
func navigate(root Value, segments []string) (Value, bool) {
	node := root

	for _, segment := range segments {
		next, ok := node.child(segment)
		if !ok || next.Kind() == KindNull {
			return Null(), false
		}

		node = next
	}

	return node, true
}

func exists(root Value, segments []string) bool {
	_, ok := navigate(root, segments)

	return ok
}

// write returns a copy of node with value placed at segments. Only the nodes
// along the path are copied; missing or non-container intermediates become
// empty Maps.
func write(node Value, segments []string, value Value) Value {
	if len(segments) == 0 {
		return value
	}

	out := node.container()

	next, _ := out.child(segments[0])
	out.setChild(segments[0], write(next, segments[1:], value))

	return out
}
