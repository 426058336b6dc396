package config

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/goccy/go-yaml"
)

// placeholder is one embedded reference found inside a string.
type placeholder struct {
	Match string
	Path  string
}

// placeholderPattern matches marker + word characters, dots and delimiter
// characters + marker.
func placeholderPattern(reference, delimiter string) *regexp.Regexp {
	var class strings.Builder

	class.WriteString(`\w.`)

	for _, r := range delimiter {
		if strings.ContainsRune(`\]^-[`, r) {
			class.WriteByte('\\')
		}

		class.WriteRune(r)
	}

	marker := regexp.QuoteMeta(reference)

	return regexp.MustCompile(marker + `([` + class.String() + `]+)` + marker)
}

// scanPlaceholders lists the distinct placeholders in text in order of
// first appearance.
func scanPlaceholders(pattern *regexp.Regexp, text string) []placeholder {
	matches := pattern.FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return nil
	}

	found := make([]placeholder, 0, len(matches))
	seen := make(map[string]struct{}, len(matches))

	for _, match := range matches {
		if _, dup := seen[match[0]]; dup {
			continue
		}

		seen[match[0]] = struct{}{}
		found = append(found, placeholder{Match: match[0], Path: match[1]})
	}

	return found
}

// substitute rewrites every string leaf of node. Structure and non-string
// leaves are kept.
func (s *Store) substitute(node Value) Value {
	switch node.Kind() {
	case KindNull:
		return node
	case KindScalar:
		text, ok := node.scalar.(string)
		if !ok {
			return node
		}

		return s.expand(text)
	case KindList, KindMap:
		out := node.container()

		node.each(func(key string, child Value) {
			out.setChild(key, s.substitute(child))
		})

		return out
	}

	return node
}

// expand applies a whole-value reference when text is exactly one, and
// embedded placeholders otherwise.
//
// A reference is replaced by the raw node it points to and is not expanded
// again. Placeholders go through Get, so their values are expanded in turn.
// Reference cycles are not detected.
func (s *Store) expand(text string) Value {
	if path, ok := s.referencePath(text); ok {
		node, found := navigate(s.root, splitPath(path, s.delimiter))
		if !found {
			return Scalar(NoValue)
		}

		return node
	}

	result := text

	for _, ph := range scanPlaceholders(s.placeholder, text) {
		if !s.Exist(ph.Path) {
			continue
		}

		result = strings.ReplaceAll(result, ph.Match, stringify(s.Get(ph.Path, result)))
	}

	return Scalar(result)
}

// referencePath returns the path inside a whole-value reference: text starts
// and ends with the marker and holds no other marker.
func (s *Store) referencePath(text string) (string, bool) {
	ref := s.reference

	if len(text) < 2*len(ref) ||
		!strings.HasPrefix(text, ref) ||
		!strings.HasSuffix(text, ref) ||
		strings.Count(text, ref) != 2 {
		return "", false
	}

	return text[len(ref) : len(text)-len(ref)], true
}

// stringify renders a looked-up value for insertion into a larger string.
// nil renders as "", booleans as "true" and "false", numbers through
// fmt.Sprint, and containers as flow-style YAML.
func stringify(value any) string {
	switch typed := value.(type) {
	case nil:
		return ""
	case string:
		return typed
	case []byte:
		return string(typed)
	case map[string]any, []any:
		out, err := yaml.MarshalWithOptions(typed, yaml.Flow(true))
		if err != nil {
			return fmt.Sprint(typed)
		}

		return strings.TrimSpace(string(out))
	default:
		return fmt.Sprint(typed)
	}
}
