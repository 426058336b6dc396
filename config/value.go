package config

import (
	"bytes"
	"cmp"
	"encoding/json"
	"fmt"
	"maps"
	"reflect"
	"slices"
	"strconv"
	"strings"

	"github.com/goccy/go-yaml"
)

// Kind identifies the variant held by a Value.
type Kind uint8

const (
	// KindNull marks the absence of a value.
	KindNull Kind = iota
	// KindScalar is any non-container value: string, number, bool, or another Go value.
	KindScalar
	// KindList is an ordered sequence of values.
	KindList
	// KindMap is an ordered mapping from string keys to values.
	KindMap
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindScalar:
		return "scalar"
	case KindList:
		return "list"
	case KindMap:
		return "map"
	}

	return "kind(" + strconv.Itoa(int(k)) + ")"
}

// Value is a node of the configuration tree.
//
// Values are immutable once built: every update in this package produces a
// new Value and shares untouched children with the old one.
// The zero Value is Null.
type Value struct {
	kind   Kind
	scalar any
	items  []Value
	keys   []string
	fields map[string]Value
}

// Null returns the "no value" node.
func Null() Value {
	return Value{} //nolint:exhaustruct
}

// Scalar wraps a non-container Go value.
func Scalar(v any) Value {
	return Value{kind: KindScalar, scalar: v} //nolint:exhaustruct
}

// List builds a list node from the given items.
func List(items ...Value) Value {
	return Value{kind: KindList, items: slices.Clone(items)} //nolint:exhaustruct
}

// NewMap returns an empty map node.
func NewMap() Value {
	return Value{kind: KindMap, fields: make(map[string]Value)} //nolint:exhaustruct
}

// ValueOf converts a plain Go value into a Value.
//
// Maps of any key type become Map nodes with keys rendered through fmt.Sprint
// and sorted, index keys first in numeric order. goccy yaml.MapSlice keeps its
// order, slices and arrays become List nodes and nil becomes Null. Anything
// else is stored as a Scalar.
func ValueOf(raw any) Value {
	switch typed := raw.(type) {
	case nil:
		return Null()
	case Value:
		return typed
	case []byte:
		return Scalar(bytes.Clone(typed))
	case yaml.MapSlice:
		node := NewMap()
		for _, item := range typed {
			node.setField(fmt.Sprint(item.Key), ValueOf(item.Value))
		}

		return node
	case map[string]any:
		node := NewMap()
		for _, key := range slices.SortedFunc(maps.Keys(typed), compareKeys) {
			node.setField(key, ValueOf(typed[key]))
		}

		return node
	case []any:
		node := List()
		for _, item := range typed {
			node.items = append(node.items, ValueOf(item))
		}

		return node
	}

	return reflectValueOf(raw)
}

func reflectValueOf(raw any) Value {
	rv := reflect.ValueOf(raw)

	switch rv.Kind() { //nolint:exhaustive // every other kind is a scalar
	case reflect.Map:
		entries := make(map[string]any, rv.Len())

		iter := rv.MapRange()
		for iter.Next() {
			entries[fmt.Sprint(iter.Key().Interface())] = iter.Value().Interface()
		}

		return ValueOf(entries)
	case reflect.Slice, reflect.Array:
		node := List()
		for i := range rv.Len() {
			node.items = append(node.items, ValueOf(rv.Index(i).Interface()))
		}

		return node
	default:
		return Scalar(raw)
	}
}

// Kind reports which variant v holds.
func (v Value) Kind() Kind {
	return v.kind
}

// IsContainer reports whether v is a List or a Map.
func (v Value) IsContainer() bool {
	return v.kind == KindList || v.kind == KindMap
}

// Len returns the number of children of a container, zero otherwise.
func (v Value) Len() int {
	switch v.kind {
	case KindList:
		return len(v.items)
	case KindMap:
		return len(v.keys)
	case KindNull, KindScalar:
		return 0
	}

	return 0
}

// Keys returns the child keys in order. List children are keyed by index.
func (v Value) Keys() []string {
	keys := make([]string, 0, v.Len())

	v.each(func(key string, _ Value) {
		keys = append(keys, key)
	})

	return keys
}

// Interface converts v back into plain Go values: map[string]any, []any,
// the stored scalar, or nil.
func (v Value) Interface() any {
	switch v.kind {
	case KindNull:
		return nil
	case KindScalar:
		if raw, ok := v.scalar.([]byte); ok {
			return bytes.Clone(raw)
		}

		return v.scalar
	case KindList:
		out := make([]any, len(v.items))
		for i, item := range v.items {
			out[i] = item.Interface()
		}

		return out
	case KindMap:
		out := make(map[string]any, len(v.keys))
		for _, key := range v.keys {
			out[key] = v.fields[key].Interface()
		}

		return out
	}

	return nil
}

// MarshalYAML renders maps as ordered yaml.MapSlice so encoded output keeps
// insertion order.
func (v Value) MarshalYAML() (any, error) {
	return v.ordered(), nil
}

func (v Value) ordered() any {
	switch v.kind {
	case KindNull, KindScalar:
		return v.Interface()
	case KindList:
		out := make([]any, len(v.items))
		for i, item := range v.items {
			out[i] = item.ordered()
		}

		return out
	case KindMap:
		out := make(yaml.MapSlice, 0, len(v.keys))
		for _, key := range v.keys {
			out = append(out, yaml.MapItem{Key: key, Value: v.fields[key].ordered()})
		}

		return out
	}

	return nil
}

// MarshalJSON encodes v keeping map key order.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindNull, KindScalar:
		return json.Marshal(v.Interface()) //nolint:wrapcheck
	case KindList:
		return v.marshalJSONContainer('[', ']')
	case KindMap:
		return v.marshalJSONContainer('{', '}')
	}

	return []byte("null"), nil
}

func (v Value) marshalJSONContainer(open, closing byte) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteByte(open)

	var err error

	v.each(func(key string, child Value) {
		if err != nil {
			return
		}

		if buf.Len() > 1 {
			buf.WriteByte(',')
		}

		if v.kind == KindMap {
			encodedKey, _ := json.Marshal(key) //nolint:errchkjson // strings always encode
			buf.Write(encodedKey)
			buf.WriteByte(':')
		}

		var encoded []byte

		encoded, err = child.MarshalJSON()
		buf.Write(encoded)
	})

	if err != nil {
		return nil, err
	}

	buf.WriteByte(closing)

	return buf.Bytes(), nil
}

func (v Value) each(visit func(key string, child Value)) {
	switch v.kind {
	case KindList:
		for i, item := range v.items {
			visit(strconv.Itoa(i), item)
		}
	case KindMap:
		for _, key := range v.keys {
			visit(key, v.fields[key])
		}
	case KindNull, KindScalar:
	}
}

func (v Value) child(key string) (Value, bool) {
	switch v.kind {
	case KindMap:
		found, ok := v.fields[key]

		return found, ok
	case KindList:
		index, ok := parseIndex(key)
		if !ok || index >= len(v.items) {
			return Null(), false
		}

		return v.items[index], true
	case KindNull, KindScalar:
		return Null(), false
	}

	return Null(), false
}

// container returns an owned shallow copy of v when it is a container and an
// empty Map otherwise. Children are shared with v.
func (v Value) container() Value {
	switch v.kind {
	case KindList:
		return Value{kind: KindList, items: slices.Clone(v.items)} //nolint:exhaustruct
	case KindMap:
		fields := maps.Clone(v.fields)
		if fields == nil {
			fields = make(map[string]Value)
		}

		return Value{kind: KindMap, keys: slices.Clone(v.keys), fields: fields} //nolint:exhaustruct
	case KindNull, KindScalar:
		return NewMap()
	}

	return NewMap()
}

// emptyLike returns an empty container of the same kind as v.
func emptyLike(v Value) Value {
	if v.kind == KindList {
		return List()
	}

	return NewMap()
}

// setChild assigns c under key on an owned container. A List accepts its
// existing indices and the next index; any other key turns it into a Map.
func (v *Value) setChild(key string, c Value) {
	switch v.kind {
	case KindList:
		index, ok := parseIndex(key)

		switch {
		case ok && index < len(v.items):
			v.items[index] = c

			return
		case ok && index == len(v.items):
			v.items = append(v.items, c)

			return
		}

		v.promote()
		v.setField(key, c)
	case KindMap:
		v.setField(key, c)
	case KindNull, KindScalar:
		*v = NewMap()
		v.setField(key, c)
	}
}

// appendChild adds c after the last index of an owned container.
func (v *Value) appendChild(c Value) {
	switch v.kind {
	case KindList:
		v.items = append(v.items, c)
	case KindMap:
		v.setField(strconv.Itoa(v.nextIndex()), c)
	case KindNull, KindScalar:
		*v = List(c)
	}
}

func (v *Value) setField(key string, c Value) {
	if _, ok := v.fields[key]; !ok {
		v.keys = append(v.keys, key)
	}

	v.fields[key] = c
}

// promote turns an owned List into a Map keyed "0".."n-1".
func (v *Value) promote() {
	fields := make(map[string]Value, len(v.items))
	keys := make([]string, len(v.items))

	for i, item := range v.items {
		keys[i] = strconv.Itoa(i)
		fields[keys[i]] = item
	}

	*v = Value{kind: KindMap, keys: keys, fields: fields} //nolint:exhaustruct
}

// nextIndex is one past the largest index-style key of a Map, or zero.
func (v Value) nextIndex() int {
	next := 0

	for _, key := range v.keys {
		if index, ok := parseIndex(key); ok && index >= next {
			next = index + 1
		}
	}

	return next
}

// parseIndex accepts canonical non-negative decimal keys only, so "01" and
// "+1" stay associative.
func parseIndex(key string) (int, bool) {
	index, err := strconv.Atoi(key)
	if err != nil || index < 0 || strconv.Itoa(index) != key {
		return 0, false
	}

	return index, true
}

// compareKeys orders index keys numerically ahead of all other keys, which
// are ordered as strings.
func compareKeys(a, b string) int {
	ai, aIndex := parseIndex(a)
	bi, bIndex := parseIndex(b)

	switch {
	case aIndex && bIndex:
		return cmp.Compare(ai, bi)
	case aIndex:
		return -1
	case bIndex:
		return 1
	default:
		return strings.Compare(a, b)
	}
}

// isIndexKey reports whether key addresses a list position.
func isIndexKey(key string) bool {
	_, ok := parseIndex(key)

	return ok
}
