package config

import (
	"encoding/json"
	"testing"

	"github.com/goccy/go-yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValueOf_Kinds(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		raw  any
		kind Kind
	}{
		{name: "nil", raw: nil, kind: KindNull},
		{name: "string", raw: "x", kind: KindScalar},
		{name: "int", raw: 1, kind: KindScalar},
		{name: "bytes", raw: []byte("x"), kind: KindScalar},
		{name: "string map", raw: map[string]any{}, kind: KindMap},
		{name: "any-keyed map", raw: map[any]any{1: "a"}, kind: KindMap},
		{name: "typed map", raw: map[string]int{"a": 1}, kind: KindMap},
		{name: "ordered map", raw: yaml.MapSlice{}, kind: KindMap},
		{name: "any slice", raw: []any{1}, kind: KindList},
		{name: "typed slice", raw: []string{"a"}, kind: KindList},
		{name: "array", raw: [2]int{1, 2}, kind: KindList},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, testCase.kind, ValueOf(testCase.raw).Kind())
		})
	}
}

func TestValueOf_Conversions(t *testing.T) {
	t.Parallel()

	assert.Equal(t, map[string]any{"1": "a", "2": "b"}, ValueOf(map[int]string{1: "a", 2: "b"}).Interface())
	assert.Equal(t, []any{"a", "b"}, ValueOf([]string{"a", "b"}).Interface())
	assert.Equal(t, []string{"b", "a"}, ValueOf(yaml.MapSlice{{Key: "b", Value: 1}, {Key: "a", Value: 2}}).Keys())
	assert.Equal(t, []string{"a", "b"}, ValueOf(map[string]any{"b": 1, "a": 2}).Keys())
	assert.Equal(t, []string{"0", "1"}, ValueOf([]any{"x", "y"}).Keys())
}

func TestValue_BytesAreCopied(t *testing.T) {
	t.Parallel()

	raw := []byte("abc")
	value := ValueOf(raw)
	raw[0] = 'X'

	out, ok := value.Interface().([]byte)
	require.True(t, ok)
	assert.Equal(t, []byte("abc"), out)

	out[1] = 'Y'
	assert.Equal(t, []byte("abc"), value.Interface())
}

func TestValue_MarshalJSONKeepsOrder(t *testing.T) {
	t.Parallel()

	value := ValueOf(yaml.MapSlice{
		{Key: "zeta", Value: 1},
		{Key: "alpha", Value: []any{"x", nil, true}},
		{Key: "mid", Value: yaml.MapSlice{{Key: "b", Value: "2"}, {Key: "a", Value: 1.5}}},
	})

	out, err := json.Marshal(value)

	require.NoError(t, err)
	assert.JSONEq(t, `{"zeta":1,"alpha":["x",null,true],"mid":{"b":"2","a":1.5}}`, string(out))
	assert.Equal(t, `{"zeta":1,"alpha":["x",null,true],"mid":{"b":"2","a":1.5}}`, string(out))
}

func TestValue_MarshalYAMLKeepsOrder(t *testing.T) {
	t.Parallel()

	value := ValueOf(yaml.MapSlice{{Key: "zeta", Value: 1}, {Key: "alpha", Value: 2}})

	out, err := yaml.Marshal(value)

	require.NoError(t, err)
	assert.Equal(t, "zeta: 1\nalpha: 2\n", string(out))
}

func TestValue_EmptyContainersJSON(t *testing.T) {
	t.Parallel()

	list, err := json.Marshal(List())
	require.NoError(t, err)
	assert.Equal(t, "[]", string(list))

	object, err := json.Marshal(NewMap())
	require.NoError(t, err)
	assert.Equal(t, "{}", string(object))

	null, err := json.Marshal(Null())
	require.NoError(t, err)
	assert.Equal(t, "null", string(null))
}

func TestKind_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "null", KindNull.String())
	assert.Equal(t, "scalar", KindScalar.String())
	assert.Equal(t, "list", KindList.String())
	assert.Equal(t, "map", KindMap.String())
	assert.Equal(t, "kind(9)", Kind(9).String())
}

func TestParseIndex(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		key   string
		index int
		ok    bool
	}{
		{key: "0", index: 0, ok: true},
		{key: "42", index: 42, ok: true},
		{key: "01", ok: false},
		{key: "-1", ok: false},
		{key: "+1", ok: false},
		{key: "ten", ok: false},
		{key: "", ok: false},
	}

	for _, testCase := range testCases {
		t.Run(testCase.key, func(t *testing.T) {
			t.Parallel()

			index, ok := parseIndex(testCase.key)

			assert.Equal(t, testCase.ok, ok)
			assert.Equal(t, testCase.index, index)
		})
	}
}

func TestWrite_SharesUntouchedBranches(t *testing.T) {
	t.Parallel()

	root := ValueOf(map[string]any{"a": map[string]any{"x": 1}, "b": map[string]any{"y": 2}})

	updated := write(root, []string{"a", "x"}, Scalar(10))

	original, ok := navigate(root, []string{"a", "x"})
	require.True(t, ok)
	assert.Equal(t, 1, original.Interface(), "write must not modify its input")

	changed, ok := navigate(updated, []string{"a", "x"})
	require.True(t, ok)
	assert.Equal(t, 10, changed.Interface())
	assert.True(t, exists(updated, []string{"b", "y"}))
}
