package toml

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const document = `
title = "inventory"

[database]
host = "db.example.com"
port = 5432

[database.pool]
max = 20

[[listeners]]
address = ":8080"

[[listeners]]
address = ":9090"
`

func TestParser_Parse_WholeDocument(t *testing.T) {
	t.Parallel()

	var raw any

	err := NewParser().Parse([]byte(document), &raw, "")
	require.NoError(t, err)

	doc, ok := raw.(map[string]any)
	require.True(t, ok, "got %T", raw)
	assert.Equal(t, "inventory", doc["title"])

	database, ok := doc["database"].(map[string]any)
	require.True(t, ok)
	assert.EqualValues(t, 5432, database["port"])

	listeners, ok := doc["listeners"].([]any)
	require.True(t, ok)
	assert.Len(t, listeners, 2)
}

func TestParser_Parse_Section(t *testing.T) {
	t.Parallel()

	var pool struct {
		Max int `toml:"max"`
	}

	err := NewParser().Parse([]byte(document), &pool, "database:pool")

	require.NoError(t, err)
	assert.Equal(t, 20, pool.Max)
}

func TestParser_Parse_UntypedSection(t *testing.T) {
	t.Parallel()

	var raw any

	err := NewParser().Parse([]byte(document), &raw, "database")
	require.NoError(t, err)

	section, ok := raw.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "db.example.com", section["host"])
	assert.Contains(t, section, "pool")
}

func TestParser_Parse_Errors(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		data    string
		path    string
		wantErr error
	}{
		{name: "empty data", data: " \n", path: "", wantErr: ErrEmptyData},
		{name: "missing section", data: document, path: "cache", wantErr: ErrPathNotFound},
		{name: "non-table section", data: document, path: "title", wantErr: ErrNotTable},
		{name: "array of tables is not a table", data: document, path: "listeners", wantErr: ErrNotTable},
		{name: "invalid toml", data: "[broken\n", path: "", wantErr: nil},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			var raw any

			err := NewParser().Parse([]byte(testCase.data), &raw, testCase.path)

			require.Error(t, err)

			if testCase.wantErr != nil {
				require.ErrorIs(t, err, testCase.wantErr)
			}
		})
	}
}
