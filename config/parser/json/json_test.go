package json

import (
	"testing"

	"github.com/goccy/go-yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const document = `{
  // service settings
  "service": {
    "name": "billing",
    "port": 9000,
    "hosts": ["a.example.com", "b.example.com",],
  },
  "debug": false,
}`

func TestParser_Parse_JSONC(t *testing.T) {
	t.Parallel()

	var raw any

	err := NewParser().Parse([]byte(document), &raw, "")
	require.NoError(t, err)

	doc, ok := raw.(yaml.MapSlice)
	require.True(t, ok, "got %T", raw)
	require.Len(t, doc, 2)
	assert.Equal(t, "service", doc[0].Key)
	assert.Equal(t, "debug", doc[1].Key)
	assert.Equal(t, false, doc[1].Value)
}

func TestParser_Parse_Section(t *testing.T) {
	t.Parallel()

	var service struct {
		Name  string   `yaml:"name"`
		Port  int      `yaml:"port"`
		Hosts []string `yaml:"hosts"`
	}

	err := NewParser().Parse([]byte(document), &service, "service")

	require.NoError(t, err)
	assert.Equal(t, "billing", service.Name)
	assert.Equal(t, 9000, service.Port)
	assert.Equal(t, []string{"a.example.com", "b.example.com"}, service.Hosts)
}

func TestParser_Parse_PlainJSON(t *testing.T) {
	t.Parallel()

	var port int

	err := NewParser().Parse([]byte(`{"http": {"port": 8080}}`), &port, "http:port")

	require.NoError(t, err)
	assert.Equal(t, 8080, port)
}

func TestParser_Parse_Errors(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		data    string
		path    string
		wantErr error
	}{
		{name: "empty data", data: "", path: "", wantErr: ErrEmptyData},
		{name: "missing section", data: document, path: "missing", wantErr: ErrPathNotFound},
		{name: "broken json", data: `{"a": `, path: "", wantErr: nil},
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
