package treewalk_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/vvka-141/treewalk/pkg/treewalk"
)

func TestEnumerationOrder_Values(t *testing.T) {
	// Persisted configuration depends on these exact values.
	assert.Equal(t, 0, int(treewalk.OrderNone))
	assert.Equal(t, 1, int(treewalk.OrderFilesThenDirectories))
	assert.Equal(t, 2, int(treewalk.OrderDirectoriesThenFiles))
}

func TestParseOrder(t *testing.T) {
	tests := []struct {
		in   string
		want treewalk.EnumerationOrder
	}{
		{"0", treewalk.OrderNone},
		{"1", treewalk.OrderFilesThenDirectories},
		{"2", treewalk.OrderDirectoriesThenFiles},
		{"none", treewalk.OrderNone},
		{"files-first", treewalk.OrderFilesThenDirectories},
		{"FilesThenDirectories", treewalk.OrderFilesThenDirectories},
		{"dirs-first", treewalk.OrderDirectoriesThenFiles},
		{" DirectoriesThenFiles ", treewalk.OrderDirectoriesThenFiles},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := treewalk.ParseOrder(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseOrder_Invalid(t *testing.T) {
	for _, in := range []string{"3", "-1", "sideways", ""} {
		_, err := treewalk.ParseOrder(in)
		assert.True(t, errors.Is(err, treewalk.ErrInvalidOrder), "ParseOrder(%q) error = %v", in, err)
		assert.True(t, errors.Is(err, treewalk.ErrInvalidArgument), "ErrInvalidOrder should wrap ErrInvalidArgument")
	}
}

func TestEnumerationOrder_String(t *testing.T) {
	assert.Equal(t, "files-first", treewalk.OrderFilesThenDirectories.String())
	assert.Equal(t, "EnumerationOrder(9)", treewalk.EnumerationOrder(9).String())
}

func TestEnumerationOrder_YAMLStoresNumber(t *testing.T) {
	type doc struct {
		Order treewalk.EnumerationOrder `yaml:"order"`
	}

	out, err := yaml.Marshal(doc{Order: treewalk.OrderDirectoriesThenFiles})
	require.NoError(t, err)
	assert.Equal(t, "order: 2\n", string(out))

	var byName doc
	require.NoError(t, yaml.Unmarshal([]byte("order: files-first\n"), &byName))
	assert.Equal(t, treewalk.OrderFilesThenDirectories, byName.Order)

	var byValue doc
	require.NoError(t, yaml.Unmarshal([]byte("order: 2\n"), &byValue))
	assert.Equal(t, treewalk.OrderDirectoriesThenFiles, byValue.Order)

	var bad doc
	assert.Error(t, yaml.Unmarshal([]byte("order: 7\n"), &bad))
}

func TestEnumerationOrder_Set(t *testing.T) {
	var o treewalk.EnumerationOrder
	require.NoError(t, o.Set("dirs-first"))
	assert.Equal(t, treewalk.OrderDirectoriesThenFiles, o)
	assert.Equal(t, "order", o.Type())
	assert.Error(t, o.Set("upside-down"))
	assert.Equal(t, treewalk.OrderDirectoriesThenFiles, o, "failed Set must not modify the value")
}
