package cli

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
)

func TestCompleteOrders(t *testing.T) {
	tests := []struct {
		prefix string
		want   []string
	}{
		{"", []string{"none", "files-first", "dirs-first"}},
		{"f", []string{"files-first"}},
		{"d", []string{"dirs-first"}},
		{"x", nil},
	}
	for _, tt := range tests {
		t.Run(tt.prefix, func(t *testing.T) {
			got, directive := completeOrders(nil, nil, tt.prefix)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, cobra.ShellCompDirectiveNoFileComp, directive)
		})
	}
}

func TestCompleteFormats(t *testing.T) {
	got, _ := completeFormats(nil, nil, "y")
	assert.Equal(t, []string{"yaml"}, got)
}

func TestCompleteDirectories(t *testing.T) {
	_, directive := completeDirectories(nil, nil, "")
	assert.Equal(t, cobra.ShellCompDirectiveFilterDirs, directive)

	_, directive = completeDirectories(nil, []string{"./src"}, "")
	assert.Equal(t, cobra.ShellCompDirectiveNoFileComp, directive)
}
