package cli

import (
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/vvka-141/treewalk/pkg/treewalk"
)

func TestRequireDirectory(t *testing.T) {
	cmd := &cobra.Command{
		Use: "walk <directory>",
	}

	t.Run("returns error when no args", func(t *testing.T) {
		err := RequireDirectory(cmd, []string{})
		if err == nil {
			t.Fatal("expected error, got nil")
		}
		if !strings.Contains(err.Error(), "missing required argument: <directory>") {
			t.Errorf("expected error to contain 'missing required argument: <directory>', got: %s", err.Error())
		}
		if !strings.Contains(err.Error(), "Example:") {
			t.Errorf("expected error to contain 'Example:', got: %s", err.Error())
		}
		if code := treewalk.ExitCodeForError(err); code != treewalk.ExitUsageError {
			t.Errorf("exit code = %d, want %d", code, treewalk.ExitUsageError)
		}
	})

	t.Run("returns nil when arg provided", func(t *testing.T) {
		if err := RequireDirectory(cmd, []string{"./src"}); err != nil {
			t.Errorf("expected nil, got: %v", err)
		}
	})

	t.Run("returns error when too many args", func(t *testing.T) {
		err := RequireDirectory(cmd, []string{"a", "b"})
		if err == nil {
			t.Fatal("expected error, got nil")
		}
		if !strings.Contains(err.Error(), "accepts 1 arg") {
			t.Errorf("expected error to contain 'accepts 1 arg', got: %s", err.Error())
		}
	})
}
