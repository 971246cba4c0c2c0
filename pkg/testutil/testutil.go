package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/bkgen/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// CreateFile creates a file with the given content in the specified directory.
// It fails the test if the file cannot be created.
func CreateFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// ReadFile reads the content of a file and returns it as a string.
// It fails the test if the file cannot be read.
func ReadFile(t *testing.T, path string) string {
	t.Helper()

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(content)
}

// IsolateState points the XDG state directory, where the log file lives,
// at a per-test directory and returns it.
func IsolateState(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	t.Setenv("XDG_STATE_HOME", dir)
	xdg.Reload()
	t.Cleanup(xdg.Reload)
	return dir
}

// RequireViolation runs f and fails unless it aborts with a contract
// violation.
func RequireViolation(t *testing.T, f func()) *errors.GenError {
	t.Helper()

	var got *errors.GenError
	func() {
		defer func() {
			r := recover()
			require.NotNil(t, r, "expected a contract violation")
			err, ok := r.(*errors.GenError)
			require.True(t, ok, "panic value should be *GenError, got %T", r)
			got = err
		}()
		f()
	}()
	assert.Equal(t, errors.ErrContractViolation, got.Code)
	return got
}
