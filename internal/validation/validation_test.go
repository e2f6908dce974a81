package validation

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsValidOutputFormat(t *testing.T) {
	allowed := []string{"text", "json", "yaml"}

	assert.NoError(t, IsValidOutputFormat("json", allowed...))
	assert.NoError(t, IsValidOutputFormat("YAML", allowed...))

	err := IsValidOutputFormat("xml", allowed...)
	require.Error(t, err)
	assert.Equal(t, "unsupported output format: xml. Supported formats are 'text', 'json', 'yaml'", err.Error())
}

func TestIsValidFilePermissions(t *testing.T) {
	tests := []struct {
		mode    os.FileMode
		wantErr bool
	}{
		{0600, false},
		{0640, false},
		{0644, true},
		{0666, true},
		{0777, true},
	}
	for _, tt := range tests {
		t.Run(tt.mode.String(), func(t *testing.T) {
			err := IsValidFilePermissions(tt.mode)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCheckFilePermissions(t *testing.T) {
	dir := t.TempDir()
	assert.NoError(t, CheckFilePermissions(filepath.Join(dir, "missing")))

	path := filepath.Join(dir, "data.yaml")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0600))
	require.NoError(t, os.Chmod(path, 0600))
	assert.NoError(t, CheckFilePermissions(path))

	require.NoError(t, os.Chmod(path, 0644))
	assert.Error(t, CheckFilePermissions(path))
}
