package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultEmitterConfig(t *testing.T) {
	cfg := DefaultEmitterConfig()

	assert.Equal(t, []string{"Accept", "Content-Type", "Authorization", "Host"}, cfg.ReservedHeaders)
	assert.Equal(t, "#/components/schemas/", cfg.SchemaPrefix)
	assert.Equal(t, "application/json", cfg.DefaultContentType)
}

func TestLoadFileOverridesOnlySpecifiedFields(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "emitter.yaml")

	require.NoError(t, os.WriteFile(path, []byte("reservedHeaders: [X-Request-Id]\n"), 0o600))

	cfg, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"X-Request-Id"}, cfg.ReservedHeaders)
	assert.Equal(t, "#/components/schemas/", cfg.SchemaPrefix)
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
