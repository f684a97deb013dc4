package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "google.com", cfg.Domain)
	assert.Equal(t, 16, cfg.Workers)
	assert.Equal(t, 50, cfg.Requests)
	assert.Equal(t, 2, cfg.Timeout)
	assert.Equal(t, "udp", cfg.Protocol)
	assert.Equal(t, "v4", cfg.NameServerIP)
	assert.Equal(t, "v4", cfg.LookupIP)
	assert.Equal(t, "table", cfg.Format)
	assert.False(t, cfg.SkipSystem)
	assert.False(t, cfg.DisableAdaptiveTimeout)
}

func TestSaveTo_and_LoadFrom(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := Default()
	cfg.Domain = "example.org"
	cfg.Workers = 8
	cfg.CustomServers = "/tmp/servers.txt"
	cfg.SkipGateway = true

	require.NoError(t, cfg.SaveTo(path))

	loaded, err := LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoadFrom_missingFieldsFallBackToDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("domain: example.org\nworkers: 4\n"), 0o644))

	cfg, err := LoadFrom(path)

	require.NoError(t, err)
	assert.Equal(t, "example.org", cfg.Domain)
	assert.Equal(t, 4, cfg.Workers)
	assert.Equal(t, 50, cfg.Requests)
	assert.Equal(t, "udp", cfg.Protocol)
}

func TestLoadFrom_missingFile(t *testing.T) {
	_, err := LoadFrom(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestLoadFrom_invalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("domain: [unclosed"), 0o644))

	_, err := LoadFrom(path)
	require.Error(t, err)
}

func TestPath(t *testing.T) {
	path, err := Path()

	require.NoError(t, err)
	assert.Equal(t, "config.yaml", filepath.Base(path))
	assert.Equal(t, ".dns-benchmark", filepath.Base(filepath.Dir(path)))
}
