package cmd

import (
	"bytes"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmangkad/dns-benchmark/pkg/config"
)

func isolateHome(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Setenv("USERPROFILE", t.TempDir())
	} else {
		t.Setenv("HOME", t.TempDir())
	}
}

func TestConfigInit(t *testing.T) {
	isolateHome(t)

	require.NoError(t, configInit())

	exists, err := config.Exists()
	require.NoError(t, err)
	assert.True(t, exists)

	// a second init must not overwrite the existing file
	require.Error(t, configInit())
}

func TestConfigSet_and_Reset(t *testing.T) {
	isolateHome(t)

	modified := config.Default()
	modified.Workers = 4
	modified.Domain = "example.org"
	require.NoError(t, configSet(modified))

	loaded, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, 4, loaded.Workers)
	assert.Equal(t, "example.org", loaded.Domain)

	require.NoError(t, configReset())

	loaded, err = config.Load()
	require.NoError(t, err)
	assert.Equal(t, config.Default(), loaded)
}

func TestConfigShow(t *testing.T) {
	isolateHome(t)

	buffer := bytes.Buffer{}
	require.NoError(t, configShow(&buffer))

	assert.Contains(t, buffer.String(), "domain: google.com")
	assert.Contains(t, buffer.String(), "workers: 16")
}

func TestConfigPath(t *testing.T) {
	isolateHome(t)

	buffer := bytes.Buffer{}
	require.NoError(t, configPath(&buffer))

	assert.Contains(t, buffer.String(), "config.yaml")
}

func TestConfigDelete(t *testing.T) {
	isolateHome(t)

	require.NoError(t, configInit())
	require.NoError(t, config.Delete())

	exists, err := config.Exists()
	require.NoError(t, err)
	assert.False(t, exists)

	// deleting a missing file is fine
	require.NoError(t, config.Delete())
}
