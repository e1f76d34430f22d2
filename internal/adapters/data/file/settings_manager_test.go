package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/Adembc/rdpgen/internal/core/domain"
)

func TestSettingsManagerInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "rdpgen.yaml")
	sm := NewSettingsManager(path)

	require.NoError(t, sm.Init())

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var got domain.Config
	require.NoError(t, yaml.Unmarshal(data, &got))
	assert.Equal(t, SampleConfig(), got)

	err = sm.Init()
	assert.ErrorIs(t, err, ErrSettingsExist)
}

func TestSettingsManagerSaveOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rdpgen.yaml")
	sm := NewSettingsManager(path)
	require.NoError(t, sm.Init())

	cfg := SampleConfig()
	cfg.GatewayHost = "gw.corp.com"
	cfg.Overrides = map[string]string{"desktopwidth": "2560"}
	require.NoError(t, sm.Save(cfg))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "gateway: gw.corp.com")
	assert.Contains(t, string(data), `desktopwidth: "2560"`)
}

func TestSettingsManagerSaveLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	sm := NewSettingsManager(filepath.Join(dir, "rdpgen.yaml"))
	require.NoError(t, sm.Save(SampleConfig()))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "rdpgen.yaml", entries[0].Name())

	info, err := os.Stat(sm.Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}
