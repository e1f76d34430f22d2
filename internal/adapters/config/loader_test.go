package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Adembc/rdpgen/internal/core/domain"
)

func writeSettings(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoaderLoad_YAML(t *testing.T) {
	path := writeSettings(t, "rdpgen.yaml", `
source: hosts.xlsx
column: HOSTNAME
domain: .corp.local
gateway: gw.corp.com
out: /out
sheet: DNS
overrides:
  desktopwidth: "2560"
  screen mode id: "1"
`)

	cfg, err := Loader{FilePath: path, Required: true}.Load(nil)
	require.NoError(t, err)

	assert.Equal(t, domain.Config{
		SourcePath:   "hosts.xlsx",
		ColumnName:   "HOSTNAME",
		DomainSuffix: ".corp.local",
		GatewayHost:  "gw.corp.com",
		OutputDir:    "/out",
		Sheet:        "DNS",
		Overrides:    map[string]string{"desktopwidth": "2560", "screen mode id": "1"},
	}, cfg)
}

func TestLoaderLoad_TOML(t *testing.T) {
	path := writeSettings(t, "rdpgen.toml", `
source = "hosts.csv"
column = "Name"
domain = ".example.local"
gateway = "remote.example.com"
out = "/rdp"

[overrides]
desktopheight = "1440"
`)

	cfg, err := Loader{FilePath: path, Required: true}.Load(nil)
	require.NoError(t, err)
	assert.Equal(t, "hosts.csv", cfg.SourcePath)
	assert.Equal(t, "Name", cfg.ColumnName)
	assert.Equal(t, map[string]string{"desktopheight": "1440"}, cfg.Overrides)
}

func TestLoaderLoad_Precedence(t *testing.T) {
	path := writeSettings(t, "rdpgen.yaml", `
source: file.xlsx
column: FILE
domain: .file
gateway: file-gw
out: /file
`)
	t.Setenv("RDPGEN_COLUMN", "ENV")
	t.Setenv("RDPGEN_GATEWAY", "env-gw")

	cfg, err := Loader{FilePath: path}.Load(map[string]any{KeyGateway: "flag-gw"})
	require.NoError(t, err)

	assert.Equal(t, "file.xlsx", cfg.SourcePath)
	assert.Equal(t, "ENV", cfg.ColumnName)
	assert.Equal(t, "flag-gw", cfg.GatewayHost)
	assert.Equal(t, ".file", cfg.DomainSuffix)
}

func TestLoaderLoad_MissingFile(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "rdpgen.yaml")

	cfg, err := Loader{FilePath: missing}.Load(map[string]any{KeySource: "a.csv"})
	require.NoError(t, err)
	assert.Equal(t, "a.csv", cfg.SourcePath)

	_, err = Loader{FilePath: missing, Required: true}.Load(nil)
	assert.ErrorIs(t, err, domain.ErrConfigLoad)
}

func TestLoaderLoad_RejectsUnknownFormat(t *testing.T) {
	path := writeSettings(t, "rdpgen.ini", "source=a")

	_, err := Loader{FilePath: path}.Load(nil)
	assert.ErrorIs(t, err, domain.ErrConfigLoad)
}

func TestLoaderLoad_ExpandsHome(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	cfg, err := Loader{}.Load(map[string]any{KeyOut: "~/rdp", KeySource: "~/hosts.xlsx"})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "rdp"), cfg.OutputDir)
	assert.Equal(t, filepath.Join(home, "hosts.xlsx"), cfg.SourcePath)
}

func TestOSConfigPaths(t *testing.T) {
	c := NewOSConfig()
	assert.Equal(t, filepath.Join(c.ConfigPath(), "logs", "rdpgen.log"), c.LogPath("rdpgen.log"))
	assert.Equal(t, AppDirName, filepath.Base(c.ConfigPath()))

	t.Setenv("RDPGEN_TEST_VALUE", "set")
	assert.Equal(t, "set", c.GetEnvOrDefault("RDPGEN_TEST_VALUE", "default"))
	assert.Equal(t, "default", c.GetEnvOrDefault("RDPGEN_TEST_UNSET", "default"))
}

func TestExpandHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	tests := []struct {
		in   string
		want string
	}{
		{"~/rdp", filepath.Join(home, "rdp")},
		{"~", "~"},
		{"/srv/rdp", "/srv/rdp"},
		{"rdp/~/x", "rdp/~/x"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, expandHome(tt.in), tt.in)
	}
}
