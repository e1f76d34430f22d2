// Copyright 2025.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/Adembc/rdpgen/internal/core/ports"
	"github.com/adrg/xdg"
)

const AppDirName = "rdpgen"

// OSConfig roots settings and logs under $XDG_CONFIG_HOME/rdpgen.
type OSConfig struct {
	configDir string
}

func NewOSConfig() ports.ConfigProvider {
	return &OSConfig{configDir: filepath.Join(xdg.ConfigHome, AppDirName)}
}

func (c *OSConfig) ConfigPath(elems ...string) string {
	return filepath.Join(append([]string{c.configDir}, elems...)...)
}

func (c *OSConfig) LogPath(filename string) string {
	return c.ConfigPath("logs", filename)
}

func (c *OSConfig) GetEnvOrDefault(envVar, defaultValue string) string {
	if value, ok := os.LookupEnv(envVar); ok && value != "" {
		return value
	}
	return defaultValue
}

// expandHome resolves a leading "~/" against the user's home directory.
// Paths are returned unchanged when the home directory is unknown.
func expandHome(path string) string {
	rest, ok := strings.CutPrefix(path, "~/")
	if !ok {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, rest)
}
