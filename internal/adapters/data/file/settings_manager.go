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

package file

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Adembc/rdpgen/internal/core/domain"
	"gopkg.in/yaml.v3"
)

const settingsHeader = `# rdpgen settings
#
# Every key can also be given as a flag (--source, --column, ...) or as an
# environment variable (RDPGEN_SOURCE, RDPGEN_COLUMN, ...).
#
# overrides replaces template values by setting name, for example:
#   overrides:
#     desktopwidth: "2560"
#     desktopheight: "1440"

`

// ErrSettingsExist is returned by Init when the file is already present.
var ErrSettingsExist = errors.New("settings file already exists")

// SettingsManager persists generation parameters as YAML.
type SettingsManager struct {
	filePath string
}

func NewSettingsManager(filePath string) *SettingsManager {
	return &SettingsManager{filePath: filePath}
}

func (sm *SettingsManager) Path() string {
	return sm.filePath
}

// SampleConfig is what Init writes.
func SampleConfig() domain.Config {
	return domain.Config{
		SourcePath:   "hosts.xlsx",
		ColumnName:   "HOSTNAME",
		DomainSuffix: ".example.local",
		GatewayHost:  "remote.example.com",
		OutputDir:    "rdp",
	}
}

// Init writes a sample settings file. It never overwrites.
func (sm *SettingsManager) Init() error {
	if _, err := os.Stat(sm.filePath); err == nil {
		return fmt.Errorf("%w: %s", ErrSettingsExist, sm.filePath)
	} else if !os.IsNotExist(err) {
		return err
	}
	return sm.Save(SampleConfig())
}

// Save writes config through a temporary file so a crash never leaves a
// truncated settings file behind.
func (sm *SettingsManager) Save(config domain.Config) error {
	if err := sm.ensureDirectory(); err != nil {
		return err
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(sm.filePath), ".rdpgen-tmp-*")
	if err != nil {
		return err
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if err := os.Chmod(tmp.Name(), 0o600); err != nil {
		_ = tmp.Close()
		return err
	}
	if _, err := tmp.Write(append([]byte(settingsHeader), data...)); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}

	return os.Rename(tmp.Name(), sm.filePath)
}

func (sm *SettingsManager) ensureDirectory() error {
	dir := filepath.Dir(sm.filePath)
	return os.MkdirAll(dir, 0o700)
}
