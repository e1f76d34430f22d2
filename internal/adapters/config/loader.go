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
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Adembc/rdpgen/internal/core/domain"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const EnvPrefix = "RDPGEN_"

// Keys shared by the settings file, RDPGEN_* variables and flags.
const (
	KeySource    = "source"
	KeyColumn    = "column"
	KeyDomain    = "domain"
	KeyGateway   = "gateway"
	KeyOut       = "out"
	KeySheet     = "sheet"
	KeyOverrides = "overrides"
)

// Keys lists the scalar keys a flag may set.
var Keys = []string{KeySource, KeyColumn, KeyDomain, KeyGateway, KeyOut, KeySheet}

// Loader merges defaults, a settings file, the environment and flags, in
// increasing order of precedence.
type Loader struct {
	// FilePath is the settings file to read.
	FilePath string
	// Required makes a missing settings file an error.
	Required bool
}

// Load builds the run configuration. flagValues holds only flags the user
// set explicitly.
func (l Loader) Load(flagValues map[string]any) (domain.Config, error) {
	k := koanf.New(".")

	defaults := map[string]any{
		KeySheet: "",
	}
	if err := k.Load(confmap.Provider(defaults, "."), nil); err != nil {
		return domain.Config{}, loadError("defaults", err)
	}

	if err := l.loadFile(k); err != nil {
		return domain.Config{}, err
	}

	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil)
	if err != nil {
		return domain.Config{}, loadError("environment", err)
	}

	if len(flagValues) > 0 {
		if err := k.Load(confmap.Provider(flagValues, "."), nil); err != nil {
			return domain.Config{}, loadError("flags", err)
		}
	}

	cfg := domain.Config{
		SourcePath:   expandHome(k.String(KeySource)),
		ColumnName:   k.String(KeyColumn),
		DomainSuffix: k.String(KeyDomain),
		GatewayHost:  k.String(KeyGateway),
		OutputDir:    expandHome(k.String(KeyOut)),
		Sheet:        k.String(KeySheet),
	}
	if overrides := k.StringMap(KeyOverrides); len(overrides) > 0 {
		cfg.Overrides = overrides
	}
	return cfg, nil
}

func (l Loader) loadFile(k *koanf.Koanf) error {
	if l.FilePath == "" {
		return nil
	}
	if _, err := os.Stat(l.FilePath); err != nil {
		if os.IsNotExist(err) && !l.Required {
			return nil
		}
		return loadError(l.FilePath, err)
	}

	var parser koanf.Parser
	switch strings.ToLower(filepath.Ext(l.FilePath)) {
	case ".yaml", ".yml":
		parser = yaml.Parser()
	case ".toml":
		parser = toml.Parser()
	default:
		return loadError(l.FilePath, fmt.Errorf("unsupported settings format %q", filepath.Ext(l.FilePath)))
	}

	if err := k.Load(file.Provider(l.FilePath), parser); err != nil {
		return loadError(l.FilePath, err)
	}
	return nil
}

func loadError(source string, err error) error {
	return domain.NewError(domain.CodeConfigLoad, "failed to load settings from "+source, err)
}
