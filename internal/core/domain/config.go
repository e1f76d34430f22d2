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

package domain

import (
	"strings"
)

// Config holds everything one generation run needs. It is built once,
// normalized, validated and then passed by value into the pipeline.
type Config struct {
	// SourcePath is the spreadsheet (.xlsx or .csv) holding the host names.
	SourcePath string `yaml:"source"`

	// ColumnName is the header of the column that lists the hosts.
	ColumnName string `yaml:"column"`

	// DomainSuffix is appended verbatim to every host, e.g. ".corp.local".
	DomainSuffix string `yaml:"domain"`

	// GatewayHost is written to the gatewayhostname line of every file.
	GatewayHost string `yaml:"gateway"`

	// OutputDir is the existing directory the .rdp files are written to.
	OutputDir string `yaml:"out"`

	// Sheet selects a worksheet for .xlsx sources; empty means the first one.
	Sheet string `yaml:"sheet,omitempty"`

	// Overrides replaces the value of template settings by name.
	Overrides map[string]string `yaml:"overrides,omitempty"`
}

// Normalize returns a copy of c with surrounding whitespace trimmed from
// every field.
func (c Config) Normalize() Config {
	n := Config{
		SourcePath:   strings.TrimSpace(c.SourcePath),
		ColumnName:   strings.TrimSpace(c.ColumnName),
		DomainSuffix: strings.TrimSpace(c.DomainSuffix),
		GatewayHost:  strings.TrimSpace(c.GatewayHost),
		OutputDir:    strings.TrimSpace(c.OutputDir),
		Sheet:        strings.TrimSpace(c.Sheet),
	}
	if len(c.Overrides) > 0 {
		n.Overrides = make(map[string]string, len(c.Overrides))
		for k, v := range c.Overrides {
			n.Overrides[strings.TrimSpace(k)] = strings.TrimSpace(v)
		}
	}
	return n
}

// Validate reports the first required field that is empty.
func (c Config) Validate() error {
	required := []struct {
		name  string
		value string
	}{
		{"source", c.SourcePath},
		{"column", c.ColumnName},
		{"domain", c.DomainSuffix},
		{"gateway", c.GatewayHost},
		{"out", c.OutputDir},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			return NewError(CodeEmptyRequiredInput, f.name+" is required", nil)
		}
	}
	return nil
}
