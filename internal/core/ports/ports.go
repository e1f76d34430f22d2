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

package ports

import (
	"context"
	"io"
	"os"

	"github.com/Adembc/rdpgen/internal/core/domain"
)

// HostSource reads one named column of a tabular file, in row order.
type HostSource interface {
	ExtractColumn(ctx context.Context, sourcePath, sheet, columnName string) ([]string, error)
}

// DocumentStore persists rendered connection documents.
type DocumentStore interface {
	// Save writes doc for host into dir and returns the path and byte count.
	Save(dir string, host domain.Host, doc domain.Document) (string, int64, error)
	// HasEntries reports whether dir contains at least one entry.
	HasEntries(dir string) (bool, error)
	// CheckDir verifies dir exists and is a directory.
	CheckDir(dir string) error
}

// FileSystem is the subset of file operations the store relies on.
type FileSystem interface {
	OpenFile(name string, flag int, perm os.FileMode) (io.WriteCloser, error)
	Stat(name string) (os.FileInfo, error)
	ReadDir(name string) ([]os.DirEntry, error)
}

// GeneratorService runs the spreadsheet to connection files pipeline.
type GeneratorService interface {
	Generate(ctx context.Context, cfg domain.Config) (domain.Result, error)
	Preview(overrides map[string]string, fqdn, gateway string) (domain.Document, error)
}

// ConfigProvider resolves application paths and environment values.
type ConfigProvider interface {
	ConfigPath(elems ...string) string
	LogPath(filename string) string
	GetEnvOrDefault(envVar, defaultValue string) string
}

// FlagsProvider exposes global command-line flags.
type FlagsProvider interface {
	IsDebug() bool
	GetFlag(name string) string
}
