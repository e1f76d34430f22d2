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
	"fmt"
	"os"
	"path/filepath"

	"github.com/Adembc/rdpgen/internal/core/domain"
	"github.com/Adembc/rdpgen/internal/core/ports"
)

const DocumentPerms = 0o644

type documentStore struct {
	fileSystem ports.FileSystem
	writer     *RDPWriter
}

// NewDocumentStore writes connection documents through fs.
func NewDocumentStore(fs ports.FileSystem) *documentStore {
	return &documentStore{
		fileSystem: fs,
		writer:     &RDPWriter{},
	}
}

// Save writes doc to dir/<host>.rdp, replacing any existing file.
func (s *documentStore) Save(dir string, host domain.Host, doc domain.Document) (string, int64, error) {
	path := filepath.Join(dir, host.FileName())

	f, err := s.fileSystem.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, DocumentPerms)
	if err != nil {
		return path, 0, fmt.Errorf("failed to open %s: %w", path, err)
	}

	n, err := s.writer.Write(f, doc)
	if err != nil {
		_ = f.Close()
		return path, n, fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return path, n, fmt.Errorf("failed to close %s: %w", path, err)
	}
	return path, n, nil
}

func (s *documentStore) HasEntries(dir string) (bool, error) {
	entries, err := s.fileSystem.ReadDir(dir)
	if err != nil {
		return false, err
	}
	return len(entries) > 0, nil
}

func (s *documentStore) CheckDir(dir string) error {
	info, err := s.fileSystem.Stat(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return domain.NewError(domain.CodeOutputDirInvalid, fmt.Sprintf("output directory %s does not exist", dir), err)
		}
		return domain.NewError(domain.CodeOutputDirInvalid, fmt.Sprintf("cannot access output directory %s", dir), err)
	}
	if !info.IsDir() {
		return domain.NewError(domain.CodeOutputDirInvalid, fmt.Sprintf("%s is not a directory", dir), nil)
	}
	return nil
}
