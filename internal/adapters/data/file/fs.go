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
	"io"
	"os"

	"github.com/Adembc/rdpgen/internal/core/ports"
)

type osFileSystem struct{}

// NewOSFileSystem returns a FileSystem backed by the os package.
func NewOSFileSystem() ports.FileSystem {
	return osFileSystem{}
}

func (osFileSystem) OpenFile(name string, flag int, perm os.FileMode) (io.WriteCloser, error) {
	// #nosec G304 -- name is built from the configured output directory
	return os.OpenFile(name, flag, perm)
}

func (osFileSystem) Stat(name string) (os.FileInfo, error) {
	return os.Stat(name)
}

func (osFileSystem) ReadDir(name string) ([]os.DirEntry, error) {
	return os.ReadDir(name)
}
