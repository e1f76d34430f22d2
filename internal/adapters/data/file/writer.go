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
	"bufio"
	"fmt"
	"io"

	"github.com/Adembc/rdpgen/internal/core/domain"
)

// RDPWriter serializes a connection document, one "name:type:value" line
// per setting.
type RDPWriter struct{}

func (w *RDPWriter) Write(writer io.Writer, doc domain.Document) (int64, error) {
	bufWriter := bufio.NewWriter(writer)

	var total int64
	for _, setting := range doc {
		n, err := fmt.Fprintf(bufWriter, "%s:%s:%s\n", setting.Name, setting.Type, setting.Value)
		total += int64(n)
		if err != nil {
			return total, err
		}
	}

	if err := bufWriter.Flush(); err != nil {
		return total, err
	}
	return total, nil
}
