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

package sheet

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Adembc/rdpgen/internal/core/domain"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

type csvReader struct{}

// ReadRows reads a CSV file. A UTF-8 or UTF-16 byte order mark selects the
// encoding; without one the input is taken as UTF-8. sheet is ignored.
func (r *csvReader) ReadRows(path, _ string) ([][]string, error) {
	// #nosec G304 -- path is the user-selected source file
	file, err := os.Open(path)
	if err != nil {
		return nil, domain.NewError(domain.CodeSourceNotFound, fmt.Sprintf("cannot open %s", path), err)
	}
	defer func() { _ = file.Close() }()

	return parseCSV(file)
}

// parseCSV returns one row per physical line, so blank lines between records
// come back as empty rows just as blank rows do in a workbook.
func parseCSV(in io.Reader) ([][]string, error) {
	decoder := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	reader := csv.NewReader(transform.NewReader(in, decoder))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	var rows [][]string
	next := 1
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, domain.NewError(domain.CodeSourceUnreadable, "malformed CSV", err)
		}

		start, _ := reader.FieldPos(0)
		for ; next < start; next++ {
			rows = append(rows, nil)
		}
		last := len(record) - 1
		line, _ := reader.FieldPos(last)
		next = line + strings.Count(record[last], "\n") + 1

		rows = append(rows, record)
	}
	return rows, nil
}
