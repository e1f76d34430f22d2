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
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/Adembc/rdpgen/internal/core/domain"
	"go.uber.org/zap"
)

// rowReader returns every row of a source, header first.
type rowReader interface {
	ReadRows(path, sheet string) ([][]string, error)
}

// Extractor reads a named column from .xlsx or .csv files.
type Extractor struct {
	readers map[string]rowReader
	logger  *zap.SugaredLogger
}

func NewExtractor(logger *zap.SugaredLogger) *Extractor {
	xlsx := &xlsxReader{}
	return &Extractor{
		readers: map[string]rowReader{
			".xlsx": xlsx,
			".xlsm": xlsx,
			".csv":  &csvReader{},
		},
		logger: logger,
	}
}

// ExtractColumn returns the cells under the header equal to columnName, in
// row order. Header matching is exact and case-sensitive. Blank rows before
// the last data row yield "" in both workbooks and CSV files; trailing blank
// rows are dropped.
func (e *Extractor) ExtractColumn(ctx context.Context, sourcePath, sheet, columnName string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	ext := strings.ToLower(filepath.Ext(sourcePath))
	reader, ok := e.readers[ext]
	if !ok {
		return nil, domain.NewError(domain.CodeUnsupportedSource,
			fmt.Sprintf("unsupported source format %q (want .xlsx, .xlsm or .csv)", ext), nil)
	}

	rows, err := reader.ReadRows(sourcePath, sheet)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, domain.NewError(domain.CodeSourceUnreadable, fmt.Sprintf("%s has no header row", sourcePath), nil)
	}

	values, err := columnValues(rows[0], trimTrailingEmptyRows(rows[1:]), columnName)
	if err != nil {
		return nil, err
	}

	e.logger.Debugw("column extracted", "source", sourcePath, "column", columnName, "rows", len(values))
	return values, nil
}

func columnValues(header []string, rows [][]string, columnName string) ([]string, error) {
	idx := -1
	for i, h := range header {
		if h == columnName {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, domain.NewError(domain.CodeColumnNotFound,
			fmt.Sprintf("column %q not found; available: %s", columnName, quoteAll(header)), nil)
	}

	values := make([]string, 0, len(rows))
	for _, row := range rows {
		if idx < len(row) {
			values = append(values, row[idx])
		} else {
			values = append(values, "")
		}
	}
	return values, nil
}

// trimTrailingEmptyRows drops blank rows after the last row holding data.
func trimTrailingEmptyRows(rows [][]string) [][]string {
	end := len(rows)
	for end > 0 && isEmptyRow(rows[end-1]) {
		end--
	}
	return rows[:end]
}

func isEmptyRow(row []string) bool {
	for _, cell := range row {
		if cell != "" {
			return false
		}
	}
	return true
}

func quoteAll(values []string) string {
	quoted := make([]string, 0, len(values))
	for _, v := range values {
		quoted = append(quoted, fmt.Sprintf("%q", v))
	}
	return strings.Join(quoted, ", ")
}
