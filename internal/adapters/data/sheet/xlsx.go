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
	"errors"
	"fmt"
	"io/fs"

	"github.com/Adembc/rdpgen/internal/core/domain"
	"github.com/xuri/excelize/v2"
)

type xlsxReader struct{}

// ReadRows reads sheet, or the first sheet when sheet is empty.
func (r *xlsxReader) ReadRows(path, sheet string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		// Any *fs.PathError means the file itself could not be opened; zip
		// and XML errors mean it is not a readable workbook.
		var pathErr *fs.PathError
		if errors.As(err, &pathErr) {
			return nil, domain.NewError(domain.CodeSourceNotFound, fmt.Sprintf("cannot open %s", path), err)
		}
		return nil, domain.NewError(domain.CodeSourceUnreadable, fmt.Sprintf("cannot read workbook %s", path), err)
	}
	defer func() { _ = f.Close() }()

	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, domain.NewError(domain.CodeSourceUnreadable, fmt.Sprintf("%s has no worksheets", path), nil)
		}
		sheet = sheets[0]
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, domain.NewError(domain.CodeSourceUnreadable, fmt.Sprintf("cannot read sheet %q of %s", sheet, path), err)
	}
	return rows, nil
}
