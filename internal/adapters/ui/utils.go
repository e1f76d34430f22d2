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

package ui

import (
	"fmt"
	"strings"

	"github.com/Adembc/rdpgen/internal/core/domain"
	"github.com/dustin/go-humanize"
	"github.com/mattn/go-runewidth"
)

const (
	MsgSuccess = "Operation completed successfully."
	MsgFailure = "Operation failed."
)

// cellPad pads a string with spaces so its display width is at least `width` cells.
func cellPad(s string, width int) string {
	w := runewidth.StringWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}

// Outcome is the user-facing verdict for a run.
func Outcome(res domain.Result) string {
	if res.Success() {
		return MsgSuccess
	}
	return MsgFailure
}

// FormatSummary renders a plain-text report of a run. When listFiles is set,
// every written file is listed.
func FormatSummary(res domain.Result, listFiles bool) string {
	const labelWidth = 11

	var b strings.Builder
	row := func(label, value string) {
		b.WriteString(cellPad(label+":", labelWidth))
		b.WriteString(" ")
		b.WriteString(value)
		b.WriteString("\n")
	}

	row("Run", res.RunID)
	row("State", string(res.State))
	row("Written", fmt.Sprintf("%d of %d", res.Written, res.Requested))
	row("Size", humanize.Bytes(uint64(res.Bytes)))
	if res.Success() != res.DirNonEmpty {
		row("Note", fmt.Sprintf("output directory non-empty: %t", res.DirNonEmpty))
	}

	if listFiles && len(res.Files) > 0 {
		b.WriteString("Files:\n")
		for _, f := range res.Files {
			b.WriteString("  ")
			b.WriteString(f)
			b.WriteString("\n")
		}
	}
	return b.String()
}
