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
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

type ResultDetails struct {
	*tview.TextView
}

func NewResultDetails() *ResultDetails {
	details := &ResultDetails{
		TextView: tview.NewTextView(),
	}
	details.build()
	return details
}

func (rd *ResultDetails) build() {
	rd.TextView.SetDynamicColors(true).
		SetWrap(true).
		SetBorder(true).
		SetTitle("Result").
		SetBorderColor(tcell.Color238).
		SetTitleColor(tcell.Color250)
}

func (rd *ResultDetails) UpdateResult(cfg domain.Config, res domain.Result, err error) {
	var text strings.Builder

	color := "#A0FFA0"
	if err != nil || !res.Success() {
		color = "#FF8080"
	}
	text.WriteString(fmt.Sprintf("[%s::b]%s[-:-:-]\n\n", color, Outcome(res)))

	text.WriteString(fmt.Sprintf("Source: [white]%s[-]\nColumn: [white]%s[-]\n",
		tview.Escape(cfg.SourcePath), tview.Escape(cfg.ColumnName)))
	text.WriteString(fmt.Sprintf("Domain: [white]%s[-]\nGateway: [white]%s[-]\n",
		tview.Escape(cfg.DomainSuffix), tview.Escape(cfg.GatewayHost)))
	text.WriteString(fmt.Sprintf("Output: [white]%s[-]\n\n", tview.Escape(cfg.OutputDir)))

	text.WriteString(tview.Escape(FormatSummary(res, true)))
	if err != nil {
		text.WriteString(fmt.Sprintf("\n[#FF8080]Error:[-] %s\n", tview.Escape(err.Error())))
	}

	text.WriteString("\n[::b]Commands:[-]\n  c: Copy output directory\n  q: Quit")
	rd.TextView.SetText(text.String())
}
