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
	"github.com/Adembc/rdpgen/internal/core/domain"
	"github.com/rivo/tview"
)

const (
	fieldSource  = "Spreadsheet (.xlsx/.csv):"
	fieldColumn  = "Host name column:"
	fieldDomain  = "Domain suffix:"
	fieldGateway = "Gateway host:"
	fieldOut     = "Output directory:"
	fieldSheet   = "Sheet (optional):"

	fieldWidth = 50
)

// InputForm collects the generation parameters.
type InputForm struct {
	*tview.Form
	overrides map[string]string
	onSubmit  func(domain.Config)
	onCancel  func()
}

func NewInputForm(initial domain.Config) *InputForm {
	f := &InputForm{Form: tview.NewForm(), overrides: initial.Overrides}
	f.build(initial)
	return f
}

func (f *InputForm) build(initial domain.Config) {
	f.Form.SetBorder(true).
		SetTitle(" " + AppName + " ").
		SetTitleAlign(tview.AlignLeft)

	f.Form.AddInputField(fieldSource, initial.SourcePath, fieldWidth, nil, nil)
	f.Form.AddInputField(fieldColumn, initial.ColumnName, fieldWidth, nil, nil)
	f.Form.AddInputField(fieldDomain, initial.DomainSuffix, fieldWidth, nil, nil)
	f.Form.AddInputField(fieldGateway, initial.GatewayHost, fieldWidth, nil, nil)
	f.Form.AddInputField(fieldOut, initial.OutputDir, fieldWidth, nil, nil)
	f.Form.AddInputField(fieldSheet, initial.Sheet, fieldWidth, nil, nil)

	f.Form.AddButton("Generate", func() {
		if f.onSubmit != nil {
			f.onSubmit(f.Config())
		}
	})
	f.Form.AddButton("Cancel", func() {
		if f.onCancel != nil {
			f.onCancel()
		}
	})
	f.Form.SetCancelFunc(func() {
		if f.onCancel != nil {
			f.onCancel()
		}
	})
}

func (f *InputForm) OnSubmit(fn func(domain.Config)) *InputForm {
	f.onSubmit = fn
	return f
}

func (f *InputForm) OnCancel(fn func()) *InputForm {
	f.onCancel = fn
	return f
}

// Config returns the form values as entered, untrimmed.
func (f *InputForm) Config() domain.Config {
	return domain.Config{
		SourcePath:   f.text(fieldSource),
		ColumnName:   f.text(fieldColumn),
		DomainSuffix: f.text(fieldDomain),
		GatewayHost:  f.text(fieldGateway),
		OutputDir:    f.text(fieldOut),
		Sheet:        f.text(fieldSheet),
		Overrides:    f.overrides,
	}
}

// SetText sets the value of a field by label; used by tests and defaults.
func (f *InputForm) SetText(label, value string) {
	if field, ok := f.Form.GetFormItemByLabel(label).(*tview.InputField); ok {
		field.SetText(value)
	}
}

func (f *InputForm) text(label string) string {
	if field, ok := f.Form.GetFormItemByLabel(label).(*tview.InputField); ok {
		return field.GetText()
	}
	return ""
}
