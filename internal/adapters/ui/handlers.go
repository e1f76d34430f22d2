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
	"context"
	"errors"
	"fmt"

	"github.com/Adembc/rdpgen/internal/core/domain"
	"github.com/Adembc/rdpgen/internal/core/ports"
	"github.com/atotto/clipboard"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"go.uber.org/zap"
)

const AppName = "rdpgen"

// ErrCancelled is returned by Run when the user leaves the form.
var ErrCancelled = errors.New("cancelled by user")

type tui struct {
	app     *tview.Application
	form    *InputForm
	details *ResultDetails
	service ports.GeneratorService
	logger  *zap.SugaredLogger
	ctx     context.Context

	cfg    domain.Config
	result *domain.Result
	err    error
}

// NewTUI builds the interactive input form, prefilled with initial.
func NewTUI(logger *zap.SugaredLogger, service ports.GeneratorService, initial domain.Config) *tui {
	t := &tui{
		app:     tview.NewApplication(),
		details: NewResultDetails(),
		service: service,
		logger:  logger,
		ctx:     context.Background(),
		cfg:     initial,
	}
	t.form = NewInputForm(initial).
		OnSubmit(t.handleSubmit).
		OnCancel(t.handleQuit)
	t.details.SetInputCapture(t.handleResultKeys)
	return t
}

// Run shows the form until a batch has run or the user cancels, and
// returns the outcome of that batch.
func (t *tui) Run(ctx context.Context) (domain.Config, domain.Result, error) {
	t.ctx = ctx
	t.app.SetRoot(t.form, true).EnableMouse(true)
	if err := t.app.Run(); err != nil {
		return t.cfg, domain.Result{}, err
	}
	return t.outcome()
}

func (t *tui) outcome() (domain.Config, domain.Result, error) {
	if t.result == nil {
		return t.cfg, domain.Result{}, ErrCancelled
	}
	return t.cfg, *t.result, t.err
}

// =============================================================================
// Event Handlers (handle user input/events)
// =============================================================================

func (t *tui) handleSubmit(raw domain.Config) {
	cfg := raw.Normalize()
	if err := cfg.Validate(); err != nil {
		// Stay on the form until every required field is filled.
		t.logger.Debugw("form rejected", "error", err)
		t.showErrorModal(fmt.Sprintf("Missing input: %v", err))
		return
	}

	t.cfg = cfg
	res, err := t.service.Generate(t.ctx, cfg)
	t.result = &res
	t.err = err
	if err != nil && !res.Started() {
		// Nothing was written; let the user correct the input.
		t.showErrorModal(err.Error())
		t.result = nil
		return
	}

	t.details.UpdateResult(cfg, res, err)
	t.app.SetRoot(t.details, true)
}

func (t *tui) handleResultKeys(event *tcell.EventKey) *tcell.EventKey {
	if event.Key() == tcell.KeyEscape {
		t.handleQuit()
		return nil
	}
	switch event.Rune() {
	case 'q':
		t.handleQuit()
		return nil
	case 'c':
		t.handleCopyOutputDir()
		return nil
	}
	return event
}

func (t *tui) handleCopyOutputDir() {
	if err := clipboard.WriteAll(t.cfg.OutputDir); err != nil {
		t.logger.Warnw("failed to copy to clipboard", "error", err)
		t.details.SetTitle("Result (copy failed)")
		return
	}
	t.details.SetTitle("Result (copied " + t.cfg.OutputDir + ")")
}

func (t *tui) handleQuit() {
	t.app.Stop()
}

// =============================================================================
// UI Display Functions (show UI elements/modals)
// =============================================================================

func (t *tui) showErrorModal(msg string) {
	modal := tview.NewModal().
		SetText(msg).
		AddButtons([]string{"Close"}).
		SetDoneFunc(func(buttonIndex int, buttonLabel string) { t.returnToForm() })
	t.app.SetRoot(modal, true)
}

func (t *tui) returnToForm() {
	t.app.SetRoot(t.form, true)
}
