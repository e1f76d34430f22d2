package ui

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/Adembc/rdpgen/internal/core/domain"
	"github.com/Adembc/rdpgen/internal/core/ports"
)

type mockGeneratorService struct {
	ports.GeneratorService
	calls []domain.Config
	res   domain.Result
	err   error
}

func (m *mockGeneratorService) Generate(_ context.Context, cfg domain.Config) (domain.Result, error) {
	m.calls = append(m.calls, cfg)
	return m.res, m.err
}

func newTestTUI(t *testing.T, svc *mockGeneratorService, initial domain.Config) *tui {
	t.Helper()
	return NewTUI(zaptest.NewLogger(t).Sugar(), svc, initial)
}

func fullInput() domain.Config {
	return domain.Config{
		SourcePath:   " hosts.xlsx",
		ColumnName:   "HOSTNAME ",
		DomainSuffix: ".corp.local",
		GatewayHost:  "gw.corp.com",
		OutputDir:    "/out",
		Overrides:    map[string]string{"desktopwidth": "2560"},
	}
}

func TestInputFormRoundTrip(t *testing.T) {
	form := NewInputForm(fullInput())
	assert.Equal(t, fullInput(), form.Config())

	form.SetText(fieldGateway, "other-gw")
	assert.Equal(t, "other-gw", form.Config().GatewayHost)
}

func TestHandleSubmit_EmptyFieldKeepsForm(t *testing.T) {
	svc := &mockGeneratorService{}
	ui := newTestTUI(t, svc, domain.Config{})

	ui.handleSubmit(domain.Config{SourcePath: "hosts.xlsx", ColumnName: "  "})

	assert.Empty(t, svc.calls)
	_, _, err := ui.outcome()
	assert.ErrorIs(t, err, ErrCancelled)
}

func TestHandleSubmit_RunsNormalizedConfig(t *testing.T) {
	svc := &mockGeneratorService{res: domain.Result{Requested: 2, Written: 2, State: domain.StateCompleted, DirNonEmpty: true}}
	ui := newTestTUI(t, svc, fullInput())

	ui.handleSubmit(ui.form.Config())

	require.Len(t, svc.calls, 1)
	assert.Equal(t, "hosts.xlsx", svc.calls[0].SourcePath)
	assert.Equal(t, "HOSTNAME", svc.calls[0].ColumnName)
	assert.Equal(t, map[string]string{"desktopwidth": "2560"}, svc.calls[0].Overrides)

	cfg, res, err := ui.outcome()
	require.NoError(t, err)
	assert.True(t, res.Success())
	assert.Equal(t, "/out", cfg.OutputDir)
	assert.Contains(t, ui.details.GetText(true), MsgSuccess)
}

func TestHandleSubmit_ExtractionErrorReturnsToForm(t *testing.T) {
	svc := &mockGeneratorService{err: domain.NewError(domain.CodeColumnNotFound, "missing", nil)}
	ui := newTestTUI(t, svc, fullInput())

	ui.handleSubmit(fullInput())

	_, _, err := ui.outcome()
	assert.ErrorIs(t, err, ErrCancelled)
}

func TestHandleSubmit_WriteFailureShowsResult(t *testing.T) {
	writeErr := domain.NewError(domain.CodeWriteFailure, `writing connection file for "B"`, errors.New("disk full"))
	svc := &mockGeneratorService{
		res: domain.Result{Requested: 3, Written: 1, State: domain.StateFailed, DirNonEmpty: true},
		err: writeErr,
	}
	ui := newTestTUI(t, svc, fullInput())

	ui.handleSubmit(fullInput())

	_, res, err := ui.outcome()
	assert.ErrorIs(t, err, domain.ErrWriteFailure)
	assert.Equal(t, 1, res.Written)
	text := ui.details.GetText(true)
	assert.Contains(t, text, MsgFailure)
	assert.Contains(t, text, "disk full")
}
