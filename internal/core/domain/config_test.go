package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigNormalize(t *testing.T) {
	cfg := Config{
		SourcePath:   " hosts.xlsx ",
		ColumnName:   "HOSTNAME\t",
		DomainSuffix: ".corp.local ",
		GatewayHost:  "gw.corp.com\n",
		OutputDir:    " /out",
		Overrides:    map[string]string{" desktopwidth ": " 2560 "},
	}

	n := cfg.Normalize()
	assert.Equal(t, "hosts.xlsx", n.SourcePath)
	assert.Equal(t, "HOSTNAME", n.ColumnName)
	assert.Equal(t, ".corp.local", n.DomainSuffix)
	assert.Equal(t, "gw.corp.com", n.GatewayHost)
	assert.Equal(t, "/out", n.OutputDir)
	assert.Equal(t, map[string]string{"desktopwidth": "2560"}, n.Overrides)

	// the receiver is left untouched
	assert.Equal(t, " hosts.xlsx ", cfg.SourcePath)
	require.NoError(t, n.Validate())
}

func TestConfigValidate(t *testing.T) {
	err := Config{SourcePath: "a.csv", ColumnName: "H", DomainSuffix: ".x", GatewayHost: "gw"}.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrEmptyRequiredInput))
	assert.False(t, errors.Is(err, ErrColumnNotFound))
	assert.EqualError(t, err, "[EMPTY_REQUIRED_INPUT] out is required")
}

func TestErrorUnwrap(t *testing.T) {
	cause := errors.New("disk full")
	err := NewError(CodeWriteFailure, "writing", cause)
	assert.ErrorIs(t, err, cause)
	assert.ErrorIs(t, err, ErrWriteFailure)
	assert.EqualError(t, err, "[WRITE_FAILURE] writing: disk full")
	assert.Equal(t, CodeWriteFailure, CodeOf(err))
	assert.Equal(t, ErrorCode(""), CodeOf(cause))
}
