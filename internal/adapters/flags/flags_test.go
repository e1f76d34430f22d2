package flags

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCobraFlags(t *testing.T) {
	root := &cobra.Command{Use: "rdpgen", RunE: func(*cobra.Command, []string) error { return nil }}
	root.Flags().String("source", "", "")
	root.Flags().String("column", "", "")
	root.Flags().String("gateway", "default-gw", "")
	f := NewCobraFlags(root)

	root.SetArgs([]string{"--debug", "--log-file", "/tmp/x.log", "--source", "hosts.xlsx"})
	require.NoError(t, root.Execute())

	assert.True(t, f.IsDebug())
	assert.Equal(t, "/tmp/x.log", f.GetFlag("log-file"))
	assert.Equal(t, "hosts.xlsx", f.GetFlag("source"))

	changed := Changed(root, "source", "column", "gateway", "missing")
	assert.Equal(t, map[string]any{"source": "hosts.xlsx"}, changed)
}
