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

package flags

import (
	"github.com/spf13/cobra"
)

type CobraFlags struct {
	rootCmd *cobra.Command
}

func NewCobraFlags(rootCmd *cobra.Command) *CobraFlags {
	g := &CobraFlags{rootCmd: rootCmd}
	g.globalFlags()
	return g
}

// globalFlags registers flags shared by every subcommand.
func (g *CobraFlags) globalFlags() {
	g.rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
	g.rootCmd.PersistentFlags().String("log-file", "", "Log file path (default: <config dir>/logs/rdpgen.log)")
}

func (c *CobraFlags) IsDebug() bool {
	flag, _ := c.rootCmd.PersistentFlags().GetBool("debug")
	return flag
}

func (c *CobraFlags) GetFlag(name string) string {
	if f := c.rootCmd.PersistentFlags().Lookup(name); f != nil {
		return f.Value.String()
	}
	value, _ := c.rootCmd.Flags().GetString(name)
	return value
}

// Changed returns the string flags among names that were set explicitly on
// cmd, keyed by name.
func Changed(cmd *cobra.Command, names ...string) map[string]any {
	values := make(map[string]any)
	for _, name := range names {
		if !cmd.Flags().Changed(name) {
			continue
		}
		if value, err := cmd.Flags().GetString(name); err == nil {
			values[name] = value
		}
	}
	return values
}
