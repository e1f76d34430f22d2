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

package main

import (
	"errors"
	"fmt"

	"github.com/Adembc/rdpgen/internal/adapters/config"
	"github.com/Adembc/rdpgen/internal/adapters/data/file"
	"github.com/Adembc/rdpgen/internal/adapters/data/sheet"
	"github.com/Adembc/rdpgen/internal/adapters/flags"
	"github.com/Adembc/rdpgen/internal/adapters/ui"
	"github.com/Adembc/rdpgen/internal/core/domain"
	"github.com/Adembc/rdpgen/internal/core/ports"
	"github.com/Adembc/rdpgen/internal/core/services"
	"github.com/Adembc/rdpgen/internal/logger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const settingsFileName = "rdpgen.yaml"

// errRunFailed marks a run that completed without writing every file; the
// failure message has already been printed.
var errRunFailed = errors.New(ui.MsgFailure)

type cli struct {
	osConfig ports.ConfigProvider
	flags    *flags.CobraFlags
	log      *zap.SugaredLogger

	settingsPath string
	interactive  bool
	save         bool
	listFiles    bool
}

func newRootCmd(osConfig ports.ConfigProvider) *cobra.Command {
	c := &cli{osConfig: osConfig, log: zap.NewNop().Sugar()}

	rootCmd := &cobra.Command{
		Use:   ui.AppName,
		Short: "Generate Remote Desktop connection files from a spreadsheet column",
		Long: `rdpgen reads host names from one column of an .xlsx or .csv file and writes
one .rdp file per host into the output directory. Each file points at
<host><domain> through the given gateway.`,
		Example: `  rdpgen -s hosts.xlsx -c HOSTNAME -d .corp.local -g remote.corp.com -o ./rdp
  rdpgen --interactive`,
		Args:              cobra.NoArgs,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: c.initLogger,
		PersistentPostRun: func(*cobra.Command, []string) {
			_ = c.log.Sync()
		},
		RunE: c.runGenerate,
	}
	c.flags = flags.NewCobraFlags(rootCmd)

	rootCmd.Flags().StringP(config.KeySource, "s", "", "Spreadsheet with the host names (.xlsx, .xlsm or .csv)")
	rootCmd.Flags().StringP(config.KeyColumn, "c", "", "Header of the column holding the host names (exact match)")
	rootCmd.Flags().StringP(config.KeyDomain, "d", "", "Domain suffix appended to every host, e.g. .corp.local")
	rootCmd.Flags().StringP(config.KeyGateway, "g", "", "Remote Desktop gateway host name")
	rootCmd.Flags().StringP(config.KeyOut, "o", "", "Existing directory the .rdp files are written to")
	rootCmd.Flags().String(config.KeySheet, "", "Worksheet to read from .xlsx files (default: first sheet)")
	rootCmd.PersistentFlags().StringVar(&c.settingsPath, "config", "", "Settings file, YAML or TOML (default: <config dir>/"+settingsFileName+")")
	rootCmd.Flags().BoolVarP(&c.interactive, "interactive", "i", false, "Collect the parameters in an interactive form")
	rootCmd.Flags().BoolVar(&c.save, "save", false, "Save the parameters of a successful run to the settings file")
	rootCmd.Flags().BoolVarP(&c.listFiles, "list", "l", false, "List every written file")

	rootCmd.AddCommand(c.newInitConfigCmd(), c.newTemplateCmd(), newVersionCmd())
	return rootCmd
}

func (c *cli) initLogger(*cobra.Command, []string) error {
	logFile := c.flags.GetFlag("log-file")
	if logFile == "" {
		logFile = c.osConfig.GetEnvOrDefault("RDPGEN_LOG_FILE", c.osConfig.LogPath("rdpgen.log"))
	}

	log, err := logger.New("RDPGEN", logFile, c.flags.IsDebug())
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	c.log = log
	return nil
}

func (c *cli) loader() config.Loader {
	if c.settingsPath != "" {
		return config.Loader{FilePath: c.settingsPath, Required: true}
	}
	return config.Loader{FilePath: c.osConfig.ConfigPath(settingsFileName)}
}

func (c *cli) newService() ports.GeneratorService {
	return services.NewGeneratorService(c.log, sheet.NewExtractor(c.log), file.NewDocumentStore(file.NewOSFileSystem()))
}

func (c *cli) runGenerate(cmd *cobra.Command, _ []string) error {
	loader := c.loader()
	cfg, err := loader.Load(flags.Changed(cmd, config.Keys...))
	if err != nil {
		return err
	}

	svc := c.newService()

	var res domain.Result
	if c.interactive {
		cfg, res, err = ui.NewTUI(c.log, svc, cfg).Run(cmd.Context())
		if errors.Is(err, ui.ErrCancelled) {
			c.log.Infow("interactive run cancelled")
			return nil
		}
	} else {
		res, err = svc.Generate(cmd.Context(), cfg)
	}
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	_, _ = fmt.Fprintln(out, ui.Outcome(res))
	_, _ = fmt.Fprint(out, ui.FormatSummary(res, c.listFiles))
	if !res.Success() {
		return errRunFailed
	}

	if c.save {
		sm := file.NewSettingsManager(loader.FilePath)
		if err := sm.Save(cfg.Normalize()); err != nil {
			c.log.Warnw("failed to save settings", "path", sm.Path(), "error", err)
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: could not save settings to %s: %v\n", sm.Path(), err)
		}
	}
	return nil
}

func (c *cli) newInitConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init-config [path]",
		Short: "Write a sample settings file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := c.loader().FilePath
			if len(args) == 1 {
				path = args[0]
			}
			sm := file.NewSettingsManager(path)
			if err := sm.Init(); err != nil {
				return err
			}
			c.log.Infow("sample settings written", "path", sm.Path())
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Wrote sample settings to %s\n", sm.Path())
			return nil
		},
	}
}

func (c *cli) newTemplateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "template",
		Short: "Print the connection template with the configured overrides",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := c.loader().Load(nil)
			if err != nil {
				return err
			}
			doc, err := c.newService().Preview(cfg.Normalize().Overrides, "<FQDN>", "<GATEWAY>")
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), doc.String())
			return err
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s %s (%s)\n", ui.AppName, version, gitCommit)
		},
	}
}
