// Package cli implements the cutecosmic command, which shows what the
// native theme bridge hands to toolkits.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kyleking/cutecosmic/internal/bridge"
	"github.com/kyleking/cutecosmic/internal/config"
	"github.com/kyleking/cutecosmic/internal/logging"
	"github.com/kyleking/cutecosmic/internal/theme"
)

// Build info, set via -ldflags at build time.
var (
	Version   = "dev"
	CommitID  = "unknown"
	BuildDate = "unknown"
)

// app carries state shared by the subcommands once settings are loaded.
type app struct {
	v        *viper.Viper
	settings config.Settings
	mode     theme.Mode
	builder  *bridge.Builder
}

// Execute runs the root command with os.Args.
func Execute() error {
	return NewRootCommand().Execute()
}

// NewRootCommand builds the command tree. Flags are bound into the same viper
// instance that reads CUTECOSMIC_* variables and the settings file, so a flag
// set on the command line wins over both.
func NewRootCommand() *cobra.Command {
	a := &app{v: config.NewViper()}

	cmd := &cobra.Command{
		Use:   "cutecosmic",
		Short: "Inspect the COSMIC theme as native toolkits receive it",
		Long: `cutecosmic reads the COSMIC desktop theme and toolkit settings and shows the
palette, fonts and flags that libcutecosmic exports to native toolkits.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Name() == "version" {
				return nil
			}

			return a.init()
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return logging.Shutdown()
		},
	}

	flags := cmd.PersistentFlags()
	flags.String("config-dir", "", "cosmic-config root (default $XDG_CONFIG_HOME/cosmic)")
	flags.String("log-file", "", "write logs to this file")
	flags.String("log-level", "info", "log level: debug, info, warn, error")
	flags.StringP("mode", "m", "system", "theme mode: system, dark or light")

	for key, name := range map[string]string{
		"config_dir": "config-dir",
		"log.file":   "log-file",
		"log.level":  "log-level",
		"mode":       "mode",
	} {
		if err := a.v.BindPFlag(key, flags.Lookup(name)); err != nil {
			panic(fmt.Sprintf("bind flag %s: %v", name, err))
		}
	}

	cmd.AddCommand(
		newDumpCommand(a),
		newColorCommand(a),
		newPreviewCommand(a),
		newVersionCommand(),
	)

	return cmd
}

func (a *app) init() error {
	settings, err := config.LoadSettings(a.v)
	if err != nil {
		return err
	}

	logging.Init(logging.FromSettings(settings.Log))

	mode, err := theme.ParseMode(settings.Mode)
	if err != nil {
		return err
	}

	cache := bridge.NewCache(theme.NewConfigProvider(settings.Store()), nil)
	cache.Load(mode)

	a.settings = settings
	a.mode = mode
	a.builder = bridge.NewBuilder(cache)

	logging.Debug("settings loaded", "mode", mode.String(), "config_dir", settings.Store().UserDir())

	return nil
}
