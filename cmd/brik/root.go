package main

import (
	"github.com/spf13/cobra"

	"github.com/brikdesigns/brik/internal/config"
	"github.com/brikdesigns/brik/internal/logger"
)

type rootFlags struct {
	verbose    bool
	configPath string
}

func newRootCmd(log *logger.Logger) *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "brik",
		Short:         "Brik is a themed terminal design system with an interactive component explorer",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// With no subcommand, launch the explorer.
			if len(args) == 0 {
				return runGallery(cmd, flags, galleryOptions{}, log)
			}
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().StringVar(&flags.configPath, "config", "", "Path to the settings file")

	cmd.AddCommand(newGalleryCmd(flags, log))
	cmd.AddCommand(newTokensCmd(flags))
	cmd.AddCommand(newThemesCmd(flags, log))
	cmd.AddCommand(newWebflowCmd(flags, log))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// settingsPath resolves the settings file location, preferring the --config
// flag over the per-user default.
func settingsPath(flags *rootFlags) (string, error) {
	if flags.configPath != "" {
		return flags.configPath, nil
	}
	return config.DefaultPath()
}

// loadSettings reads the settings file named by the root flags.
func loadSettings(flags *rootFlags) (config.Settings, string, error) {
	path, err := settingsPath(flags)
	if err != nil {
		return config.Settings{}, "", err
	}
	settings, err := config.Load(path)
	if err != nil {
		return config.Settings{}, "", err
	}
	return settings, path, nil
}

// commandLogger derives a logger honouring the --verbose flag.
func commandLogger(flags *rootFlags, log *logger.Logger) *logger.Logger {
	if !flags.verbose {
		return log
	}
	verbose, err := logger.New(logger.Options{Level: "debug", HumanReadable: true})
	if err != nil {
		return log
	}
	return verbose
}
