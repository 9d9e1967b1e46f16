package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/brikdesigns/brik/internal/config"
	"github.com/brikdesigns/brik/internal/logger"
	"github.com/brikdesigns/brik/internal/theme"
)

func newThemesCmd(flags *rootFlags, log *logger.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "themes",
		Short: "List the built-in themes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runThemesList(cmd, flags)
		},
	}

	cmd.AddCommand(newThemesSetCmd(flags, log))

	return cmd
}

func runThemesList(cmd *cobra.Command, flags *rootFlags) error {
	settings, _, err := loadSettings(flags)
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	for _, name := range theme.Names() {
		marker := " "
		if name == settings.Theme {
			marker = "*"
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", marker, name)
	}
	return nil
}

func newThemesSetCmd(flags *rootFlags, log *logger.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "set <name>",
		Short: "Select and persist the active theme",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runThemesSet(cmd, flags, args[0], log)
		},
	}
}

func runThemesSet(cmd *cobra.Command, flags *rootFlags, name string, log *logger.Logger) error {
	path, err := settingsPath(flags)
	if err != nil {
		return err
	}

	manager := theme.NewManager(theme.Light(), config.FileStore{Path: path}, commandLogger(flags, log))
	if err := manager.SetNamed(name); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Theme set to %s\n", name)
	return nil
}
