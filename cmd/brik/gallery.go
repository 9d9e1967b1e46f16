package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/brikdesigns/brik/internal/config"
	"github.com/brikdesigns/brik/internal/explorer"
	"github.com/brikdesigns/brik/internal/logger"
	"github.com/brikdesigns/brik/internal/theme"
)

type galleryOptions struct {
	reducedMotion bool
}

func newGalleryCmd(flags *rootFlags, log *logger.Logger) *cobra.Command {
	opts := galleryOptions{}

	cmd := &cobra.Command{
		Use:   "gallery",
		Short: "Launch the interactive component explorer",
		Long:  `Browse every Brik component with live theming, scroll-reveal and parallax animation.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGallery(cmd, flags, opts, log)
		},
	}

	cmd.Flags().BoolVar(&opts.reducedMotion, "reduced-motion", false, "Disable reveal and parallax animation")

	return cmd
}

func runGallery(cmd *cobra.Command, flags *rootFlags, opts galleryOptions, log *logger.Logger) error {
	log = commandLogger(flags, log)

	settings, path, err := loadSettings(flags)
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	manager := theme.NewManager(theme.Light(), config.FileStore{Path: path}, log)
	if err := manager.Restore(); err != nil {
		log.Warn("could not restore persisted theme, using the default")
	}

	m := explorer.NewModel(explorer.Options{
		Themes:        manager,
		ReducedMotion: settings.Gallery.ReducedMotion || opts.reducedMotion,
		FrameRate:     settings.Gallery.FrameRate,
		ParallaxSpeed: settings.Gallery.ParallaxSpeed,
		Logger:        log,
	})
	defer m.Destroy()

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run explorer: %w", err)
	}
	return nil
}
