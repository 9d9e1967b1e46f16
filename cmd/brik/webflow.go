package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/brikdesigns/brik/internal/logger"
	"github.com/brikdesigns/brik/internal/webflow"
)

type createPageOptions struct {
	site   string
	title  string
	slug   string
	parent string
	draft  bool
}

func newWebflowCmd(flags *rootFlags, log *logger.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "webflow",
		Short: "Publish to Webflow",
	}

	cmd.AddCommand(newCreatePageCmd(flags, log))

	return cmd
}

func newCreatePageCmd(flags *rootFlags, log *logger.Logger) *cobra.Command {
	opts := createPageOptions{}

	cmd := &cobra.Command{
		Use:   "create-page",
		Short: "Create a page on a Webflow site",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCreatePage(cmd, flags, opts, log)
		},
	}

	cmd.Flags().StringVar(&opts.site, "site", "", "Site ID (defaults to webflow.site_id from settings)")
	cmd.Flags().StringVar(&opts.title, "title", "", "Page title")
	cmd.Flags().StringVar(&opts.slug, "slug", "", "Page slug")
	cmd.Flags().StringVar(&opts.parent, "parent", "", "Parent folder ID")
	cmd.Flags().BoolVar(&opts.draft, "draft", false, "Create the page as a draft")
	_ = cmd.MarkFlagRequired("title")

	return cmd
}

func runCreatePage(cmd *cobra.Command, flags *rootFlags, opts createPageOptions, log *logger.Logger) error {
	log = commandLogger(flags, log)

	settings, _, err := loadSettings(flags)
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	// The environment wins over the settings file so tokens stay out of it.
	token := os.Getenv("WEBFLOW_TOKEN")
	if token == "" {
		token = settings.Webflow.Token
	}
	site := opts.site
	if site == "" {
		site = settings.Webflow.SiteID
	}

	client, err := webflow.NewClient(webflow.Options{Token: token, Logger: log})
	if err != nil {
		return err
	}

	page, err := client.CreatePage(cmd.Context(), site, webflow.CreatePageRequest{
		Title:    opts.title,
		Slug:     opts.slug,
		ParentID: opts.parent,
		Draft:    opts.draft,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Created page %s (%s)\n", page.ID, page.Slug)
	return nil
}
