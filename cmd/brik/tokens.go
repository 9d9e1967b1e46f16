package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/brikdesigns/brik/internal/theme"
	"github.com/brikdesigns/brik/internal/tokens"
)

type tokensOptions struct {
	themeName string
}

func newTokensCmd(flags *rootFlags) *cobra.Command {
	opts := tokensOptions{}

	cmd := &cobra.Command{
		Use:   "tokens [token...]",
		Short: "Print the design-token table for a theme",
		Long:  "Print the design-token table for a theme, or resolve the named tokens only.",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTokens(cmd, flags, opts, args)
		},
	}

	cmd.Flags().StringVar(&opts.themeName, "theme", "", "Theme to resolve tokens against (defaults to the persisted theme)")

	return cmd
}

func runTokens(cmd *cobra.Command, flags *rootFlags, opts tokensOptions, args []string) error {
	name := opts.themeName
	if name == "" {
		settings, _, err := loadSettings(flags)
		if err != nil {
			return fmt.Errorf("failed to load settings: %w", err)
		}
		name = settings.Theme
	}

	t, ok := theme.Named(name)
	if !ok {
		return fmt.Errorf("unknown theme %q (available: %v)", name, theme.Names())
	}

	maxWidth := 0
	if file, ok := cmd.OutOrStdout().(*os.File); ok && term.IsTerminal(int(file.Fd())) {
		if width, _, err := term.GetSize(int(file.Fd())); err == nil {
			maxWidth = width
		}
	}

	writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)

	if len(args) > 0 {
		for _, raw := range args {
			value, err := t.ResolveStrict(tokens.Token(raw))
			if err != nil {
				return err
			}
			fmt.Fprintf(writer, "%s\t%s\n", raw, value)
		}
		return writer.Flush()
	}

	fmt.Fprintln(writer, "TOKEN\tVALUE")
	for _, token := range tokens.All() {
		value, ok := t.Resolve(token)
		if !ok {
			continue
		}
		fmt.Fprintf(writer, "%s\t%s\n", token, truncate(value, maxWidth-len(token)-4))
	}
	return writer.Flush()
}

func truncate(s string, limit int) string {
	if limit <= 3 || len(s) <= limit {
		return s
	}
	return s[:limit-3] + "..."
}
