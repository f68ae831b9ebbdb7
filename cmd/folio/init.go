package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/3-lines-studio/folio/internal/initcmd"
)

func newInitCmd(opts *rootOptions) *cobra.Command {
	var template string

	cmd := &cobra.Command{
		Use:   "init <project-dir>",
		Short: "Create a new site from a starter template",
		Long: `Create a new site from a starter template.

Examples:
  folio init mysite
  folio init --template portfolio mysite`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			projectDir, err := filepath.Abs(args[0])
			if err != nil {
				return fmt.Errorf("failed to resolve project directory: %w", err)
			}
			return initcmd.Run(projectDir, template, opts.output())
		},
	}

	cmd.Flags().StringVar(&template, "template", "minimal", "template to use (minimal, portfolio)")
	return cmd
}
