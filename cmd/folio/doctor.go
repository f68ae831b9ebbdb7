package main

import (
	"github.com/spf13/cobra"

	"github.com/3-lines-studio/folio/internal/config"
	"github.com/3-lines-studio/folio/internal/initcmd"
)

func newDoctorCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor [project-dir]",
		Short: "Check content, shells and directories of a site",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := opts.dir
			if len(args) == 1 {
				dir = args[0]
			}

			cfg, err := config.Load(config.LoadOptions{File: opts.configFile, Dir: dir})
			if err != nil {
				return err
			}

			return initcmd.Doctor(cfg.Root, initcmd.Layout{
				ContentDir:  cfg.ContentDir,
				SourceShell: cfg.SourceShell,
				PublicDir:   cfg.PublicDir,
				OutputDir:   cfg.OutputDir,
			}, opts.output())
		},
	}
}
