package main

import (
	"github.com/spf13/cobra"

	"github.com/3-lines-studio/folio"
	"github.com/3-lines-studio/folio/internal/adapters/cli"
)

func newExportCmd(opts *rootOptions) *cobra.Command {
	var fromSource bool

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write every page, sitemap.xml and robots.txt to the output directory",
		Long: `Write every page, sitemap.xml and robots.txt to the output directory.

The output directory must already hold the built shell (index.html) unless
--from-source is given, in which case it is seeded from the source shell.

Examples:
  folio export
  folio export --from-source
  FOLIO_BASEURL=https://ada.dev folio export`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := opts.output()
			out.PrintHeader("Folio Export")

			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			if cfg.File != "" {
				out.PrintStep("", "Using config file: %s", cfg.File)
			}

			app, err := folio.New(cfg)
			if err != nil {
				return err
			}

			report := cli.NewExportReport(out, out.Writer(), cfg.Path(cfg.OutputDir))
			result := app.Export(cmd.Context(), folio.ExportOptions{FromSource: fromSource})

			report.SetRouteCount(len(result.Routes))
			for _, f := range result.Files {
				report.AddFile(f.Path, f.Kind.String())
			}
			for _, w := range result.Warnings {
				report.AddWarning(w)
			}
			if result.Error != nil {
				var details []string
				if folio.IsPreconditionError(result.Error) {
					details = append(details, "run 'folio export --from-source' to seed the shell from "+cfg.SourceShell)
				}
				report.AddError("export", result.Error.Error(), details)
				report.Render()
				return result.Error
			}

			report.Render()
			return nil
		},
	}

	cmd.Flags().BoolVar(&fromSource, "from-source", false, "seed the output shell from the source shell when missing")
	return cmd
}
