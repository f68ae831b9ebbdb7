package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/3-lines-studio/folio/internal/adapters/cli"
	"github.com/3-lines-studio/folio/internal/config"
)

type rootOptions struct {
	configFile string
	dir        string
	out        io.Writer
}

func (o *rootOptions) loadConfig() (config.Config, error) {
	return config.Load(config.LoadOptions{File: o.configFile, Dir: o.dir})
}

func (o *rootOptions) output() *cli.Output {
	if o.out == nil {
		return cli.NewOutput()
	}
	return cli.NewWriterOutput(o.out)
}

// newRootCmd builds the command tree. A nil out writes to the terminal.
func newRootCmd(out io.Writer) *cobra.Command {
	opts := &rootOptions{out: out}

	cmd := &cobra.Command{
		Use:   "folio",
		Short: "Portfolio and blog server with static export",
		Long: `folio renders a portfolio and blog from JSON, YAML and Markdown content.

It serves pages with server-side rendering and exports every page, plus a
sitemap and robots.txt, as a static site.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	if out != nil {
		cmd.SetOut(out)
		cmd.SetErr(out)
	}

	cmd.PersistentFlags().StringVar(&opts.configFile, "config", "", "config file (default is ./folio.yaml)")
	cmd.PersistentFlags().StringVar(&opts.dir, "dir", ".", "project directory")

	cmd.AddCommand(
		newServeCmd(opts),
		newExportCmd(opts),
		newInitCmd(opts),
		newDoctorCmd(opts),
	)
	return cmd
}
