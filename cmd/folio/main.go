package main

import (
	"context"
	"os"

	"github.com/3-lines-studio/folio/internal/adapters/cli"
)

var version = "dev"

func main() {
	cmd := newRootCmd(nil)
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		cli.NewOutput().PrintError("%v", err)
		os.Exit(1)
	}
}
