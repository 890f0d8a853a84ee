// Package main is the CLI command itself.
package main

import (
	"os"

	"github.com/autoware-viz/sceneconv/cli"
	"github.com/autoware-viz/sceneconv/logging"
)

func main() {
	app := cli.NewApp(os.Stdout, os.Stderr)
	if err := app.Run(os.Args); err != nil {
		logger := logging.NewBlankLogger("sceneconv")
		logger.AddCore(logging.NewWriterCore(os.Stderr, true))
		logger.Error(err)
		os.Exit(1)
	}
}
