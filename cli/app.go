// Package cli contains the sceneconv command line application.
package cli

import (
	"io"

	"github.com/urfave/cli/v2"

	// register converters.
	_ "github.com/autoware-viz/sceneconv/converters/register"
)

const (
	configFlag  = "config"
	debugFlag   = "debug"
	logFileFlag = "log-file"
	bagFlag     = "bag"
	inputFlag   = "input"
	outputFlag  = "output"
	vehicleFlag = "vehicle"
	schemaFlag  = "schema"
	topicFlag   = "topic"
)

var app = &cli.App{
	Name:            "sceneconv",
	Usage:           "convert recorded Autoware messages into 3D scene updates",
	HideHelpCommand: true,
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    configFlag,
			Aliases: []string{"c"},
			Usage:   "load configuration from `FILE`",
		},
		&cli.BoolFlag{
			Name:    debugFlag,
			Aliases: []string{"vvv"},
			Usage:   "enable debug logging",
		},
		&cli.StringFlag{
			Name:  logFileFlag,
			Usage: "also write logs to `FILE`, rotated every 100MB",
		},
	},
	Commands: []*cli.Command{
		{
			Name:      "convert",
			Usage:     "convert messages into scene updates, one JSON record per line",
			UsageText: "sceneconv [--config FILE] convert (--bag FILE | --input FILE) [--vehicle NAME] [--output FILE]",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:  bagFlag,
					Usage: "read messages from the ROS bag `FILE`",
				},
				&cli.StringFlag{
					Name:  inputFlag,
					Usage: "read messages from a JSON lines `FILE`, or - for stdin",
				},
				&cli.StringFlag{
					Name:  vehicleFlag,
					Usage: "vehicle profile `NAME` to draw the ego vehicle with",
				},
				&cli.StringFlag{
					Name:    outputFlag,
					Aliases: []string{"o"},
					Usage:   "write updates to `FILE` instead of stdout",
				},
			},
			Action: ConvertAction,
		},
		{
			Name:  "vehicles",
			Usage: "list the vehicle catalog",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:  vehicleFlag,
					Usage: "mark `NAME` as selected",
				},
			},
			Action: VehiclesAction,
		},
		{
			Name:  "settings",
			Usage: "print the settings a converter accepts and their defaults",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:  schemaFlag,
					Usage: "message schema `NAME`; omit to list every schema",
				},
			},
			Action: SettingsAction,
		},
		{
			Name:  "diagnostics",
			Usage: "replay driving log replayer results and print the accumulated conditions",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     inputFlag,
					Usage:    "read result messages from a JSON lines `FILE`, or - for stdin",
					Required: true,
				},
				&cli.StringSliceFlag{
					Name:  topicFlag,
					Usage: "only replay `TOPIC`; may be repeated",
				},
			},
			Action: DiagnosticsAction,
		},
	},
}

// NewApp returns a new app with the CLI command and its sub commands.
func NewApp(out, errOut io.Writer) *cli.App {
	app.Writer = out
	app.ErrWriter = errOut
	return app
}
