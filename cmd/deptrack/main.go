package main

import (
	"context"
	"io"
	"log"
	"os"

	"github.com/urfave/cli/v3"
)

const (
	dataKey    = "data"
	watchKey   = "watch"
	setKey     = "set"
	metricsKey = "metrics"
	verboseKey = "verbose"
)

func main() {
	if err := newCommand(os.Stdout, os.Stderr).Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

// newCommand builds the command tree. The report goes to stdout, engine logs
// to stderr.
func newCommand(stdout, stderr io.Writer) *cli.Command {
	// every command resets the separator setting while parsing, so values
	// such as "[a, b]" only survive as a single --set if both disable it
	return &cli.Command{
		Name:                      "deptrack",
		Usage:                     "Watch paths in a document and replay writes against it",
		DisableSliceFlagSeparator: true,
		Commands: []*cli.Command{
			{
				Name:                      "run",
				Usage:                     "Bind watchers, apply writes in order and print a report",
				DisableSliceFlagSeparator: true,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     dataKey,
						Aliases:  []string{"d"},
						Usage:    "JSON, YAML or HCL document to load",
						Sources:  cli.EnvVars("DEPTRACK_DATA"),
						Required: true,
					},
					&cli.StringSliceFlag{
						Name:    watchKey,
						Aliases: []string{"w"},
						Usage:   "dotted path to watch, repeatable",
					},
					&cli.StringSliceFlag{
						Name:    setKey,
						Aliases: []string{"s"},
						Usage:   "path=value write, repeatable, applied in order",
					},
					&cli.BoolFlag{
						Name:  metricsKey,
						Usage: "Print Prometheus metrics after the report",
					},
					&cli.BoolFlag{
						Name:    verboseKey,
						Aliases: []string{"v"},
						Usage:   "Enable debug logging on stderr",
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					cfg := &runConfig{
						data:    cmd.String(dataKey),
						watches: cmd.StringSlice(watchKey),
						sets:    cmd.StringSlice(setKey),
						metrics: cmd.Bool(metricsKey),
						verbose: cmd.Bool(verboseKey),
					}
					return execute(ctx, cfg, stdout, stderr)
				},
			},
		},
	}
}
