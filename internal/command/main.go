package command

import (
	"fmt"
	"log/slog"
	"os"
	"sort"

	"github.com/bornholm/readings/internal/build"
	"github.com/bornholm/readings/internal/log"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

const (
	paramDebug    = "debug"
	paramLogLevel = "log-level"
)

func Main(name string, usage string, commands ...*cli.Command) {
	app := &cli.App{
		Name:     name,
		Usage:    usage,
		Commands: commands,
		Version:  build.LongVersion,
		Before: func(ctx *cli.Context) error {
			var level slog.Level
			if err := level.UnmarshalText([]byte(ctx.String(paramLogLevel))); err != nil {
				return errors.Wrapf(err, "invalid log level '%s'", ctx.String(paramLogLevel))
			}

			logger := slog.New(log.ContextHandler{
				Handler: slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
					Level:     level,
					AddSource: ctx.Bool(paramDebug),
				}),
			})

			slog.SetDefault(logger)

			return nil
		},
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    paramDebug,
				Value:   false,
				EnvVars: []string{"READINGS_CLI_DEBUG"},
				Usage:   "Toggle debug mode",
			},
			&cli.StringFlag{
				Name:    paramLogLevel,
				EnvVars: []string{"READINGS_CLI_LOG_LEVEL"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "warn",
			},
		},
	}

	app.ExitErrHandler = func(ctx *cli.Context, err error) {
		if err == nil {
			return
		}

		if !ctx.Bool(paramDebug) {
			slog.ErrorContext(ctx.Context, err.Error())
		} else {
			slog.ErrorContext(ctx.Context, fmt.Sprintf("%+v", err))
		}
	}

	sort.Sort(cli.FlagsByName(app.Flags))
	sort.Sort(cli.CommandsByName(app.Commands))

	if err := app.Run(os.Args); err != nil {
		os.Exit(1)
	}
}
