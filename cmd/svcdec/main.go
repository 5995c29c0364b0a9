// Package main provides the CLI entry point for svcdec.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/ideamans/go-l10n"
	"github.com/urfave/cli/v2"

	"github.com/user/svcdec/pkg/adapters/logger"
	"github.com/user/svcdec/pkg/adapters/mp4probe"
	"github.com/user/svcdec/pkg/adapters/osfilesystem"
	"github.com/user/svcdec/pkg/adapters/tracesink"
	"github.com/user/svcdec/pkg/codec"
	"github.com/user/svcdec/pkg/config"
	"github.com/user/svcdec/pkg/decoder"
	"github.com/user/svcdec/pkg/ports"
	"github.com/user/svcdec/pkg/report"
	"github.com/user/svcdec/pkg/session"
)

var version = "dev"

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:    "svcdec",
		Usage:   l10n.T("Inspect and exercise the decoder option interface"),
		Version: version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "log-level",
				Aliases:  []string{"l"},
				Value:    "",
				Usage:    l10n.T("Log level (debug, info, warn, error)"),
				Category: l10n.T("Logging"),
			},
			&cli.BoolFlag{
				Name:     "quiet",
				Aliases:  []string{"Q"},
				Usage:    l10n.T("Suppress all log output"),
				Category: l10n.T("Logging"),
			},
		},
		Commands: []*cli.Command{
			inspectCommand(),
			optionsCommand(),
		},
	}
}

func inspectCommand() *cli.Command {
	return &cli.Command{
		Name:  "inspect",
		Usage: l10n.T("Run a decoder session and report every option"),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   l10n.T("YAML configuration file"),
			},
			&cli.StringFlag{
				Name:    "input",
				Aliases: []string{"i"},
				Usage:   l10n.T("MP4 file to probe and replay"),
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Value:   "text",
				Usage:   l10n.T("Report format (text, markdown)"),
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   l10n.T("Write the report to a file instead of stdout"),
			},
			&cli.BoolFlag{
				Name:  "eos",
				Value: true,
				Usage: l10n.T("Set end-of-stream after the replay"),
			},
		},
		Action: runInspect,
	}
}

func optionsCommand() *cli.Command {
	return &cli.Command{
		Name:  "options",
		Usage: l10n.T("List the option registry"),
		Action: func(c *cli.Context) error {
			for _, d := range decoder.Options() {
				fmt.Fprintf(c.App.Writer, "%-24s %-11s %s\n", d.ID, d.Access, d.Kind)
			}
			return nil
		},
	}
}

func runInspect(c *cli.Context) error {
	cfg := config.Defaults()
	if path := c.String("config"); path != "" {
		loaded, err := config.LoadFromFile(path)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	}

	log := newLogger(c, cfg)

	formatter, ok := report.ForName(c.String("format"))
	if !ok {
		return fmt.Errorf("%s: %s", l10n.T("unknown report format"), c.String("format"))
	}

	param, err := cfg.DecodingParam()
	if err != nil {
		return err
	}
	overrides, err := cfg.Overrides()
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	dec := decoder.New(decoder.WithLogger(log))
	defer dec.Destroy()

	s := session.New(dec, mp4probe.New(), tracesink.New(log.WithComponent("trace")), log)
	var traceCtx codec.TraceContext
	if cfg.TraceContext != "" {
		traceCtx = cfg.TraceContext
	}
	rep, err := s.Run(ctx, session.Config{
		InputPath:       c.String("input"),
		Param:           param,
		Overrides:       overrides,
		TraceContext:    traceCtx,
		MarkEndOfStream: c.Bool("eos"),
	})
	if err != nil {
		log.Error("Session failed: %s", err)
		return err
	}

	if out := c.String("output"); out != "" {
		if err := report.NewWriter(formatter, osfilesystem.New()).Write(out, rep); err != nil {
			return err
		}
		log.Info("Report written to %s", out)
		return nil
	}

	fmt.Fprint(c.App.Writer, formatter.Format(rep))
	return nil
}

// newLogger selects the logger from flags, falling back to the config file level.
func newLogger(c *cli.Context, cfg config.Config) ports.Logger {
	if c.Bool("quiet") {
		return logger.NewNoop()
	}
	level := cfg.LogLevel
	if c.IsSet("log-level") {
		level = c.String("log-level")
	}
	return logger.NewConsole(ports.ParseLogLevel(level))
}
