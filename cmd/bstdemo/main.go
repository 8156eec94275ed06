package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/eaugeas/bst/config"
	"github.com/eaugeas/bst/demo"
	errs "github.com/eaugeas/bst/errors"
	"github.com/eaugeas/bst/logs"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
)

const appName = "bstdemo"

// dotenvFiles are loaded in order when present. Variables already
// set are never overridden
var dotenvFiles = []string{".env.local", ".env"}

type app struct {
	settings *demo.Config
}

func (a app) Use() string {
	return appName
}

func (a app) EnvPrefix() string {
	return appName
}

func (a app) Binders() []config.Binder {
	return []config.Binder{a.settings}
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	if err := loadDotenv(); err != nil {
		return err
	}

	settings := &demo.Config{}
	parser, err := config.Generate(appName, app{settings: settings})
	if err != nil {
		return err
	}

	if err := parser.ParseArgs(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}

		return errors.Wrap(err, "failed to parse configuration")
	}

	level, err := logrus.ParseLevel(settings.LogLevel)
	if err != nil {
		return errs.New(errs.ErrorCodeInvalidConfig, err)
	}

	logger := logs.NewLogrus(logs.LogrusLoggerProperties{
		Level:  level,
		Output: stderr,
	})

	runner := demo.NewRunner(demo.RunnerProperties{
		Logger: logger,
		Output: stdout,
		Check:  settings.Check,
	})

	if len(settings.Intervals) > 0 {
		if _, err := runner.MergeIntervals(ctx, settings.Intervals); err != nil {
			logError(ctx, logger, err)
			return err
		}
		return nil
	}

	if settings.Trials > 0 {
		reports, err := runner.RunTrials(ctx, settings.TrialOpts())
		if err != nil {
			logError(ctx, logger, err)
			return err
		}

		_, err = fmt.Fprintln(stdout, demo.TrialsTable(reports))
		return err
	}

	src, remove, err := settings.Scenario()
	if err != nil {
		return err
	}

	report, err := runner.Run(ctx, src, remove)
	if err != nil {
		logError(ctx, logger, err)
		return err
	}

	if settings.Summary {
		if _, err := fmt.Fprintln(stdout, report.Table()); err != nil {
			return err
		}
	}

	return nil
}

func loadDotenv() error {
	for _, file := range dotenvFiles {
		if _, err := os.Stat(file); err != nil {
			continue
		}

		if err := godotenv.Load(file); err != nil {
			return errors.Wrapf(err, "failed to load %s", file)
		}
	}

	return nil
}

func logError(ctx context.Context, logger logs.Logger, err error) {
	var e *errs.Error
	if errors.As(err, &e) {
		logger.Error(ctx, "demo failed", e)
		return
	}

	logger.Error(ctx, "demo failed", logs.MapFields{"err": err.Error()})
}
