// Command bibinspect parses BibTeX databases and reports on their contents.
//
// Usage:
//
//	bibinspect [-config file.toml] [-format summary|yaml|bson] [-watch] [-v] file.bib...
//
// The summary format counts entries by kind and type.  The yaml format lists
// every entry with its tags in file order, and the bson format prints the
// MongoDB Extended JSON form of the document.  With -watch, files are parsed
// again whenever they are written.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/xdg-go/bib"
)

var version = "devel"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintf(os.Stderr, "bibinspect: %s\n", err)
		}
		stop()
		os.Exit(1)
	}
}

func newLogger(w io.Writer, level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: true}).
		Level(lvl).
		With().
		Timestamp().
		Logger()
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("bibinspect", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "TOML config file")
	format := fs.String("format", FormatSummary, "output format: summary, yaml or bson")
	watch := fs.Bool("watch", false, "parse files again when they change")
	verbose := fs.Bool("v", false, "verbose logging")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "usage: bibinspect [flags] file.bib...\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := LoadConfig(*configPath)
	if err != nil {
		return err
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "format":
			cfg.Format = *format
		case "watch":
			cfg.Watch = *watch
		case "v":
			if *verbose {
				cfg.LogLevel = zerolog.DebugLevel.String()
			}
		}
	})
	if err := cfg.Validate(); err != nil {
		return err
	}

	files := fs.Args()
	if len(files) == 0 {
		fs.Usage()
		return errors.New("no input files")
	}

	logger := newLogger(stderr, cfg.LogLevel)
	logger.Debug().Str("version", version).Str("format", cfg.Format).Bool("watch", cfg.Watch).Msg("starting")

	var failed error
	for _, f := range files {
		if err := inspectFile(logger, stdout, f, cfg.Format); err != nil {
			failed = err
		}
	}
	if !cfg.Watch {
		return failed
	}

	return watchFiles(ctx, logger, files, func(path string) {
		_ = inspectFile(logger, stdout, path, cfg.Format)
	})
}

// inspectFile parses one file and renders it.  Failures are logged and
// returned.
func inspectFile(logger zerolog.Logger, w io.Writer, path, format string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		logger.Error().Err(err).Str("file", path).Msg("cannot read file")
		return err
	}

	// data is never modified, so the document may alias it.
	doc, err := bib.ParseBytes(data)
	if err != nil {
		ev := logger.Error().Err(err).Str("file", path)
		var pe *bib.ParseError
		if errors.As(err, &pe) {
			ev = ev.Stringer("kind", pe.Kind).Int("line", pe.Line).Int("column", pe.Column)
		}
		ev.Msg("parse failed")
		return fmt.Errorf("%s: %w", path, err)
	}
	logger.Debug().Str("file", path).Int("entries", doc.Len()).Msg("parsed")

	if err := render(w, path, doc, format); err != nil {
		logger.Error().Err(err).Str("file", path).Msg("cannot render")
		return err
	}
	return nil
}
