// Command wareki converts dates between the Gregorian calendar and the
// Japanese era calendar.
//
// Dates given as arguments are converted in the direction their form
// implies:
//
//	wareki 2024-05-01 令和元年5月1日 R6.2.29
//
// A CSV column can be converted in batch, including Shift_JIS files as
// published by Japanese government agencies:
//
//	wareki -input syukujitsu.csv -encoding shift_jis -header -output out.csv
//
// An optional YAML file (-config) sets defaults and may replace the era
// table; flags given on the command line take precedence.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	wareki "github.com/rabitt1ove/jp-wareki"
)

// app holds the state shared by the argument and batch modes.
type app struct {
	conv   *wareki.Converter
	logger *zap.Logger
	stdin  io.Reader
	stdout io.Writer
}

type options struct {
	cfg    Config
	input  string
	output string
	batch  batchOptions
	args   []string
}

var errUsage = errors.New("nothing to convert: give dates as arguments or -input")

func main() {
	opts, err := parseOptions(os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "wareki: %v\n", err)
		os.Exit(2)
	}

	logger, err := newLogger(opts.cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "wareki: %v\n", err)
		os.Exit(2)
	}
	defer logger.Sync() //nolint:errcheck

	conv, err := opts.cfg.Converter()
	if err != nil {
		logger.Fatal("invalid era table", zap.Error(err))
	}

	a := &app{conv: conv, logger: logger, stdin: os.Stdin, stdout: os.Stdout}
	if err := a.run(opts); err != nil {
		logger.Error("wareki failed", zap.Error(err))
		logger.Sync() //nolint:errcheck
		os.Exit(1)
	}
}

// parseOptions parses flags and merges them over the config file, if any.
func parseOptions(args []string) (options, error) {
	fs := flag.NewFlagSet("wareki", flag.ContinueOnError)
	configPath := fs.String("config", "", "YAML config file")
	input := fs.String("input", "", "CSV file to convert in batch (- for stdin)")
	output := fs.String("output", "-", "batch output file (- for stdout)")
	encoding := fs.String("encoding", "", "batch input encoding: utf-8 or shift_jis")
	column := fs.Int("column", 0, "0-based CSV column holding the date")
	header := fs.Bool("header", false, "first CSV row is a header")
	headerName := fs.String("header-name", "converted", "name of the appended CSV column")
	strict := fs.Bool("strict", false, "abort batch conversion on the first failed row")
	logLevel := fs.String("log-level", "", "log level: debug, info, warn, error")
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}

	cfg := defaultConfig()
	if *configPath != "" {
		loaded, err := LoadConfig(*configPath)
		if err != nil {
			return options{}, err
		}
		cfg = *loaded
	}

	// Flags override the config file only when given explicitly.
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "encoding":
			cfg.Encoding = *encoding
		case "strict":
			cfg.Strict = *strict
		case "log-level":
			cfg.LogLevel = *logLevel
		}
	})
	if err := cfg.Validate(); err != nil {
		return options{}, fmt.Errorf("invalid configuration: %w", err)
	}
	enc, _ := normalizeEncoding(cfg.Encoding)

	if *column < 0 {
		return options{}, fmt.Errorf("-column must not be negative, got %d", *column)
	}
	if *input == "" && fs.NArg() == 0 {
		return options{}, errUsage
	}

	return options{
		cfg:    cfg,
		input:  *input,
		output: *output,
		batch: batchOptions{
			Encoding:   enc,
			Column:     *column,
			Header:     *header,
			HeaderName: *headerName,
			Strict:     cfg.Strict,
		},
		args: fs.Args(),
	}, nil
}

// newLogger returns a production zap logger writing JSON to stderr.
func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	return cfg.Build()
}

func (a *app) run(opts options) error {
	if opts.input == "" {
		return a.convertArgs(opts.args)
	}
	return a.runBatch(opts)
}

func (a *app) runBatch(opts options) error {
	in := a.stdin
	if opts.input != "-" {
		f, err := os.Open(opts.input)
		if err != nil {
			return fmt.Errorf("opening input: %w", err)
		}
		defer f.Close()
		in = f
	}

	out := a.stdout
	var outFile *os.File
	if opts.output != "-" {
		f, err := os.Create(opts.output)
		if err != nil {
			return fmt.Errorf("creating output: %w", err)
		}
		outFile = f
		out = f
	}

	stats, err := convertCSV(a.conv, in, out, opts.batch, a.logger)
	if outFile != nil {
		if cerr := outFile.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing output: %w", cerr)
		}
	}
	if err != nil {
		return err
	}

	a.logger.Info("batch conversion finished",
		zap.String("input", opts.input),
		zap.Int("rows", stats.Rows),
		zap.Int("converted", stats.Converted),
		zap.Int("failed", stats.Failed),
	)
	return nil
}
