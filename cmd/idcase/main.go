package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"pkt.systems/idcase"
	"pkt.systems/version"
)

const defaultStyleName = "snake"

var errUnknownStyle = errors.New("unknown style")

func init() {
	version.SetDefaultModule("pkt.systems/idcase")
}

// options holds the parsed command line.
type options struct {
	style           string
	listStyles      bool
	delimiters      []string
	protect         []string
	rules           []string
	join            string
	upperContinuous bool
	splitNumber     bool
	camelUpper      bool
	settingsPath    string
	outPath         string
	trim            bool
	skipEmpty       bool
	verbose         bool
	showVersion     bool
}

func newFlagSet(opts *options) *pflag.FlagSet {
	flags := pflag.NewFlagSet("idcase", pflag.ContinueOnError)
	flags.StringVarP(&opts.style, "style", "s", defaultStyleName, "Output style (see --list-styles)")
	flags.BoolVar(&opts.listStyles, "list-styles", false, "List available styles")
	flags.StringArrayVarP(&opts.delimiters, "delimiter", "d", nil, "Multi-character delimiter, repeatable")
	flags.StringSliceVar(&opts.protect, "protect", nil, "Rules suppressed for the word after a delimiter: case,number")
	flags.StringSliceVar(&opts.rules, "rules", nil, "Boundary rules to enable: case,number (overrides settings)")
	flags.StringVarP(&opts.join, "join", "j", "", "Join words with this separator keeping their original case instead of applying a style")
	flags.BoolVar(&opts.upperContinuous, "upper-continuous", defaultSettings.UpperContinuous, "Split uppercase runs before the last capital, HTTPServer -> HTTP Server (settings key upper_continuous)")
	flags.BoolVar(&opts.splitNumber, "split-number", defaultSettings.SplitNumber, "Split where letters and digits meet (settings key split_number)")
	flags.BoolVar(&opts.camelUpper, "camel-upper", defaultSettings.CamelUpper, "Start camel style with an upper case letter (settings key camel_upper)")
	flags.StringVar(&opts.settingsPath, "settings", "", "YAML settings file")
	flags.StringVarP(&opts.outPath, "output", "o", "", "Output file instead of stdout")
	flags.BoolVar(&opts.trim, "trim", false, "Trim surrounding whitespace from each line")
	flags.BoolVar(&opts.skipEmpty, "skip-empty", false, "Drop empty lines")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Debug logging on stderr")
	flags.BoolVar(&opts.showVersion, "version", false, "Print version and exit")
	flags.SetInterspersed(true)
	flags.Usage = func() {
		fmt.Fprintln(os.Stderr, version.Module(), version.Current())
		fmt.Fprintf(os.Stderr, "Usage: idcase [flags] [inputs...]\n")
		fmt.Fprintln(os.Stderr, "\nConverts every input line to the selected style. If no input is provided, text is read from stdin.")
		fmt.Fprintln(os.Stderr, "\nFlags:")
		flags.PrintDefaults()
	}
	return flags
}

func main() {
	var opts options
	flags := newFlagSet(&opts)
	if err := flags.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		os.Exit(2)
	}

	if opts.showVersion {
		fmt.Fprintln(os.Stdout, version.Module(), version.Current())
		return
	}
	if opts.listStyles {
		printStyles(os.Stdout, terminalWidth(os.Stdout, defaultWidth))
		return
	}

	logger := newLogger(os.Stderr, opts.verbose)

	settings, err := resolveSettings(opts, flags, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "settings: %v\n", err)
		os.Exit(2)
	}
	cfg, err := buildConfig(opts, settings)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(2)
	}
	logger.Debug("tokenizer config", "config", cfg.String(), "camel_upper", settings.CamelUpper)

	var style idcase.Style
	if opts.join == "" {
		style, err = resolveStyle(opts.style)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v\n\n", err)
			printStyles(os.Stderr, terminalWidth(os.Stderr, defaultWidth))
			os.Exit(2)
		}
	}

	reader, closer, err := openInputs(flags.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "open input: %v\n", err)
		os.Exit(1)
	}
	if closer != nil {
		defer func() { _ = closer.Close() }()
	}

	writer, closeOut, err := resolveOutput(opts.outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open output: %v\n", err)
		os.Exit(1)
	}
	if closeOut != nil {
		defer func() { _ = closeOut.Close() }()
	}

	convertOpts := []idcase.ConvertOption{
		idcase.WithTrimSpace(opts.trim),
		idcase.WithSkipEmpty(opts.skipEmpty),
		idcase.WithLogger(logger),
	}
	if err := idcase.ConvertLines(idcase.ConvertRequest{
		Reader:     reader,
		Writer:     writer,
		Style:      style,
		Config:     cfg,
		CamelUpper: settings.CamelUpper,
		Join:       opts.join,
		Options:    convertOpts,
	}); err != nil {
		fmt.Fprintf(os.Stderr, "convert: %v\n", err)
		os.Exit(1)
	}
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func resolveStyle(name string) (idcase.Style, error) {
	style, ok := idcase.StyleByName(name)
	if !ok {
		return 0, fmt.Errorf("%w %q", errUnknownStyle, name)
	}
	return style, nil
}

// buildConfig layers the delimiter and rule flags over the settings.
func buildConfig(opts options, settings idcase.Settings) (*idcase.Config, error) {
	if err := idcase.ValidateDelimiters(opts.delimiters); err != nil {
		return nil, err
	}
	b := settings.Builder().Delimiters(opts.delimiters...)
	if len(opts.rules) > 0 {
		rules, err := idcase.ParseRules(opts.rules)
		if err != nil {
			return nil, fmt.Errorf("--rules: %w", err)
		}
		b.RuleSet(rules)
	}
	if len(opts.protect) > 0 {
		protected, err := idcase.ParseRules(opts.protect)
		if err != nil {
			return nil, fmt.Errorf("--protect: %w", err)
		}
		b.ProtectedRuleSet(protected)
	}
	return b.Build(), nil
}

func resolveOutput(path string) (io.Writer, io.Closer, error) {
	if strings.TrimSpace(path) == "" {
		return os.Stdout, nil, nil
	}
	clean := normalizePath(path)
	dir := filepath.Dir(clean)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, nil, err
		}
	}
	f, err := os.Create(clean)
	if err != nil {
		return nil, nil, err
	}
	return f, f, nil
}

func normalizePath(path string) string {
	if strings.HasPrefix(path, "~/") || path == "~" {
		home, err := os.UserHomeDir()
		if err == nil {
			if path == "~" {
				path = home
			} else {
				path = filepath.Join(home, path[2:])
			}
		}
	}
	abs, err := filepath.Abs(path)
	if err == nil {
		return abs
	}
	return path
}
