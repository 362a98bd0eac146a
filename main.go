package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/mcncl/jsontree/internal/analyzer"
	"github.com/mcncl/jsontree/internal/config"
	"github.com/mcncl/jsontree/internal/errors"
	"github.com/mcncl/jsontree/internal/formatter"
	"github.com/mcncl/jsontree/internal/parser"
	"github.com/mcncl/jsontree/internal/value"
)

// Version information
const (
	Version = "0.1.0"
)

// Globals are flags shared by every command
type Globals struct {
	Config  string           `help:"Path to a YAML config file. Defaults to the nearest .jsontree.yml." type:"path"`
	Debug   bool             `help:"Enable debug logging." short:"d"`
	Version kong.VersionFlag `help:"Show version information." short:"v"`
}

// CLI defines the command-line interface
type CLI struct {
	Globals

	Fmt   FmtCmd   `cmd:"" help:"Parse a JSON document and print it again."`
	Get   GetCmd   `cmd:"" help:"Print the part of a document found at a dotted path."`
	Check CheckCmd `cmd:"" help:"Validate a JSON document and summarise its contents."`
}

// FmtCmd re-prints a document
type FmtCmd struct {
	Input   string `help:"Path to input JSON file. If not specified, reads from stdin." short:"i" type:"path"`
	Compact bool   `help:"Print without whitespace." short:"c"`
	Indent  int    `help:"Spaces per nesting level." default:"-1"`
	KeyCase string `help:"Rewrite object keys: none, snake, camel, lower_camel, kebab or screaming_snake." name:"key-case"`
	YAML    bool   `help:"Render as YAML instead of JSON." name:"yaml"`
}

// GetCmd prints a sub-tree
type GetCmd struct {
	Path    string `arg:"" help:"Dotted path such as items.0.name. Numeric segments index arrays."`
	Input   string `help:"Path to input JSON file. If not specified, reads from stdin." short:"i" type:"path"`
	Compact bool   `help:"Print without whitespace." short:"c"`
}

// CheckCmd validates a document
type CheckCmd struct {
	Input string `help:"Path to input JSON file. If not specified, reads from stdin." short:"i" type:"path"`
}

// env is bound into every command's Run method
type env struct {
	cfg    *config.Config
	stdin  io.Reader
	stdout io.Writer
	log    *zap.Logger
}

type exitCode int

func main() {
	var stdin io.Reader = os.Stdin
	if info, err := os.Stdin.Stat(); err == nil && info.Mode()&os.ModeCharDevice != 0 {
		// Nothing piped in
		stdin = nil
	}
	os.Exit(run(os.Args[1:], stdin, os.Stdout, os.Stderr))
}

// run executes the command line in args and returns the process exit code.
// A nil stdin means no input was piped in.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) (code int) {
	var cli CLI
	app, err := kong.New(&cli,
		kong.Name("jsontree"),
		kong.Description("Inspect, reformat and query JSON documents"),
		kong.UsageOnError(),
		kong.Vars{"version": fmt.Sprintf("jsontree version %s", Version)},
		kong.Writers(stdout, stderr),
		kong.Exit(func(code int) { panic(exitCode(code)) }),
	)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 1
	}

	// kong reports --help, --version and usage errors through Exit
	defer func() {
		if r := recover(); r != nil {
			c, ok := r.(exitCode)
			if !ok {
				panic(r)
			}
			code = int(c)
		}
	}()

	ctx, err := app.Parse(args)
	app.FatalIfErrorf(err)

	cfg, configPath, err := config.Load(cli.Config)
	if err == nil {
		cfg, err = cfg.ApplyOverrides(config.Overrides{Indent: -1, Debug: cli.Debug})
	}
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "%s\n", errors.UserFriendlyError(errors.NewConfigError("failed to load configuration", err)))
		return 1
	}

	log := newLogger(cfg.Dev.Debug, stderr)
	defer func() { _ = log.Sync() }()
	log.Debug("configuration loaded", zap.String("path", configPath), zap.String("command", ctx.Command()))

	err = ctx.Run(&env{cfg: cfg, stdin: stdin, stdout: stdout, log: log})
	if err != nil {
		log.Debug("command failed", zap.Error(err))
		_, _ = fmt.Fprintf(stderr, "%s\n", errors.UserFriendlyError(err))
		return 1
	}
	return 0
}

// newLogger writes console-encoded entries to w. Debug mode logs everything
// with caller information; otherwise only warnings and errors.
func newLogger(debug bool, w io.Writer) *zap.Logger {
	level := zapcore.WarnLevel
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	if debug {
		level = zapcore.DebugLevel
		encoderConfig = zap.NewDevelopmentEncoderConfig()
	}

	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encoderConfig), zapcore.AddSync(w), level)
	if debug {
		return zap.New(core, zap.AddCaller(), zap.Development())
	}
	return zap.New(core)
}

// Run re-prints the document using the configured layout
func (c *FmtCmd) Run(e *env) error {
	cfg, err := e.cfg.ApplyOverrides(config.Overrides{
		Indent:  c.Indent,
		KeyCase: c.KeyCase,
		Compact: c.Compact,
		YAML:    c.YAML,
	})
	if err != nil {
		return err
	}

	doc, err := readInput(c.Input, e)
	if err != nil {
		return err
	}

	return render(e, cfg, doc)
}

// Run prints the sub-tree at the requested path
func (c *GetCmd) Run(e *env) error {
	cfg, err := e.cfg.ApplyOverrides(config.Overrides{Indent: -1, Compact: c.Compact})
	if err != nil {
		return err
	}

	doc, err := readInput(c.Input, e)
	if err != nil {
		return err
	}

	steps := value.ParsePath(c.Path)
	e.log.Debug("navigating", zap.String("path", c.Path), zap.Int("steps", len(steps)))

	found, ok := value.Navigate(doc, steps...)
	if !ok {
		return errors.NewNavigationError(fmt.Sprintf("nothing found at path '%s'", c.Path), errors.ErrPathNotFound)
	}

	return render(e, cfg, found)
}

// Run validates the document and prints a summary of what it contains
func (c *CheckCmd) Run(e *env) error {
	doc, err := readInput(c.Input, e)
	if err != nil {
		return err
	}

	r := analyzer.Analyze(doc)
	lines := []string{fmt.Sprintf("valid JSON: %s at root, depth %d", r.Root, r.Depth)}
	for _, kind := range []value.Kind{
		value.NullKind, value.BoolKind, value.NumberKind,
		value.StringKind, value.ArrayKind, value.AssocKind,
	} {
		lines = append(lines, fmt.Sprintf("%-7s %d", kind, r.Kinds[kind]))
	}
	lines = append(lines,
		fmt.Sprintf("numbers: %s %d, %s %d, %s %d",
			analyzer.LongNumber, r.Numbers[analyzer.LongNumber],
			analyzer.DoubleNumber, r.Numbers[analyzer.DoubleNumber],
			analyzer.DecimalNumber, r.Numbers[analyzer.DecimalNumber]),
		fmt.Sprintf("strings: %s %d, %s %d, %s %d",
			analyzer.PlainString, r.Strings[analyzer.PlainString],
			analyzer.UUIDString, r.Strings[analyzer.UUIDString],
			analyzer.TimeString, r.Strings[analyzer.TimeString]),
		fmt.Sprintf("unix timestamps: %d", r.Timestamps),
		fmt.Sprintf("distinct keys: %d", r.Keys),
		fmt.Sprintf("mixed arrays: %d", r.MixedArrays),
		fmt.Sprintf("longest array: %d", r.MaxArrayLen),
	)

	e.log.Debug("analyzed document", zap.Int("depth", r.Depth), zap.Int("keys", r.Keys))
	if _, err := io.WriteString(e.stdout, strings.Join(lines, "\n")+"\n"); err != nil {
		return errors.NewOutputError("failed to write to stdout", err)
	}
	return nil
}

// readInput parses JSON from file or stdin
func readInput(path string, e *env) (value.Value, error) {
	var (
		doc value.Value
		err error
	)
	source := path
	switch {
	case path != "":
		doc, err = parser.ParseFile(path)
	case e.stdin != nil:
		source = "stdin"
		doc, err = parser.Parse(e.stdin)
	default:
		return nil, errors.NewInputError("no input provided", errors.ErrNoInput)
	}
	if err != nil {
		return nil, err
	}

	e.log.Debug("parsed document", zap.String("source", source), zap.Stringer("kind", doc.Kind()))
	return doc, nil
}

// render prints v to stdout as JSON or YAML
func render(e *env, cfg *config.Config, v value.Value) error {
	f, err := formatter.NewFormatter(cfg.FormatterOptions())
	if err != nil {
		return errors.NewConfigError("invalid format options", err)
	}

	var out string
	if cfg.Output.Format == config.OutputYAML {
		out, err = f.YAML(v)
		if err != nil {
			return errors.NewOutputError("failed to render YAML", err)
		}
	} else {
		out = f.Format(v) + "\n"
	}

	if _, err := io.WriteString(e.stdout, out); err != nil {
		return errors.NewOutputError("failed to write to stdout", err)
	}
	return nil
}
