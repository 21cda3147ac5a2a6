package main

// This is an interpreter for the Vowel programming language written in Go.

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/ltungv/vowel/internal/config"
	"github.com/ltungv/vowel/internal/vowel"
	"github.com/peterh/liner"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	exitOK       = 0
	exitIOErr    = 1
	exitUsage    = 64
	exitDataErr  = 65
	exitSoftware = 70
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet("vowel", flag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.Usage = func() {
		fmt.Fprintln(stderr, "Usage: vowel [flags] [script]")
		flags.PrintDefaults()
	}
	configPath := flags.String("config", "", "load settings from a TOML or YAML `file`")
	printAST := flags.Bool("ast", false, "print the syntax tree instead of running the script")
	debug := flags.Bool("debug", false, "log every pass of the interpreter")
	noWarn := flags.Bool("no-warn", false, "do not print warnings")
	if err := flags.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}
	if flags.NArg() > 1 {
		flags.Usage()
		return exitUsage
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitIOErr
	}
	cfg.Run.PrintAST = cfg.Run.PrintAST || *printAST
	cfg.Run.Warnings = cfg.Run.Warnings && !*noWarn
	cfg.Debug = cfg.Debug || *debug

	logger := newLogger(cfg.Debug, stderr)
	defer logger.Sync() //nolint:errcheck

	reporter := vowel.NewSimpleReporter(stderr, cfg.Run.Warnings)
	if flags.NArg() == 0 {
		s := newSession(cfg, logger, reporter, stdout, stderr, true)
		if err := runPrompt(s); err != nil {
			fmt.Fprintln(stderr, err)
			return exitIOErr
		}
		return exitOK
	}
	s := newSession(cfg, logger, reporter, stdout, stderr, false)
	return runFile(flags.Arg(0), s)
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.Load(path)
	}
	return config.Discover(".")
}

// newLogger returns a development logger writing to w when debug is set and
// a no-op logger otherwise
func newLogger(debug bool, w io.Writer) *zap.Logger {
	if !debug {
		return zap.NewNop()
	}
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.AddSync(w),
		zapcore.DebugLevel,
	)
	return zap.New(core, zap.Development())
}

// session wires the passes of the interpreter together. The interpreter and
// its globals live as long as the session.
type session struct {
	cfg         *config.Config
	logger      *zap.Logger
	reporter    vowel.Reporter
	interpreter *vowel.Interpreter
	stdout      io.Writer
	stderr      io.Writer
}

func newSession(
	cfg *config.Config,
	logger *zap.Logger,
	reporter vowel.Reporter,
	stdout io.Writer,
	stderr io.Writer,
	isREPL bool,
) *session {
	return &session{
		cfg:         cfg,
		logger:      logger,
		reporter:    reporter,
		interpreter: vowel.NewInterpreter(stdout, reporter, isREPL),
		stdout:      stdout,
		stderr:      stderr,
	}
}

// exec runs one source unit, stopping after the first pass that reported an
// error
func (s *session) exec(script string) {
	start := time.Now()
	tokens := vowel.NewScanner([]rune(script), s.reporter).Scan()
	s.logger.Debug("scanned",
		zap.Int("tokens", len(tokens)),
		zap.Duration("elapsed", time.Since(start)),
	)
	if s.reporter.HadError() {
		return
	}

	start = time.Now()
	program := vowel.NewParser(tokens, s.reporter).Parse()
	if s.reporter.HadError() {
		s.logger.Debug("parse failed", zap.Duration("elapsed", time.Since(start)))
		return
	}
	s.logger.Debug("parsed",
		zap.Int("statements", len(program.Stmts)),
		zap.Int("nodes", program.Nodes),
		zap.Duration("elapsed", time.Since(start)),
	)
	if s.cfg.Run.PrintAST {
		fmt.Fprint(s.stdout, new(vowel.AstPrinter).Print(program.Stmts))
		return
	}

	start = time.Now()
	locals := vowel.NewResolver(s.reporter).Resolve(program)
	s.logger.Debug("resolved",
		zap.Bool("failed", s.reporter.HadError()),
		zap.Duration("elapsed", time.Since(start)),
	)
	if s.reporter.HadError() {
		return
	}

	start = time.Now()
	s.interpreter.Interpret(program.Stmts, locals)
	s.logger.Debug("interpreted",
		zap.Bool("failed", s.reporter.HadRuntimeError()),
		zap.Duration("elapsed", time.Since(start)),
	)
}

// Run the given file as script
func runFile(fpath string, s *session) int {
	bytes, err := os.ReadFile(fpath)
	if err != nil {
		fmt.Fprintln(s.stderr, err)
		return exitIOErr
	}
	s.logger.Debug("running file", zap.String("path", fpath), zap.Int("bytes", len(bytes)))

	s.exec(string(bytes))
	if s.reporter.HadError() {
		return exitDataErr
	}
	if s.reporter.HadRuntimeError() {
		return exitSoftware
	}
	return exitOK
}

// Run the interpreter in REPL mode
func runPrompt(s *session) error {
	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	history := s.cfg.REPL.History
	if history != "" {
		if f, err := os.Open(history); err == nil {
			_, _ = line.ReadHistory(f)
			_ = f.Close()
		}
	}

	for {
		input, err := line.Prompt(s.cfg.REPL.Prompt)
		if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return fmt.Errorf("repl: %w", err)
		}
		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		if input == ":quit" {
			break
		}
		line.AppendHistory(input)
		s.exec(input)
		s.reporter.Reset()
	}

	if history != "" {
		f, err := os.Create(history)
		if err != nil {
			return fmt.Errorf("repl: write history: %w", err)
		}
		defer f.Close()
		if _, err := line.WriteHistory(f); err != nil {
			return fmt.Errorf("repl: write history: %w", err)
		}
	}
	return nil
}
