package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/peterh/liner"
	"go.uber.org/zap"

	"github.com/fzft/go-genset/log"
)

const (
	GensetHistFileEnv     = "GENSET_HISTFILE"
	GensetHistFileDefault = ".genset_history"
)

// CliConfig carries the command-line options of the genset shell.
type CliConfig struct {
	Quiet          bool   // only errors on the terminal
	OrderedDefault bool   // `new` creates ordered sets unless told otherwise
	ScriptFile     string // -f: run commands from a file
	Eval           string // -c: run a single command and exit
	ShowHelp       bool
	ShowVersion    bool
	AppVersion     string // stamped by main

	prompt string
}

// ParseArgs parses argv into a CliConfig.
func ParseArgs(argv []string) (*CliConfig, error) {
	cfg := &CliConfig{prompt: "genset> ", AppVersion: "unknown"}
	for i := 0; i < len(argv); i++ {
		switch argv[i] {
		case "-f":
			i++
			if i >= len(argv) {
				return nil, fmt.Errorf("-f requires a file argument")
			}
			cfg.ScriptFile = argv[i]
		case "-c":
			i++
			if i >= len(argv) {
				return nil, fmt.Errorf("-c requires a command argument")
			}
			cfg.Eval = argv[i]
		case "--quiet":
			cfg.Quiet = true
		case "--ordered":
			cfg.OrderedDefault = true
		case "-v", "--version":
			cfg.ShowVersion = true
		case "-h", "--help":
			cfg.ShowHelp = true
		default:
			return nil, fmt.Errorf("unknown option %q", argv[i])
		}
	}
	return cfg, nil
}

func Usage(out io.Writer) {
	fmt.Fprint(out, `Usage: genset [OPTIONS]
  -f <file>      Run commands from <file> (errors are collected, not fatal).
  -c <command>   Run a single command and exit.
  --ordered      Make 'new' create ordered sets by default.
  --quiet        Only log errors.
  -v, --version  Print version and exit.
  -h, --help     Print this help and exit.

With no options, starts an interactive shell; when stdin is not a tty,
commands are read line by line instead. Try 'help' inside the shell.
`)
}

// Cli is the interactive set shell.
type Cli struct {
	config *CliConfig
	ctx    *CliContext
	out    io.Writer
}

func NewCli(cfg *CliConfig) *Cli {
	return &Cli{
		config: cfg,
		ctx:    &CliContext{store: NewStore(), cfg: cfg},
		out:    os.Stdout,
	}
}

// Run dispatches to one-shot, interactive, or pipe mode.
func (cli *Cli) Run() error {
	if cli.config.Eval != "" {
		err := cli.execLine(cli.config.Eval)
		if err == errExit {
			return nil
		}
		return err
	}
	if isatty.IsTerminal(os.Stdin.Fd()) {
		return cli.repl()
	}
	return cli.execStream(os.Stdin, nil)
}

func (cli *Cli) repl() error {
	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	histFile := historyPath()
	if f, err := os.Open(histFile); err == nil {
		line.ReadHistory(f)
		f.Close()
	}

	for {
		input, err := line.Prompt(cli.config.prompt)
		if err == liner.ErrPromptAborted || err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		line.AppendHistory(input)
		if err := cli.execLine(input); err != nil {
			if err == errExit {
				break
			}
			fmt.Fprintf(cli.out, "(error) %v\n", err)
		}
	}

	if f, err := os.Create(histFile); err == nil {
		line.WriteHistory(f)
		f.Close()
	} else {
		logger().Warn("cannot save history", zap.String("path", histFile), zap.Error(err))
	}
	return nil
}

// RunScript executes commands from path, collecting per-line failures so the
// whole script is reported, not just the first bad line.
func (cli *Cli) RunScript(path string) []error {
	f, err := os.Open(path)
	if err != nil {
		return []error{err}
	}
	defer f.Close()

	var errs []error
	err = cli.execStream(f, func(lineNo int, lineErr error) {
		errs = append(errs, fmt.Errorf("line %d: %w", lineNo, lineErr))
	})
	if err != nil {
		errs = append(errs, err)
	}
	return errs
}

// execStream runs commands line by line. Blank lines and #-comments are
// skipped. onErr nil means failures are printed to the output instead.
func (cli *Cli) execStream(r io.Reader, onErr func(lineNo int, err error)) error {
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		if err := cli.execLine(text); err != nil {
			if err == errExit {
				return nil
			}
			if onErr != nil {
				onErr(lineNo, err)
			} else {
				fmt.Fprintf(cli.out, "(error) %v\n", err)
			}
		}
	}
	return scanner.Err()
}

func (cli *Cli) execLine(input string) error {
	args := strings.Fields(input)
	if len(args) == 0 {
		return nil
	}
	name := strings.ToLower(args[0])
	command, ok := commandTable[name]
	if !ok {
		return fmt.Errorf("unknown command %q, try 'help'", name)
	}
	rest := args[1:]
	if len(rest) < command.minArgs || (command.maxArgs >= 0 && len(rest) > command.maxArgs) {
		return fmt.Errorf("wrong number of arguments, usage: %s", command.usage)
	}
	out, err := command.proc(cli.ctx, rest)
	if err != nil {
		return err
	}
	if out != "" {
		fmt.Fprintln(cli.out, out)
	}
	return nil
}

func historyPath() string {
	if p := os.Getenv(GensetHistFileEnv); p != "" {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return GensetHistFileDefault
	}
	return filepath.Join(home, GensetHistFileDefault)
}

func logger() *zap.Logger {
	if log.Logger != nil {
		return log.Logger
	}
	return zap.NewNop()
}
