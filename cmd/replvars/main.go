package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/itsatony/go-replvars"
)

func main() {
	exitCode := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	os.Exit(exitCode)
}

// exitError carries the process exit code of a failed command.
type exitError struct {
	code int
	msg  string
	err  error
}

func (e *exitError) Error() string {
	if e.err == nil {
		return e.msg
	}
	return fmt.Sprintf("%s: %v", e.msg, e.err)
}

func (e *exitError) Unwrap() error {
	return e.err
}

func fail(code int, msg string, err error) error {
	return &exitError{code: code, msg: msg, err: err}
}

// run is the main entry point for the CLI, separated for testing
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	root := newRootCmd(stdin, stdout, stderr)
	root.SetArgs(args)

	err := root.Execute()
	if err == nil {
		return ExitCodeSuccess
	}

	fmt.Fprintln(stderr, err)
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	// flag and argument errors raised by cobra
	return ExitCodeUsageError
}

// cliEnv holds what every subcommand needs.
type cliEnv struct {
	stdin      io.Reader
	stdout     io.Writer
	stderr     io.Writer
	configPath string
	verbose    bool
}

func newRootCmd(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	env := &cliEnv{stdin: stdin, stdout: stdout, stderr: stderr}

	root := &cobra.Command{
		Use:           CLIName,
		Short:         CLIShort,
		Long:          CLILong,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	root.PersistentFlags().StringVarP(&env.configPath, FlagConfig, FlagConfigShort, "", "YAML configuration file")
	root.PersistentFlags().BoolVarP(&env.verbose, FlagVerbose, FlagVerboseShort, false, "log debug output to stderr")

	root.AddCommand(
		newRenderCmd(env),
		newAnalyzeCmd(env),
		newTokensCmd(env),
		newToolsCmd(env),
		newVersionCmd(env),
	)
	return root
}

// config loads the configuration file, or the defaults when none is given.
func (e *cliEnv) config() (*replvars.Config, error) {
	if e.configPath == "" {
		return replvars.DefaultConfig(), nil
	}
	cfg, err := replvars.LoadConfig(e.configPath)
	if err != nil {
		return nil, fail(ExitCodeInputError, ErrMsgLoadConfigFailed, err)
	}
	return cfg, nil
}

func (e *cliEnv) logger() (*zap.Logger, error) {
	if !e.verbose {
		return zap.NewNop(), nil
	}
	logger, err := zap.NewDevelopment()
	if err != nil {
		return nil, fail(ExitCodeError, ErrMsgLoggerFailed, err)
	}
	return logger, nil
}

// options converts the configuration into library options.
func (e *cliEnv) options() ([]replvars.Option, *replvars.Config, *zap.Logger, error) {
	cfg, err := e.config()
	if err != nil {
		return nil, nil, nil, err
	}
	logger, err := e.logger()
	if err != nil {
		return nil, nil, nil, err
	}
	return []replvars.Option{replvars.WithConfig(cfg), replvars.WithLogger(logger)}, cfg, logger, nil
}

func validateFormat(format string) error {
	if format != OutputFormatText && format != OutputFormatJSON {
		return fail(ExitCodeUsageError, ErrMsgInvalidFormat, errors.New(format))
	}
	return nil
}
