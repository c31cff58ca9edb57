package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/itsatony/go-replvars"
)

type toolsConfig struct {
	driver string
	dsn    string
	format string
	yes    bool
}

func newToolsCmd(env *cliEnv) *cobra.Command {
	cfg := &toolsConfig{}
	cmd := &cobra.Command{
		Use:   CmdNameTools,
		Short: ToolsShort,
	}
	cmd.PersistentFlags().StringVar(&cfg.driver, FlagDriver, "", "tool store driver (overrides configuration)")
	cmd.PersistentFlags().StringVar(&cfg.dsn, FlagDSN, "", "tool store connection string (overrides configuration)")

	list := &cobra.Command{
		Use:   CmdNameList,
		Short: ToolsList,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runToolsList(cmd, env, cfg)
		},
	}
	list.Flags().StringVarP(&cfg.format, FlagFormat, FlagFormatShort, FlagDefaultFormat, "output format: text, json")

	runCmd := &cobra.Command{
		Use:   CmdNameRun + " <tool-id>",
		Short: ToolsRun,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runToolsRun(cmd, env, cfg, args[0])
		},
	}
	runCmd.Flags().BoolVarP(&cfg.yes, FlagYes, FlagYesShort, false, "confirm irreversible tools")

	cmd.AddCommand(list, runCmd)
	return cmd
}

// openRunner opens the configured tool store and wraps it in a runner.
func openRunner(env *cliEnv, cfg *toolsConfig) (*replvars.ToolRunner, replvars.ToolStore, error) {
	_, fileCfg, logger, err := env.options()
	if err != nil {
		return nil, nil, err
	}
	storeCfg := fileCfg.Tools
	if cfg.driver != "" {
		storeCfg.Driver = cfg.driver
	}
	if cfg.dsn != "" {
		storeCfg.DSN = cfg.dsn
	}

	store, err := replvars.OpenToolStore(storeCfg)
	if err != nil {
		return nil, nil, fail(ExitCodeError, ErrMsgOpenStoreFailed, err)
	}
	return replvars.NewToolRunner(store, replvars.WithToolLogger(logger)), store, nil
}

func runToolsList(cmd *cobra.Command, env *cliEnv, cfg *toolsConfig) error {
	if err := validateFormat(cfg.format); err != nil {
		return err
	}
	runner, store, err := openRunner(env, cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	tools, err := runner.Tools(cmd.Context())
	if err != nil {
		return fail(ExitCodeError, ErrMsgToolFailed, err)
	}

	if cfg.format == OutputFormatJSON {
		enc := json.NewEncoder(env.stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(tools); err != nil {
			return fail(ExitCodeError, ErrMsgWriteOutputFailed, err)
		}
		return nil
	}

	for _, tool := range tools {
		fmt.Fprintf(env.stdout, ToolsTextFormat, tool.ID, tool.Description)
		if tool.ConfirmText != "" {
			fmt.Fprintf(env.stdout, ToolsTextConfirm, "", tool.ConfirmText)
		}
	}
	return nil
}

func runToolsRun(cmd *cobra.Command, env *cliEnv, cfg *toolsConfig, id string) error {
	runner, store, err := openRunner(env, cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	result, err := runner.Run(cmd.Context(), id, replvars.RunOptions{Confirmed: cfg.yes})
	if err != nil {
		return fail(ExitCodeError, ErrMsgToolFailed, err)
	}
	fmt.Fprintln(env.stdout, result.Message)
	return nil
}
