package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/itsatony/go-replvars"
)

type tokensConfig struct {
	snapshotPath string
	format       string
}

type tokenOutput struct {
	Name        string `json:"name"`
	Variable    string `json:"variable"`
	DisplayName string `json:"display_name"`
	Description string `json:"description"`
	Example     string `json:"example"`
}

func newTokensCmd(env *cliEnv) *cobra.Command {
	cfg := &tokensConfig{}
	cmd := &cobra.Command{
		Use:   CmdNameTokens,
		Short: TokensShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTokens(cmd, env, cfg)
		},
	}

	cmd.Flags().StringVarP(&cfg.snapshotPath, FlagSnapshot, FlagSnapshotShort, "", "post snapshot YAML file for live examples")
	cmd.Flags().StringVarP(&cfg.format, FlagFormat, FlagFormatShort, FlagDefaultFormat, "output format: text, json")
	return cmd
}

func runTokens(cmd *cobra.Command, env *cliEnv, cfg *tokensConfig) error {
	if err := validateFormat(cfg.format); err != nil {
		return err
	}
	snap, err := loadSnapshot(cfg.snapshotPath)
	if err != nil {
		return err
	}
	opts, _, _, err := env.options()
	if err != nil {
		return err
	}

	exp, err := replvars.New(cmd.Context(), snap, snap.Context(), opts...)
	if err != nil {
		return fail(ExitCodeError, ErrMsgSetupFailed, err)
	}
	defs := exp.Registry().List()

	if cfg.format == OutputFormatJSON {
		out := make([]tokenOutput, 0, len(defs))
		for _, def := range defs {
			out = append(out, tokenOutput{
				Name:        def.Name,
				Variable:    def.Variable(),
				DisplayName: def.DisplayName,
				Description: def.Description,
				Example:     def.Example,
			})
		}
		enc := json.NewEncoder(env.stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(out); err != nil {
			return fail(ExitCodeError, ErrMsgWriteOutputFailed, err)
		}
		return nil
	}

	for _, def := range defs {
		fmt.Fprintf(env.stdout, TokensTextFormat, def.Variable(), def.DisplayName, def.Example)
	}
	return nil
}
