package main

import (
	"github.com/spf13/cobra"

	"github.com/itsatony/go-replvars"
)

// renderConfig holds parsed render command configuration
type renderConfig struct {
	templatePath string
	snapshotPath string
	outputPath   string
}

func newRenderCmd(env *cliEnv) *cobra.Command {
	cfg := &renderConfig{}
	cmd := &cobra.Command{
		Use:     CmdNameRender,
		Short:   RenderShort,
		Example: RenderExample,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRender(cmd, env, cfg)
		},
	}

	cmd.Flags().StringVarP(&cfg.templatePath, FlagTemplate, FlagTemplateShort, "", `template file (use "-" for stdin)`)
	cmd.Flags().StringVarP(&cfg.snapshotPath, FlagSnapshot, FlagSnapshotShort, "", "post snapshot YAML file")
	cmd.Flags().StringVarP(&cfg.outputPath, FlagOutput, FlagOutputShort, FlagDefaultOutput, "output file")
	return cmd
}

func runRender(cmd *cobra.Command, env *cliEnv, cfg *renderConfig) error {
	tmpl, err := readTemplate(cfg.templatePath, env.stdin)
	if err != nil {
		return err
	}
	snap, err := loadSnapshot(cfg.snapshotPath)
	if err != nil {
		return err
	}
	opts, _, logger, err := env.options()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	ctx := cmd.Context()
	rc := snap.Context()
	exp, err := replvars.New(ctx, snap, rc, opts...)
	if err != nil {
		return fail(ExitCodeError, ErrMsgSetupFailed, err)
	}

	out := exp.Expand(ctx, tmpl, rc)
	if err := writeOutput(cfg.outputPath, []byte(out), env.stdout); err != nil {
		return fail(ExitCodeError, ErrMsgWriteOutputFailed, err)
	}
	return nil
}
