package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/itsatony/go-replvars"
)

// analyzeConfig holds parsed analyze command configuration
type analyzeConfig struct {
	templatePath string
	format       string
	strict       bool
}

// analyzeOutput is the JSON form of an analysis
type analyzeOutput struct {
	Valid      bool              `json:"valid"`
	References []referenceOutput `json:"references"`
	Unknown    []string          `json:"unknown,omitempty"`
	Warnings   []string          `json:"warnings,omitempty"`
}

type referenceOutput struct {
	Name        string            `json:"name"`
	Text        string            `json:"text"`
	Arguments   map[string]string `json:"arguments,omitempty"`
	Line        int               `json:"line"`
	Column      int               `json:"column"`
	Registered  bool              `json:"registered"`
	Suggestions []string          `json:"suggestions,omitempty"`
}

func newAnalyzeCmd(env *cliEnv) *cobra.Command {
	cfg := &analyzeConfig{}
	cmd := &cobra.Command{
		Use:     CmdNameAnalyze,
		Short:   AnalyzeShort,
		Example: AnalyzeExample,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runAnalyze(cmd, env, cfg)
		},
	}

	cmd.Flags().StringVarP(&cfg.templatePath, FlagTemplate, FlagTemplateShort, "", `template file (use "-" for stdin)`)
	cmd.Flags().StringVarP(&cfg.format, FlagFormat, FlagFormatShort, FlagDefaultFormat, "output format: text, json")
	cmd.Flags().BoolVar(&cfg.strict, FlagStrict, false, "exit non-zero when unknown variables are referenced")
	return cmd
}

func runAnalyze(cmd *cobra.Command, env *cliEnv, cfg *analyzeConfig) error {
	if err := validateFormat(cfg.format); err != nil {
		return err
	}
	tmpl, err := readTemplate(cfg.templatePath, env.stdin)
	if err != nil {
		return err
	}
	opts, _, _, err := env.options()
	if err != nil {
		return err
	}

	exp, err := replvars.New(cmd.Context(), nil, nil, opts...)
	if err != nil {
		return fail(ExitCodeError, ErrMsgSetupFailed, err)
	}
	result := exp.Analyze(tmpl)

	if cfg.format == OutputFormatJSON {
		err = writeAnalyzeJSON(env.stdout, result)
	} else {
		writeAnalyzeText(env.stdout, result)
	}
	if err != nil {
		return fail(ExitCodeError, ErrMsgWriteOutputFailed, err)
	}

	if cfg.strict && !result.Valid() {
		return fail(ExitCodeValidationError, ErrMsgUnknownTokens, nil)
	}
	return nil
}

func writeAnalyzeText(w io.Writer, result replvars.AnalyzeResult) {
	for _, ref := range result.References {
		tag := ""
		if !ref.Registered {
			tag = AnalyzeTextUnknownTag
		}
		fmt.Fprintf(w, AnalyzeTextRefFormat, ref.Text, ref.Line, ref.Column, tag)
	}
	for _, warning := range result.Warnings {
		fmt.Fprintln(w, WarningPrefix+warning)
	}
	if result.Valid() {
		fmt.Fprintln(w, AnalyzeTextValid)
	}
	fmt.Fprintf(w, AnalyzeTextSummary, len(result.References), len(result.Unknown))
}

func writeAnalyzeJSON(w io.Writer, result replvars.AnalyzeResult) error {
	out := analyzeOutput{
		Valid:      result.Valid(),
		References: make([]referenceOutput, 0, len(result.References)),
		Unknown:    result.Unknown,
		Warnings:   result.Warnings,
	}
	for _, ref := range result.References {
		out.References = append(out.References, referenceOutput{
			Name:        ref.Name,
			Text:        ref.Text,
			Arguments:   ref.Arguments,
			Line:        ref.Line,
			Column:      ref.Column,
			Registered:  ref.Registered,
			Suggestions: ref.Suggestions,
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
