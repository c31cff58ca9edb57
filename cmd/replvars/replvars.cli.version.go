package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// versionOutput represents JSON output for version
type versionOutput struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	Branch    string `json:"branch"`
	BuildTime string `json:"build_time"`
	GoVersion string `json:"go_version"`
}

// versionsYAML represents the versions.yaml file structure
type versionsYAML struct {
	Project struct {
		Version string `yaml:"version"`
	} `yaml:"project"`
	Git struct {
		Commit string `yaml:"commit"`
		Branch string `yaml:"branch"`
	} `yaml:"git"`
	Build struct {
		Time      string `yaml:"time"`
		GoVersion string `yaml:"go_version"`
	} `yaml:"build"`
}

// versionFiles are searched in order; the first readable one wins.
var versionFiles = []string{"versions.yaml", "../versions.yaml", "../../versions.yaml"}

func newVersionCmd(env *cliEnv) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   CmdNameVersion,
		Short: VersionShort,
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			if err := validateFormat(format); err != nil {
				return err
			}
			v := getVersionInfo(versionFiles)
			if format == OutputFormatJSON {
				return outputVersionJSON(v, env.stdout)
			}
			outputVersionText(v, env.stdout)
			return nil
		},
	}
	cmd.Flags().StringVarP(&format, FlagFormat, FlagFormatShort, FlagDefaultFormat, "output format: text, json")
	return cmd
}

func getVersionInfo(paths []string) versionOutput {
	v := versionOutput{
		Version:   VersionUnknown,
		Commit:    VersionUnknown,
		Branch:    VersionUnknown,
		BuildTime: VersionUnknown,
		GoVersion: runtime.Version(),
	}

	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		var vy versionsYAML
		if err := yaml.Unmarshal(data, &vy); err != nil {
			continue
		}

		v.Version = vy.Project.Version
		v.Commit = vy.Git.Commit
		v.Branch = vy.Git.Branch
		if vy.Build.Time != "" {
			v.BuildTime = vy.Build.Time
		}
		if vy.Build.GoVersion != "" {
			v.GoVersion = vy.Build.GoVersion
		}
		break
	}
	return v
}

func outputVersionText(v versionOutput, w io.Writer) {
	fmt.Fprintf(w, VersionTextTemplate+FmtNewline, v.Version, v.Commit, v.Branch, v.BuildTime, v.GoVersion)
}

func outputVersionJSON(v versionOutput, w io.Writer) error {
	jsonBytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fail(ExitCodeError, ErrMsgWriteOutputFailed, err)
	}
	fmt.Fprintln(w, string(jsonBytes))
	return nil
}
