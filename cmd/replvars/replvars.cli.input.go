package main

import (
	"io"
	"os"

	"github.com/itsatony/go-replvars"
)

// readInput reads content from a file or stdin
func readInput(path string, stdin io.Reader) ([]byte, error) {
	if path == InputSourceStdin {
		return io.ReadAll(stdin)
	}

	return os.ReadFile(path)
}

// writeOutput writes content to a file or stdout
func writeOutput(path string, data []byte, stdout io.Writer) error {
	if path == FlagDefaultOutput {
		_, err := stdout.Write(data)
		return err
	}

	return os.WriteFile(path, data, FilePermissions)
}

// readTemplate reads the template named by the --template flag.
func readTemplate(path string, stdin io.Reader) (string, error) {
	if path == "" {
		return "", fail(ExitCodeUsageError, ErrMsgMissingTemplate, nil)
	}
	data, err := readInput(path, stdin)
	if err != nil {
		return "", fail(ExitCodeInputError, ErrMsgReadFileFailed, err)
	}
	return string(data), nil
}

// loadSnapshot reads a post snapshot; no path yields an empty snapshot.
func loadSnapshot(path string) (*replvars.Snapshot, error) {
	if path == "" {
		return &replvars.Snapshot{}, nil
	}
	snap, err := replvars.LoadSnapshot(path)
	if err != nil {
		return nil, fail(ExitCodeInputError, ErrMsgLoadSnapshot, err)
	}
	return snap, nil
}
