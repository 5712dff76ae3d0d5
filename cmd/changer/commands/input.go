package commands

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"
)

// readInput returns the contents of file, or stdin when file is empty
func readInput(cmd *cobra.Command, file string) (string, error) {
	if file == "" {
		b, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", errors.Errorf("reading stdin: %w", err)
		}
		return string(b), nil
	}
	b, err := os.ReadFile(file)
	if err != nil {
		return "", errors.Errorf("reading %s: %w", file, err)
	}
	return string(b), nil
}

// readOptionalFile is readInput for the interactive shells, where a missing
// file starts an empty buffer
func readOptionalFile(file string) (string, error) {
	if file == "" {
		return "", nil
	}
	b, err := os.ReadFile(file)
	if errors.Is(err, os.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", errors.Errorf("reading %s: %w", file, err)
	}
	return string(b), nil
}
