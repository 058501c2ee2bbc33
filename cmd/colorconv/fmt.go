package main

import (
	"fmt"
	"io"
	"os"

	"github.com/jsvensson/colorconv/internal/format"
	"github.com/spf13/cobra"
)

var flagCheck bool

var fmtCmd = &cobra.Command{
	Use:   "fmt [files...]",
	Short: "Format palette and profile files",
	Long: `Rewrite HCL palette and profile files in canonical form: hex literals
in lowercase six-digit form, channels of maximums blocks in model order, and
standard HCL alignment. Files that changed are listed on stdout.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runFmt,
}

func init() {
	fmtCmd.Flags().BoolVarP(&flagCheck, "check", "c", false, "check if files are formatted (do not write changes)")
}

func runFmt(cmd *cobra.Command, args []string) error {
	needsFormatting, hasErrors := formatFiles(cmd.OutOrStdout(), cmd.ErrOrStderr(), args, flagCheck)
	if hasErrors || (flagCheck && needsFormatting) {
		os.Exit(1)
	}
	return nil
}

// formatFiles formats each path in place, or only reports it when check is
// set. Paths that are not formatted are printed to stdout.
func formatFiles(stdout, stderr io.Writer, paths []string, check bool) (needsFormatting, hasErrors bool) {
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintf(stderr, "Error reading %s: %v\n", path, err)
			hasErrors = true
			continue
		}

		content := string(data)
		formatted, err := format.Format(content)
		if err != nil {
			fmt.Fprintf(stderr, "Error formatting %s: %v\n", path, err)
			hasErrors = true
			continue
		}

		if formatted == content {
			continue
		}

		fmt.Fprintln(stdout, path)
		needsFormatting = true

		if !check {
			if err := os.WriteFile(path, []byte(formatted), 0o644); err != nil {
				fmt.Fprintf(stderr, "Error writing %s: %v\n", path, err)
				hasErrors = true
			}
		}
	}
	return needsFormatting, hasErrors
}
