package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/accrava/dartvet/internal/logcheck"
)

func init() {
	cmd := &cobra.Command{
		Use:   "logs [file]",
		Short: "Analyze a Flutter/Android runtime log for error patterns",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runLogs,
	}
	rootCmd.AddCommand(cmd)
}

func runLogs(_ *cobra.Command, args []string) error {
	var in io.Reader = os.Stdin
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("cannot read log: %w", err)
		}
		defer f.Close()
		in = f
	} else {
		fmt.Fprintln(os.Stderr, "reading log from stdin (Ctrl+D to end)...")
	}

	rep, err := logcheck.Analyze(in)
	if err != nil {
		return fmt.Errorf("analyze log: %w", err)
	}
	logcheck.Print(os.Stdout, rep)

	if rep.Failed() {
		os.Exit(1)
	}
	return nil
}
