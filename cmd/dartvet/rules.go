package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/accrava/dartvet/internal/rules"
)

func init() {
	cmd := &cobra.Command{
		Use:   "rules",
		Short: "List rules in evaluation order",
		Run: func(_ *cobra.Command, _ []string) {
			for _, r := range rules.All() {
				fmt.Printf("%-24s %-7s %-18s %s\n", r.ID, r.Severity, r.Category, r.Doc)
			}
		},
	}
	rootCmd.AddCommand(cmd)
}
