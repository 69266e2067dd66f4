package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/piigate/piigate/internal/types"
)

func init() {
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "List detected PII categories",
		Run: func(_ *cobra.Command, _ []string) {
			for _, c := range types.Categories {
				fmt.Printf("%-10s weight=%.1f mask=%s\n", c, c.Weight(), c.Token())
			}
		},
	}
	rootCmd.AddCommand(cmd)
}
