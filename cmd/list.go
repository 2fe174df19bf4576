package cmd

import (
	"fmt"

	"github.com/adamsitnik/ClonePlayground/internal/variants"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List benchmark groups and their variants",
	RunE: func(cmd *cobra.Command, args []string) error {
		// Groups are listed without binding them to real input.
		for _, g := range variants.Groups(nil) {
			fmt.Fprintln(cmd.OutOrStdout(), g.Name)
			for _, v := range g.Variants {
				fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", v.Name)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
