package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sirkon/sysfirst/internal/usorules"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "List the rules sysfirst enforces",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, r := range usorules.All() {
			fmt.Printf("%s [%s]\n    %s\n", r, r.Category(), r.Description())
		}

		return nil
	},
}
