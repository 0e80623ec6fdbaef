package main

import (
	"os"

	"github.com/spf13/cobra"
)

const doc = `sysfirst is a linter that checks using directive ordering: System namespaces first`

var rootCmd = &cobra.Command{
	Use:           "sysfirst",
	Short:         doc,
	SilenceUsage:  true,
	SilenceErrors: false,
}

func main() {
	rootCmd.AddCommand(checkCmd, rulesCmd, versionCmd)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
