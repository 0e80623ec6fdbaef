package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sirkon/sysfirst/internal/config"
	"github.com/sirkon/sysfirst/internal/driver"
	"github.com/sirkon/sysfirst/internal/render"
)

var checkCmd = &cobra.Command{
	Use:   "check [paths…]",
	Short: "Check using directive ordering in files or directories",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runCheck,
}

func init() {
	checkCmd.Flags().String("config", "", "config file path (default: "+config.DefaultFileName+" if present)")
	checkCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	checkCmd.Flags().Int("jobs", 0, "max parallel workers (0=auto, overrides config)")
	checkCmd.Flags().Bool("strict", false, "treat warnings as errors for the exit status")
	checkCmd.Flags().Bool("no-color", false, "disable colored output")
}

var errProblemsFound = errors.New("problems found")

func runCheck(cmd *cobra.Command, args []string) error {
	cfgPath, _ := cmd.Flags().GetString("config")
	format, _ := cmd.Flags().GetString("format")
	jobs, _ := cmd.Flags().GetInt("jobs")
	strict, _ := cmd.Flags().GetBool("strict")
	noColor, _ := cmd.Flags().GetBool("no-color")

	cfg, err := config.Discover(cfgPath)
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}
	if jobs > 0 {
		cfg.Jobs = jobs
	}

	reg := driver.DefaultRegistry(driver.RulesGate{
		SystemFirstEnabled:  cfg.Rules.SystemFirst.Enabled(),
		SystemFirstSeverity: cfg.Rules.SystemFirst.EffectiveSeverity(),
	})

	res, err := driver.Run(cmd.Context(), args, cfg, reg)
	if err != nil {
		return fmt.Errorf("run checks: %w", err)
	}

	switch format {
	case "pretty":
		err = render.Pretty(os.Stdout, res, !noColor)
	case "json":
		err = render.JSON(os.Stdout, res)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
	if err != nil {
		return fmt.Errorf("render results: %w", err)
	}

	if res.Bag.HasErrors() || (strict && res.Bag.HasWarnings()) {
		rootCmd.SilenceErrors = true
		return errProblemsFound
	}

	return nil
}
