// Package main provides the CLI entrypoint for hsicurve.
package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/hsicurve/hsi"
	"github.com/katalvlaran/hsicurve/internal/config"
	"github.com/katalvlaran/hsicurve/internal/rangecsv"
	"github.com/katalvlaran/hsicurve/internal/report"
)

var (
	tablesDir  string
	configPath string
	plotsDir   string
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "hsicurve",
		Short:         "Fit habitat-suitability curves from species-preference tables",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.AddCommand(newFitCmd())

	return rootCmd
}

func newFitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fit",
		Short: "Run the four canonical fits (adult/juvenile × depth/velocity)",
		Long: "Loads one CSV preference table per run from --tables " +
			"(adult_depth.csv, adult_velocity.csv, juvenile_depth.csv, " +
			"juvenile_velocity.csv), aggregates each into an empirical " +
			"suitability curve, fits the run's model family and prints the " +
			"fitted parameters with R². Runs are independent: a failed " +
			"combination is reported and the rest proceed.",
		RunE: runFitCmd,
	}
	cmd.Flags().StringVar(&tablesDir, "tables", ".", "directory with <stage>_<variable>.csv preference tables")
	cmd.Flags().StringVar(&configPath, "config", "", "optional TOML overrides for weights and solver caps")
	cmd.Flags().StringVar(&plotsDir, "plots", "", "directory for PNG figures (no figures when empty)")

	return cmd
}

func runFitCmd(cmd *cobra.Command, _ []string) error {
	configs := hsi.DefaultRunConfigs()
	if configPath != "" {
		fileCfg, err := config.LoadConfig(configPath)
		if err != nil {
			return err
		}
		configs = fileCfg.Apply(configs)
	}

	out := cmd.OutOrStdout()
	failed := 0
	for _, cfg := range configs {
		name := config.RunKey(cfg)

		table, err := rangecsv.LoadFile(filepath.Join(tablesDir, name+".csv"))
		if err != nil {
			fmt.Fprintf(out, "%s: skipped: %v\n", name, err)
			failed++

			continue
		}

		res, err := hsi.Run(table, cfg)
		if err != nil {
			// DataError / bound-estimation failures abort this run only.
			fmt.Fprintf(out, "%s: skipped: %v\n", name, err)
			failed++

			continue
		}

		if err := report.WriteSummary(out, cfg, res); err != nil {
			return err
		}
		if plotsDir != "" {
			if err := report.SavePlot(filepath.Join(plotsDir, name+".png"), cfg, res); err != nil {
				return err
			}
		}
	}

	if failed == len(configs) {
		return errors.New("all runs failed")
	}

	return nil
}
