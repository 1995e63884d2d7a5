// Package main provides the CLI entry point for rmsecurve.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/ukaji3/rmsecurve-go/pkg/rmsecurve"
	"github.com/ukaji3/rmsecurve-go/pkg/rmsecurve/models"
	"github.com/ukaji3/rmsecurve-go/pkg/rmsecurve/output"
)

type flags struct {
	configPath string
	sheets     []string
	tests      int
	rows       int
	scriptName string
	outputDir  string
	asJSON     bool
	pretty     bool
	logLevel   string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var fl flags

	rootCmd := &cobra.Command{
		Use:   "rmsecurve [input.xlsx]",
		Short: "Compare simulated curves in a workbook against experimental data",
		Long: `rmsecurve reads the OL and OT curves of every test from the given sheets,
computes the RMSE against the experimental reference over the first 6, 7 and 8
points, and writes one summary workbook per sheet.`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, fl)
		},
	}

	def := rmsecurve.DefaultConfig()
	rootCmd.Flags().StringVarP(&fl.configPath, "config", "c", "", "YAML config file")
	rootCmd.Flags().StringSliceVarP(&fl.sheets, "sheet", "s", def.SheetNames, "Sheet to process (repeatable)")
	rootCmd.Flags().IntVar(&fl.tests, "tests", def.Tests, "Number of tests per sheet")
	rootCmd.Flags().IntVar(&fl.rows, "rows", def.Rows, "Data rows per test")
	rootCmd.Flags().StringVar(&fl.scriptName, "script-name", def.ScriptName, "Prefix of output file names")
	rootCmd.Flags().StringVarP(&fl.outputDir, "output-dir", "o", def.OutputDir, "Directory for result workbooks")
	rootCmd.Flags().BoolVar(&fl.asJSON, "json", false, "Also print the summary as JSON")
	rootCmd.Flags().BoolVar(&fl.pretty, "pretty", false, "Pretty-print JSON output")
	rootCmd.Flags().StringVar(&fl.logLevel, "log-level", "warn", "Log level: debug, info, warn, error")

	return rootCmd
}

func run(cmd *cobra.Command, args []string, fl flags) error {
	logger, err := newLogger(cmd.ErrOrStderr(), fl.logLevel)
	if err != nil {
		return err
	}

	cfg, err := rmsecurve.LoadConfig(fl.configPath)
	if err != nil {
		return err
	}
	applyFlags(cmd, args, fl, &cfg)

	out := cmd.OutOrStdout()
	results, err := rmsecurve.Run(cfg, logger, func(res models.SheetResult) {
		fmt.Fprintln(out, confirmation(res))
	})
	if err != nil {
		return fmt.Errorf("rmse computation failed: %w", err)
	}

	if fl.asJSON {
		jsonData, err := output.ToJSON(results, fl.pretty)
		if err != nil {
			return fmt.Errorf("serialization failed: %w", err)
		}
		fmt.Fprintln(out, string(jsonData))
	}
	return nil
}

// applyFlags overrides cfg with the arguments and flags given explicitly.
func applyFlags(cmd *cobra.Command, args []string, fl flags, cfg *rmsecurve.Config) {
	if len(args) == 1 {
		cfg.FilePath = args[0]
	}
	f := cmd.Flags()
	if f.Changed("sheet") {
		cfg.SheetNames = fl.sheets
	}
	if f.Changed("tests") {
		cfg.Tests = fl.tests
	}
	if f.Changed("rows") {
		cfg.Rows = fl.rows
	}
	if f.Changed("script-name") {
		cfg.ScriptName = fl.scriptName
	}
	if f.Changed("output-dir") {
		cfg.OutputDir = fl.outputDir
	}
}

func confirmation(res models.SheetResult) string {
	return fmt.Sprintf("RMSE values for sheet %s exported to %s.",
		sheetStyle.Render("'"+res.SheetName+"'"),
		pathStyle.Render("'"+res.OutputPath+"'"))
}
