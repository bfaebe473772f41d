package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bibin-skaria/slcheck/checks"
	"github.com/bibin-skaria/slcheck/internal/logging"
	"github.com/bibin-skaria/slcheck/internal/types"
	"github.com/bibin-skaria/slcheck/report"
)

var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "slcheck",
		Short: "Sanity checker for SL1/SL1S print job packages",
		Long: `slcheck validates SL1/SL1S job packages (ZIP archives produced by
slicers) before they are sent to a printer. It checks archive structure,
required configuration entries, layer image naming and numbering, and the
consistency between config.ini and the layer image set.`,
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", Version, GitCommit, BuildDate),
	}

	cmd.AddCommand(newValidateCommand())
	cmd.AddCommand(newInspectCommand())

	return cmd
}

func newValidateCommand() *cobra.Command {
	var (
		format    string
		rulesFile string
		logLevel  string
		quiet     bool
		strict    bool
	)

	cmd := &cobra.Command{
		Use:   "validate <file>",
		Short: "Validate a job package",
		Long: `Validate a job package against structure, naming, and consistency
rules. All problems are collected and reported together; the exit code is 0
when no fatal errors were found and 1 otherwise.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logging.New()
			if logLevel != "" {
				log.SetLevel(logLevel)
			}

			rules, err := loadRules(rulesFile)
			if err != nil {
				return err
			}

			renderer, err := report.GetRenderer(format)
			if err != nil {
				return err
			}

			validator := checks.NewValidator(rules, log)
			rep := validator.ValidateFile(args[0])

			if err := renderer.Render(os.Stdout, rep, report.RenderOptions{Quiet: quiet}); err != nil {
				return fmt.Errorf("failed to render report: %v", err)
			}

			if !rep.Passed() || (strict && len(rep.Warnings()) > 0) {
				// The report already explains the failure; suppress cobra's
				// usage echo and just carry the exit code.
				cmd.SilenceUsage = true
				cmd.SilenceErrors = true
				return fmt.Errorf("validation failed")
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "text", "Output format (text, json, yaml)")
	cmd.Flags().StringVar(&rulesFile, "rules", "", "Path to a YAML rules file overriding the defaults")
	cmd.Flags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Suppress warnings in text output")
	cmd.Flags().BoolVar(&strict, "strict", false, "Treat warnings as errors for the exit code")

	return cmd
}

func newInspectCommand() *cobra.Command {
	var (
		rulesFile string
	)

	cmd := &cobra.Command{
		Use:   "inspect <file>",
		Short: "Print job metadata without validating",
		Long: `Inspect prints the job name, declared and observed layer counts,
and the layer index range of a package without judging it.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rules, err := loadRules(rulesFile)
			if err != nil {
				return err
			}

			validator := checks.NewValidator(rules, logging.New())
			summary, err := validator.Inspect(args[0])
			if err != nil {
				return fmt.Errorf("failed to inspect %s: %v", args[0], err)
			}

			fmt.Printf("File: %s\n", summary.File)
			fmt.Printf("Entries: %d\n", summary.Entries)
			if summary.JobName != "" {
				fmt.Printf("Job name: %s\n", summary.JobName)
			}
			if summary.DeclaredLayers != "" {
				fmt.Printf("Declared layers: %s\n", summary.DeclaredLayers)
			}
			fmt.Printf("Layer images: %d\n", summary.LayerCount)
			if summary.MinIndex >= 0 {
				fmt.Printf("Index range: %05d - %05d\n", summary.MinIndex, summary.MaxIndex)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&rulesFile, "rules", "", "Path to a YAML rules file overriding the defaults")

	return cmd
}

func loadRules(path string) (types.RuleSet, error) {
	if path == "" {
		return types.DefaultRuleSet(), nil
	}
	return types.LoadRuleSet(path)
}
