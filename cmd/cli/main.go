package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"solar-calculator/internal/calculator"
	"solar-calculator/internal/config"
	"solar-calculator/internal/model"
	"solar-calculator/internal/report"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var cfgPath string

	rootCmd := &cobra.Command{
		Use:          "solarcalc",
		Short:        "Size solar systems against monthly consumption and export the projections",
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "Path to YAML config (optional)")

	load := func() (*config.Config, *calculator.Calculator, error) {
		cfg, err := config.Load(cfgPath)
		if err != nil {
			return nil, nil, err
		}
		calc, err := cfg.Calculator()
		if err != nil {
			return nil, nil, err
		}
		return cfg, calc, nil
	}

	rootCmd.AddCommand(categoriesCmd(load))
	rootCmd.AddCommand(recommendCmd(load))
	rootCmd.AddCommand(reportCmd(load))
	return rootCmd
}

type loader func() (*config.Config, *calculator.Calculator, error)

func categoriesCmd(load loader) *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List property categories and available system sizes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, calc, err := load()
			if err != nil {
				return err
			}
			printCategories(cmd.OutOrStdout(), calc)
			return nil
		},
	}
}

func recommendCmd(load loader) *cobra.Command {
	var consumption, category string

	cmd := &cobra.Command{
		Use:   "recommend",
		Short: "Show eligible systems and their projected benefits",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, calc, err := load()
			if err != nil {
				return err
			}
			rec, err := recommend(calc, consumption, category)
			if err != nil {
				return err
			}
			printRecommendation(cmd.OutOrStdout(), rec)
			return nil
		},
	}
	cmd.Flags().StringVar(&consumption, "consumption", "", "Monthly electricity consumption (units)")
	cmd.Flags().StringVar(&category, "category", string(model.DefaultCategory), "Property category (slug or label)")
	_ = cmd.MarkFlagRequired("consumption")
	return cmd
}

func reportCmd(load loader) *cobra.Command {
	var consumption, category, outPath, format string

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Write the results as a PDF (or CSV) document",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, calc, err := load()
			if err != nil {
				return err
			}
			f, err := report.ParseFormat(format)
			if err != nil {
				return err
			}
			rec, err := recommend(calc, consumption, category)
			if err != nil {
				return err
			}
			if len(rec.Systems) == 0 {
				return errors.New(model.NoSystemsMessage)
			}
			if outPath == "" {
				outPath = f.Filename()
			}
			if err := writeReport(outPath, f, rec); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d systems to %s\n", len(rec.Systems), outPath)
			return nil
		},
	}
	cmd.Flags().StringVar(&consumption, "consumption", "", "Monthly electricity consumption (units)")
	cmd.Flags().StringVar(&category, "category", string(model.DefaultCategory), "Property category (slug or label)")
	cmd.Flags().StringVar(&outPath, "out", "", "Output path (default solar_calculator_results.<format>)")
	cmd.Flags().StringVar(&format, "format", "pdf", "Document format: pdf or csv")
	_ = cmd.MarkFlagRequired("consumption")
	return cmd
}

func recommend(calc *calculator.Calculator, consumption, category string) (model.Recommendation, error) {
	// Unlike the page field, a blank flag is not "unset": it is rejected.
	value, err := calculator.ParseConsumption(consumption)
	if err != nil {
		return model.Recommendation{}, err
	}
	cat, err := model.ParseCategory(category)
	if err != nil {
		return model.Recommendation{}, err
	}
	return calc.Recommend(cat, value), nil
}

func writeReport(path string, f report.Format, rec model.Recommendation) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := f.Write(out, rec); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
