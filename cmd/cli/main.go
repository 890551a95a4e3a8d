package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"econdash/internal/compare"
	"econdash/internal/config"
	"econdash/internal/dashboard"
	"econdash/internal/dataset"
	"econdash/internal/forecast"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "econdash-cli",
		Short: "Inspect the economy dataset, forecast model and country comparisons",
	}

	rootCmd.AddCommand(
		newModelCmd(),
		newDataCmd(),
		newDashboardsCmd(),
		newForecastCmd(),
		newCompareCmd(),
		newTrainCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newModelCmd() *cobra.Command {
	var modelFile, dataFile, target string

	cmd := &cobra.Command{
		Use:   "model",
		Short: "Show model diagnostics, optionally scored against the dataset",
		Long: `Load the model bundle, print its diagnostics and the fixed test prediction.

Example: econdash-cli model --evaluate GDP_Growth_Next --data streamlit/global_economy.csv`,
		RunE: func(cmd *cobra.Command, args []string) error {
			bundle, err := forecast.LoadBundle(modelFile)
			if err != nil {
				return err
			}
			out := map[string]interface{}{
				"diagnostics": forecast.Diagnose(bundle),
				"r2":          bundle.R2(),
			}
			if target != "" {
				table, err := dataset.Load(cmd.Context(), dataFile)
				if err != nil {
					return err
				}
				eval, err := forecast.Evaluate(bundle, table, target)
				if err != nil {
					return err
				}
				out["evaluation"] = eval
			}
			return printJSON(out)
		},
	}

	cmd.Flags().StringVar(&modelFile, "model", config.DefaultModelFile, "Model bundle JSON file")
	cmd.Flags().StringVar(&dataFile, "data", config.DefaultCSVFile, "Dataset used with --evaluate")
	cmd.Flags().StringVar(&target, "evaluate", "", "Dataset column holding the observed value to score against")

	return cmd
}

func newDataCmd() *cobra.Command {
	var dataFile string

	cmd := &cobra.Command{
		Use:   "data",
		Short: "Summarize the numeric columns of the dataset (.csv or .xlsx)",
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := dataset.Load(cmd.Context(), dataFile)
			if err != nil {
				return err
			}
			fmt.Printf("Source: %s\n", table.Source)
			fmt.Printf("Rows: %d\n", table.Len())
			fmt.Printf("Columns: %s\n\n", strings.Join(table.Headers, ", "))
			for _, s := range dataset.Summarize(table) {
				fmt.Printf("%-24s n=%-5d mean=%-10.3f median=%-10.3f min=%-10.3f max=%-10.3f sd=%.3f\n",
					s.Name, s.Count, s.Mean, s.Median, s.Min, s.Max, s.StdDev)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&dataFile, "data", config.DefaultCSVFile, "Dataset file")

	return cmd
}

func newDashboardsCmd() *cobra.Command {
	var showEmbed string

	cmd := &cobra.Command{
		Use:   "dashboards",
		Short: "List the published dashboards in selection order",
		RunE: func(cmd *cobra.Command, args []string) error {
			if showEmbed != "" {
				d, ok := dashboard.Default.ByKey(showEmbed)
				if !ok {
					return fmt.Errorf("unknown dashboard %q", showEmbed)
				}
				fmt.Println(d.Embed)
				return nil
			}
			for _, d := range dashboard.Default.All() {
				column := "left"
				if d.Column == dashboard.RightColumn {
					column = "right"
				}
				fmt.Printf("%s  %-32s %-6s %s\n", d.Key, d.Name, column, d.Image)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&showEmbed, "embed", "", "Print the embed markup of one dashboard key")

	return cmd
}

func newForecastCmd() *cobra.Command {
	var modelFile string
	in := forecast.DefaultInput()

	cmd := &cobra.Command{
		Use:   "forecast",
		Short: "Forecast GDP growth from economic indicators",
		Long: `Forecast GDP growth with the model bundle.

Example: econdash-cli forecast --gdp-growth 3.5 --inflation 2 --region Europe`,
		RunE: func(cmd *cobra.Command, args []string) error {
			bundle, err := forecast.LoadBundle(modelFile)
			if err != nil {
				return err
			}
			result, err := forecast.Forecast(bundle, in)
			if err != nil {
				return err
			}
			fmt.Printf("Forecasted Growth: %.2f%% (%+.2f%% vs global average)\n", result.Prediction, result.Delta)
			fmt.Printf("Growth Status: %s\n", result.Status)
			fmt.Println("Key Factors:")
			for _, f := range result.Factors {
				fmt.Printf("  - %s\n", f)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&modelFile, "model", config.DefaultModelFile, "Model bundle JSON file")
	cmd.Flags().Float64Var(&in.GDPGrowth, "gdp-growth", in.GDPGrowth, "GDP growth rate (%)")
	cmd.Flags().Float64Var(&in.InflationRate, "inflation", in.InflationRate, "Inflation rate (%)")
	cmd.Flags().Float64Var(&in.UnemploymentRate, "unemployment", in.UnemploymentRate, "Unemployment rate (%)")
	cmd.Flags().Float64Var(&in.TradeBalance, "trade-balance", in.TradeBalance, "Trade balance (% of GDP)")
	cmd.Flags().StringVar(&in.Region, "region", in.Region, "Region: "+strings.Join(forecast.Regions, ", "))

	return cmd
}

func newCompareCmd() *cobra.Command {
	var seed int64
	var metrics []string
	var chartFile, xlsxFile string

	cmd := &cobra.Command{
		Use:   "compare [country1] [country2]",
		Short: "Compare two countries on illustrative economic metrics",
		Long: `Compare two countries. Values are illustrative and reproducible for a seed.

Example: econdash-cli compare Germany Japan --metric "GDP Growth Rate" --metric "Public Debt" --chart out.png`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := compare.Compare(args[0], args[1], metrics, seed)
			if err != nil {
				return err
			}

			fmt.Println(result.Title())
			for _, row := range result.Rows {
				fmt.Printf("  %-20s %12s %12s %10s\n", row.Metric, row.Format(row.Value1), row.Format(row.Value2), row.DifferenceText())
			}
			fmt.Println()
			for _, s := range result.Summary {
				fmt.Printf("  ✅ %s\n", s)
			}
			fmt.Println(result.Verdict)

			if chartFile != "" {
				if err := writeFile(chartFile, func(f *os.File) error { return compare.WriteChart(f, result) }); err != nil {
					return err
				}
			}
			if xlsxFile != "" {
				if err := writeFile(xlsxFile, func(f *os.File) error { return compare.WriteWorkbook(f, result) }); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().Int64Var(&seed, "seed", 42, "Random seed for the generated values")
	cmd.Flags().StringArrayVar(&metrics, "metric", compare.DefaultMetricNames(), "Metric to compare (repeatable)")
	cmd.Flags().StringVar(&chartFile, "chart", "", "Write a PNG bar chart to this path")
	cmd.Flags().StringVar(&xlsxFile, "xlsx", "", "Write the comparison workbook to this path")

	return cmd
}

func newTrainCmd() *cobra.Command {
	var dataFile, modelFile, target string
	var features []string

	cmd := &cobra.Command{
		Use:   "train",
		Short: "Fit a linear model bundle on a dataset",
		Long: `Fit an ordinary least squares model and write it as a model bundle.

Example: econdash-cli train --data economy.xlsx --target GDP_Growth_Next --model model.json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := dataset.Load(cmd.Context(), dataFile)
			if err != nil {
				return err
			}
			bundle, err := forecast.FitLinear(table, features, target)
			if err != nil {
				return err
			}
			if err := forecast.SaveBundle(modelFile, bundle); err != nil {
				return err
			}
			fmt.Printf("Trained on %d features, R²=%.4f, written to %s\n", len(bundle.Features), bundle.R2(), modelFile)
			return nil
		},
	}

	defaultFeatures := []string{}
	for _, f := range (forecast.Input{}).Row() {
		defaultFeatures = append(defaultFeatures, f.Name)
	}

	cmd.Flags().StringVar(&dataFile, "data", config.DefaultCSVFile, "Training dataset (.csv or .xlsx)")
	cmd.Flags().StringVar(&modelFile, "model", config.DefaultModelFile, "Output model bundle")
	cmd.Flags().StringVar(&target, "target", "GDP_Growth_Next", "Column to predict")
	cmd.Flags().StringSliceVar(&features, "features", defaultFeatures, "Feature columns")

	return cmd
}

func writeFile(path string, write func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func printJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
