package main

import (
	"context"
	"fmt"
	"os"

	"econdash/internal/compare"
	"econdash/internal/config"
	"econdash/internal/dataset"
	"econdash/internal/forecast"
	"econdash/internal/resources"
	"econdash/internal/testkit"
	"econdash/internal/viewlog"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func main() {
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:   "econdash-dev",
		Short: "Economy dashboard development tools",
	}

	rootCmd.AddCommand(
		newSeedCmd(),
		newSmokeTestCmd(),
		newMigrateCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newSeedCmd() *cobra.Command {
	genConfig := testkit.DefaultEconomyConfig()
	var dataFile, modelFile string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Generate a sample dataset and train a model bundle on it",
		RunE: func(cmd *cobra.Command, args []string) error {
			return generateSeedData(genConfig, dataFile, modelFile)
		},
	}

	cmd.Flags().StringVar(&dataFile, "data", config.DefaultCSVFile, "Where to write the dataset (.csv or .xlsx)")
	cmd.Flags().StringVar(&modelFile, "model", config.DefaultModelFile, "Where to write the model bundle")
	cmd.Flags().Int64Var(&genConfig.Seed, "seed", genConfig.Seed, "Random seed")
	cmd.Flags().Float64Var(&genConfig.Noise, "noise", genConfig.Noise, "Standard deviation of the target noise")
	cmd.Flags().IntVar(&genConfig.StartYear, "start-year", genConfig.StartYear, "First year")
	cmd.Flags().IntVar(&genConfig.EndYear, "end-year", genConfig.EndYear, "Last year")

	return cmd
}

func newSmokeTestCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "smoke",
		Short: "Load the configured resources and exercise forecast and compare",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSmokeTests(cmd.Context())
		},
	}
	return cmd
}

func newMigrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply the view log schema to DATABASE_URL",
		RunE: func(cmd *cobra.Command, args []string) error {
			appConfig, err := config.Load()
			if err != nil {
				return err
			}
			store, err := viewlog.Open(cmd.Context(), appConfig.Database)
			if err != nil {
				return err
			}
			defer store.Close()
			fmt.Printf("✅ View log schema applied (%s)\n", appConfig.Database.Driver)
			return nil
		},
	}
	return cmd
}

func generateSeedData(genConfig testkit.EconomyGeneratorConfig, dataFile, modelFile string) error {
	fmt.Println("Generating seed data...")

	table := testkit.NewEconomyDataGenerator(genConfig).Generate()
	if err := dataset.Save(dataFile, table); err != nil {
		return err
	}
	fmt.Printf("Wrote %d rows to %s\n", table.Len(), dataFile)

	bundle, err := forecast.FitLinear(table, testkit.FeatureNames(), testkit.TargetColumn)
	if err != nil {
		return err
	}
	if err := forecast.SaveBundle(modelFile, bundle); err != nil {
		return err
	}
	fmt.Printf("Wrote %s model to %s (R²=%.4f)\n", bundle.Model.Kind(), modelFile, bundle.R2())
	return nil
}

func runSmokeTests(ctx context.Context) error {
	fmt.Println("Running smoke tests...")

	appConfig, err := config.Load()
	if err != nil {
		return err
	}
	res, err := resources.Load(ctx, appConfig.Data)
	if err != nil {
		return err
	}
	if res.DataErr != nil {
		return res.DataErr
	}
	if res.ModelErr != nil {
		return res.ModelErr
	}
	fmt.Printf("✓ Dataset: %d rows\n", res.Data.Len())

	result, err := forecast.Forecast(res.Model, forecast.DefaultInput())
	if err != nil {
		return err
	}
	fmt.Printf("✓ Forecast: %.2f%% (%s)\n", result.Prediction, result.Status)

	comparison, err := compare.Compare(compare.Countries[0], compare.Countries[1], compare.DefaultMetricNames(), appConfig.Compare.Seed)
	if err != nil {
		return err
	}
	fmt.Printf("✓ Compare: %s\n", comparison.Verdict)

	fmt.Println("✅ Smoke tests passed")
	return nil
}
