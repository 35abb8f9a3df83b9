package cli

import (
	"fmt"
	"os"

	"github.com/AkshayV29/rssi-heatmap-tracker/internal/survey"
	"github.com/AkshayV29/rssi-heatmap-tracker/pkg/models"
	"github.com/spf13/cobra"
)

var reportCmd = &cobra.Command{
	Use:   "report <file.csv>",
	Short: "Render the full survey report for a CSV file",
	Args:  cobra.ExactArgs(1),
	RunE:  runReport,
}

func init() {
	RootCmd.AddCommand(reportCmd)
}

func runReport(cmd *cobra.Command, args []string) error {
	points, err := loadSurveyFile(args[0])
	if err != nil {
		return err
	}

	stats := survey.ComputeStats(points)
	fmt.Fprint(cmd.OutOrStdout(), survey.RenderReport(stats, points))
	return nil
}

// loadSurveyFile parses a CSV survey file into a validated point set,
// using the same atomic import path as the API.
func loadSurveyFile(path string) ([]models.MeasurementPoint, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open survey file: %w", err)
	}
	defer f.Close()

	rows, err := survey.ParseCSVImport(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	store := survey.NewStore()
	if err := store.Replace(rows); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return store.All(), nil
}
