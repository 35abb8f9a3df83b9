package cli

import (
	"encoding/json"
	"fmt"

	"github.com/AkshayV29/rssi-heatmap-tracker/internal/survey"
	"github.com/spf13/cobra"
)

var statsJSON bool

var statsCmd = &cobra.Command{
	Use:   "stats <file.csv>",
	Short: "Print coverage statistics for a CSV survey file",
	Long: `Computes coverage statistics and the AGV/AMR readiness verdict for a
survey file without rendering the full report.

Quality bands:
  - Excellent: -60 dBm or better
  - Good:      -70 to -60 dBm
  - Fair:      -80 to -70 dBm
  - Poor:      -90 to -80 dBm
  - Critical:  below -90 dBm`,
	Args: cobra.ExactArgs(1),
	RunE: runStats,
}

func init() {
	statsCmd.Flags().BoolVar(&statsJSON, "json", false, "Emit statistics as JSON")
	RootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	points, err := loadSurveyFile(args[0])
	if err != nil {
		return err
	}

	stats := survey.ComputeStats(points)
	verdict := survey.ReadinessVerdict(stats.CoveragePercent)
	out := cmd.OutOrStdout()

	if statsJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(struct {
			Stats   any    `json:"stats"`
			Verdict string `json:"verdict"`
		}{stats, string(verdict)})
	}

	fmt.Fprintf(out, "Total Points:  %d\n", stats.TotalPoints)
	fmt.Fprintf(out, "Average RSSI:  %.0f dBm\n", stats.AvgRSSI)
	fmt.Fprintf(out, "Minimum RSSI:  %d dBm\n", stats.MinRSSI)
	fmt.Fprintf(out, "Maximum RSSI:  %d dBm\n", stats.MaxRSSI)
	fmt.Fprintf(out, "Coverage:      %.1f%% (%d/%d points at %d dBm or better)\n",
		stats.CoveragePercent, stats.AGVSuitable, stats.TotalPoints, survey.AGVMinRSSI)
	fmt.Fprintf(out, "Readiness:     %s\n", verdict.Label())
	return nil
}
