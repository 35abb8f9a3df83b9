package cli

import (
	"github.com/spf13/cobra"
)

// RootCmd is the root command for surveyctl
var RootCmd = &cobra.Command{
	Use:   "surveyctl",
	Short: "Offline analysis of Wi-Fi RSSI survey CSV files",
	Long: `surveyctl analyzes Wi-Fi signal-strength survey data collected while
walking a site, and judges its readiness for AGV/AMR deployment.

Survey files are CSV with at least the columns x, y and rssi:

  x,y,rssi
  0.0,0.0,-55
  5.0,3.0,-62

Examples:
  # Print the full survey report
  surveyctl report warehouse.csv

  # Print coverage statistics only
  surveyctl stats warehouse.csv

  # Write the built-in demo dataset to a file
  surveyctl demo -o demo.csv`,
	SilenceUsage: true,
}

// Execute runs the surveyctl command tree.
func Execute() error {
	return RootCmd.Execute()
}
