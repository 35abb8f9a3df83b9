package cli

import (
	"fmt"
	"os"

	"github.com/AkshayV29/rssi-heatmap-tracker/internal/survey"
	"github.com/spf13/cobra"
)

var demoOutput string

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Emit the built-in demo dataset as CSV",
	Long: `Writes the fixed 12-point demo walk as a CSV survey file, suitable as
input for the report and stats commands or for the API import endpoint.`,
	Args: cobra.NoArgs,
	RunE: runDemo,
}

func init() {
	demoCmd.Flags().StringVarP(&demoOutput, "output", "o", "", "Write CSV to file instead of stdout")
	RootCmd.AddCommand(demoCmd)
}

func runDemo(cmd *cobra.Command, args []string) error {
	store := survey.NewStore()
	if _, err := survey.LoadDemo(store); err != nil {
		return err
	}
	csv := survey.RenderCSV(store.All())

	if demoOutput == "" {
		fmt.Fprint(cmd.OutOrStdout(), csv)
		return nil
	}
	if err := os.WriteFile(demoOutput, []byte(csv), 0644); err != nil {
		return fmt.Errorf("write demo file: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d demo points to %s\n", len(survey.DemoPoints), demoOutput)
	return nil
}
