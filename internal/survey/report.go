package survey

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/AkshayV29/rssi-heatmap-tracker/pkg/models"
)

// RenderReport produces the fixed-format plain-text survey report:
// header, signal strength analysis, quality breakdown, readiness
// verdict, then one line per point in insertion order. Averages are
// rounded to whole dBm here; the stats value itself stays unrounded.
func RenderReport(stats models.CoverageStats, points []models.MeasurementPoint) string {
	verdict := ReadinessVerdict(stats.CoveragePercent)

	var sb strings.Builder
	sb.WriteString("RSSI HEATMAP SURVEY REPORT\n")
	sb.WriteString("=========================\n")
	fmt.Fprintf(&sb, "Generated: %s\n", time.Now().Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&sb, "Total Data Points: %d\n", stats.TotalPoints)
	sb.WriteString("\n")

	sb.WriteString("SIGNAL STRENGTH ANALYSIS:\n")
	fmt.Fprintf(&sb, "- Average RSSI: %.0f dBm\n", stats.AvgRSSI)
	fmt.Fprintf(&sb, "- Minimum RSSI: %d dBm\n", stats.MinRSSI)
	fmt.Fprintf(&sb, "- Maximum RSSI: %d dBm\n", stats.MaxRSSI)
	fmt.Fprintf(&sb, "- AGV Suitable Coverage: %.1f%%\n", stats.CoveragePercent)
	sb.WriteString("\n")

	sb.WriteString("QUALITY BREAKDOWN:\n")
	breakdown := []struct {
		quality models.Quality
		count   int
	}{
		{models.QualityExcellent, stats.Excellent},
		{models.QualityGood, stats.Good},
		{models.QualityFair, stats.Fair},
		{models.QualityPoor, stats.Poor},
		{models.QualityCritical, stats.Critical},
	}
	for _, b := range breakdown {
		fmt.Fprintf(&sb, "- %s (%s): %d points\n", b.quality, b.quality.Range(), b.count)
	}
	sb.WriteString("\n")

	fmt.Fprintf(&sb, "AGV/AMR READINESS: %s\n", verdict.Label())
	sb.WriteString("\n")

	sb.WriteString("DETAILED MEASUREMENTS:\n")
	for i, p := range points {
		fmt.Fprintf(&sb, "Point %d: (%sm, %sm) = %d dBm (%s)\n",
			i+1,
			strconv.FormatFloat(p.X, 'g', -1, 64),
			strconv.FormatFloat(p.Y, 'g', -1, 64),
			p.RSSI,
			p.Quality)
	}

	return sb.String()
}
