package survey

import (
	"github.com/AkshayV29/rssi-heatmap-tracker/pkg/models"
)

// ComputeStats derives coverage statistics from a point snapshot. An
// empty snapshot yields the zero stats value with CoveragePercent 0,
// never NaN. The average stays unrounded; rounding is left to the
// report layer.
func ComputeStats(points []models.MeasurementPoint) models.CoverageStats {
	stats := models.CoverageStats{}
	if len(points) == 0 {
		return stats
	}

	stats.TotalPoints = len(points)
	stats.MinRSSI = points[0].RSSI
	stats.MaxRSSI = points[0].RSSI

	var sum int
	for _, p := range points {
		sum += p.RSSI
		if p.RSSI < stats.MinRSSI {
			stats.MinRSSI = p.RSSI
		}
		if p.RSSI > stats.MaxRSSI {
			stats.MaxRSSI = p.RSSI
		}

		switch Classify(p.RSSI) {
		case models.QualityExcellent:
			stats.Excellent++
		case models.QualityGood:
			stats.Good++
		case models.QualityFair:
			stats.Fair++
		case models.QualityPoor:
			stats.Poor++
		case models.QualityCritical:
			stats.Critical++
		}

		if p.RSSI >= AGVMinRSSI {
			stats.AGVSuitable++
		}
	}

	stats.AvgRSSI = float64(sum) / float64(stats.TotalPoints)
	stats.CoveragePercent = float64(stats.AGVSuitable) / float64(stats.TotalPoints) * 100

	return stats
}

// ReadinessVerdict maps a coverage percentage to the AGV/AMR deployment
// verdict. Evaluated top-down, first match wins.
func ReadinessVerdict(coveragePercent float64) models.Verdict {
	switch {
	case coveragePercent >= ReadyCoveragePercent:
		return models.VerdictReady
	case coveragePercent >= ImproveCoveragePercent:
		return models.VerdictNeedsImprovement
	default:
		return models.VerdictNotReady
	}
}
