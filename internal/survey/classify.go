package survey

import (
	"fmt"

	"github.com/AkshayV29/rssi-heatmap-tracker/pkg/models"
)

// Accepted RSSI range in dBm. Values outside it are operator entry
// mistakes and are rejected rather than clamped.
const (
	MinValidRSSI = -120
	MaxValidRSSI = -20
)

// AGV/AMR deployment thresholds: the signal floor a vehicle needs for
// reliable operation and the coverage share expected across the site.
const (
	AGVMinRSSI             = -70
	ReadyCoveragePercent   = 95.0
	ImproveCoveragePercent = 80.0
)

// Classify maps an RSSI reading to its quality band. The ladder is
// evaluated top-down, first match wins, so the five bands partition the
// whole integer range.
func Classify(rssi int) models.Quality {
	switch {
	case rssi >= -60:
		return models.QualityExcellent
	case rssi >= -70:
		return models.QualityGood
	case rssi >= -80:
		return models.QualityFair
	case rssi >= -90:
		return models.QualityPoor
	default:
		return models.QualityCritical
	}
}

// ValidateRSSI rejects readings outside the accepted dBm range.
func ValidateRSSI(rssi int) error {
	if rssi < MinValidRSSI || rssi > MaxValidRSSI {
		return &ValidationError{
			Msg: fmt.Sprintf("rssi %d dBm outside valid range [%d, %d]", rssi, MinValidRSSI, MaxValidRSSI),
		}
	}
	return nil
}
