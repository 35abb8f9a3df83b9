package models

import (
	"time"
)

// Quality is the signal quality band derived from an RSSI reading.
type Quality string

const (
	QualityExcellent Quality = "Excellent"
	QualityGood      Quality = "Good"
	QualityFair      Quality = "Fair"
	QualityPoor      Quality = "Poor"
	QualityCritical  Quality = "Critical"
)

// Color returns the fixed color token for a quality band so rendering
// clients never re-derive the dBm thresholds themselves.
func (q Quality) Color() string {
	switch q {
	case QualityExcellent:
		return "green"
	case QualityGood:
		return "lightgreen"
	case QualityFair:
		return "yellow"
	case QualityPoor:
		return "orange"
	case QualityCritical:
		return "red"
	default:
		return "gray"
	}
}

// Range returns the human-readable dBm range for a quality band, as
// printed in the survey report.
func (q Quality) Range() string {
	switch q {
	case QualityExcellent:
		return ">= -60 dBm"
	case QualityGood:
		return "-70 to -60 dBm"
	case QualityFair:
		return "-80 to -70 dBm"
	case QualityPoor:
		return "-90 to -80 dBm"
	case QualityCritical:
		return "< -90 dBm"
	default:
		return "unknown"
	}
}

// Verdict is the AGV/AMR deployment readiness assessment for a surveyed area.
type Verdict string

const (
	VerdictReady            Verdict = "ready"
	VerdictNeedsImprovement Verdict = "needs_improvement"
	VerdictNotReady         Verdict = "not_ready"
)

// Label returns the uppercase verdict label used in the survey report.
func (v Verdict) Label() string {
	switch v {
	case VerdictReady:
		return "READY"
	case VerdictNeedsImprovement:
		return "NEEDS IMPROVEMENT"
	case VerdictNotReady:
		return "NOT READY"
	default:
		return "UNKNOWN"
	}
}

// MeasurementPoint is one recorded RSSI observation at a planar position.
// Quality is derived from RSSI at insertion time and never drifts from it.
type MeasurementPoint struct {
	X         float64   `json:"x" doc:"X position in meters"`
	Y         float64   `json:"y" doc:"Y position in meters"`
	RSSI      int       `json:"rssi" doc:"Signal strength in dBm"`
	Quality   Quality   `json:"quality" enum:"Excellent,Good,Fair,Poor,Critical" doc:"Signal quality band derived from RSSI"`
	Timestamp time.Time `json:"timestamp" doc:"Capture moment, assigned at creation"`
}

// CoverageStats is a derived snapshot of a survey's coverage figures.
// It is recomputed from the full point set on every request, never cached.
type CoverageStats struct {
	TotalPoints     int     `json:"total_points" doc:"Number of measurement points"`
	AvgRSSI         float64 `json:"avg_rssi" doc:"Arithmetic mean RSSI in dBm, unrounded"`
	MinRSSI         int     `json:"min_rssi" doc:"Weakest recorded RSSI in dBm"`
	MaxRSSI         int     `json:"max_rssi" doc:"Strongest recorded RSSI in dBm"`
	Excellent       int     `json:"excellent" doc:"Points with RSSI >= -60 dBm"`
	Good            int     `json:"good" doc:"Points with RSSI in [-70, -60) dBm"`
	Fair            int     `json:"fair" doc:"Points with RSSI in [-80, -70) dBm"`
	Poor            int     `json:"poor" doc:"Points with RSSI in [-90, -80) dBm"`
	Critical        int     `json:"critical" doc:"Points with RSSI below -90 dBm"`
	AGVSuitable     int     `json:"agv_suitable" doc:"Points meeting the -70 dBm AGV floor"`
	CoveragePercent float64 `json:"coverage_percent" doc:"Share of points suitable for AGV operation"`
}
