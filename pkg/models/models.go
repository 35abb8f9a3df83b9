package models

import (
	"time"
)

// HealthResponse represents the health check response
type HealthResponse struct {
	Body struct {
		Status  string    `json:"status" example:"healthy" doc:"Service health status"`
		Version string    `json:"version" example:"1.0.0" doc:"API version"`
		Time    time.Time `json:"time" doc:"Current server time"`
	}
}

// CreateSurveyRequest represents a request to open a new survey session
type CreateSurveyRequest struct {
	Body struct {
		Name string `json:"name,omitempty" maxLength:"100" doc:"Optional survey name, e.g. the site or hall being walked"`
	}
}

// SurveyBody describes one survey session and its current point count
type SurveyBody struct {
	ID         string    `json:"id" doc:"Survey unique identifier"`
	Name       string    `json:"name,omitempty" doc:"Survey name"`
	PointCount int       `json:"point_count" doc:"Number of recorded measurement points"`
	CreatedAt  time.Time `json:"created_at" doc:"Session creation time"`
}

// CreateSurveyResponse represents the response from opening a survey session
type CreateSurveyResponse struct {
	Body SurveyBody
}

// GetSurveyRequest represents a request for survey session metadata
type GetSurveyRequest struct {
	ID string `path:"id" doc:"Survey ID"`
}

// GetSurveyResponse represents survey session metadata
type GetSurveyResponse struct {
	Body SurveyBody
}

// DeleteSurveyRequest represents a request to end a survey session
type DeleteSurveyRequest struct {
	ID string `path:"id" doc:"Survey ID"`
}

// DeleteSurveyResponse represents the response from ending a survey session
type DeleteSurveyResponse struct {
	Body struct {
		Message string `json:"message" doc:"Confirmation message"`
	}
}

// AddPointRequest represents a request to record one measurement point
type AddPointRequest struct {
	ID   string `path:"id" doc:"Survey ID"`
	Body struct {
		X    float64 `json:"x" doc:"X position in meters"`
		Y    float64 `json:"y" doc:"Y position in meters"`
		RSSI int     `json:"rssi" minimum:"-120" maximum:"-20" required:"true" doc:"Signal strength in dBm"`
	}
}

// PointBody is a stored measurement point plus its display color token
type PointBody struct {
	MeasurementPoint
	Color string `json:"color" doc:"Display color token for the quality band"`
}

// AddPointResponse returns the point as stored, with derived quality
type AddPointResponse struct {
	Body PointBody
}

// ListPointsRequest represents a request for all points of a survey
type ListPointsRequest struct {
	ID string `path:"id" doc:"Survey ID"`
}

// ListPointsResponse returns the survey's points in insertion order
type ListPointsResponse struct {
	Body struct {
		Points []PointBody `json:"points" doc:"Measurement points in insertion order"`
		Count  int         `json:"count" doc:"Number of points"`
	}
}

// ClearPointsRequest represents a request to discard all points of a survey
type ClearPointsRequest struct {
	ID string `path:"id" doc:"Survey ID"`
}

// ClearPointsResponse represents the response from clearing a survey
type ClearPointsResponse struct {
	Body struct {
		Message string `json:"message" doc:"Confirmation message"`
	}
}

// ImportCSVRequest represents a bulk CSV import replacing the survey's points
type ImportCSVRequest struct {
	ID      string `path:"id" doc:"Survey ID"`
	RawBody []byte `contentType:"text/csv" doc:"CSV data with x, y and rssi columns"`
}

// ImportCSVResponse represents the response from a bulk CSV import
type ImportCSVResponse struct {
	Body struct {
		Imported int    `json:"imported" doc:"Number of points imported"`
		Message  string `json:"message" doc:"Confirmation message"`
	}
}

// ExportCSVRequest represents a request to export a survey as CSV
type ExportCSVRequest struct {
	ID string `path:"id" doc:"Survey ID"`
}

// ExportCSVResponse carries the survey points as a CSV document
type ExportCSVResponse struct {
	ContentType string `header:"Content-Type"`
	Body        []byte
}

// GetStatsRequest represents a request for coverage statistics
type GetStatsRequest struct {
	ID string `path:"id" doc:"Survey ID"`
}

// GetStatsResponseBody is the body of the coverage statistics response
type GetStatsResponseBody struct {
	Stats       CoverageStats `json:"stats" doc:"Coverage statistics for the current point set"`
	Verdict     Verdict       `json:"verdict" enum:"ready,needs_improvement,not_ready" doc:"AGV/AMR deployment readiness"`
	MinAGVRSSI  int           `json:"min_agv_rssi" doc:"Minimum RSSI in dBm required for AGV operation"`
	TargetCover float64       `json:"target_coverage_percent" doc:"Coverage percentage required for deployment"`
}

// GetStatsResponse represents the coverage statistics of a survey
type GetStatsResponse struct {
	Body GetStatsResponseBody
}

// GetReportRequest represents a request for the plain-text survey report
type GetReportRequest struct {
	ID string `path:"id" doc:"Survey ID"`
}

// GetReportResponse carries the rendered plain-text survey report
type GetReportResponse struct {
	ContentType string `header:"Content-Type"`
	Body        []byte
}

// LoadDemoRequest represents a request to load the built-in demo dataset
type LoadDemoRequest struct {
	ID string `path:"id" doc:"Survey ID"`
}

// LoadDemoResponse represents the response from loading the demo dataset
type LoadDemoResponse struct {
	Body struct {
		Loaded  int    `json:"loaded" doc:"Number of demo points loaded"`
		Message string `json:"message" doc:"Confirmation message"`
	}
}
