package api

import (
	"net/http"

	"github.com/AkshayV29/rssi-heatmap-tracker/internal/api/handlers"
	"github.com/AkshayV29/rssi-heatmap-tracker/internal/repository"
	"github.com/danielgtaylor/huma/v2"
)

// RegisterRoutes sets up all API routes
func RegisterRoutes(api huma.API, repo repository.SurveyRepository, maxImportBytes int64) {
	// Initialize handlers
	surveyHandler := handlers.NewSurveyHandler(repo, maxImportBytes)

	// Register survey routes
	huma.Register(api, huma.Operation{
		OperationID: "createSurvey",
		Method:      http.MethodPost,
		Path:        "/api/surveys",
		Summary:     "Create a new survey",
		Description: "Opens a new survey session with an empty measurement store",
		Tags:        []string{"Survey"},
	}, surveyHandler.CreateSurvey)

	huma.Register(api, huma.Operation{
		OperationID: "getSurvey",
		Method:      http.MethodGet,
		Path:        "/api/surveys/{id}",
		Summary:     "Get survey metadata",
		Description: "Returns survey session metadata and its current point count",
		Tags:        []string{"Survey"},
	}, surveyHandler.GetSurvey)

	huma.Register(api, huma.Operation{
		OperationID: "deleteSurvey",
		Method:      http.MethodDelete,
		Path:        "/api/surveys/{id}",
		Summary:     "Delete a survey",
		Description: "Ends a survey session and discards its measurement store",
		Tags:        []string{"Survey"},
	}, surveyHandler.DeleteSurvey)

	huma.Register(api, huma.Operation{
		OperationID: "addPoint",
		Method:      http.MethodPost,
		Path:        "/api/surveys/{id}/points",
		Summary:     "Add a measurement point",
		Description: "Records one RSSI measurement; quality and timestamp are derived on insertion",
		Tags:        []string{"Measurements"},
	}, surveyHandler.AddPoint)

	huma.Register(api, huma.Operation{
		OperationID: "listPoints",
		Method:      http.MethodGet,
		Path:        "/api/surveys/{id}/points",
		Summary:     "List measurement points",
		Description: "Returns all points in insertion order with their display color tokens",
		Tags:        []string{"Measurements"},
	}, surveyHandler.ListPoints)

	huma.Register(api, huma.Operation{
		OperationID: "clearPoints",
		Method:      http.MethodDelete,
		Path:        "/api/surveys/{id}/points",
		Summary:     "Clear all points",
		Description: "Discards every measurement point of the survey",
		Tags:        []string{"Measurements"},
	}, surveyHandler.ClearPoints)

	huma.Register(api, huma.Operation{
		OperationID: "importCSV",
		Method:      http.MethodPost,
		Path:        "/api/surveys/{id}/import",
		Summary:     "Import points from CSV",
		Description: "Atomically replaces the survey's points with the uploaded CSV rows",
		Tags:        []string{"Import/Export"},
	}, surveyHandler.ImportCSV)

	huma.Register(api, huma.Operation{
		OperationID: "exportCSV",
		Method:      http.MethodGet,
		Path:        "/api/surveys/{id}/export",
		Summary:     "Export points as CSV",
		Description: "Returns the survey's points as a CSV document",
		Tags:        []string{"Import/Export"},
	}, surveyHandler.ExportCSV)

	huma.Register(api, huma.Operation{
		OperationID: "getStats",
		Method:      http.MethodGet,
		Path:        "/api/surveys/{id}/stats",
		Summary:     "Get coverage statistics",
		Description: "Returns coverage statistics and the AGV/AMR readiness verdict",
		Tags:        []string{"Analysis"},
	}, surveyHandler.GetStats)

	huma.Register(api, huma.Operation{
		OperationID: "getReport",
		Method:      http.MethodGet,
		Path:        "/api/surveys/{id}/report",
		Summary:     "Get survey report",
		Description: "Returns the plain-text coverage survey report",
		Tags:        []string{"Analysis"},
	}, surveyHandler.GetReport)

	huma.Register(api, huma.Operation{
		OperationID: "loadDemo",
		Method:      http.MethodPost,
		Path:        "/api/surveys/{id}/demo",
		Summary:     "Load demo dataset",
		Description: "Clears the survey and loads the fixed demo measurement walk",
		Tags:        []string{"Survey"},
	}, surveyHandler.LoadDemo)
}
