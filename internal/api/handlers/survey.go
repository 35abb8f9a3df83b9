package handlers

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/AkshayV29/rssi-heatmap-tracker/internal/repository"
	"github.com/AkshayV29/rssi-heatmap-tracker/internal/survey"
	"github.com/AkshayV29/rssi-heatmap-tracker/pkg/models"
	"github.com/danielgtaylor/huma/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// SurveyHandler handles survey-related HTTP requests
type SurveyHandler struct {
	repo           repository.SurveyRepository
	maxImportBytes int64
}

// NewSurveyHandler creates a new survey handler
func NewSurveyHandler(repo repository.SurveyRepository, maxImportBytes int64) *SurveyHandler {
	return &SurveyHandler{
		repo:           repo,
		maxImportBytes: maxImportBytes,
	}
}

// CreateSurvey opens a new survey session with an empty point store
func (h *SurveyHandler) CreateSurvey(ctx context.Context, req *models.CreateSurveyRequest) (*models.CreateSurveyResponse, error) {
	session := survey.NewSession(req.Body.Name)
	log.Info().Str("surveyID", session.ID.String()).Str("name", session.Name).Msg("Creating survey session")

	if err := h.repo.Create(ctx, session); err != nil {
		return nil, huma.Error503ServiceUnavailable("Failed to create survey", err)
	}

	return &models.CreateSurveyResponse{Body: surveyBody(session)}, nil
}

// GetSurvey returns survey session metadata
func (h *SurveyHandler) GetSurvey(ctx context.Context, req *models.GetSurveyRequest) (*models.GetSurveyResponse, error) {
	session, err := h.getSession(ctx, req.ID)
	if err != nil {
		return nil, err
	}
	return &models.GetSurveyResponse{Body: surveyBody(session)}, nil
}

// DeleteSurvey ends a survey session and discards its points
func (h *SurveyHandler) DeleteSurvey(ctx context.Context, req *models.DeleteSurveyRequest) (*models.DeleteSurveyResponse, error) {
	surveyID, err := uuid.Parse(req.ID)
	if err != nil {
		return nil, huma.Error400BadRequest("Invalid survey ID", err)
	}

	if err := h.repo.Delete(ctx, surveyID); err != nil {
		return nil, huma.Error404NotFound("Survey not found", err)
	}

	log.Info().Str("surveyID", req.ID).Msg("Survey session deleted")
	resp := &models.DeleteSurveyResponse{}
	resp.Body.Message = "Survey deleted"
	return resp, nil
}

// AddPoint records one measurement point in a survey
func (h *SurveyHandler) AddPoint(ctx context.Context, req *models.AddPointRequest) (*models.AddPointResponse, error) {
	session, err := h.getSession(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	point, err := session.Store.Add(req.Body.X, req.Body.Y, req.Body.RSSI)
	if err != nil {
		var verr *survey.ValidationError
		if errors.As(err, &verr) {
			return nil, huma.Error422UnprocessableEntity(verr.Msg, err)
		}
		return nil, huma.Error500InternalServerError("Failed to add point", err)
	}

	log.Info().
		Str("surveyID", req.ID).
		Float64("x", point.X).
		Float64("y", point.Y).
		Int("rssi", point.RSSI).
		Str("quality", string(point.Quality)).
		Msg("Measurement point recorded")

	return &models.AddPointResponse{Body: pointBody(point)}, nil
}

// ListPoints returns the survey's points in insertion order
func (h *SurveyHandler) ListPoints(ctx context.Context, req *models.ListPointsRequest) (*models.ListPointsResponse, error) {
	session, err := h.getSession(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	points := session.Store.All()
	resp := &models.ListPointsResponse{}
	resp.Body.Points = make([]models.PointBody, 0, len(points))
	for _, p := range points {
		resp.Body.Points = append(resp.Body.Points, pointBody(p))
	}
	resp.Body.Count = len(points)
	return resp, nil
}

// ClearPoints discards all points of a survey
func (h *SurveyHandler) ClearPoints(ctx context.Context, req *models.ClearPointsRequest) (*models.ClearPointsResponse, error) {
	session, err := h.getSession(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	session.Store.Clear()
	log.Info().Str("surveyID", req.ID).Msg("Survey points cleared")

	resp := &models.ClearPointsResponse{}
	resp.Body.Message = "All points cleared"
	return resp, nil
}

// ImportCSV atomically replaces the survey's points with a CSV upload
func (h *SurveyHandler) ImportCSV(ctx context.Context, req *models.ImportCSVRequest) (*models.ImportCSVResponse, error) {
	session, err := h.getSession(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	if h.maxImportBytes > 0 && int64(len(req.RawBody)) > h.maxImportBytes {
		return nil, huma.Error400BadRequest(
			fmt.Sprintf("Import exceeds %d byte limit", h.maxImportBytes), nil)
	}

	rows, err := survey.ParseCSVImport(bytes.NewReader(req.RawBody))
	if err != nil {
		var ierr *survey.ImportError
		if errors.As(err, &ierr) {
			return nil, huma.Error422UnprocessableEntity(ierr.Error(), err)
		}
		return nil, huma.Error400BadRequest("Failed to parse CSV", err)
	}

	// All-or-nothing: a single bad row leaves the prior points intact.
	if err := session.Store.Replace(rows); err != nil {
		var verr *survey.ValidationError
		if errors.As(err, &verr) {
			return nil, huma.Error422UnprocessableEntity(verr.Msg, err)
		}
		return nil, huma.Error500InternalServerError("Failed to import points", err)
	}

	log.Info().Str("surveyID", req.ID).Int("points", len(rows)).Msg("CSV import completed")

	resp := &models.ImportCSVResponse{}
	resp.Body.Imported = len(rows)
	resp.Body.Message = fmt.Sprintf("Imported %d data points", len(rows))
	return resp, nil
}

// ExportCSV returns the survey's points as a CSV document
func (h *SurveyHandler) ExportCSV(ctx context.Context, req *models.ExportCSVRequest) (*models.ExportCSVResponse, error) {
	session, err := h.getSession(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	return &models.ExportCSVResponse{
		ContentType: "text/csv",
		Body:        []byte(survey.RenderCSV(session.Store.All())),
	}, nil
}

// GetStats returns coverage statistics and the readiness verdict
func (h *SurveyHandler) GetStats(ctx context.Context, req *models.GetStatsRequest) (*models.GetStatsResponse, error) {
	session, err := h.getSession(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	stats := survey.ComputeStats(session.Store.All())
	return &models.GetStatsResponse{
		Body: models.GetStatsResponseBody{
			Stats:       stats,
			Verdict:     survey.ReadinessVerdict(stats.CoveragePercent),
			MinAGVRSSI:  survey.AGVMinRSSI,
			TargetCover: survey.ReadyCoveragePercent,
		},
	}, nil
}

// GetReport returns the plain-text survey report
func (h *SurveyHandler) GetReport(ctx context.Context, req *models.GetReportRequest) (*models.GetReportResponse, error) {
	session, err := h.getSession(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	points := session.Store.All()
	stats := survey.ComputeStats(points)
	return &models.GetReportResponse{
		ContentType: "text/plain; charset=utf-8",
		Body:        []byte(survey.RenderReport(stats, points)),
	}, nil
}

// LoadDemo replaces the survey's points with the built-in demo dataset
func (h *SurveyHandler) LoadDemo(ctx context.Context, req *models.LoadDemoRequest) (*models.LoadDemoResponse, error) {
	session, err := h.getSession(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	loaded, err := survey.LoadDemo(session.Store)
	if err != nil {
		return nil, huma.Error500InternalServerError("Failed to load demo data", err)
	}

	log.Info().Str("surveyID", req.ID).Int("points", loaded).Msg("Demo dataset loaded")

	resp := &models.LoadDemoResponse{}
	resp.Body.Loaded = loaded
	resp.Body.Message = "Demo data loaded"
	return resp, nil
}

// getSession parses the survey id and resolves its session
func (h *SurveyHandler) getSession(ctx context.Context, id string) (*survey.Session, error) {
	surveyID, err := uuid.Parse(id)
	if err != nil {
		return nil, huma.Error400BadRequest("Invalid survey ID", err)
	}

	session, err := h.repo.GetByID(ctx, surveyID)
	if err != nil {
		return nil, huma.Error404NotFound("Survey not found", err)
	}
	return session, nil
}

func surveyBody(s *survey.Session) models.SurveyBody {
	return models.SurveyBody{
		ID:         s.ID.String(),
		Name:       s.Name,
		PointCount: s.Store.Count(),
		CreatedAt:  s.CreatedAt,
	}
}

func pointBody(p models.MeasurementPoint) models.PointBody {
	return models.PointBody{
		MeasurementPoint: p,
		Color:            p.Quality.Color(),
	}
}
