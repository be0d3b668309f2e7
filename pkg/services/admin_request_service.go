package services

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/querylab/analytics-engine/pkg/apperrors"
	"github.com/querylab/analytics-engine/pkg/models"
	"github.com/querylab/analytics-engine/pkg/repositories"
)

const adminTitleMaxLen = 50

// AdminRequestService registers queries that could not be fulfilled because
// required columns are missing, so an administrator can review them.
type AdminRequestService interface {
	Register(ctx context.Context, input *models.AdminRequestInput) (*models.AdminRequest, error)
}

type adminRequestService struct {
	repo   repositories.AdminRequestRepository
	logger *zap.Logger
}

// NewAdminRequestService creates an AdminRequestService.
func NewAdminRequestService(repo repositories.AdminRequestRepository, logger *zap.Logger) AdminRequestService {
	return &adminRequestService{
		repo:   repo,
		logger: logger,
	}
}

var _ AdminRequestService = (*adminRequestService)(nil)

func (s *adminRequestService) Register(ctx context.Context, input *models.AdminRequestInput) (*models.AdminRequest, error) {
	if strings.TrimSpace(input.OriginalQuery) == "" {
		return nil, fmt.Errorf("original_query is required: %w", apperrors.ErrValidation)
	}
	if strings.TrimSpace(input.TableName) == "" {
		return nil, fmt.Errorf("table_name is required: %w", apperrors.ErrValidation)
	}

	title := buildTitle(input.OriginalQuery)
	description := buildDescription(input)

	req, err := s.repo.Create(ctx, title, description,
		models.AdminRequestTypeMissingColumns, models.AdminRequestStatusPending)
	if err != nil {
		s.logger.Error("failed to save admin request",
			zap.String("table", input.TableName),
			zap.Error(err))
		return nil, fmt.Errorf("%w: %v", apperrors.ErrPersistence, err)
	}

	s.logger.Info("admin request registered",
		zap.Int64("request_id", req.ID),
		zap.String("table", input.TableName),
		zap.Int("missing_columns", len(input.MissingColumns)))

	return req, nil
}

// buildTitle truncates the original query to the first 50 characters.
func buildTitle(originalQuery string) string {
	if len(originalQuery) > adminTitleMaxLen {
		return originalQuery[:adminTitleMaxLen] + "..."
	}
	return originalQuery
}

// buildDescription assembles the full ticket body an administrator will read.
func buildDescription(input *models.AdminRequestInput) string {
	available := "None"
	if len(input.AvailableColumns) > 0 {
		available = strings.Join(input.AvailableColumns, ", ")
	}

	return strings.TrimSpace(fmt.Sprintf(`Original Query: %q

Table: %s

Technical Interpretation:
%s

Required Columns: %s
Missing Columns: %s
Available Columns: %s

Status: Pending admin review`,
		input.OriginalQuery,
		input.TableName,
		input.TechnicalInterpretation,
		strings.Join(input.RequiredColumns, ", "),
		strings.Join(input.MissingColumns, ", "),
		available,
	))
}
