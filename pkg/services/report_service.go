package services

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/querylab/analytics-engine/pkg/apperrors"
	"github.com/querylab/analytics-engine/pkg/config"
	"github.com/querylab/analytics-engine/pkg/models"
	"github.com/querylab/analytics-engine/pkg/reports"
	"github.com/querylab/analytics-engine/pkg/schema"
	sqlcheck "github.com/querylab/analytics-engine/pkg/sql"
)

// ReportService validates and executes data extraction requests.
type ReportService interface {
	Generate(ctx context.Context, req *models.ReportRequest) (*models.ReportResult, error)
}

type reportService struct {
	registry *schema.Registry
	executor reports.Executor
	cfg      config.ReportsConfig
	logger   *zap.Logger
}

// NewReportService creates a ReportService.
func NewReportService(registry *schema.Registry, executor reports.Executor, cfg config.ReportsConfig, logger *zap.Logger) ReportService {
	return &reportService{
		registry: registry,
		executor: executor,
		cfg:      cfg,
		logger:   logger,
	}
}

var _ ReportService = (*reportService)(nil)

func (s *reportService) Generate(ctx context.Context, req *models.ReportRequest) (*models.ReportResult, error) {
	if strings.TrimSpace(req.TableName) == "" {
		return nil, fmt.Errorf("table_name is required: %w", apperrors.ErrValidation)
	}
	if len(req.Columns) == 0 {
		return nil, fmt.Errorf("at least one column is required: %w", apperrors.ErrValidation)
	}

	table, ok := s.registry.Table(req.TableName)
	if !ok {
		return nil, fmt.Errorf("table %q: %w", req.TableName, apperrors.ErrNotFound)
	}

	for _, col := range req.Columns {
		if !table.HasColumn(col) {
			return nil, fmt.Errorf("column %q does not exist in table %q: %w",
				col, req.TableName, apperrors.ErrValidation)
		}
	}
	for col := range req.Filters {
		if !table.HasColumn(col) {
			return nil, fmt.Errorf("filter column %q does not exist in table %q: %w",
				col, req.TableName, apperrors.ErrValidation)
		}
	}
	if err := sqlcheck.ValidateFilters(req.Filters); err != nil {
		return nil, fmt.Errorf("%v: %w", err, apperrors.ErrValidation)
	}

	limit := req.RowLimit
	if limit <= 0 {
		limit = s.cfg.DefaultRowLimit
	}
	if limit > s.cfg.MaxRowLimit {
		limit = s.cfg.MaxRowLimit
	}

	result, err := s.executor.Execute(ctx, req.TableName, req.Columns, req.Filters, limit)
	if err != nil {
		s.logger.Error("report execution failed",
			zap.String("table", req.TableName),
			zap.Error(err))
		return nil, fmt.Errorf("%w: %v", apperrors.ErrExecution, err)
	}
	return result, nil
}
