package services

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/querylab/analytics-engine/pkg/apperrors"
	"github.com/querylab/analytics-engine/pkg/matcher"
	"github.com/querylab/analytics-engine/pkg/models"
	"github.com/querylab/analytics-engine/pkg/planner"
	"github.com/querylab/analytics-engine/pkg/schema"
)

// AnalysisService interprets a natural language requirement against a table
// and reports which required columns exist.
type AnalysisService interface {
	Analyze(ctx context.Context, tableName, requirement string) (*models.MatchResult, error)
}

type analysisService struct {
	registry    *schema.Registry
	interpreter planner.Interpreter
	logger      *zap.Logger
}

// NewAnalysisService creates an AnalysisService.
func NewAnalysisService(registry *schema.Registry, interpreter planner.Interpreter, logger *zap.Logger) AnalysisService {
	return &analysisService{
		registry:    registry,
		interpreter: interpreter,
		logger:      logger,
	}
}

var _ AnalysisService = (*analysisService)(nil)

func (s *analysisService) Analyze(ctx context.Context, tableName, requirement string) (*models.MatchResult, error) {
	if strings.TrimSpace(tableName) == "" {
		return nil, fmt.Errorf("table_name is required: %w", apperrors.ErrValidation)
	}
	if strings.TrimSpace(requirement) == "" {
		return nil, fmt.Errorf("requirement is required: %w", apperrors.ErrValidation)
	}

	table, ok := s.registry.Table(tableName)
	if !ok {
		return nil, fmt.Errorf("table %q: %w", tableName, apperrors.ErrNotFound)
	}

	plan, err := s.interpreter.Interpret(ctx, tableName, table, requirement)
	if err != nil {
		s.logger.Error("requirement interpretation failed",
			zap.String("table", tableName),
			zap.Error(err))
		return nil, fmt.Errorf("%w: %v", apperrors.ErrUpstream, err)
	}

	result := matcher.Match(table, plan)

	s.logger.Info("column analysis complete",
		zap.String("table", tableName),
		zap.Int("required", len(result.RequiredColumns)),
		zap.Int("missing", len(result.MissingColumns)),
		zap.Bool("analysis_complete", result.AnalysisComplete))

	return result, nil
}
