package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/querylab/analytics-engine/pkg/apperrors"
	"github.com/querylab/analytics-engine/pkg/models"
	"github.com/querylab/analytics-engine/pkg/schema"
)

type stubInterpreter struct {
	plan *models.RequirementPlan
	err  error
}

func (s *stubInterpreter) Interpret(ctx context.Context, tableName string, table *models.TableSchema, requirement string) (*models.RequirementPlan, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.plan, nil
}

func customersRegistry() *schema.Registry {
	return schema.NewRegistry([]*models.TableSchema{
		{
			TableName: "customers",
			Columns: []models.ColumnDescriptor{
				{Name: "customer_id", DataType: "bigint", IsPrimaryKey: true},
				{Name: "arr", DataType: "numeric"},
				{Name: "industry", DataType: "text", Nullable: true},
			},
		},
	})
}

func TestAnalyzeFullMatch(t *testing.T) {
	interp := &stubInterpreter{
		plan: &models.RequirementPlan{
			TechnicalSummary: "ARR by industry",
			RequiredColumns:  []string{"arr", "industry"},
			OptionalColumns:  []string{"customer_id"},
		},
	}
	svc := NewAnalysisService(customersRegistry(), interp, zap.NewNop())

	result, err := svc.Analyze(context.Background(), "customers", "ARR by industry")
	require.NoError(t, err)

	assert.True(t, result.AnalysisComplete)
	assert.Equal(t, []string{"arr", "industry"}, result.AvailableColumns)
	assert.Empty(t, result.MissingColumns)
}

func TestAnalyzeMissingColumns(t *testing.T) {
	interp := &stubInterpreter{
		plan: &models.RequirementPlan{
			TechnicalSummary: "churn analysis",
			RequiredColumns:  []string{"churn_date", "arr"},
		},
	}
	svc := NewAnalysisService(customersRegistry(), interp, zap.NewNop())

	result, err := svc.Analyze(context.Background(), "customers", "churn by ARR")
	require.NoError(t, err)

	assert.False(t, result.AnalysisComplete)
	assert.Equal(t, []string{"churn_date"}, result.MissingColumns)
	assert.Equal(t, []string{"arr"}, result.AvailableColumns)
}

func TestAnalyzeUnknownTable(t *testing.T) {
	svc := NewAnalysisService(customersRegistry(), &stubInterpreter{}, zap.NewNop())

	_, err := svc.Analyze(context.Background(), "orders", "count orders")
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestAnalyzeEmptyInputs(t *testing.T) {
	svc := NewAnalysisService(customersRegistry(), &stubInterpreter{}, zap.NewNop())

	_, err := svc.Analyze(context.Background(), "", "something")
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = svc.Analyze(context.Background(), "customers", "  ")
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestAnalyzeInterpreterFailure(t *testing.T) {
	interp := &stubInterpreter{err: errors.New("rate limit exceeded")}
	svc := NewAnalysisService(customersRegistry(), interp, zap.NewNop())

	_, err := svc.Analyze(context.Background(), "customers", "ARR by industry")
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrUpstream)
}
