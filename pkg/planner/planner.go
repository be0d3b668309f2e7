// Package planner turns free-form analytics requirements into structured
// column plans using an LLM.
package planner

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/querylab/analytics-engine/pkg/llm"
	"github.com/querylab/analytics-engine/pkg/models"
	"github.com/querylab/analytics-engine/pkg/prompts"
	"github.com/querylab/analytics-engine/pkg/retry"
)

// Interpreter analyzes a user requirement against a table schema and
// produces a structured requirement plan.
type Interpreter interface {
	Interpret(ctx context.Context, tableName string, schema *models.TableSchema, requirement string) (*models.RequirementPlan, error)
}

type interpreter struct {
	client llm.Client
	logger *zap.Logger
}

// NewInterpreter creates an Interpreter backed by the given LLM client.
func NewInterpreter(client llm.Client, logger *zap.Logger) Interpreter {
	return &interpreter{
		client: client,
		logger: logger,
	}
}

var _ Interpreter = (*interpreter)(nil)

func (i *interpreter) Interpret(ctx context.Context, tableName string, schema *models.TableSchema, requirement string) (*models.RequirementPlan, error) {
	if strings.TrimSpace(requirement) == "" {
		return nil, fmt.Errorf("requirement cannot be empty")
	}
	if schema == nil || len(schema.Columns) == 0 {
		return nil, fmt.Errorf("table %s has no columns to analyze", tableName)
	}

	userPrompt := prompts.BuildColumnPlannerPrompt(tableName, schema.Columns, requirement)

	i.logger.Debug("interpreting requirement",
		zap.String("table", tableName),
		zap.String("provider", i.client.Provider()),
		zap.String("model", i.client.Model()))

	plan, err := retry.DoWithResult(ctx, retry.DefaultConfig(), func() (*models.RequirementPlan, error) {
		response, err := i.client.Complete(ctx, prompts.ColumnPlannerSystemPrompt, userPrompt)
		if err != nil {
			return nil, err
		}
		parsed, err := llm.ParseJSONResponse[models.RequirementPlan](response)
		if err != nil {
			return nil, fmt.Errorf("failed to parse requirement plan: %w", err)
		}
		return &parsed, nil
	})
	if err != nil {
		return nil, fmt.Errorf("requirement interpretation failed: %w", err)
	}

	normalize(plan)

	i.logger.Info("requirement interpreted",
		zap.String("table", tableName),
		zap.Int("required_columns", len(plan.RequiredColumns)),
		zap.Int("optional_columns", len(plan.OptionalColumns)),
		zap.Int("filters", len(plan.SQLFilters)))

	return plan, nil
}

// normalize guarantees non-nil slices and trimmed column names so the
// matcher and JSON encoding behave consistently.
func normalize(plan *models.RequirementPlan) {
	plan.RequiredColumns = cleanNames(plan.RequiredColumns)
	plan.OptionalColumns = cleanNames(plan.OptionalColumns)
}

func cleanNames(names []string) []string {
	out := make([]string, 0, len(names))
	for _, name := range names {
		if trimmed := strings.TrimSpace(name); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
