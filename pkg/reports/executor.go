package reports

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/querylab/analytics-engine/pkg/models"
)

// Executor runs report extraction queries against the analytics database.
type Executor interface {
	Execute(ctx context.Context, tableName string, columns []string, filters map[string]any, limit int) (*models.ReportResult, error)
}

type executor struct {
	pool   *pgxpool.Pool
	logger *zap.Logger
}

// NewExecutor creates an Executor backed by the given connection pool.
func NewExecutor(pool *pgxpool.Pool, logger *zap.Logger) Executor {
	return &executor{
		pool:   pool,
		logger: logger,
	}
}

var _ Executor = (*executor)(nil)

func (e *executor) Execute(ctx context.Context, tableName string, columns []string, filters map[string]any, limit int) (*models.ReportResult, error) {
	query, args, err := BuildQuery(tableName, columns, filters, limit)
	if err != nil {
		return nil, err
	}

	e.logger.Debug("executing report query",
		zap.String("table", tableName),
		zap.String("query", query),
		zap.Int("args", len(args)))

	rows, err := e.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("report query failed: %w", err)
	}
	defer rows.Close()

	fields := rows.FieldDescriptions()
	data := make([]map[string]any, 0)
	for rows.Next() {
		values, err := rows.Values()
		if err != nil {
			return nil, fmt.Errorf("failed to read report row: %w", err)
		}
		row := make(map[string]any, len(fields))
		for i, field := range fields {
			row[field.Name] = values[i]
		}
		data = append(data, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("report row iteration failed: %w", err)
	}

	e.logger.Info("report generated",
		zap.String("table", tableName),
		zap.Int("rows", len(data)))

	return &models.ReportResult{
		TableName:     tableName,
		Columns:       columns,
		RowCount:      len(data),
		Data:          data,
		QueryExecuted: query,
	}, nil
}
