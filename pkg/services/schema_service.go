// Package services contains the business logic between HTTP handlers and
// the schema registry, LLM interpreter, and database.
package services

import (
	"fmt"

	"github.com/querylab/analytics-engine/pkg/apperrors"
	"github.com/querylab/analytics-engine/pkg/models"
	"github.com/querylab/analytics-engine/pkg/schema"
)

// SchemaService exposes the reflected schema snapshot for API consumers.
type SchemaService interface {
	ListTables() []models.TableSummary
	GetTableSchema(tableName string) (*models.TableSchema, error)
}

type schemaService struct {
	registry *schema.Registry
}

// NewSchemaService creates a SchemaService over a registry snapshot.
func NewSchemaService(registry *schema.Registry) SchemaService {
	return &schemaService{registry: registry}
}

var _ SchemaService = (*schemaService)(nil)

func (s *schemaService) ListTables() []models.TableSummary {
	names := s.registry.TableNames()
	summaries := make([]models.TableSummary, 0, len(names))
	for _, name := range names {
		table, ok := s.registry.Table(name)
		if !ok {
			continue
		}
		summaries = append(summaries, models.TableSummary{
			TableName:   name,
			ColumnCount: len(table.Columns),
		})
	}
	return summaries
}

func (s *schemaService) GetTableSchema(tableName string) (*models.TableSchema, error) {
	table, ok := s.registry.Table(tableName)
	if !ok {
		return nil, fmt.Errorf("table %q: %w", tableName, apperrors.ErrNotFound)
	}
	return table, nil
}
