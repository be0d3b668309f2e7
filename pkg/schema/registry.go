// Package schema holds the process-wide table metadata snapshot.
//
// The registry is built exactly once at startup, before any request is
// served, and is read-only afterwards, so concurrent readers need no locking.
// If hot reload is ever added it must swap the whole registry snapshot, not
// mutate the map in place.
package schema

import (
	"github.com/querylab/analytics-engine/pkg/models"
)

// Registry is an immutable snapshot of table name to TableSchema.
type Registry struct {
	tables map[string]*models.TableSchema
	names  []string // load order, for stable listings
}

// NewRegistry builds a registry from the given schemas. Later entries with a
// duplicate table name replace earlier ones.
func NewRegistry(schemas []*models.TableSchema) *Registry {
	r := &Registry{
		tables: make(map[string]*models.TableSchema, len(schemas)),
		names:  make([]string, 0, len(schemas)),
	}
	for _, s := range schemas {
		if _, exists := r.tables[s.TableName]; !exists {
			r.names = append(r.names, s.TableName)
		}
		r.tables[s.TableName] = s
	}
	return r
}

// Table returns the schema for a table name.
func (r *Registry) Table(name string) (*models.TableSchema, bool) {
	s, ok := r.tables[name]
	return s, ok
}

// TableNames returns all table names in load order.
func (r *Registry) TableNames() []string {
	names := make([]string, len(r.names))
	copy(names, r.names)
	return names
}

// Len returns the number of tables in the snapshot.
func (r *Registry) Len() int {
	return len(r.tables)
}
