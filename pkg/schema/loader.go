package schema

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/querylab/analytics-engine/pkg/models"
)

// Load reflects all user tables and their columns from the database into a
// new Registry. Any error aborts the load: startup must fail rather than
// serve requests against a half-populated registry.
func Load(ctx context.Context, pool *pgxpool.Pool, logger *zap.Logger) (*Registry, error) {
	names, err := discoverTables(ctx, pool)
	if err != nil {
		return nil, fmt.Errorf("discover tables: %w", err)
	}

	schemas := make([]*models.TableSchema, 0, len(names))
	for _, name := range names {
		columns, err := discoverColumns(ctx, pool, name)
		if err != nil {
			return nil, fmt.Errorf("discover columns for %s: %w", name, err)
		}
		schemas = append(schemas, &models.TableSchema{
			TableName: name,
			Columns:   columns,
		})
		logger.Debug("Loaded table schema",
			zap.String("table", name),
			zap.Int("columns", len(columns)))
	}

	logger.Info("Schema registry loaded", zap.Int("tables", len(schemas)))
	return NewRegistry(schemas), nil
}

// discoverTables returns all user table names, excluding system schemas and
// the service's own bookkeeping tables.
func discoverTables(ctx context.Context, pool *pgxpool.Pool) ([]string, error) {
	const query = `
		SELECT t.table_name
		FROM information_schema.tables t
		WHERE t.table_type = 'BASE TABLE'
		  AND t.table_schema NOT IN ('pg_catalog', 'information_schema', 'pg_toast')
		  AND t.table_name NOT IN ('admin_report_requests', 'schema_migrations')
		ORDER BY t.table_schema, t.table_name
	`

	rows, err := pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query tables: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan table: %w", err)
		}
		names = append(names, name)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate tables: %w", err)
	}

	return names, nil
}

// discoverColumns returns the columns of a table in ordinal order. Primary
// keys are detected via pg_index.indisprimary, which also catches PKs that
// were created as unique indexes by ORMs.
func discoverColumns(ctx context.Context, pool *pgxpool.Pool, tableName string) ([]models.ColumnDescriptor, error) {
	const query = `
		SELECT
			c.column_name,
			c.data_type,
			c.is_nullable = 'YES' as is_nullable,
			COALESCE(pk.is_pk, false) as is_primary_key,
			c.ordinal_position,
			c.column_default
		FROM information_schema.columns c
		LEFT JOIN (
			SELECT a.attname as column_name, true as is_pk
			FROM pg_index ix
			JOIN pg_class t ON t.oid = ix.indrelid
			JOIN pg_attribute a ON a.attrelid = t.oid AND a.attnum = ANY(ix.indkey)
			WHERE ix.indisprimary = true
			  AND t.relname = $1
		) pk ON c.column_name = pk.column_name
		WHERE c.table_name = $1
		  AND c.table_schema NOT IN ('pg_catalog', 'information_schema', 'pg_toast')
		ORDER BY c.ordinal_position
	`

	rows, err := pool.Query(ctx, query, tableName)
	if err != nil {
		return nil, fmt.Errorf("query columns: %w", err)
	}
	defer rows.Close()

	var columns []models.ColumnDescriptor
	for rows.Next() {
		var c models.ColumnDescriptor
		if err := rows.Scan(&c.Name, &c.DataType, &c.Nullable, &c.IsPrimaryKey, &c.OrdinalPosition, &c.DefaultValue); err != nil {
			return nil, fmt.Errorf("scan column: %w", err)
		}
		columns = append(columns, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate columns: %w", err)
	}

	return columns, nil
}
