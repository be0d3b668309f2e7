package models

// ColumnDescriptor describes one column of a reflected table. Descriptors are
// immutable once the registry snapshot is built.
type ColumnDescriptor struct {
	Name            string  `json:"name"`
	DataType        string  `json:"data_type"`
	Nullable        bool    `json:"nullable"`
	IsPrimaryKey    bool    `json:"is_primary_key"`
	OrdinalPosition int     `json:"ordinal_position"`
	DefaultValue    *string `json:"default_value,omitempty"`
}

// TableSchema holds the reflected column metadata for one database table.
// Columns preserve the database's ordinal order.
type TableSchema struct {
	TableName string             `json:"table_name"`
	Columns   []ColumnDescriptor `json:"columns"`
}

// TableSummary is the listing view of a reflected table.
type TableSummary struct {
	TableName   string `json:"table_name"`
	ColumnCount int    `json:"column_count"`
}

// ColumnNames returns the column names in schema order.
func (t *TableSchema) ColumnNames() []string {
	names := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		names[i] = c.Name
	}
	return names
}

// HasColumn reports whether the table contains a column with the given name.
func (t *TableSchema) HasColumn(name string) bool {
	for _, c := range t.Columns {
		if c.Name == name {
			return true
		}
	}
	return false
}
