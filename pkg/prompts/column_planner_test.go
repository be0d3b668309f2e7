package prompts

import (
	"strings"
	"testing"

	"github.com/querylab/analytics-engine/pkg/models"
)

func TestFormatColumns(t *testing.T) {
	columns := []models.ColumnDescriptor{
		{Name: "customer_id", DataType: "bigint", IsPrimaryKey: true, Nullable: false},
		{Name: "arr", DataType: "numeric", Nullable: false},
		{Name: "churn_date", DataType: "date", Nullable: true},
	}

	got := FormatColumns(columns)

	expected := []string{
		"- customer_id (bigint, PRIMARY KEY, NOT NULL)",
		"- arr (numeric, NOT NULL)",
		"- churn_date (date)",
	}
	lines := strings.Split(got, "\n")
	if len(lines) != len(expected) {
		t.Fatalf("expected %d lines, got %d: %q", len(expected), len(lines), got)
	}
	for i, want := range expected {
		if lines[i] != want {
			t.Errorf("line %d: expected %q, got %q", i, want, lines[i])
		}
	}
}

func TestFormatColumnsEmpty(t *testing.T) {
	if got := FormatColumns(nil); got != "" {
		t.Errorf("expected empty string for no columns, got %q", got)
	}
}

func TestBuildColumnPlannerPrompt(t *testing.T) {
	columns := []models.ColumnDescriptor{
		{Name: "industry", DataType: "text", Nullable: true},
	}
	prompt := BuildColumnPlannerPrompt("customers", columns, "churn by industry")

	for _, fragment := range []string{
		"Name: customers",
		"- industry (text)",
		`"churn by industry"`,
		"required_columns",
		"optional_columns",
		"sql_filters",
		"technical_summary",
		"assumptions",
	} {
		if !strings.Contains(prompt, fragment) {
			t.Errorf("prompt missing %q", fragment)
		}
	}
}

func TestSystemPromptKeepsMissingColumns(t *testing.T) {
	// The interpreter must echo back requested columns even when the schema
	// does not contain them, so downstream matching can flag them as missing.
	if !strings.Contains(ColumnPlannerSystemPrompt, "still include") {
		t.Error("system prompt should instruct the model to keep nonexistent columns in required_columns")
	}
}
