package planner

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/querylab/analytics-engine/pkg/llm"
	"github.com/querylab/analytics-engine/pkg/models"
)

func testSchema() *models.TableSchema {
	return &models.TableSchema{
		TableName: "customers",
		Columns: []models.ColumnDescriptor{
			{Name: "customer_id", DataType: "bigint", IsPrimaryKey: true},
			{Name: "arr", DataType: "numeric"},
			{Name: "industry", DataType: "text", Nullable: true},
		},
	}
}

func TestInterpretParsesPlan(t *testing.T) {
	mock := &llm.MockClient{
		CompleteFunc: func(ctx context.Context, system, prompt string) (string, error) {
			return `{
				"technical_summary": "ARR analysis filtered to Healthcare",
				"required_columns": ["arr", "industry"],
				"optional_columns": ["customer_id"],
				"sql_filters": {"industry": "Healthcare"},
				"assumptions": "ARR is annual recurring revenue"
			}`, nil
		},
	}

	interp := NewInterpreter(mock, zap.NewNop())
	plan, err := interp.Interpret(context.Background(), "customers", testSchema(), "ARR in Healthcare")
	require.NoError(t, err)

	assert.Equal(t, []string{"arr", "industry"}, plan.RequiredColumns)
	assert.Equal(t, []string{"customer_id"}, plan.OptionalColumns)
	assert.Equal(t, "Healthcare", plan.SQLFilters["industry"])
	assert.Equal(t, 1, mock.CompleteCalls)
}

func TestInterpretHandlesWrappedJSON(t *testing.T) {
	mock := &llm.MockClient{
		CompleteFunc: func(ctx context.Context, system, prompt string) (string, error) {
			return "Here is the analysis:\n```json\n{\"technical_summary\": \"count rows\", \"required_columns\": [\"customer_id\"], \"optional_columns\": [], \"sql_filters\": null, \"assumptions\": \"\"}\n```", nil
		},
	}

	interp := NewInterpreter(mock, zap.NewNop())
	plan, err := interp.Interpret(context.Background(), "customers", testSchema(), "how many customers")
	require.NoError(t, err)
	assert.Equal(t, []string{"customer_id"}, plan.RequiredColumns)
	assert.Nil(t, plan.SQLFilters)
}

func TestInterpretNormalizesNilSlices(t *testing.T) {
	mock := &llm.MockClient{
		CompleteFunc: func(ctx context.Context, system, prompt string) (string, error) {
			return `{"technical_summary": "x", "required_columns": null, "optional_columns": null, "sql_filters": null, "assumptions": ""}`, nil
		},
	}

	interp := NewInterpreter(mock, zap.NewNop())
	plan, err := interp.Interpret(context.Background(), "customers", testSchema(), "anything")
	require.NoError(t, err)
	assert.NotNil(t, plan.RequiredColumns)
	assert.NotNil(t, plan.OptionalColumns)
	assert.Empty(t, plan.RequiredColumns)
}

func TestInterpretRejectsEmptyRequirement(t *testing.T) {
	interp := NewInterpreter(&llm.MockClient{}, zap.NewNop())
	_, err := interp.Interpret(context.Background(), "customers", testSchema(), "   ")
	require.Error(t, err)
}

func TestInterpretRejectsEmptySchema(t *testing.T) {
	interp := NewInterpreter(&llm.MockClient{}, zap.NewNop())
	_, err := interp.Interpret(context.Background(), "empty", &models.TableSchema{TableName: "empty"}, "count rows")
	require.Error(t, err)
}

func TestInterpretNoRetryOnAuthError(t *testing.T) {
	calls := 0
	mock := &llm.MockClient{
		CompleteFunc: func(ctx context.Context, system, prompt string) (string, error) {
			calls++
			return "", llm.NewError(llm.ErrorTypeAuth, "invalid api key", false, errors.New("401"))
		},
	}

	interp := NewInterpreter(mock, zap.NewNop())
	_, err := interp.Interpret(context.Background(), "customers", testSchema(), "ARR by segment")
	require.Error(t, err)
	assert.Equal(t, 1, calls)
}
