package llm

import "testing"

func TestExtractJSON_PlainObject(t *testing.T) {
	input := `{"technical_summary": "avg mrr", "required_columns": ["mrr"]}`
	result, err := ExtractJSON(input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result != input {
		t.Errorf("expected %q, got %q", input, result)
	}
}

func TestExtractJSON_MarkdownFence(t *testing.T) {
	input := "Here is the plan:\n```json\n{\"required_columns\": [\"mrr\", \"industry\"]}\n```\n"
	expected := `{"required_columns": ["mrr", "industry"]}`
	result, err := ExtractJSON(input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result != expected {
		t.Errorf("expected %q, got %q", expected, result)
	}
}

func TestExtractJSON_ThinkTags(t *testing.T) {
	input := `<think>
The user wants average MRR by industry.
</think>
{"required_columns": ["mrr", "industry"]}`
	expected := `{"required_columns": ["mrr", "industry"]}`
	result, err := ExtractJSON(input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result != expected {
		t.Errorf("expected %q, got %q", expected, result)
	}
}

func TestExtractJSON_NestedFilters(t *testing.T) {
	input := `{"sql_filters": {"arr": {">": 100000}, "industry": "Healthcare"}}`
	result, err := ExtractJSON(input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result != input {
		t.Errorf("expected %q, got %q", input, result)
	}
}

func TestExtractJSON_BracesInsideStrings(t *testing.T) {
	input := `{"assumptions": "filters look like {col: value}"}`
	result, err := ExtractJSON(input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result != input {
		t.Errorf("expected %q, got %q", input, result)
	}
}

func TestExtractJSON_NoJSON(t *testing.T) {
	if _, err := ExtractJSON("sorry, I cannot help with that"); err == nil {
		t.Fatal("expected error for response without JSON")
	}
}

func TestParseJSONResponse_Typed(t *testing.T) {
	type plan struct {
		RequiredColumns []string `json:"required_columns"`
	}

	result, err := ParseJSONResponse[plan]("```json\n{\"required_columns\": [\"mrr\"]}\n```")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.RequiredColumns) != 1 || result.RequiredColumns[0] != "mrr" {
		t.Errorf("unexpected parse result: %+v", result)
	}
}

func TestParseJSONResponse_TypeMismatch(t *testing.T) {
	type plan struct {
		RequiredColumns []string `json:"required_columns"`
	}

	if _, err := ParseJSONResponse[plan](`{"required_columns": "not-a-list"}`); err == nil {
		t.Fatal("expected unmarshal error")
	}
}
