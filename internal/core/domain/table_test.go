package domain

import "testing"

func TestTable_Field(t *testing.T) {
	table := Table{
		Headers: []string{"id", "comment"},
		Rows: [][]string{
			{"1", "fine"},
			{"2"}, // malformed short row
		},
	}

	t.Run("known column", func(t *testing.T) {
		if got := table.Field(table.Rows[0], "comment"); got != "fine" {
			t.Errorf("expected 'fine', got %q", got)
		}
	})

	t.Run("short row is index-safe", func(t *testing.T) {
		if got := table.Field(table.Rows[1], "comment"); got != "" {
			t.Errorf("expected empty value for short row, got %q", got)
		}
	})

	t.Run("unknown column", func(t *testing.T) {
		if got := table.Field(table.Rows[0], "missing"); got != "" {
			t.Errorf("expected empty value for unknown column, got %q", got)
		}
	})
}

func TestTable_IsEmpty(t *testing.T) {
	if !(Table{}).IsEmpty() {
		t.Error("zero table should be empty")
	}
	if (Table{Headers: []string{"a"}}).IsEmpty() {
		t.Error("table with headers should not be empty")
	}
}

func TestColumnRoleConfig_Membership(t *testing.T) {
	cfg := ColumnRoleConfig{
		TargetColumns:           []string{"comment"},
		ContextColumns:          []string{"id", "region"},
		SentimentContextColumns: []string{"region"},
		Strategy:                StrategyDistinct,
	}

	if !cfg.IsTarget("comment") {
		t.Error("comment should be a target column")
	}
	if cfg.IsTarget("id") {
		t.Error("id should not be a target column")
	}
	if !cfg.IsContext("region") {
		t.Error("region should be a context column")
	}
	if !cfg.IsSentimentContext("region") {
		t.Error("region should be sentiment context")
	}
	if cfg.IsSentimentContext("id") {
		t.Error("id should not be sentiment context")
	}
}
