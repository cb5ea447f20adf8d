package tabular

import (
	"strings"
	"testing"

	"github.com/custodia-labs/corpus-cli/internal/core/domain"
)

func TestSuggestColumnRoles_KeywordHeader(t *testing.T) {
	table := domain.Table{
		Headers: []string{"RespondentID", "Comments"},
		Rows: [][]string{
			{"101", "The onboarding flow was confusing and took far too long to complete."},
			{"102", "Great support team, they resolved my issue within a single afternoon."},
		},
		TotalRows: 2,
	}

	cfg := SuggestColumnRoles(table)

	if !cfg.IsTarget("Comments") {
		t.Errorf("expected Comments in targets, got %v", cfg.TargetColumns)
	}
	if !cfg.IsContext("RespondentID") {
		t.Errorf("expected RespondentID in context, got %v", cfg.ContextColumns)
	}
	if cfg.Strategy != domain.StrategyDistinct {
		t.Errorf("expected default strategy distinct, got %s", cfg.Strategy)
	}
	if len(cfg.SentimentContextColumns) != 0 {
		t.Errorf("expected no sentiment context by default, got %v", cfg.SentimentContextColumns)
	}
}

func TestSuggestColumnRoles_LongProseWithoutKeyword(t *testing.T) {
	long := strings.Repeat("this value is clearly prose ", 3)
	table := domain.Table{
		Headers: []string{"col_a", "col_b"},
		Rows: [][]string{
			{"5", long},
			{"7", long},
			{"9", long},
		},
		TotalRows: 3,
	}

	cfg := SuggestColumnRoles(table)

	if !cfg.IsTarget("col_b") {
		t.Errorf("expected long prose column in targets, got %v", cfg.TargetColumns)
	}
	if !cfg.IsContext("col_a") {
		t.Errorf("expected numeric column in context, got %v", cfg.ContextColumns)
	}
}

func TestSuggestColumnRoles_ShortLabelsAreContext(t *testing.T) {
	table := domain.Table{
		Headers: []string{"region", "feedback"},
		Rows: [][]string{
			{"north", "Everything worked exactly as promised, would happily recommend it."},
			{"south", "Delivery was slow and the packaging arrived visibly damaged."},
		},
		TotalRows: 2,
	}

	cfg := SuggestColumnRoles(table)

	if !cfg.IsContext("region") {
		t.Errorf("expected short label column in context, got %v", cfg.ContextColumns)
	}
	if !cfg.IsTarget("feedback") {
		t.Errorf("expected feedback in targets, got %v", cfg.TargetColumns)
	}
}

func TestSuggestColumnRoles_FallbackLastColumn(t *testing.T) {
	// All columns numeric: nothing qualifies as text, so the last column
	// is forced into the target set.
	table := domain.Table{
		Headers: []string{"x", "y"},
		Rows: [][]string{
			{"1", "2"},
			{"3", "4"},
		},
		TotalRows: 2,
	}

	cfg := SuggestColumnRoles(table)

	if len(cfg.TargetColumns) != 1 || cfg.TargetColumns[0] != "y" {
		t.Errorf("expected forced target [y], got %v", cfg.TargetColumns)
	}
	if cfg.IsContext("y") {
		t.Error("forced target should be removed from context columns")
	}
}

func TestSuggestColumnRoles_EmptyTable(t *testing.T) {
	cfg := SuggestColumnRoles(domain.Table{})

	if len(cfg.TargetColumns) != 0 {
		t.Errorf("expected no targets for empty table, got %v", cfg.TargetColumns)
	}
}
