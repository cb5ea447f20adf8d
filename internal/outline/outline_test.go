package outline

import (
	"reflect"
	"testing"

	"github.com/custodia-labs/corpus-cli/internal/core/domain"
)

func TestHeadings(t *testing.T) {
	content := "# Title\nprose\n  ## Indented\n###NoSpace\n####### seven\n## Trailing   \n"

	got := Headings(content)

	want := []Heading{
		{Level: 1, Title: "Title"},
		{Level: 2, Title: "Indented"},
		{Level: 2, Title: "Trailing"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestHeadingAt(t *testing.T) {
	t.Run("matching level", func(t *testing.T) {
		h, ok := HeadingAt("## Methods", 2)
		if !ok || h.Title != "Methods" {
			t.Errorf("expected Methods at level 2, got %v %v", h, ok)
		}
	})

	t.Run("other level is ordinary content", func(t *testing.T) {
		if _, ok := HeadingAt("### Deep", 2); ok {
			t.Error("level 3 heading should not match level 2")
		}
	})

	t.Run("non-heading", func(t *testing.T) {
		if _, ok := HeadingAt("plain line", 2); ok {
			t.Error("plain line should not match")
		}
	})
}

func TestAnalyzeHeadingLevels(t *testing.T) {
	docs := []domain.SourceDocument{
		{ID: "d1", Kind: domain.KindMarkdown, Content: "# One\n## A\n## B"},
		{ID: "d2", Kind: domain.KindPlain, Content: "## C\nbody"},
		{ID: "d3", Kind: domain.KindTabular, Content: "a,b\n## X,2"},
	}

	index := AnalyzeHeadingLevels(docs)

	if !reflect.DeepEqual(index.TitlesAt(1), []string{"One"}) {
		t.Errorf("expected level 1 [One], got %v", index.TitlesAt(1))
	}
	if !reflect.DeepEqual(index.TitlesAt(2), []string{"A", "B", "C"}) {
		t.Errorf("expected level 2 [A B C] in document order, got %v", index.TitlesAt(2))
	}
	if index.CountAt(3) != 0 {
		t.Errorf("expected no level 3 headings, got %v", index.TitlesAt(3))
	}
}

func TestSuggestSplitLevel(t *testing.T) {
	tests := []struct {
		name  string
		index domain.HeadingIndex
		want  int
	}{
		{"multiple level 1", domain.HeadingIndex{1: {"A", "B"}}, 1},
		{"lone title prefers level 2", domain.HeadingIndex{1: {"Title"}, 2: {"A", "B"}}, 2},
		{"single headings only", domain.HeadingIndex{2: {"Only"}}, 2},
		{"single deep heading", domain.HeadingIndex{3: {"Only"}}, 3},
		{"no headings", domain.HeadingIndex{}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SuggestSplitLevel(tt.index); got != tt.want {
				t.Errorf("expected level %d, got %d", tt.want, got)
			}
		})
	}
}
