package domain

import "testing"

func TestEnrichment_Apply(t *testing.T) {
	t.Run("assigns all fields", func(t *testing.T) {
		c := Chunk{ID: "c1", Text: "hello"}
		e := Enrichment{
			Tags:      []string{"greeting"},
			Sentiment: "positive",
			Analysis:  "short salutation",
		}

		e.Apply(&c)

		if len(c.Tags) != 1 || c.Tags[0] != "greeting" {
			t.Errorf("expected tags [greeting], got %v", c.Tags)
		}
		if c.Sentiment != "positive" {
			t.Errorf("expected sentiment 'positive', got %q", c.Sentiment)
		}
		if c.Analysis != "short salutation" {
			t.Errorf("expected analysis set, got %q", c.Analysis)
		}
	})

	t.Run("empty fields leave existing values", func(t *testing.T) {
		c := Chunk{ID: "c1", Tags: []string{"kept"}, Sentiment: "neutral"}

		Enrichment{}.Apply(&c)

		if len(c.Tags) != 1 || c.Tags[0] != "kept" {
			t.Errorf("expected tags preserved, got %v", c.Tags)
		}
		if c.Sentiment != "neutral" {
			t.Errorf("expected sentiment preserved, got %q", c.Sentiment)
		}
	})
}
