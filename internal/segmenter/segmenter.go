// Package segmenter decomposes documents into ordered chunk sequences
// under a caller-chosen granularity and optional hierarchical splitting.
//
// Dispatch is a small closed set of cases resolved per document: whole
// document, tabular combined, tabular distinct, hierarchical section,
// and flat splitting. Every case is total: any input yields zero or
// more chunks, never an error.
package segmenter

import (
	"strings"

	"github.com/custodia-labs/corpus-cli/internal/core/domain"
	"github.com/custodia-labs/corpus-cli/internal/core/ports/driven"
	"github.com/custodia-labs/corpus-cli/internal/tabular"
)

// Options configures a segmentation pass.
type Options struct {
	// Granularity is the requested splitting strategy.
	Granularity domain.Granularity

	// Hierarchical enables heading-based decomposition for text and
	// Markdown documents.
	Hierarchical bool

	// HeaderLevel is the heading level (1-6) hierarchical splitting
	// partitions on. Values outside that range are a caller error; the
	// splitter itself does not validate.
	HeaderLevel int

	// Columns overrides the column advisor for tabular documents.
	// Nil runs the advisor per document.
	Columns *domain.ColumnRoleConfig
}

// Segmenter turns document sets into chunk sequences.
type Segmenter struct {
	idgen driven.IDGenerator
}

// New creates a segmenter using the given identifier generator.
func New(idgen driven.IDGenerator) *Segmenter {
	return &Segmenter{idgen: idgen}
}

// splitCase enumerates the dispatch outcomes.
type splitCase int

const (
	caseWhole splitCase = iota
	caseTabularCombined
	caseTabularDistinct
	caseHierarchical
	caseFlat
)

// Segment runs a full pass over the documents and returns the chunk
// sequence. Chunk order follows document order, then heading/row order,
// then intra-section split order. Every produced chunk carries a fresh
// identifier and an empty tag list; enrichment fields stay unset.
func (s *Segmenter) Segment(docs []domain.SourceDocument, opts Options) []domain.Chunk {
	e := &emitter{idgen: s.idgen, chunks: []domain.Chunk{}}

	for i := range docs {
		doc := &docs[i]
		cfg := s.columnsFor(doc, opts)

		switch resolveCase(doc, opts, cfg) {
		case caseWhole:
			e.emit(doc, doc.Name, domain.GranularityDocument, doc.Content)
		case caseTabularCombined:
			s.tabularCombined(e, doc, cfg)
		case caseTabularDistinct:
			s.tabularDistinct(e, doc, cfg)
		case caseHierarchical:
			s.hierarchical(e, doc, opts)
		case caseFlat:
			s.flat(e, doc, opts.Granularity)
		}
	}

	return e.chunks
}

// resolveCase picks the splitting case for one document.
func resolveCase(doc *domain.SourceDocument, opts Options, cfg domain.ColumnRoleConfig) splitCase {
	switch {
	case opts.Granularity == domain.GranularityDocument:
		return caseWhole
	case doc.IsTabular():
		if cfg.Strategy == domain.StrategyCombine {
			return caseTabularCombined
		}
		return caseTabularDistinct
	case opts.Hierarchical:
		return caseHierarchical
	default:
		return caseFlat
	}
}

// columnsFor resolves the column configuration for a tabular document:
// the caller's override when present, otherwise the advisor's suggestion.
func (s *Segmenter) columnsFor(doc *domain.SourceDocument, opts Options) domain.ColumnRoleConfig {
	if !doc.IsTabular() {
		return domain.ColumnRoleConfig{}
	}
	if opts.Columns != nil {
		return *opts.Columns
	}
	return tabular.SuggestColumnRoles(tabular.Parse(doc.Content))
}

// flat splits the whole content directly by the requested granularity.
func (s *Segmenter) flat(e *emitter, doc *domain.SourceDocument, g domain.Granularity) {
	for _, piece := range SplitFlat(doc.Content, g) {
		e.emit(doc, doc.Name, g, piece)
	}
}

// emitter accumulates chunks, trimming text and dropping empty pieces.
type emitter struct {
	idgen  driven.IDGenerator
	chunks []domain.Chunk
}

func (e *emitter) emit(doc *domain.SourceDocument, label string, g domain.Granularity, text string) {
	text = strings.TrimSpace(text)
	if text == "" {
		return
	}
	e.chunks = append(e.chunks, domain.Chunk{
		ID:          e.idgen.NewID(),
		Text:        text,
		Granularity: g,
		SourceID:    doc.ID,
		SourceLabel: label,
		Position:    len(e.chunks),
		Tags:        []string{},
	})
}
