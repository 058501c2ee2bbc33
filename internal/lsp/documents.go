package lsp

import (
	"strings"
	"sync"

	"github.com/jsvensson/colorconv"
)

type document struct {
	content string
	result  *AnalysisResult
}

// DocumentStore holds open document contents and their latest analysis,
// keyed by URI.
type DocumentStore struct {
	mu   sync.RWMutex
	docs map[string]*document
	opts []colorconv.Option
}

// NewDocumentStore creates a store that analyzes documents with opts applied
// beneath each document's own maximums block.
func NewDocumentStore(opts ...colorconv.Option) *DocumentStore {
	return &DocumentStore{
		docs: make(map[string]*document),
		opts: opts,
	}
}

// Open stores and analyzes a newly opened document.
func (s *DocumentStore) Open(uri, content string) *AnalysisResult {
	return s.Update(uri, content)
}

// Update replaces a document's content and returns its fresh analysis.
func (s *DocumentStore) Update(uri, content string) *AnalysisResult {
	result := Analyze(uriToFilename(uri), content, s.opts...)

	s.mu.Lock()
	defer s.mu.Unlock()
	if prev, ok := s.docs[uri]; ok && result.Palette == nil {
		result.Previous = prev.result.Palette
		if result.Previous == nil {
			result.Previous = prev.result.Previous
		}
	}
	s.docs[uri] = &document{content: content, result: result}
	return result
}

func (s *DocumentStore) Close(uri string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.docs, uri)
}

func (s *DocumentStore) Get(uri string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc, ok := s.docs[uri]
	if !ok {
		return "", false
	}
	return doc.content, true
}

// Result returns the latest analysis of uri, or nil if it is not open.
func (s *DocumentStore) Result(uri string) *AnalysisResult {
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc, ok := s.docs[uri]
	if !ok {
		return nil
	}
	return doc.result
}

func uriToFilename(uri string) string {
	return strings.TrimPrefix(uri, "file://")
}
