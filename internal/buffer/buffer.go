package buffer

import (
	"strconv"
	"strings"

	"github.com/riverfjs/mrkdwnify-go/internal/types"
)

// Sentinel delimits placeholder tokens inside the working text. Input is
// stripped of it before any token is written.
const Sentinel = "\x00"

// Span is one protected piece of output.
type Span struct {
	Category    types.Category
	Index       int
	Replacement string
}

// Token returns the placeholder written into the working text for s.
func (s Span) Token() string {
	return Token(s.Category, s.Index)
}

// Token formats the placeholder for category and index.
func Token(category types.Category, index int) string {
	return Sentinel + string(category) + strconv.Itoa(index) + Sentinel
}

// Spans accumulates protected replacements for a single conversion.
// Indices are assigned in insertion order and never reused.
type Spans struct {
	spans []Span
}

// New creates an empty span list.
func New() *Spans {
	return &Spans{
		spans: make([]Span, 0),
	}
}

// Protect records replacement and returns the token that stands in for it.
func (sp *Spans) Protect(category types.Category, replacement string) string {
	span := Span{
		Category:    category,
		Index:       len(sp.spans),
		Replacement: replacement,
	}
	sp.spans = append(sp.spans, span)
	return span.Token()
}

// Len returns the number of protected spans.
func (sp *Spans) Len() int {
	return len(sp.spans)
}

// At returns the span with index i.
func (sp *Spans) At(i int) Span {
	return sp.spans[i]
}

// Restore expands every token in text, newest first, so that spans built
// from text containing older tokens are expanded outward-in. It returns the
// restored text and the spans whose token was no longer present.
func (sp *Spans) Restore(text string) (string, []Span) {
	var lost []Span
	for i := len(sp.spans) - 1; i >= 0; i-- {
		span := sp.spans[i]
		token := span.Token()
		if !strings.Contains(text, token) {
			lost = append(lost, span)
			continue
		}
		text = strings.Replace(text, token, span.Replacement, 1)
	}
	return text, lost
}

// Reset clears the list.
func (sp *Spans) Reset() {
	sp.spans = sp.spans[:0]
}
