package pager

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// Selector is a segmented control bound to a pager. Selecting a segment is a
// programmatic page change.
type Selector struct {
	pager *Pager
}

// NewSelector binds a selector to p.
func NewSelector(p *Pager) *Selector {
	return &Selector{pager: p}
}

// Titles returns the segment titles in page order.
func (s *Selector) Titles() []string {
	pages := s.pager.Pages()
	out := make([]string, len(pages))
	for i, pg := range pages {
		out[i] = pg.Title
	}
	return out
}

// Selected returns the highlighted segment.
func (s *Selector) Selected() int { return s.pager.Index() }

// Select asks the pager to jump to segment i.
func (s *Selector) Select(i int) error {
	return s.pager.JumpTo(i)
}

// Match finds the page whose title or key is closest to query. Matches farther
// than half the query length (at least two edits) are rejected.
func (s *Selector) Match(query string) (int, bool) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return 0, false
	}
	limit := len(q) / 2
	if limit < 2 {
		limit = 2
	}
	best, bestDist := -1, limit+1
	for i, pg := range s.pager.Pages() {
		for _, cand := range []string{pg.Title, pg.Key} {
			c := strings.ToLower(cand)
			if c == "" {
				continue
			}
			if strings.HasPrefix(c, q) {
				return i, true
			}
			if d := levenshtein.ComputeDistance(q, c); d < bestDist {
				best, bestDist = i, d
			}
		}
	}
	if best < 0 {
		return 0, false
	}
	return best, true
}

// SelectMatch jumps to the page matching query.
func (s *Selector) SelectMatch(query string) bool {
	i, ok := s.Match(query)
	if !ok {
		return false
	}
	return s.Select(i) == nil
}
