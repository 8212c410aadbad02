package pager

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelector(t *testing.T) {
	t.Parallel()

	p := New()
	_, err := p.SetPages(testPages())
	require.NoError(t, err)
	s := NewSelector(p)

	assert.Equal(t, []string{"Posts", "Replies", "Media", "About"}, s.Titles())
	assert.Equal(t, 0, s.Selected())

	require.NoError(t, s.Select(2))
	assert.Equal(t, 2, p.Index())
	assert.Equal(t, 2, s.Selected())
	assert.Error(t, s.Select(7))
}

func TestSelectorMatch(t *testing.T) {
	t.Parallel()

	p := New()
	_, err := p.SetPages(testPages())
	require.NoError(t, err)
	s := NewSelector(p)

	tests := []struct {
		query string
		want  int
		ok    bool
	}{
		{query: "rep", want: 1, ok: true},
		{query: "MEDIA", want: 2, ok: true},
		{query: "  about ", want: 3, ok: true},
		{query: "abuot", want: 3, ok: true},
		{query: "psots", want: 0, ok: true},
		{query: "zzzzzzzz", ok: false},
		{query: "", ok: false},
	}
	for _, tt := range tests {
		got, ok := s.Match(tt.query)
		assert.Equal(t, tt.ok, ok, tt.query)
		if tt.ok {
			assert.Equal(t, tt.want, got, tt.query)
		}
	}

	assert.True(t, s.SelectMatch("med"))
	assert.Equal(t, 2, p.Index())
	assert.False(t, s.SelectMatch("xylophone"))
	assert.Equal(t, 2, p.Index())
}
