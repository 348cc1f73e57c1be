package vault

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToggleAll(t *testing.T) {
	visible := []string{"a", "b", "c"}

	s := NewSelection()
	s.Toggle("z", true) // selected while a different filter was active

	s.ToggleAll(visible, true)
	summary := s.Summary(visible)
	assert.Equal(t, 3, summary.Count)
	assert.True(t, summary.AllSelected)
	assert.False(t, summary.SomeSelected)
	assert.False(t, s.Has("z"), "toggle-all replaces, never unions with off-screen ids")

	s.ToggleAll(visible, false)
	assert.Empty(t, s.IDs())
}

func TestToggleOne(t *testing.T) {
	visible := []string{"a", "b", "c"}

	s := NewSelection()
	s.ToggleAll(visible, true)
	s.Toggle("b", false)

	summary := s.Summary(visible)
	assert.False(t, summary.AllSelected)
	assert.True(t, summary.SomeSelected)
	assert.Equal(t, 2, summary.Count)

	// Untoggling an absent id is a no-op.
	s.Toggle("b", false)
	assert.Equal(t, 2, s.Summary(visible).Count)

	// Toggling an already-selected id on is idempotent too.
	s.Toggle("a", true)
	assert.Equal(t, 2, s.Summary(visible).Count)
}

func TestSummaryAgainstCurrentVisibility(t *testing.T) {
	s := NewSelection()
	s.ToggleAll([]string{"a", "b", "c"}, true)

	// Filters changed: only a subset remains visible. Retained off-screen
	// selections don't count toward the tri-state control.
	narrowed := []string{"a", "b"}
	summary := s.Summary(narrowed)
	assert.True(t, summary.AllSelected)
	assert.False(t, summary.SomeSelected)
	assert.Equal(t, 2, summary.Count)

	// The off-screen id is still retained for when the filter widens again.
	assert.True(t, s.Has("c"))
}

func TestSummaryEmptyVisibleSet(t *testing.T) {
	s := NewSelection()
	s.Toggle("a", true)

	summary := s.Summary(nil)
	assert.False(t, summary.AllSelected, "allSelected requires a non-empty visible set")
	assert.False(t, summary.SomeSelected)
	assert.Zero(t, summary.Count)
}
