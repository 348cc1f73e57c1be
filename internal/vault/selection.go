package vault

// Selection tracks evidence IDs chosen for a bulk action. IDs are retained
// when filters change; derived all/some states are always computed against the
// currently visible set, never against historical visibility.
type Selection map[string]struct{}

func NewSelection() Selection {
	return make(Selection)
}

// ToggleAll replaces the selection with exactly visibleIDs when checked, and
// clears it otherwise. IDs outside the visible set never survive a toggle-all.
func (s Selection) ToggleAll(visibleIDs []string, checked bool) {
	for id := range s {
		delete(s, id)
	}
	if !checked {
		return
	}
	for _, id := range visibleIDs {
		s[id] = struct{}{}
	}
}

// Toggle adds or removes a single ID. Removing an absent ID is a no-op.
func (s Selection) Toggle(id string, checked bool) {
	if checked {
		s[id] = struct{}{}
		return
	}
	delete(s, id)
}

// Has reports whether id is selected.
func (s Selection) Has(id string) bool {
	_, ok := s[id]
	return ok
}

// IDs returns the selected identifiers in unspecified order.
func (s Selection) IDs() []string {
	out := make([]string, 0, len(s))
	for id := range s {
		out = append(out, id)
	}
	return out
}

// SelectionSummary drives a tri-state "select all" control.
type SelectionSummary struct {
	Count        int
	AllSelected  bool
	SomeSelected bool
}

// Summary computes the control state against the currently visible IDs. Only
// selected IDs that are visible count toward the tally.
func (s Selection) Summary(visibleIDs []string) SelectionSummary {
	visible := 0
	for _, id := range visibleIDs {
		if s.Has(id) {
			visible++
		}
	}
	return SelectionSummary{
		Count:        visible,
		AllSelected:  len(visibleIDs) > 0 && visible == len(visibleIDs),
		SomeSelected: visible > 0 && visible < len(visibleIDs),
	}
}
