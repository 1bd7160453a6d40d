package state

// SearchState manages the vim-style filter functionality state.
// This includes the filter query text and whether the filter is currently
// applied to the board.
type SearchState struct {
	// Query is the current filter text entered by the user
	Query string

	// IsActive indicates whether the filter is applied.
	// When true, the board shows only matching issues.
	IsActive bool
}

// NewSearchState creates a new SearchState with default values.
func NewSearchState() *SearchState {
	return &SearchState{}
}

// AppendChar appends a character to the filter query.
// Returns true if the character was added, false if query is at max length.
func (s *SearchState) AppendChar(c rune) bool {
	const maxQueryLength = 100

	if len(s.Query) >= maxQueryLength {
		return false
	}

	s.Query += string(c)
	return true
}

// Backspace removes the last character from the filter query.
// Returns true if a character was removed, false if query was already empty.
func (s *SearchState) Backspace() bool {
	if len(s.Query) == 0 {
		return false
	}

	s.Query = s.Query[:len(s.Query)-1]
	return true
}

// Clear resets the filter query to empty string.
func (s *SearchState) Clear() {
	s.Query = ""
}

// Activate applies the filter.
// This is called when the user presses Enter in filter mode.
func (s *SearchState) Activate() {
	s.IsActive = true
}

// Deactivate clears the filter.
// This is called when the user presses ESC in filter mode.
func (s *SearchState) Deactivate() {
	s.IsActive = false
}

// EffectiveQuery returns the query when the filter is active, or the empty
// string when it is not.
func (s *SearchState) EffectiveQuery() string {
	if !s.IsActive {
		return ""
	}
	return s.Query
}
