package models

// BlockedInfo summarizes the dependency blocking state for one issue.
// It is computed from the dependency graph by the database layer; an issue
// missing from the index is treated as unblocked.
type BlockedInfo struct {
	BlockedByCount int      // Number of unresolved blocking dependencies
	BlockedBy      []string // IDs of the blocking issues
}

// IsBlocked reports whether the issue has at least one unresolved blocker
func (b *BlockedInfo) IsBlocked() bool {
	return b != nil && b.BlockedByCount > 0
}
