package board

import "github.com/jmrivas/tablero/internal/models"

// BlockedIndex maps issue IDs to their dependency blocking summary.
// Issues missing from the index are treated as unblocked.
type BlockedIndex map[string]*models.BlockedInfo

// Classify buckets issues into columns using first-match-wins dispatch:
// for each issue, column predicates are evaluated in list order and the
// issue lands in the first column that accepts it.
//
// Every column ID appears as a key in the result even with zero matches,
// so callers can render empty columns. Issues matching no column are
// silently dropped. Per-column order follows the input order; no sorting
// is imposed here.
func Classify(issues []*models.Issue, columns []*Column, blocked BlockedIndex) map[string][]*models.Issue {
	buckets := make(map[string][]*models.Issue, len(columns))
	for _, col := range columns {
		buckets[col.ID] = []*models.Issue{}
	}

	for _, issue := range issues {
		for _, col := range columns {
			if col.Predicate(issue, blocked[issue.ID]) {
				buckets[col.ID] = append(buckets[col.ID], issue)
				break
			}
		}
	}

	return buckets
}
