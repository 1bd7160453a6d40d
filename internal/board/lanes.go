package board

import (
	"sort"

	"github.com/jmrivas/tablero/internal/models"
)

// GroupBy selects the swim-lane dimension
type GroupBy int

const (
	GroupByNone GroupBy = iota
	GroupByType
	GroupByAssignee
	GroupByLabel
)

// Sentinel lane keys for issues with no value in the grouping dimension
const (
	LaneNoType     = "no type"
	LaneUnassigned = "unassigned"
	LaneNoLabels   = "no labels"
)

// Lane is one swim lane: a key in the grouping dimension plus the issues
// that fall into it, in input order.
type Lane struct {
	Key    string
	Issues []*models.Issue
}

// GroupIssues partitions issues into swim lanes along the given dimension.
// Lanes are instantiated lazily, only for values present in the issue set,
// then sorted by key with the sentinel lane always last.
//
// Type and assignee lanes hold each issue exactly once. Label grouping
// duplicates an issue across one lane per label, so lane counts may sum to
// more than the issue count; an issue with no labels appears once, in the
// sentinel lane. Moving a card between status columns never changes its
// lane membership: drops mutate status only.
func GroupIssues(issues []*models.Issue, dimension GroupBy) []Lane {
	if dimension == GroupByNone {
		return []Lane{{Key: "", Issues: issues}}
	}

	byKey := make(map[string][]*models.Issue)
	for _, issue := range issues {
		for _, key := range laneKeys(issue, dimension) {
			byKey[key] = append(byKey[key], issue)
		}
	}

	sentinel := sentinelLane(dimension)
	keys := make([]string, 0, len(byKey))
	for key := range byKey {
		if key != sentinel {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	if _, ok := byKey[sentinel]; ok {
		keys = append(keys, sentinel)
	}

	lanes := make([]Lane, 0, len(keys))
	for _, key := range keys {
		lanes = append(lanes, Lane{Key: key, Issues: byKey[key]})
	}
	return lanes
}

// laneKeys returns the lane memberships for one issue. Only the label
// dimension can return more than one key.
func laneKeys(issue *models.Issue, dimension GroupBy) []string {
	switch dimension {
	case GroupByType:
		if issue.IssueType == "" {
			return []string{LaneNoType}
		}
		return []string{string(issue.IssueType)}
	case GroupByAssignee:
		if issue.Assignee == "" {
			return []string{LaneUnassigned}
		}
		return []string{issue.Assignee}
	case GroupByLabel:
		if len(issue.Labels) == 0 {
			return []string{LaneNoLabels}
		}
		return issue.Labels
	}
	return nil
}

func sentinelLane(dimension GroupBy) string {
	switch dimension {
	case GroupByType:
		return LaneNoType
	case GroupByAssignee:
		return LaneUnassigned
	case GroupByLabel:
		return LaneNoLabels
	}
	return ""
}
