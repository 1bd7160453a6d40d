package board

import "github.com/jmrivas/tablero/internal/models"

// Resolution is the outcome of asking whether a drop is legal.
// When Allowed is false the drop is a silent no-op; NewStatus is only
// meaningful when Allowed is true.
type Resolution struct {
	Allowed   bool
	NewStatus models.Status
}

// ResolveDrop decides whether dropping an issue dragged from sourceID onto
// targetID is legal, and if so which status mutation results.
//
// The resolution fails closed when:
//   - the target column does not exist in the column list
//   - the target column rejects all drops (derived columns)
//   - the source column restricts drop targets and the target is not listed
//   - the target column has no writable status
//   - the resulting status equals the issue's current status (no-op drop)
func ResolveDrop(sourceID, targetID string, issue *models.Issue, columns []*Column) Resolution {
	target := FindColumn(columns, targetID)
	if target == nil {
		return Resolution{}
	}
	if target.DropDisabled {
		return Resolution{}
	}

	if source := FindColumn(columns, sourceID); source != nil && source.AllowedDropTargets != nil {
		permitted := false
		for _, id := range source.AllowedDropTargets {
			if id == targetID {
				permitted = true
				break
			}
		}
		if !permitted {
			return Resolution{}
		}
	}

	if target.TargetStatus == "" {
		return Resolution{}
	}
	if target.TargetStatus == effectiveStatus(issue) {
		return Resolution{}
	}

	return Resolution{Allowed: true, NewStatus: target.TargetStatus}
}
