package board

import "github.com/jmrivas/tablero/internal/models"

// Phase tracks a drop through its optimistic-update lifecycle
type Phase int

const (
	PhaseIdle      Phase = iota // No mutation applied
	PhasePending                // Optimistic mutation applied, persistence in flight
	PhaseCommitted              // Persistence confirmed the mutation
	PhaseRolledBack             // Persistence failed, mutation reverted
)

// Drag records one completed drop gesture: which issue moved, where from,
// the status it had before the move, and the status the move applied.
// PrevStatus is what rollback restores.
type Drag struct {
	Phase      Phase
	Issue      *models.Issue
	SourceID   string
	TargetID   string
	PrevStatus models.Status
	NewStatus  models.Status
}

// Dragger orchestrates drop gestures. Drop applies the status mutation to
// the issue synchronously (the optimistic update) and registers a pending
// record; the caller persists asynchronously and settles the record with
// Commit or Rollback.
//
// One persistence request per issue may be in flight at a time: a drop on
// an issue whose previous update has not settled resolves as disallowed,
// which removes any out-of-order completion race between rapid sequential
// drags of the same card.
type Dragger struct {
	pending map[string]*Drag
}

// NewDragger creates a Dragger with no pending drops
func NewDragger() *Dragger {
	return &Dragger{pending: make(map[string]*Drag)}
}

// Drop resolves a drop gesture and, when legal, applies the optimistic
// status mutation. Returns the pending drag record, or (nil, false) when
// the payload is malformed, the transition is disallowed, or the issue
// already has a persistence request in flight. A false return means the
// caller does nothing: no mutation, no request.
func (g *Dragger) Drop(payload Payload, sourceID, targetID string, columns []*Column) (*Drag, bool) {
	card, ok := DecodeCard(payload)
	if !ok {
		return nil, false
	}
	if _, busy := g.pending[card.Issue.ID]; busy {
		return nil, false
	}

	res := ResolveDrop(sourceID, targetID, card.Issue, columns)
	if !res.Allowed {
		return nil, false
	}

	drag := &Drag{
		Phase:      PhasePending,
		Issue:      card.Issue,
		SourceID:   sourceID,
		TargetID:   targetID,
		PrevStatus: effectiveStatus(card.Issue),
		NewStatus:  res.NewStatus,
	}

	// Optimistic update: the board reflects the move before the
	// persistence call returns
	card.Issue.Status = res.NewStatus
	g.pending[card.Issue.ID] = drag

	return drag, true
}

// Commit marks the pending drop for the issue as persisted. Returns the
// settled drag record, or nil if nothing was pending.
func (g *Dragger) Commit(issueID string) *Drag {
	drag, ok := g.pending[issueID]
	if !ok {
		return nil
	}
	delete(g.pending, issueID)
	drag.Phase = PhaseCommitted
	return drag
}

// Rollback reverts the optimistic mutation for the issue after a failed
// persistence call, restoring the pre-drag status. Returns the settled
// drag record, or nil if nothing was pending.
func (g *Dragger) Rollback(issueID string) *Drag {
	drag, ok := g.pending[issueID]
	if !ok {
		return nil
	}
	delete(g.pending, issueID)
	drag.Issue.Status = drag.PrevStatus
	drag.Phase = PhaseRolledBack
	return drag
}

// InFlight reports whether the issue has an unsettled persistence request
func (g *Dragger) InFlight(issueID string) bool {
	_, ok := g.pending[issueID]
	return ok
}
