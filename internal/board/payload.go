package board

import "github.com/jmrivas/tablero/internal/models"

// Payload is the sealed set of data shapes a drag gesture may carry.
// Anything that does not decode to a known shape is rejected at the
// boundary and the gesture becomes a no-op.
type Payload interface {
	isPayload()
}

// CardPayload is attached to a dragged card
type CardPayload struct {
	Issue *models.Issue
}

// SlotPayload is attached to a drop target and names the status a drop
// onto it would apply
type SlotPayload struct {
	Status models.Status
}

func (CardPayload) isPayload() {}
func (SlotPayload) isPayload() {}

// DecodeCard validates that a drag carries an issue card. Returns false
// for nil payloads, foreign shapes, and cards without an issue.
func DecodeCard(p Payload) (CardPayload, bool) {
	card, ok := p.(CardPayload)
	if !ok || card.Issue == nil {
		return CardPayload{}, false
	}
	return card, true
}

// DecodeSlot validates that a drop target carries a status slot
func DecodeSlot(p Payload) (SlotPayload, bool) {
	slot, ok := p.(SlotPayload)
	if !ok || slot.Status == "" {
		return SlotPayload{}, false
	}
	return slot, true
}
