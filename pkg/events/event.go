// Package events defines the document lifecycle events published on the
// in-process bus. Consumers fan them out to connected progress sockets.
package events

import "time"

const (
	TypeDocumentAnalyzed = "DOCUMENT_ANALYZED"
	TypeDocumentRemoved  = "DOCUMENT_REMOVED"
)

// Event is the contract for everything crossing the bus.
type Event interface {
	EventType() string
	Payload() map[string]interface{}
	Timestamp() time.Time
}

// BaseEvent is the standard implementation used by the constructors
// below.
type BaseEvent struct {
	Type       string                 `json:"type"`
	Data       map[string]interface{} `json:"data"`
	OccurredAt time.Time              `json:"occurred_at"`
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}

// NewDocumentAnalyzed records a successful commit of an analyzed
// document into the session history.
func NewDocumentAnalyzed(name string, pages, names, emails, phones, clauses int) BaseEvent {
	return BaseEvent{
		Type: TypeDocumentAnalyzed,
		Data: map[string]interface{}{
			"name":    name,
			"pages":   pages,
			"names":   names,
			"emails":  emails,
			"phones":  phones,
			"clauses": clauses,
		},
		OccurredAt: time.Now(),
	}
}

// NewDocumentRemoved records the deletion of a history entry.
func NewDocumentRemoved(name string, index int) BaseEvent {
	return BaseEvent{
		Type: TypeDocumentRemoved,
		Data: map[string]interface{}{
			"name":  name,
			"index": index,
		},
		OccurredAt: time.Now(),
	}
}
