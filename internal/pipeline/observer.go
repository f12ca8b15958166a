package pipeline

import "time"

// EventType represents the lifecycle phases of a plot run
type EventType string

const (
	EventFetchStart   EventType = "fetch_start"
	EventFetchEnd     EventType = "fetch_end"
	EventProjectStart EventType = "project_start"
	EventProjectEnd   EventType = "project_end"
	EventRenderStart  EventType = "render_start"
	EventRenderEnd    EventType = "render_end"
	EventDisplay      EventType = "display"
)

// Event represents a lifecycle event of a plot run
type Event struct {
	Type      EventType   // Type of event
	RunID     string      // Run ID for tracing
	Timestamp time.Time   // When the event occurred
	Data      interface{} // Phase-specific data (table ref, row count, group names, ...)
}

// Observer interface for event subscribers
type Observer interface {
	OnEvent(event Event)
}
