package pipeline

import (
	"time"

	"github.com/google/uuid"
)

// Run identifies one pass of the pipeline in logs and events
type Run struct {
	ID        string
	StartTime time.Time
}

// NewRun creates a run with a unique ID
func NewRun() *Run {
	return &Run{
		ID:        uuid.New().String(),
		StartTime: time.Now(),
	}
}

// Elapsed returns the time since the run started
func (r *Run) Elapsed() time.Duration {
	return time.Since(r.StartTime)
}
