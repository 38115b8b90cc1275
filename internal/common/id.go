package common

import (
	"github.com/google/uuid"
)

// NewRunID generates a unique per-invocation correlation ID with the "run_"
// prefix. It is attached to log entries so the sequential calls for one event
// can be grouped in the log output.
func NewRunID() string {
	return "run_" + uuid.New().String()
}
