package utils

import (
	"github.com/google/uuid"
)

const runIDPrefix = "run"

// GenerateUUID generates a new UUID string
func GenerateUUID() string {
	return uuid.New().String()
}

// NewRunID returns an identifier for one program run, e.g.
// "run-9b2f0c1e-...". It tags every log line the run writes.
func NewRunID() string {
	return runIDPrefix + "-" + GenerateUUID()
}
