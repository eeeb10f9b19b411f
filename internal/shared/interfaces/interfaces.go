package interfaces

// Roster names used when recording roster operations
const (
	RosterFriends  = "friends"
	RosterStudents = "students"
)

// Roster operations
const (
	OperationAdd    = "add"
	OperationRemove = "remove"
)

// Operation results
const (
	ResultOK            = "ok"
	ResultNotFound      = "not_found"
	ResultInvalidFactor = "invalid_factor"
)

// Recorder receives counts of component activity. metrics.Metrics implements
// it; components fall back to NopRecorder when none is supplied.
type Recorder interface {
	RecordIdentifier()
	RecordRosterOperation(roster, operation, result string)
	RecordSumOfMultiples(result string)
}

// NopRecorder discards everything
type NopRecorder struct{}

func (NopRecorder) RecordIdentifier()                    {}
func (NopRecorder) RecordRosterOperation(_, _, _ string) {}
func (NopRecorder) RecordSumOfMultiples(_ string)        {}
