package metrics

import "time"

// AssignmentEvent represents a dispatcher decision to be recorded.
type AssignmentEvent struct {
	MissionID string
	UnitID    string
	Kind      string
	Variant   string
	Cycle     int
	Time      time.Time
}

// CycleStats summarizes a finished simulation cycle.
type CycleStats struct {
	Cycle      int
	FleetSize  int
	Pending    int
	Active     int
	Completed  int
	Unassigned int
	Time       time.Time
}

// MissionEvent captures a mission state transition.
type MissionEvent struct {
	MissionID string
	UnitID    string
	Kind      string
	State     string
	PayloadKg float64
	Cycle     int
	Time      time.Time
}

// MetricsSink records simulation events for observability purposes.
type MetricsSink interface {
	RecordAssignment(ev AssignmentEvent) error
	RecordDispatchUnavailable(missionID string) error
	RecordCycle(st CycleStats) error
}

// MissionRecorder records mission state transitions when supported by the sink.
type MissionRecorder interface {
	RecordMissionEvent(ev MissionEvent) error
}

// NopSink discards all records.
type NopSink struct{}

func (NopSink) RecordAssignment(AssignmentEvent) error { return nil }
func (NopSink) RecordDispatchUnavailable(string) error { return nil }
func (NopSink) RecordCycle(CycleStats) error           { return nil }
