package events

import "github.com/fpayan/fleetsim/core/model"

// AssignmentEvent is published when the dispatcher binds a unit to a mission.
type AssignmentEvent struct {
	MissionID string
	UnitID    string
	Kind      model.MissionKind
	Cycle     int
}

// DispatchUnavailableEvent is published when no qualifying unit exists for a
// pending mission this cycle.
type DispatchUnavailableEvent struct {
	MissionID string
	Origin    string
	Cycle     int
}

// MissionStartedEvent is published when a mission transitions to InProgress.
type MissionStartedEvent struct {
	MissionID string
	UnitID    string
	Kind      model.MissionKind
	Cycle     int
}

// MissionCompletedEvent is published when a mission reaches Completed.
type MissionCompletedEvent struct {
	MissionID string
	UnitID    string
	Kind      model.MissionKind
	Cycle     int
}

// CycleEvent summarizes a finished simulation cycle.
type CycleEvent struct {
	Cycle     int
	Pending   int
	Active    int
	Completed int
}
