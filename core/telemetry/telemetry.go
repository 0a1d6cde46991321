package telemetry

import (
	"context"
	"time"
)

// UnitStatus is the exported state of one unit.
type UnitStatus struct {
	ID       string `json:"id"`
	Variant  string `json:"variant"`
	Location string `json:"location"`
	Detail   string `json:"detail"`
}

// MissionStatus is the exported state of one mission.
type MissionStatus struct {
	ID          string  `json:"id"`
	Kind        string  `json:"kind"`
	State       string  `json:"state"`
	Origin      string  `json:"origin"`
	Destination string  `json:"destination"`
	PayloadKg   float64 `json:"payload_kg"`
	UnitID      string  `json:"unit_id,omitempty"`
}

// Snapshot is the per-cycle fleet state pushed to external consumers.
type Snapshot struct {
	ID       string          `json:"id"`
	Cycle    int             `json:"cycle"`
	Time     time.Time       `json:"time"`
	Units    []UnitStatus    `json:"units"`
	Missions []MissionStatus `json:"missions"`
}

// Publisher pushes cycle snapshots to an external consumer.
type Publisher interface {
	PublishSnapshot(ctx context.Context, s Snapshot) error
	Close() error
}

// NopPublisher discards all snapshots.
type NopPublisher struct{}

func (NopPublisher) PublishSnapshot(context.Context, Snapshot) error { return nil }
func (NopPublisher) Close() error                                    { return nil }
