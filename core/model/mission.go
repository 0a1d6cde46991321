package model

import (
	"fmt"
	"strings"

	"github.com/fpayan/fleetsim/core/logger"
)

// MissionState is the lifecycle state of a mission. States only advance;
// Completed is absorbing.
type MissionState int

const (
	Pending MissionState = iota
	Assigned
	InProgress
	Completed
)

// String returns a human-readable representation of the mission state.
func (s MissionState) String() string {
	switch s {
	case Pending:
		return "pending"
	case Assigned:
		return "assigned"
	case InProgress:
		return "in_progress"
	case Completed:
		return "completed"
	default:
		return "unknown"
	}
}

// MissionKind selects the start and completion behavior of a mission.
type MissionKind int

const (
	// UrgentDelivery moves the payload to the destination and unloads it.
	UrgentDelivery MissionKind = iota
	// Rescue moves to the destination under autonomy and loads the rescued
	// weight on completion.
	Rescue
)

// String returns a human-readable representation of the mission kind.
func (k MissionKind) String() string {
	switch k {
	case UrgentDelivery:
		return "urgent_delivery"
	case Rescue:
		return "rescue"
	default:
		return "unknown"
	}
}

// ParseMissionKind converts a configuration label into a MissionKind.
func ParseMissionKind(s string) (MissionKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "urgent_delivery", "delivery":
		return UrgentDelivery, nil
	case "rescue":
		return Rescue, nil
	default:
		return 0, fmt.Errorf("unknown mission kind %q", s)
	}
}

// Mission is a task moving a payload from an origin to a destination via an
// assigned unit. The assigned unit is shared, never owned: the fleet
// container controls unit lifetimes.
type Mission struct {
	id          string
	kind        MissionKind
	origin      string
	destination string
	payload     float64
	unit        Unit
	state       MissionState
	log         logger.Logger
}

// NewMission creates a mission in the Pending state. A nil logger disables
// action reporting.
func NewMission(kind MissionKind, id, origin, destination string, payloadKg float64, log logger.Logger) (*Mission, error) {
	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("mission: %w", ErrInvalidID)
	}
	if payloadKg < 0 {
		return nil, fmt.Errorf("mission %s: %w", id, ErrInvalidPayload)
	}
	if log == nil {
		log = nopLogger{}
	}
	return &Mission{
		id:          id,
		kind:        kind,
		origin:      origin,
		destination: destination,
		payload:     payloadKg,
		state:       Pending,
		log:         log,
	}, nil
}

func (m *Mission) ID() string          { return m.id }
func (m *Mission) Kind() MissionKind   { return m.kind }
func (m *Mission) Origin() string      { return m.origin }
func (m *Mission) Destination() string { return m.destination }
func (m *Mission) PayloadKg() float64  { return m.payload }
func (m *Mission) State() MissionState { return m.state }

// AssignedUnit returns the unit serving the mission, or nil.
func (m *Mission) AssignedUnit() Unit { return m.unit }

// Completed reports whether the mission reached its terminal state.
func (m *Mission) Completed() bool { return m.state == Completed }

// Assign binds a unit to the mission and moves it to the Assigned state.
func (m *Mission) Assign(u Unit) {
	m.unit = u
	m.state = Assigned
	m.log.Infof("unit %s assigned to mission %s", u.ID(), m.id)
}

// Start runs the kind-specific start behavior and moves the mission to
// InProgress. The assigned unit relocates to the destination synchronously.
func (m *Mission) Start() error {
	if m.unit == nil {
		return fmt.Errorf("mission %s: %w", m.id, ErrNoUnitAssigned)
	}
	switch m.kind {
	case Rescue:
		m.log.Infof("starting rescue %s at %s", m.id, m.destination)
		m.unit.MoveTo(m.destination)
		if a, ok := m.unit.(Autonomous); ok {
			a.EnableAutonomy()
		}
	default:
		m.log.Infof("starting urgent delivery %s from %s to %s", m.id, m.origin, m.destination)
		m.unit.MoveTo(m.destination)
	}
	m.state = InProgress
	return nil
}

// Complete runs the kind-specific completion behavior and marks the mission
// Completed. The mission stays completed even if the final load is rejected;
// the load error is surfaced to the caller.
func (m *Mission) Complete() error {
	m.state = Completed
	if m.unit == nil {
		return nil
	}
	switch m.kind {
	case Rescue:
		m.log.Infof("rescue %s completed", m.id)
		err := m.unit.Load(m.payload)
		if a, ok := m.unit.(Autonomous); ok {
			a.DisableAutonomy()
		}
		if err != nil {
			return fmt.Errorf("mission %s: %w", m.id, err)
		}
	default:
		m.log.Infof("urgent delivery %s completed", m.id)
		m.unit.Unload(m.payload)
	}
	return nil
}

// Step advances the mission by at most one transition based on the assigned
// unit's current location. A mission with no unit, or already completed, is
// left untouched.
func (m *Mission) Step() error {
	if m.state == Completed || m.unit == nil {
		return nil
	}
	switch {
	case m.state == Assigned && m.unit.Location() == m.origin:
		return m.Start()
	case m.state == InProgress && m.unit.Location() == m.destination:
		return m.Complete()
	default:
		m.log.Infof("unit %s en route to %s for mission %s", m.unit.ID(), m.destination, m.id)
	}
	return nil
}

// Status returns a one-line summary of the mission.
func (m *Mission) Status() string {
	unit := "unassigned"
	if m.unit != nil {
		unit = m.unit.ID()
	}
	return fmt.Sprintf("mission %s (%s): %s -> %s, payload %.2f kg, unit %s, state %s",
		m.id, m.kind, m.origin, m.destination, m.payload, unit, m.state)
}
