// Package sim orchestrates the simulation: one cycle runs the dispatcher
// over pending missions, advances every assigned mission one transition,
// and reports the fleet and mission state.
package sim

import (
	"context"
	"time"

	"github.com/fpayan/fleetsim/core/dispatch"
	"github.com/fpayan/fleetsim/core/events"
	"github.com/fpayan/fleetsim/core/logger"
	"github.com/fpayan/fleetsim/core/metrics"
	"github.com/fpayan/fleetsim/core/model"
	"github.com/fpayan/fleetsim/core/status"
	"github.com/fpayan/fleetsim/core/telemetry"
	"github.com/fpayan/fleetsim/internal/eventbus"
)

// Environment owns the fleet and the mission queue. Both collections keep
// insertion order, which drives iteration order for dispatch and stepping.
// An Environment must not be shared between concurrent runs: the busy check
// assumes a single consistent view of all missions.
type Environment struct {
	dispatcher dispatch.Dispatcher
	log        logger.Logger

	units    []model.Unit
	missions []*model.Mission
	cycle    int

	bus       eventbus.EventBus
	sink      metrics.MetricsSink
	store     status.Store
	publisher telemetry.Publisher
}

// New creates an empty Environment driven by the given dispatcher.
func New(d dispatch.Dispatcher, log logger.Logger) *Environment {
	return &Environment{
		dispatcher: d,
		log:        log,
		sink:       metrics.NopSink{},
		publisher:  telemetry.NopPublisher{},
	}
}

// SetEventBus configures the bus simulation events are published on.
func (e *Environment) SetEventBus(bus eventbus.EventBus) { e.bus = bus }

// SetMetricsSink configures the sink simulation metrics are recorded to.
func (e *Environment) SetMetricsSink(sink metrics.MetricsSink) {
	if sink != nil {
		e.sink = sink
	}
}

// SetStatusStore configures the store receiving per-unit status snapshots.
func (e *Environment) SetStatusStore(store status.Store) { e.store = store }

// SetTelemetryPublisher configures the publisher receiving cycle snapshots.
func (e *Environment) SetTelemetryPublisher(p telemetry.Publisher) {
	if p != nil {
		e.publisher = p
	}
}

// AddUnit appends a unit to the fleet.
func (e *Environment) AddUnit(u model.Unit) {
	e.units = append(e.units, u)
	e.log.Infof("unit %s added to environment", u.ID())
}

// AddMission appends a mission to the queue.
func (e *Environment) AddMission(m *model.Mission) {
	e.missions = append(e.missions, m)
	e.log.Infof("mission %s (%s) added to environment", m.ID(), m.Kind())
}

// Units returns the fleet in insertion order.
func (e *Environment) Units() []model.Unit { return e.units }

// Missions returns the mission queue in insertion order.
func (e *Environment) Missions() []*model.Mission { return e.missions }

// Cycle returns the number of completed cycles.
func (e *Environment) Cycle() int { return e.cycle }

// AllCompleted reports whether every mission reached its terminal state.
func (e *Environment) AllCompleted() bool {
	for _, m := range e.missions {
		if !m.Completed() {
			return false
		}
	}
	return true
}

// RunCycle performs one simulation cycle: dispatch pass, progression pass,
// then status snapshot.
func (e *Environment) RunCycle(ctx context.Context) {
	e.cycle++
	e.log.Infof("cycle %d starting", e.cycle)

	e.dispatchPass()
	e.progressionPass()
	e.snapshot(ctx)

	e.log.Infof("cycle %d completed", e.cycle)
}

// dispatchPass tries to assign a unit to every pending mission.
func (e *Environment) dispatchPass() {
	for _, m := range e.missions {
		if m.AssignedUnit() != nil || m.Completed() {
			continue
		}
		u, err := e.dispatcher.Select(e.units, m, e.missions)
		if err != nil {
			e.log.Warnf("no unit available at %s for mission %s", m.Origin(), m.ID())
			e.publish(events.DispatchUnavailableEvent{MissionID: m.ID(), Origin: m.Origin(), Cycle: e.cycle})
			if serr := e.sink.RecordDispatchUnavailable(m.ID()); serr != nil {
				e.log.Errorf("record dispatch unavailable: %v", serr)
			}
			continue
		}
		m.Assign(u)
		e.publish(events.AssignmentEvent{MissionID: m.ID(), UnitID: u.ID(), Kind: m.Kind(), Cycle: e.cycle})
		if serr := e.sink.RecordAssignment(metrics.AssignmentEvent{
			MissionID: m.ID(),
			UnitID:    u.ID(),
			Kind:      m.Kind().String(),
			Variant:   u.Variant(),
			Cycle:     e.cycle,
			Time:      time.Now(),
		}); serr != nil {
			e.log.Errorf("record assignment: %v", serr)
		}
		if e.store != nil {
			e.store.RecordAssignment(u.ID(), status.LastAssignment{
				MissionID: m.ID(),
				Kind:      m.Kind().String(),
				PayloadKg: m.PayloadKg(),
				Cycle:     e.cycle,
			})
		}
	}
}

// progressionPass advances every assigned, non-completed mission one step.
func (e *Environment) progressionPass() {
	for _, m := range e.missions {
		if m.Completed() || m.AssignedUnit() == nil {
			continue
		}
		before := m.State()
		if err := m.Step(); err != nil {
			e.log.Errorf("mission %s step: %v", m.ID(), err)
		}
		after := m.State()
		if after == before {
			continue
		}
		unitID := ""
		if u := m.AssignedUnit(); u != nil {
			unitID = u.ID()
		}
		switch after {
		case model.InProgress:
			e.publish(events.MissionStartedEvent{MissionID: m.ID(), UnitID: unitID, Kind: m.Kind(), Cycle: e.cycle})
		case model.Completed:
			e.publish(events.MissionCompletedEvent{MissionID: m.ID(), UnitID: unitID, Kind: m.Kind(), Cycle: e.cycle})
		}
		if rec, ok := e.sink.(metrics.MissionRecorder); ok {
			if serr := rec.RecordMissionEvent(metrics.MissionEvent{
				MissionID: m.ID(),
				UnitID:    unitID,
				Kind:      m.Kind().String(),
				State:     after.String(),
				PayloadKg: m.PayloadKg(),
				Cycle:     e.cycle,
				Time:      time.Now(),
			}); serr != nil {
				e.log.Errorf("record mission event: %v", serr)
			}
		}
	}
}

// snapshot reports every unit and mission status, updates the status store
// and metrics, and publishes the telemetry snapshot.
func (e *Environment) snapshot(ctx context.Context) {
	snap := telemetry.Snapshot{Cycle: e.cycle, Time: time.Now()}

	for _, u := range e.units {
		line := u.Status()
		e.log.Infof("%s", line)
		if e.store != nil {
			st := status.Status{
				UnitID:   u.ID(),
				Variant:  u.Variant(),
				Location: u.Location(),
				Busy:     dispatch.Busy(u, e.missions),
				Detail:   line,
			}
			if prev, ok := e.store.Get(u.ID()); ok {
				st.LastAssignment = prev.LastAssignment
			}
			e.store.Set(st)
		}
		snap.Units = append(snap.Units, telemetry.UnitStatus{
			ID:       u.ID(),
			Variant:  u.Variant(),
			Location: u.Location(),
			Detail:   line,
		})
	}

	stats := metrics.CycleStats{Cycle: e.cycle, FleetSize: len(e.units), Time: snap.Time}
	for _, m := range e.missions {
		e.log.Infof("%s", m.Status())
		unitID := ""
		if u := m.AssignedUnit(); u != nil {
			unitID = u.ID()
		} else if !m.Completed() {
			stats.Unassigned++
		}
		switch m.State() {
		case model.Pending:
			stats.Pending++
		case model.Assigned, model.InProgress:
			stats.Active++
		case model.Completed:
			stats.Completed++
		}
		snap.Missions = append(snap.Missions, telemetry.MissionStatus{
			ID:          m.ID(),
			Kind:        m.Kind().String(),
			State:       m.State().String(),
			Origin:      m.Origin(),
			Destination: m.Destination(),
			PayloadKg:   m.PayloadKg(),
			UnitID:      unitID,
		})
	}

	if err := e.sink.RecordCycle(stats); err != nil {
		e.log.Errorf("record cycle: %v", err)
	}
	e.publish(events.CycleEvent{Cycle: e.cycle, Pending: stats.Pending, Active: stats.Active, Completed: stats.Completed})
	if err := e.publisher.PublishSnapshot(ctx, snap); err != nil {
		e.log.Errorf("publish snapshot: %v", err)
	}
}

// ExerciseFleet walks every unit through its capabilities against the given
// location. It mutates unit positions and is meant as a pre-run fleet check,
// not part of the simulation cycle.
func (e *Environment) ExerciseFleet(location string) {
	for _, u := range e.units {
		e.log.Infof("checking unit %s", u.ID())
		u.MoveTo(location)
		if d, ok := u.(model.Driver); ok {
			d.Drive()
		}
		if f, ok := u.(model.Flier); ok {
			f.Fly()
		}
		if s, ok := u.(model.Swimmer); ok {
			s.Navigate()
		}
		if a, ok := u.(model.Autonomous); ok {
			a.EnableAutonomy()
		}
		e.log.Infof("%s", u.Status())
	}
}

func (e *Environment) publish(ev eventbus.Event) {
	if e.bus != nil {
		e.bus.Publish(ev)
	}
}
