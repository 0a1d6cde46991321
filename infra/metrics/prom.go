package metrics

import (
	coremetrics "github.com/fpayan/fleetsim/core/metrics"
	"github.com/prometheus/client_golang/prometheus"
)

// PromSink records simulation events in Prometheus metrics.
type PromSink struct {
	assignments *prometheus.CounterVec
	unavailable prometheus.Counter
	missions    *prometheus.CounterVec
	cycles      prometheus.Counter
	fleet       prometheus.Gauge
	pending     prometheus.Gauge
}

// NewPromSink registers simulation metrics on the default Prometheus
// registerer. The Prometheus server should be started separately using
// cfg.PrometheusPort.
func NewPromSink(cfg coremetrics.Config) (*PromSink, error) {
	return NewPromSinkWithRegistry(cfg, prometheus.DefaultRegisterer)
}

// NewPromSinkWithRegistry registers metrics on the provided registerer.
// A nil registerer defaults to the global Prometheus registerer.
func NewPromSinkWithRegistry(cfg coremetrics.Config, reg prometheus.Registerer) (*PromSink, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	assignments := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "dispatch_assignments_total",
		Help: "Total number of unit-to-mission assignments",
	}, []string{"unit_id", "variant", "mission_kind"})
	unavailable := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "dispatch_unavailable_total",
		Help: "Total number of dispatch attempts with no qualifying unit",
	})
	missions := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "mission_transitions_total",
		Help: "Total number of mission state transitions",
	}, []string{"mission_kind", "state"})
	cycles := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "simulation_cycles_total",
		Help: "Total number of simulation cycles run",
	})
	fleet := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "fleet_units_total",
		Help: "Number of units in the fleet",
	})
	pending := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "missions_pending",
		Help: "Number of missions waiting for a unit",
	})

	s := &PromSink{
		assignments: assignments,
		unavailable: unavailable,
		missions:    missions,
		cycles:      cycles,
		fleet:       fleet,
		pending:     pending,
	}
	for _, c := range []prometheus.Collector{assignments, unavailable, missions, cycles, fleet, pending} {
		if err := reg.Register(c); err != nil {
			if _, ok := err.(prometheus.AlreadyRegisteredError); !ok {
				return nil, err
			}
		}
	}
	return s, nil
}

// RecordAssignment increments the assignment counter.
func (s *PromSink) RecordAssignment(ev coremetrics.AssignmentEvent) error {
	s.assignments.WithLabelValues(ev.UnitID, ev.Variant, ev.Kind).Inc()
	return nil
}

// RecordDispatchUnavailable counts a cycle where a mission found no unit.
func (s *PromSink) RecordDispatchUnavailable(string) error {
	s.unavailable.Inc()
	return nil
}

// RecordCycle updates the cycle counter and fleet gauges.
func (s *PromSink) RecordCycle(st coremetrics.CycleStats) error {
	s.cycles.Inc()
	s.fleet.Set(float64(st.FleetSize))
	s.pending.Set(float64(st.Pending))
	return nil
}

// RecordMissionEvent counts mission state transitions per kind.
func (s *PromSink) RecordMissionEvent(ev coremetrics.MissionEvent) error {
	s.missions.WithLabelValues(ev.Kind, ev.State).Inc()
	return nil
}
