package metrics

import coremetrics "github.com/fpayan/fleetsim/core/metrics"

// MultiSink fans simulation records out to multiple sinks.
type MultiSink struct {
	Sinks []coremetrics.MetricsSink
}

// NewMultiSink creates a MultiSink with the provided sinks.
func NewMultiSink(sinks ...coremetrics.MetricsSink) *MultiSink {
	return &MultiSink{Sinks: sinks}
}

// RecordAssignment forwards the record to all sinks, returning the first error encountered.
func (m *MultiSink) RecordAssignment(ev coremetrics.AssignmentEvent) error {
	for _, s := range m.Sinks {
		if err := s.RecordAssignment(ev); err != nil {
			return err
		}
	}
	return nil
}

// RecordDispatchUnavailable forwards the record to all sinks.
func (m *MultiSink) RecordDispatchUnavailable(missionID string) error {
	for _, s := range m.Sinks {
		if err := s.RecordDispatchUnavailable(missionID); err != nil {
			return err
		}
	}
	return nil
}

// RecordCycle forwards the record to all sinks.
func (m *MultiSink) RecordCycle(st coremetrics.CycleStats) error {
	for _, s := range m.Sinks {
		if err := s.RecordCycle(st); err != nil {
			return err
		}
	}
	return nil
}

// RecordMissionEvent forwards mission transitions when supported by the sink.
func (m *MultiSink) RecordMissionEvent(ev coremetrics.MissionEvent) error {
	for _, s := range m.Sinks {
		if rec, ok := s.(coremetrics.MissionRecorder); ok {
			if err := rec.RecordMissionEvent(ev); err != nil {
				return err
			}
		}
	}
	return nil
}
