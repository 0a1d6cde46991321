package metrics

import (
	"errors"
	"testing"

	coremetrics "github.com/fpayan/fleetsim/core/metrics"
)

type countingSink struct {
	assignments int
	unavailable int
	cycles      int
	missions    int
	err         error
}

func (c *countingSink) RecordAssignment(coremetrics.AssignmentEvent) error {
	c.assignments++
	return c.err
}

func (c *countingSink) RecordDispatchUnavailable(string) error {
	c.unavailable++
	return c.err
}

func (c *countingSink) RecordCycle(coremetrics.CycleStats) error {
	c.cycles++
	return c.err
}

func (c *countingSink) RecordMissionEvent(coremetrics.MissionEvent) error {
	c.missions++
	return c.err
}

type plainSink struct{ coremetrics.NopSink }

func TestMultiSinkFanOut(t *testing.T) {
	a := &countingSink{}
	b := &countingSink{}
	m := NewMultiSink(a, b)

	if err := m.RecordAssignment(coremetrics.AssignmentEvent{}); err != nil {
		t.Fatalf("assignment: %v", err)
	}
	if err := m.RecordDispatchUnavailable("M001"); err != nil {
		t.Fatalf("unavailable: %v", err)
	}
	if err := m.RecordCycle(coremetrics.CycleStats{}); err != nil {
		t.Fatalf("cycle: %v", err)
	}
	if err := m.RecordMissionEvent(coremetrics.MissionEvent{}); err != nil {
		t.Fatalf("mission: %v", err)
	}

	for _, s := range []*countingSink{a, b} {
		if s.assignments != 1 || s.unavailable != 1 || s.cycles != 1 || s.missions != 1 {
			t.Fatalf("sink not reached: %+v", s)
		}
	}
}

func TestMultiSinkFirstError(t *testing.T) {
	wantErr := errors.New("boom")
	a := &countingSink{err: wantErr}
	b := &countingSink{}
	m := NewMultiSink(a, b)

	if err := m.RecordCycle(coremetrics.CycleStats{}); !errors.Is(err, wantErr) {
		t.Fatalf("expected boom, got %v", err)
	}
	if b.cycles != 0 {
		t.Fatalf("second sink should not be reached after error")
	}
}

func TestMultiSinkSkipsNonMissionRecorders(t *testing.T) {
	a := &countingSink{}
	m := NewMultiSink(&plainSink{}, a)
	if err := m.RecordMissionEvent(coremetrics.MissionEvent{}); err != nil {
		t.Fatalf("mission: %v", err)
	}
	if a.missions != 1 {
		t.Fatalf("mission recorder skipped")
	}
}
