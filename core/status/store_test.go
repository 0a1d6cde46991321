package status

import "testing"

func TestMemoryStore_Filter(t *testing.T) {
	s := NewMemoryStore()
	s.Set(Status{UnitID: "u1", Variant: "rover", Location: "Base Central"})
	s.Set(Status{UnitID: "u2", Variant: "drone", Location: "Hangar Norte"})
	out := s.List(Filter{Variant: "rover"})
	if len(out) != 1 || out[0].UnitID != "u1" {
		t.Fatalf("variant filter failed: %#v", out)
	}
	out = s.List(Filter{Location: "Hangar Norte"})
	if len(out) != 1 || out[0].UnitID != "u2" {
		t.Fatalf("location filter failed: %#v", out)
	}
}

func TestMemoryStore_ListSorted(t *testing.T) {
	s := NewMemoryStore()
	s.Set(Status{UnitID: "u2"})
	s.Set(Status{UnitID: "u1"})
	out := s.List(Filter{})
	if len(out) != 2 || out[0].UnitID != "u1" {
		t.Fatalf("list not sorted: %#v", out)
	}
}

func TestMemoryStore_RecordAssignment(t *testing.T) {
	s := NewMemoryStore()
	s.Set(Status{UnitID: "u1"})
	s.RecordAssignment("u1", LastAssignment{MissionID: "M001", Kind: "rescue", Cycle: 3})
	st, ok := s.Get("u1")
	if !ok {
		t.Fatalf("unit missing")
	}
	if !st.Busy || st.LastAssignment.MissionID != "M001" {
		t.Fatalf("assignment not recorded: %#v", st)
	}
}

func TestMemoryStore_RecordAssignmentNew(t *testing.T) {
	s := NewMemoryStore()
	s.RecordAssignment("u3", LastAssignment{MissionID: "M002"})
	out := s.List(Filter{})
	if len(out) != 1 || out[0].UnitID != "u3" {
		t.Fatalf("auto create failed %#v", out)
	}
}
