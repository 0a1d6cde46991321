package report

import (
	"math"
	"testing"

	"github.com/fpayan/fleetsim/core/model"
)

func TestBuildFleetReport(t *testing.T) {
	u1, _ := model.NewRover("U1", 400, "X", nil)
	u2, _ := model.NewRover("U2", 600, "Y", nil)
	units := []model.Unit{u1, u2}

	m1, _ := model.NewMission(model.UrgentDelivery, "M1", "X", "Z", 100, nil)
	m2, _ := model.NewMission(model.UrgentDelivery, "M2", "Y", "Z", 300, nil)
	m1.Assign(u1)
	missions := []*model.Mission{m1, m2}

	rep := Build(units, missions)
	if rep.Units != 2 || rep.Missions != 2 {
		t.Fatalf("counts wrong: %+v", rep)
	}
	if math.Abs(rep.MeanCapacityKg-500) > 1e-9 {
		t.Fatalf("mean capacity %v", rep.MeanCapacityKg)
	}
	if math.Abs(rep.MeanPayloadKg-200) > 1e-9 {
		t.Fatalf("mean payload %v", rep.MeanPayloadKg)
	}
	// sample standard deviation of {400, 600}
	if math.Abs(rep.StdDevCapacityKg-math.Sqrt(20000)) > 1e-9 {
		t.Fatalf("stddev %v", rep.StdDevCapacityKg)
	}
	if math.Abs(rep.Utilization-0.5) > 1e-9 {
		t.Fatalf("utilization %v", rep.Utilization)
	}
	if rep.CompletedMissions != 0 {
		t.Fatalf("completed %d", rep.CompletedMissions)
	}
}

func TestBuildEmpty(t *testing.T) {
	rep := Build(nil, nil)
	if rep.Units != 0 || rep.Missions != 0 || rep.Utilization != 0 {
		t.Fatalf("empty report: %+v", rep)
	}
}
