// Package report builds end-of-run summary statistics for a fleet and its
// mission queue.
package report

import (
	"gonum.org/v1/gonum/stat"

	"github.com/fpayan/fleetsim/core/dispatch"
	"github.com/fpayan/fleetsim/core/model"
)

// FleetReport aggregates fleet and mission figures at a point in time.
type FleetReport struct {
	Units             int
	MeanCapacityKg    float64
	StdDevCapacityKg  float64
	Missions          int
	CompletedMissions int
	MeanPayloadKg     float64
	Utilization       float64 // fraction of units serving an active mission
}

// Build computes a FleetReport from the current fleet and mission queue.
func Build(units []model.Unit, missions []*model.Mission) FleetReport {
	rep := FleetReport{Units: len(units), Missions: len(missions)}

	if len(units) > 0 {
		caps := make([]float64, len(units))
		busy := 0
		for i, u := range units {
			caps[i] = u.CapacityKg()
			if dispatch.Busy(u, missions) {
				busy++
			}
		}
		rep.MeanCapacityKg = stat.Mean(caps, nil)
		if len(caps) > 1 {
			rep.StdDevCapacityKg = stat.StdDev(caps, nil)
		}
		rep.Utilization = float64(busy) / float64(len(units))
	}

	if len(missions) > 0 {
		payloads := make([]float64, len(missions))
		for i, m := range missions {
			payloads[i] = m.PayloadKg()
			if m.Completed() {
				rep.CompletedMissions++
			}
		}
		rep.MeanPayloadKg = stat.Mean(payloads, nil)
	}
	return rep
}
