package dispatch

import (
	"errors"
	"fmt"

	"github.com/fpayan/fleetsim/core/model"
)

// ErrNoUnitAvailable is returned when no idle unit is positioned at the
// mission origin. It is an expected steady-state outcome: the mission stays
// pending and is retried next cycle.
var ErrNoUnitAvailable = errors.New("no unit available")

// Dispatcher selects a unit for a mission that has none assigned.
type Dispatcher interface {
	Select(fleet []model.Unit, mission *model.Mission, missions []*model.Mission) (model.Unit, error)
}

// FirstFit scans the fleet in insertion order and picks the first idle unit
// located at the mission origin. Greedy and deterministic for a fixed input
// order; no optimality criterion.
type FirstFit struct{}

func (FirstFit) Select(fleet []model.Unit, mission *model.Mission, missions []*model.Mission) (model.Unit, error) {
	for _, u := range fleet {
		if u.Location() != mission.Origin() {
			continue
		}
		if Busy(u, missions) {
			continue
		}
		return u, nil
	}
	return nil, fmt.Errorf("mission %s at %s: %w", mission.ID(), mission.Origin(), ErrNoUnitAvailable)
}

// Busy reports whether the unit currently serves a mission in the Assigned
// or InProgress state. The check scans the full mission list so a unit can
// never serve two active missions at once.
func Busy(u model.Unit, missions []*model.Mission) bool {
	for _, m := range missions {
		if m.AssignedUnit() != u {
			continue
		}
		if st := m.State(); st == model.Assigned || st == model.InProgress {
			return true
		}
	}
	return false
}
