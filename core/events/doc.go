// Package events defines the simulation events emitted on the event bus.
//
// Available event types:
//   - AssignmentEvent: unit bound to a mission
//   - DispatchUnavailableEvent: no qualifying unit this cycle
//   - MissionStartedEvent: mission moved to in_progress
//   - MissionCompletedEvent: mission reached its terminal state
//   - CycleEvent: end-of-cycle summary
package events
