package model

import "errors"

// ErrInvalidID is returned when a unit or mission is constructed with an
// empty or whitespace-only identifier.
var ErrInvalidID = errors.New("id must not be empty")

// ErrInvalidCapacity is returned when a unit is constructed with a
// non-positive payload capacity.
var ErrInvalidCapacity = errors.New("capacity must be positive")

// ErrInvalidPayload is returned when a mission is constructed with a
// negative payload weight.
var ErrInvalidPayload = errors.New("payload must not be negative")

// ErrCapacityExceeded is returned when a load exceeds the unit capacity.
var ErrCapacityExceeded = errors.New("load exceeds unit capacity")

// ErrNoUnitAssigned is returned when a mission is started without an
// assigned unit.
var ErrNoUnitAssigned = errors.New("mission has no assigned unit")
