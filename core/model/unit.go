package model

import (
	"fmt"
	"strings"

	"github.com/fpayan/fleetsim/core/logger"
)

// CruiseAltitudeM is the fixed operating altitude for airborne units.
const CruiseAltitudeM = 100.0

// OperatingDepthM is the fixed operating depth for submerged units.
const OperatingDepthM = 50.0

// Unit is a transport entity with a payload capacity and a current location.
// Movement is an instantaneous relocation to a named destination; no route
// or continuous position is modeled.
type Unit interface {
	ID() string
	Variant() string
	CapacityKg() float64
	Location() string
	MoveTo(dest string)
	Load(amountKg float64) error
	Unload(amountKg float64)
	Status() string
}

// Driver is implemented by units able to move over ground.
type Driver interface {
	Drive()
}

// Flier is implemented by units able to fly.
type Flier interface {
	Fly()
}

// Swimmer is implemented by units able to navigate on or under water.
type Swimmer interface {
	Navigate()
}

// Autonomous is implemented by units with a toggleable autonomous mode.
type Autonomous interface {
	EnableAutonomy()
	DisableAutonomy()
	AutonomyEnabled() bool
}

type nopLogger struct{}

func (nopLogger) Debugf(string, ...any)         {}
func (nopLogger) Debugw(string, map[string]any) {}
func (nopLogger) Infof(string, ...any)          {}
func (nopLogger) Warnf(string, ...any)          {}
func (nopLogger) Errorf(string, ...any)         {}

// base carries the state shared by every unit variant. All fields are
// written only through successful construction and movement.
type base struct {
	id       string
	capacity float64
	location string
	log      logger.Logger
}

func newBase(id string, capacityKg float64, location string, log logger.Logger) (base, error) {
	if strings.TrimSpace(id) == "" {
		return base{}, fmt.Errorf("unit: %w", ErrInvalidID)
	}
	if capacityKg <= 0 {
		return base{}, fmt.Errorf("unit %s: %w", id, ErrInvalidCapacity)
	}
	if log == nil {
		log = nopLogger{}
	}
	return base{id: id, capacity: capacityKg, location: location, log: log}, nil
}

func (b *base) ID() string          { return b.id }
func (b *base) CapacityKg() float64 { return b.capacity }
func (b *base) Location() string    { return b.location }

// Load checks the requested amount against the unit capacity. The amount is
// not tracked across missions; a single mission load does not persist.
func (b *base) Load(amountKg float64) error {
	if amountKg > b.capacity {
		return fmt.Errorf("unit %s: load %.2f kg: %w", b.id, amountKg, ErrCapacityExceeded)
	}
	b.log.Infof("unit %s loading %.2f kg", b.id, amountKg)
	return nil
}

// Unload reports the unloaded amount. There is no underflow check against a
// tracked load.
func (b *base) Unload(amountKg float64) {
	b.log.Infof("unit %s unloading %.2f kg", b.id, amountKg)
}

// Rover is a ground unit with a toggleable autonomous mode.
type Rover struct {
	base
	autonomyOn bool
}

// NewRover creates a ground unit. A nil logger disables action reporting.
func NewRover(id string, capacityKg float64, location string, log logger.Logger) (*Rover, error) {
	b, err := newBase(id, capacityKg, location, log)
	if err != nil {
		return nil, err
	}
	return &Rover{base: b}, nil
}

func (r *Rover) Variant() string { return "rover" }

func (r *Rover) Drive() {
	mode := "manually"
	if r.autonomyOn {
		mode = "autonomously"
	}
	r.log.Infof("rover %s driving %s", r.id, mode)
}

func (r *Rover) MoveTo(dest string) {
	r.log.Infof("rover %s heading to %s by road", r.id, dest)
	r.Drive()
	r.location = dest
}

func (r *Rover) EnableAutonomy() {
	r.autonomyOn = true
	r.log.Infof("rover %s: autonomy enabled", r.id)
}

func (r *Rover) DisableAutonomy() {
	r.autonomyOn = false
	r.log.Infof("rover %s: autonomy disabled", r.id)
}

func (r *Rover) AutonomyEnabled() bool { return r.autonomyOn }

func (r *Rover) Status() string {
	state := "disabled"
	if r.autonomyOn {
		state = "enabled"
	}
	return fmt.Sprintf("unit %s (rover): capacity %.2f kg, location %q, autonomy %s",
		r.id, r.capacity, r.location, state)
}

// Drone is an airborne unit. Its autonomous mode is permanently on: the
// safety policy forbids manual control in flight, so DisableAutonomy is a
// reported no-op.
type Drone struct {
	base
	altitude float64
}

// NewDrone creates an airborne unit.
func NewDrone(id string, capacityKg float64, location string, log logger.Logger) (*Drone, error) {
	b, err := newBase(id, capacityKg, location, log)
	if err != nil {
		return nil, err
	}
	return &Drone{base: b}, nil
}

func (d *Drone) Variant() string { return "drone" }

func (d *Drone) Fly() {
	d.altitude = CruiseAltitudeM
	d.log.Infof("drone %s flying at %.1f m", d.id, d.altitude)
}

func (d *Drone) MoveTo(dest string) {
	d.log.Infof("drone %s flying to %s", d.id, dest)
	d.Fly()
	d.location = dest
}

func (d *Drone) EnableAutonomy() {
	d.log.Infof("drone %s: autonomy always on", d.id)
}

// DisableAutonomy refuses the request without error.
func (d *Drone) DisableAutonomy() {
	d.log.Warnf("drone %s: autonomy cannot be disabled", d.id)
}

func (d *Drone) AutonomyEnabled() bool { return true }

func (d *Drone) Status() string {
	return fmt.Sprintf("unit %s (drone): capacity %.2f kg, location %q, altitude %.1f m",
		d.id, d.capacity, d.location, d.altitude)
}

// Submersible is a water unit operating at a fixed depth while moving.
type Submersible struct {
	base
	depth float64
}

// NewSubmersible creates a water unit.
func NewSubmersible(id string, capacityKg float64, location string, log logger.Logger) (*Submersible, error) {
	b, err := newBase(id, capacityKg, location, log)
	if err != nil {
		return nil, err
	}
	return &Submersible{base: b}, nil
}

func (s *Submersible) Variant() string { return "submersible" }

func (s *Submersible) Navigate() {
	s.depth = OperatingDepthM
	s.log.Infof("submersible %s navigating at %.1f m depth", s.id, s.depth)
}

func (s *Submersible) MoveTo(dest string) {
	s.log.Infof("submersible %s navigating to %s", s.id, dest)
	s.Navigate()
	s.location = dest
}

func (s *Submersible) Status() string {
	return fmt.Sprintf("unit %s (submersible): capacity %.2f kg, location %q, depth %.1f m",
		s.id, s.capacity, s.location, s.depth)
}

// Amphibian is a ground and water unit. Movement picks driving or
// navigation from the current medium; the medium can also be switched
// explicitly without moving.
type Amphibian struct {
	base
	inWater bool
}

// NewAmphibian creates an amphibious unit starting on land.
func NewAmphibian(id string, capacityKg float64, location string, log logger.Logger) (*Amphibian, error) {
	b, err := newBase(id, capacityKg, location, log)
	if err != nil {
		return nil, err
	}
	return &Amphibian{base: b}, nil
}

func (a *Amphibian) Variant() string { return "amphibian" }

func (a *Amphibian) Drive() {
	a.inWater = false
	a.log.Infof("amphibian %s driving on land", a.id)
}

func (a *Amphibian) Navigate() {
	a.inWater = true
	a.log.Infof("amphibian %s navigating in water", a.id)
}

func (a *Amphibian) MoveTo(dest string) {
	a.log.Infof("amphibian %s moving to %s", a.id, dest)
	if a.inWater {
		a.Navigate()
	} else {
		a.Drive()
	}
	a.location = dest
}

// ToggleMedium switches between land and water without moving.
func (a *Amphibian) ToggleMedium() {
	a.inWater = !a.inWater
	a.log.Infof("amphibian %s switched to %s mode", a.id, a.medium())
}

// InWater reports whether the unit currently operates in water.
func (a *Amphibian) InWater() bool { return a.inWater }

func (a *Amphibian) medium() string {
	if a.inWater {
		return "water"
	}
	return "land"
}

func (a *Amphibian) Status() string {
	return fmt.Sprintf("unit %s (amphibian): capacity %.2f kg, location %q, mode %s",
		a.id, a.capacity, a.location, a.medium())
}
