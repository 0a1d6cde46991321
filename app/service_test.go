package app

import (
	"context"
	"testing"

	"github.com/fpayan/fleetsim/config"
	"github.com/fpayan/fleetsim/core/model"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := &config.Config{
		Fleet: []config.UnitConfig{
			{ID: "AUTO-001", Variant: "rover", CapacityKg: 500, Location: "Base Central"},
			{ID: "DRON-001", Variant: "drone", CapacityKg: 10, Location: "Hangar Norte"},
		},
		Missions: []config.MissionConfig{
			{ID: "M001", Kind: "urgent_delivery", Origin: "Base Central", Destination: "Centro", PayloadKg: 300},
		},
	}
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("config: %v", err)
	}
	return cfg
}

func TestNewPopulatesFleetAndMissions(t *testing.T) {
	svc, err := New(testConfig(t))
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	defer svc.Close()

	if len(svc.Env.Units()) != 2 {
		t.Fatalf("fleet size %d", len(svc.Env.Units()))
	}
	if len(svc.Env.Missions()) != 1 {
		t.Fatalf("mission count %d", len(svc.Env.Missions()))
	}
}

func TestNewRejectsUnknownVariant(t *testing.T) {
	cfg := testConfig(t)
	cfg.Fleet[0].Variant = "zeppelin"
	if _, err := New(cfg); err == nil {
		t.Fatalf("expected unknown variant error")
	}
}

func TestRunCompletesMissions(t *testing.T) {
	cfg := testConfig(t)
	cfg.Sim.Cycles = 3
	cfg.Sim.StopWhenDone = true

	svc, err := New(cfg)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	defer svc.Close()

	if err := svc.Run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}
	m := svc.Env.Missions()[0]
	if m.State() != model.Completed {
		t.Fatalf("mission state %s", m.State())
	}
	// assignment then completion fit in two cycles, stop_when_done cuts the third
	if got := svc.Env.Cycle(); got != 2 {
		t.Fatalf("cycles run %d", got)
	}
}

func TestRunHonorsCanceledContext(t *testing.T) {
	svc, err := New(testConfig(t))
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	defer svc.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := svc.Run(ctx); err == nil {
		t.Fatalf("expected context error")
	}
}
