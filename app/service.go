package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/fpayan/fleetsim/config"
	"github.com/fpayan/fleetsim/core/dispatch"
	coremetrics "github.com/fpayan/fleetsim/core/metrics"
	"github.com/fpayan/fleetsim/core/model"
	"github.com/fpayan/fleetsim/core/report"
	"github.com/fpayan/fleetsim/core/sim"
	"github.com/fpayan/fleetsim/core/status"
	"github.com/fpayan/fleetsim/infra/logger"
	"github.com/fpayan/fleetsim/infra/metrics"
	"github.com/fpayan/fleetsim/infra/mqtt"
	"github.com/fpayan/fleetsim/internal/eventbus"
)

// Service wires the scenario configuration into a runnable simulation.
type Service struct {
	Env    *sim.Environment
	Status status.Store

	cfg       *config.Config
	bus       eventbus.EventBus
	log       logger.Logger
	publisher interface{ Close() error }
}

// New creates a Service from the configuration.
func New(cfg *config.Config) (*Service, error) {
	logg := logger.New("service")

	var sinks []coremetrics.MetricsSink
	if cfg.Metrics.PrometheusEnabled {
		sink, err := metrics.NewPromSink(cfg.Metrics)
		if err != nil {
			return nil, fmt.Errorf("prom sink: %w", err)
		}
		sinks = append(sinks, sink)
	}
	if cfg.Metrics.InfluxEnabled {
		sinks = append(sinks, metrics.NewInfluxSinkWithFallback(cfg.Metrics))
	}
	var sink coremetrics.MetricsSink = coremetrics.NopSink{}
	if len(sinks) == 1 {
		sink = sinks[0]
	} else if len(sinks) > 1 {
		sink = metrics.NewMultiSink(sinks...)
	}

	bus := eventbus.New()
	store := status.NewMemoryStore()

	env := sim.New(dispatch.FirstFit{}, logger.New("sim"))
	env.SetEventBus(bus)
	env.SetMetricsSink(sink)
	env.SetStatusStore(store)

	svc := &Service{Env: env, Status: store, cfg: cfg, bus: bus, log: logg}

	if cfg.Telemetry.Enabled {
		pub, err := mqtt.NewPahoPublisher(cfg.Telemetry.MQTT)
		if err != nil {
			return nil, fmt.Errorf("telemetry publisher: %w", err)
		}
		env.SetTelemetryPublisher(pub)
		svc.publisher = pub
	}

	if err := svc.populate(); err != nil {
		return nil, err
	}
	return svc, nil
}

// populate builds the fleet and mission queue from the scenario.
func (s *Service) populate() error {
	unitLog := logger.New("unit")
	for _, uc := range s.cfg.Fleet {
		u, err := buildUnit(uc, unitLog)
		if err != nil {
			return fmt.Errorf("unit %s: %w", uc.ID, err)
		}
		s.Env.AddUnit(u)
	}
	missionLog := logger.New("mission")
	for _, mc := range s.cfg.Missions {
		kind, err := model.ParseMissionKind(mc.Kind)
		if err != nil {
			return fmt.Errorf("mission %s: %w", mc.ID, err)
		}
		m, err := model.NewMission(kind, mc.ID, mc.Origin, mc.Destination, mc.PayloadKg, missionLog)
		if err != nil {
			return err
		}
		s.Env.AddMission(m)
	}
	return nil
}

func buildUnit(uc config.UnitConfig, log logger.Logger) (model.Unit, error) {
	switch strings.ToLower(uc.Variant) {
	case "rover":
		return model.NewRover(uc.ID, uc.CapacityKg, uc.Location, log)
	case "drone":
		return model.NewDrone(uc.ID, uc.CapacityKg, uc.Location, log)
	case "submersible":
		return model.NewSubmersible(uc.ID, uc.CapacityKg, uc.Location, log)
	case "amphibian":
		return model.NewAmphibian(uc.ID, uc.CapacityKg, uc.Location, log)
	default:
		return nil, fmt.Errorf("unknown variant %q", uc.Variant)
	}
}

// Run drives the configured number of cycles and logs a final fleet report.
// It returns early when the context is canceled, or when every mission is
// completed and stop_when_done is set.
func (s *Service) Run(ctx context.Context) error {
	if s.cfg.Metrics.PrometheusEnabled {
		go func() {
			if err := metrics.StartPromServer(ctx, s.cfg.Metrics.PrometheusPort); err != nil {
				s.log.Errorf("prom server: %v", err)
			}
		}()
	}

	interval := time.Duration(s.cfg.Sim.IntervalMS) * time.Millisecond
	for i := 0; i < s.cfg.Sim.Cycles; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		s.Env.RunCycle(ctx)
		if s.cfg.Sim.StopWhenDone && s.Env.AllCompleted() {
			s.log.Infof("all missions completed after %d cycles", s.Env.Cycle())
			break
		}
		if interval > 0 && i < s.cfg.Sim.Cycles-1 {
			select {
			case <-time.After(interval):
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	}

	rep := report.Build(s.Env.Units(), s.Env.Missions())
	s.log.Debugw("fleet report", map[string]any{
		"units":              rep.Units,
		"mean_capacity_kg":   rep.MeanCapacityKg,
		"stddev_capacity_kg": rep.StdDevCapacityKg,
		"missions":           rep.Missions,
		"completed_missions": rep.CompletedMissions,
		"mean_payload_kg":    rep.MeanPayloadKg,
		"utilization":        rep.Utilization,
	})
	s.log.Infof("run finished: %d/%d missions completed in %d cycles",
		rep.CompletedMissions, rep.Missions, s.Env.Cycle())
	return nil
}

// Close releases resources held by the service.
func (s *Service) Close() error {
	if s.bus != nil {
		s.bus.Close()
	}
	if s.publisher != nil {
		return s.publisher.Close()
	}
	return nil
}
