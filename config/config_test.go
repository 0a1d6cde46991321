package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const sampleYAML = `
fleet:
  - id: AUTO-001
    variant: rover
    capacity_kg: 500
    location: Base Central
  - id: DRON-001
    variant: drone
    capacity_kg: 10
    location: Hangar Norte
missions:
  - id: M001
    kind: urgent_delivery
    origin: Base Central
    destination: Centro de Distribución
    payload_kg: 300
sim:
  cycles: 3
`

func writeFile(t *testing.T, name, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))
	return path
}

func TestLoadYAML(t *testing.T) {
	cfg, err := Load(writeFile(t, "scenario.yaml", sampleYAML))
	require.NoError(t, err)
	require.Len(t, cfg.Fleet, 2)
	require.Equal(t, "AUTO-001", cfg.Fleet[0].ID)
	require.Equal(t, 500.0, cfg.Fleet[0].CapacityKg)
	require.Len(t, cfg.Missions, 1)
	require.Equal(t, "urgent_delivery", cfg.Missions[0].Kind)
	require.Equal(t, 3, cfg.Sim.Cycles)
	// defaults
	require.Equal(t, ":9090", cfg.Metrics.PrometheusPort)
	require.Equal(t, "fleetsim/telemetry", cfg.Telemetry.MQTT.Topic)
}

func TestLoadJSON(t *testing.T) {
	data := `{"fleet":[{"id":"U1","variant":"submersible","capacity_kg":2000,"location":"Puerto Este"}],"sim":{"cycles":1}}`
	cfg, err := Load(writeFile(t, "scenario.json", data))
	require.NoError(t, err)
	require.Equal(t, "submersible", cfg.Fleet[0].Variant)
}

func TestLoadUnsupportedFormat(t *testing.T) {
	_, err := Load(writeFile(t, "scenario.txt", "x"))
	require.Error(t, err)
}

func TestLoadUnknownVariant(t *testing.T) {
	data := `
fleet:
  - id: U1
    variant: hovercraft
    capacity_kg: 10
    location: X
`
	_, err := Load(writeFile(t, "scenario.yaml", data))
	require.ErrorContains(t, err, "unknown variant")
}

func TestLoadDuplicateIDs(t *testing.T) {
	data := `
fleet:
  - id: U1
    variant: rover
    capacity_kg: 10
    location: X
  - id: U1
    variant: drone
    capacity_kg: 10
    location: Y
`
	_, err := Load(writeFile(t, "scenario.yaml", data))
	require.ErrorContains(t, err, "duplicate unit id")
}

func TestLoadTelemetryRequiresBroker(t *testing.T) {
	data := `
telemetry:
  enabled: true
`
	_, err := Load(writeFile(t, "scenario.yaml", data))
	require.ErrorContains(t, err, "broker is required")
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("FLEETSIM_SIM__CYCLES", "7")
	cfg, err := Load(writeFile(t, "scenario.yaml", sampleYAML))
	require.NoError(t, err)
	require.Equal(t, 7, cfg.Sim.Cycles)
}

func TestSimConfigDefaults(t *testing.T) {
	var c SimConfig
	c.SetDefaults()
	require.Equal(t, 2, c.Cycles)
	require.NoError(t, c.Validate())
	c.IntervalMS = -1
	require.Error(t, c.Validate())
}
