package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fpayan/fleetsim/app"
	"github.com/fpayan/fleetsim/config"
)

var fleetCmd = &cobra.Command{
	Use:   "fleet",
	Short: "Fleet related commands",
}

var fleetLsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List the units defined in the scenario",
	RunE:  runFleetLs,
}

var fleetCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Exercise every unit's capabilities",
	RunE:  runFleetCheck,
}

func init() {
	fleetCmd.AddCommand(fleetLsCmd)
	fleetCmd.AddCommand(fleetCheckCmd)
	rootCmd.AddCommand(fleetCmd)
}

func runFleetLs(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	for _, u := range cfg.Fleet {
		fmt.Printf("%s\t%s\t%.2f kg\t%s\n", u.ID, u.Variant, u.CapacityKg, u.Location)
	}
	return nil
}

// runFleetCheck walks every unit through its capabilities. It relocates the
// fleet, so it is meant as a standalone check rather than a pre-run step.
func runFleetCheck(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	svc, err := app.New(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = svc.Close() }()
	svc.Env.ExerciseFleet(cfg.Sim.CheckLocation)
	return nil
}
