// Command orbitdemo seeds a small solar system, attaches a vessel to a
// circular Earth orbit, and walks the predictor and propagator forward so
// the trajectory subsystem can be exercised end to end without an
// embedding game.
package main

import (
	"fmt"
	"math"
	"os"

	"github.com/kschmid/orbitsim"
	"github.com/spf13/cobra"
)

var (
	horizonSeconds float64
	scenario       string
)

func main() {
	root := &cobra.Command{
		Use:   "orbitdemo",
		Short: "Run the orbit trajectory subsystem against a seeded solar system",
		RunE:  run,
	}
	root.Flags().Float64Var(&horizonSeconds, "horizon", 0, "prediction horizon override in seconds (0 keeps the package default)")
	root.Flags().StringVar(&scenario, "scenario", "earth-orbit", "scenario name; the value is not read, every run uses the earth-orbit scenario")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	logger := orbitsim.NewLogger("orbitdemo")

	if horizonSeconds > 0 {
		cfg := orbitsim.Config{
			PredictionHorizon:      horizonSeconds,
			BurnStep:               0.1,
			CelestialStep:          40,
			NewtonEpsilon:          1e-8,
			KeplerEllipseEpsilon:   1e-7,
			KeplerHyperbolaEpsilon: 1e-5,
			ClosestPointIterations: 80,
			BurnAccelerationMag:    10.0,
		}
		orbitsim.SetConfig(cfg)
	}

	store := orbitsim.NewStore()
	bodies, err := orbitsim.SeedSolarSystem(store, orbitsim.SolarSystemBodies, 0)
	if err != nil {
		return fmt.Errorf("seeding solar system: %w", err)
	}
	earth := bodies["Earth"]
	earthMass, _ := store.Mass(earth)

	vessel := store.Spawn(1000, earth, true)
	lowEarthOrbitRadius := 6.771e6 // ~400 km altitude
	circularSpeed := orbitdemoCircularSpeed(earthMass, lowEarthOrbitRadius)
	traj, err := orbitsim.NewTrajectory(earth, earthMass, orbitsim.Vec2{X: lowEarthOrbitRadius, Y: 0}, orbitsim.Vec2{X: 0, Y: circularSpeed}, 0)
	if err != nil {
		return fmt.Errorf("building vessel trajectory: %w", err)
	}
	traj.SetLogger(func(keyvals ...interface{}) { logger.Log(keyvals...) })
	store.SetTrajectory(vessel, traj)

	if err := orbitsim.PredictVessel(store, vessel, 0); err != nil {
		return fmt.Errorf("predicting vessel trajectory: %w", err)
	}

	predicted, _ := store.Trajectory(vessel)
	for i, seg := range predicted.Segments() {
		fmt.Printf("segment %d: kind=%v start=%.1f end=%.1f\n", i, seg.Kind(), seg.StartTime(), seg.EndTime())
	}
	return nil
}

func orbitdemoCircularSpeed(parentMass, radius float64) float64 {
	return math.Sqrt(orbitsim.GravitationalConstant * parentMass / radius)
}
