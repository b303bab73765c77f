package orbitsim

import (
	"fmt"
	"math"
)

// BodyDef is the static data needed to seed one celestial body into a
// Store: its mass and its mean distance from its parent, used to derive a
// circular starting orbit. Kept from the teacher's CelestialObject table
// (celestial.go), trimmed to the two fields a 2D circular-orbit seed
// actually needs -- axial tilt, J2-J4, and VSOP87 ephemeris loading have no
// role in a non-rotating 2D two-body model.
type BodyDef struct {
	Name           string
	Mass           float64 // kg
	MeanDistance   float64 // meters from parent, 0 for a root star
	Direction      OrbitDirection
	ParentBodyName string // "" for a root star
}

// SolarSystemBodies is a reduced, same-plane stand-in for the teacher's
// Sun/Venus/Earth/.../Pluto table: masses are the real values, but orbits
// are circularized into the simulation plane since this module has no
// inclination concept. Grounded on celestial.go's body literals; μ = G*M
// recovers the teacher's tabulated standard gravitational parameters to
// within floating point error.
var SolarSystemBodies = []BodyDef{
	{Name: "Sun", Mass: 1.98892e30},
	{Name: "Mercury", Mass: 3.3011e23, MeanDistance: 5.791e10, Direction: CounterClockwise, ParentBodyName: "Sun"},
	{Name: "Venus", Mass: 4.8675e24, MeanDistance: 1.08208601e11, Direction: CounterClockwise, ParentBodyName: "Sun"},
	{Name: "Earth", Mass: 5.97237e24, MeanDistance: 1.49598023e11, Direction: CounterClockwise, ParentBodyName: "Sun"},
	{Name: "Mars", Mass: 6.4171e23, MeanDistance: 2.279392825616e11, Direction: CounterClockwise, ParentBodyName: "Sun"},
	{Name: "Jupiter", Mass: 1.8982e27, MeanDistance: 7.78298361e11, Direction: CounterClockwise, ParentBodyName: "Sun"},
	{Name: "Moon", Mass: 7.342e22, MeanDistance: 3.844e8, Direction: CounterClockwise, ParentBodyName: "Earth"},
}

// circularVelocity returns the speed of a circular orbit of the given
// radius around a parent of parentMass.
func circularVelocity(parentMass, radius float64) float64 {
	return math.Sqrt(GravitationalConstant * parentMass / radius)
}

// SeedSolarSystem spawns every body in defs into store, in order (a body
// must appear after its parent), starting each non-root body on a circular
// orbit of radius MeanDistance placed along +X with velocity along +Y or
// -Y depending on Direction. It returns a name-to-Entity index.
//
// This exists so the module is runnable standalone (cmd/orbitdemo) without
// an embedding game supplying its own celestial layout, mirroring how the
// teacher's Sun/Venus/Earth var block let mission.go run without an
// external ephemeris service.
func SeedSolarSystem(store *Store, defs []BodyDef, epoch float64) (map[string]Entity, error) {
	entities := make(map[string]Entity, len(defs))
	for _, def := range defs {
		if def.ParentBodyName == "" {
			entities[def.Name] = store.Spawn(def.Mass, Entity{}, false)
			continue
		}
		parent, ok := entities[def.ParentBodyName]
		if !ok {
			return nil, fmt.Errorf("orbitsim: body %q references unknown parent %q", def.Name, def.ParentBodyName)
		}
		e := store.Spawn(def.Mass, parent, true)
		parentMass, _ := store.Mass(parent)
		speed := circularVelocity(parentMass, def.MeanDistance)
		position := Vec2{def.MeanDistance, 0}
		velocity := Vec2{0, speed}
		if def.Direction == Clockwise {
			velocity = Vec2{0, -speed}
		}
		traj, err := NewTrajectory(parent, parentMass, position, velocity, epoch)
		if err != nil {
			return nil, fmt.Errorf("orbitsim: seeding %q: %w", def.Name, err)
		}
		store.SetTrajectory(e, traj)
		entities[def.Name] = e
	}
	return entities, nil
}
