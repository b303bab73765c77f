package orbitsim

// PredictVessel rebuilds entity's predicted trajectory from tNow out to the
// configured prediction horizon: truncate anything already predicted after
// tNow, then repeatedly find the next SOI crossing and append a fresh orbit
// segment for the new parent frame, stopping when no further crossing turns
// up before the horizon. Grounded on the three-step loop worked out for the
// Spacecraft Predictor: truncate, find-and-apply, close at horizon.
//
// Per spec, the Celestial Propagator advances every celestial body out to
// the horizon before an SOI search and restores it afterward, so a sibling
// that itself has moved by the time of a candidate crossing is read at its
// actual position rather than at whatever point "now" happened to leave it.
// A frame reassignment at the moment of the crossing itself needs the new
// parent's (or old parent's) state at exactly event.Time, not at "now" --
// reframe reads that through ctx.StateRelativeToParent, so it runs inside
// its own WithCelestialsAt window pinned to event.Time.
func PredictVessel(ctx Context, entity Entity, tNow float64) error {
	traj, ok := ctx.Trajectory(entity)
	if !ok {
		return ErrNoParent
	}
	horizon := tNow + orbitsimConfig().PredictionHorizon
	if err := traj.RemoveAfter(tNow); err != nil {
		return err
	}

	root := rootAncestor(ctx, entity)
	searchFrom := tNow

	for {
		final := traj.FinalSegment()
		if final == nil || final.Kind() != SegmentOrbit {
			break
		}
		orbitSeg := final.AsOrbit()

		var event SoiEvent
		var found bool
		WithCelestialsAt(ctx, []Entity{root}, horizon, func() {
			event, found = FindSoiChange(ctx, entity, searchFrom, horizon)
		})
		if !found {
			orbitSeg.TrimToEndAt(horizon)
			break
		}

		orbitSeg.TrimToEndAt(event.Time)
		position, velocity := orbitSeg.EndPoint().Position(), orbitSeg.EndPoint().Velocity()

		newParentMass, ok := ctx.Mass(event.NewParent)
		if !ok {
			return ErrNoParent
		}

		var newPosition, newVelocity Vec2
		var err error
		WithCelestialsAt(ctx, []Entity{root}, event.Time, func() {
			newPosition, newVelocity, err = reframe(ctx, entity, orbitSeg.Parent(), event.NewParent, position, velocity)
		})
		if err != nil {
			return err
		}

		nextOrbit, err := NewOrbitSegment(event.NewParent, newParentMass, newPosition, newVelocity, event.Time)
		if err != nil {
			return err
		}
		traj.Add(NewOrbitSegmentWrapped(nextOrbit))
		searchFrom = event.Time
	}
	return nil
}

// rootAncestor walks entity's parent chain up to the body with no parent at
// all (a root star), the single root WithCelestialsAt needs to reach every
// celestial body that could matter to entity's prediction.
func rootAncestor(ctx Context, entity Entity) Entity {
	current := entity
	for {
		parent, ok := ctx.Parent(current)
		if !ok {
			return current
		}
		current = parent
	}
}

// reframe converts a position/velocity pair from oldParent's frame to
// newParent's frame by summing the two parents' own states relative to
// their nearest common ancestor -- an SOI exit hands the vessel to a
// grandparent whose frame is an ancestor of the old one, an entrance hands
// it to a sibling whose frame is a descendant of the old one, so the two
// parents are never unrelated.
func reframe(ctx Context, entity, oldParent, newParent Entity, position, velocity Vec2) (Vec2, Vec2, error) {
	if oldParent == newParent {
		return position, velocity, nil
	}
	if grandParent, ok := ctx.Parent(oldParent); ok && grandParent == newParent {
		// SOI exit: oldParent's own state, relative to newParent, plus the
		// vessel's state relative to oldParent.
		parentPos, parentVel, ok := ctx.StateRelativeToParent(oldParent)
		if !ok {
			return Vec2{}, Vec2{}, ErrNoParent
		}
		return position.Add(parentPos), velocity.Add(parentVel), nil
	}
	// SOI entrance: newParent's state relative to oldParent, subtracted out.
	siblingPos, siblingVel, ok := ctx.StateRelativeToParent(newParent)
	if !ok {
		return Vec2{}, Vec2{}, ErrNoParent
	}
	return position.Sub(siblingPos), velocity.Sub(siblingVel), nil
}

// AdvanceCelestials steps every body with no parent-chain back to a vessel
// (i.e. every celestial in roots) forward by the configured fixed step,
// parents before children, so a child's StateRelativeToParent reads an
// already-advanced parent. Mirrors the teacher's recursive frame walk in
// celestial.go, but stepping trajectories forward in real time instead of
// evaluating a closed-form ephemeris.
func AdvanceCelestials(ctx Context, roots []Entity, now float64) {
	visited := make(map[Entity]bool)
	var advance func(e Entity)
	advance = func(e Entity) {
		if visited[e] {
			return
		}
		visited[e] = true
		if parent, ok := ctx.Parent(e); ok {
			advance(parent)
		}
		if traj, ok := ctx.Trajectory(e); ok {
			traj.Update(orbitsimConfig().CelestialStep, now)
		}
		for _, child := range ctx.Children(e) {
			advance(child)
		}
	}
	for _, root := range roots {
		advance(root)
	}
}

// WithCelestialsAt runs fn with every body in roots (and their descendants)
// advanced to time atTime, then restores each trajectory's current point
// to where it was before the call returns. This is the oracle the predictor
// uses to read a celestial body's exact position at an arbitrary future
// time without permanently perturbing the simulation's actual clock --
// the fixed 40s-step advance-then-restore pattern.
func WithCelestialsAt(ctx Context, roots []Entity, atTime float64, fn func()) {
	saved := make(map[Entity]OrbitPoint)
	var all []Entity
	var collect func(e Entity)
	collect = func(e Entity) {
		all = append(all, e)
		for _, c := range ctx.Children(e) {
			collect(c)
		}
	}
	for _, root := range roots {
		collect(root)
	}
	for _, e := range all {
		if traj, ok := ctx.Trajectory(e); ok {
			if seg := traj.CurrentSegment(); seg != nil && seg.Kind() == SegmentOrbit {
				saved[e] = seg.AsOrbit().CurrentPoint()
			}
		}
	}

	step := orbitsimConfig().CelestialStep
	visited := make(map[Entity]bool)
	var advance func(e Entity)
	advance = func(e Entity) {
		if visited[e] {
			return
		}
		visited[e] = true
		if parent, ok := ctx.Parent(e); ok {
			advance(parent)
		}
		if traj, ok := ctx.Trajectory(e); ok {
			if seg := traj.CurrentSegment(); seg != nil && seg.Kind() == SegmentOrbit {
				o := seg.AsOrbit()
				for o.CurrentPoint().time+step <= atTime {
					o.Update(step)
				}
				if remaining := atTime - o.CurrentPoint().time; remaining > 0 {
					o.Update(remaining)
				}
			}
		}
		for _, c := range ctx.Children(e) {
			advance(c)
		}
	}
	for _, root := range roots {
		advance(root)
	}

	fn()

	for e, point := range saved {
		if traj, ok := ctx.Trajectory(e); ok {
			if seg := traj.CurrentSegment(); seg != nil && seg.Kind() == SegmentOrbit {
				seg.AsOrbit().currentPoint = point
			}
		}
	}
}
