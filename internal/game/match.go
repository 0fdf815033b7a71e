package game

import "fmt"

// Match owns the full duel state: the bay map, both ships, a tick counter
// and the terminal flag. It is stepped once per frame by its caller and is
// not safe for concurrent use — the whole game is one synchronous loop.
type Match struct {
	TileMap *TileMap
	Ships   [2]*Ship
	Tick    int

	over bool
	log  *MatchLog
}

// NewMatch builds the standard duel: ship A in the north-west corner area,
// ship B in the south-east, on the stock bay map.
func NewMatch() *Match {
	return &Match{
		TileMap: NewTileMap(),
		Ships: [2]*Ship{
			NewShip("A", 2, 2),
			NewShip("B", mapCols-2, mapRows-2),
		},
	}
}

func (m *Match) ShipA() *Ship { return m.Ships[0] }
func (m *Match) ShipB() *Ship { return m.Ships[1] }

// Over reports the terminal flag. Once set it never clears.
func (m *Match) Over() bool { return m.over }

// SetLog attaches a structured event log. Pass nil to detach.
func (m *Match) SetLog(ml *MatchLog) { m.log = ml }

// Step runs one frame of the duel in fixed phase order: apply intents
// (velocity + projectile spawns), move ships, advance projectiles, resolve
// hits. Once the terminal flag is set Step is a no-op, but within the frame
// that sets it the remaining phases still complete — the terminal check
// gates the top of the loop, not the middle of a frame.
func (m *Match) Step(intentA, intentB Intent) {
	if m.over {
		return
	}
	m.Tick++

	// 1. INTENT: this frame's velocities, plus projectile spawns at the
	// pre-move position.
	intents := [2]Intent{intentA, intentB}
	for i, s := range m.Ships {
		in := intents[i]
		s.VX, s.VY = in.VX, in.VY
		if !in.Fire {
			continue
		}
		if s.Fire() {
			dx, dy := s.fireDirection()
			m.log.Add(m.Tick, s.Label, "fire", "spawned",
				fmt.Sprintf("at (%d,%d) dir (%d,%d)", s.X, s.Y, dx, dy),
				float64(s.ActiveProjectiles()))
		} else {
			m.log.Add(m.Tick, s.Label, "fire", "dropped",
				"all slots active", maxProjectiles)
		}
	}

	// 2. MOVEMENT: a blocked move costs the ship one hit point.
	for _, s := range m.Ships {
		if s.Advance(m.TileMap) == MoveBlocked {
			m.log.Add(m.Tick, s.Label, "move", "blocked",
				fmt.Sprintf("at (%d,%d) toward (%d,%d)", s.X, s.Y, s.X+s.VX, s.Y+s.VY),
				float64(s.HP))
			if s.Destroyed() {
				m.finish(s.Label + " wrecked on terrain")
			}
		} else if s.VX != 0 || s.VY != 0 {
			m.log.AddVerbose(m.Tick, s.Label, "move", "moved",
				fmt.Sprintf("(%d,%d)", s.X, s.Y), 0)
		}
	}

	// 3. PROJECTILES.
	for _, s := range m.Ships {
		s.AdvanceProjectiles(m.TileMap)
	}

	// 4. HITS.
	m.resolveHits()
}

// resolveHits checks every active projectile against the opposing ship.
// Projectiles spawn on their owner's cell and are only ever tested against
// the enemy, so self-hits cannot occur.
func (m *Match) resolveHits() {
	a, b := m.ShipA(), m.ShipB()
	if a.Destroyed() && b.Destroyed() {
		m.finish("mutual destruction")
		return
	}
	if m.applyHits(a, b) {
		return
	}
	m.applyHits(b, a)
}

// applyHits resolves attacker projectiles against victim, returning true
// when the victim is destroyed so the caller can short-circuit the rest of
// the pass. Distinct projectiles coinciding on the victim's cell each land
// in the same frame.
func (m *Match) applyHits(attacker, victim *Ship) bool {
	for i := range attacker.Slots {
		p := &attacker.Slots[i]
		if !p.Active || p.X != victim.X || p.Y != victim.Y {
			continue
		}
		victim.HP--
		p.Active = false
		m.log.Add(m.Tick, attacker.Label, "hit", "struck",
			fmt.Sprintf("%s at (%d,%d)", victim.Label, victim.X, victim.Y),
			float64(victim.HP))
		if victim.Destroyed() {
			m.finish(victim.Label + " sunk by " + attacker.Label)
			return true
		}
	}
	return false
}

// finish sets the terminal flag once; later deaths in the same frame do not
// re-log the transition.
func (m *Match) finish(reason string) {
	if m.over {
		return
	}
	m.over = true
	m.log.Add(m.Tick, "--", "match", "over", reason, float64(m.Tick))
}
