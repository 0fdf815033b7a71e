package game

// MoveOutcome is the result of one movement attempt.
type MoveOutcome int

const (
	MoveMoved MoveOutcome = iota
	MoveBlocked
)

func (o MoveOutcome) String() string {
	switch o {
	case MoveMoved:
		return "moved"
	case MoveBlocked:
		return "blocked"
	default:
		return "unknown"
	}
}

// Projectile occupies one of a ship's fixed slots. Inactive slots carry no
// meaningful position.
type Projectile struct {
	X, Y   int
	DX, DY int
	Active bool
}

// Ship is one duelist: a cell position, hit points, the velocity set by the
// current frame's intent, and a fixed arena of projectile slots.
type Ship struct {
	Label  string
	X, Y   int
	HP     int
	VX, VY int
	Slots  [maxProjectiles]Projectile
}

// NewShip places a ship at (x,y) with full health and empty slots.
func NewShip(label string, x, y int) *Ship {
	return &Ship{Label: label, X: x, Y: y, HP: startingHP}
}

// Destroyed reports whether the ship is out of the fight.
func (s *Ship) Destroyed() bool {
	return s.HP <= 0
}

// Advance attempts to move the ship by its current velocity. A candidate
// cell that is off the grid or not open blocks the move and costs one hit
// point; the ship stays in place. Diagonal movement is a single combined
// step, so a diagonal can slip past an orthogonally adjacent obstacle.
func (s *Ship) Advance(tm *TileMap) MoveOutcome {
	nx := s.X + s.VX
	ny := s.Y + s.VY
	if !tm.IsPassable(nx, ny) {
		s.HP--
		return MoveBlocked
	}
	s.X = nx
	s.Y = ny
	return MoveMoved
}

// fireDirection is the ship's current velocity, or straight up when
// stationary.
func (s *Ship) fireDirection() (int, int) {
	if s.VX == 0 && s.VY == 0 {
		return 0, -1
	}
	return s.VX, s.VY
}

// Fire spawns a projectile in the first inactive slot, travelling along the
// fire direction. Returns false when every slot is active (the request is
// dropped, never queued).
func (s *Ship) Fire() bool {
	dx, dy := s.fireDirection()
	for i := range s.Slots {
		if s.Slots[i].Active {
			continue
		}
		s.Slots[i] = Projectile{X: s.X, Y: s.Y, DX: dx, DY: dy, Active: true}
		return true
	}
	return false
}

// AdvanceProjectiles steps every active projectile one cell along its
// direction, deactivating any whose candidate cell is off the grid or not
// open. Terrain takes no damage.
func (s *Ship) AdvanceProjectiles(tm *TileMap) {
	for i := range s.Slots {
		p := &s.Slots[i]
		if !p.Active {
			continue
		}
		nx := p.X + p.DX
		ny := p.Y + p.DY
		if !tm.IsPassable(nx, ny) {
			p.Active = false
			continue
		}
		p.X = nx
		p.Y = ny
	}
}

// ActiveProjectiles returns the number of in-flight projectiles.
func (s *Ship) ActiveProjectiles() int {
	n := 0
	for i := range s.Slots {
		if s.Slots[i].Active {
			n++
		}
	}
	return n
}
