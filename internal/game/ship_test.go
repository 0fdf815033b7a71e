package game

import "testing"

func TestShipAdvance_OpenCellMoves(t *testing.T) {
	tm := NewTileMap()
	s := NewShip("A", 2, 2)
	s.VX, s.VY = 1, 0
	if out := s.Advance(tm); out != MoveMoved {
		t.Fatalf("expected MoveMoved, got %s", out)
	}
	if s.X != 3 || s.Y != 2 {
		t.Fatalf("ship should be at (3,2), got (%d,%d)", s.X, s.Y)
	}
	if s.HP != startingHP {
		t.Fatalf("health should be unchanged, got %d", s.HP)
	}
}

func TestShipAdvance_WallBlocksAndDamages(t *testing.T) {
	tm := NewTileMap()
	s := NewShip("A", 1, 1)
	s.VX, s.VY = -1, 0
	if out := s.Advance(tm); out != MoveBlocked {
		t.Fatalf("expected MoveBlocked, got %s", out)
	}
	if s.X != 1 || s.Y != 1 {
		t.Fatalf("ship should stay at (1,1), got (%d,%d)", s.X, s.Y)
	}
	if s.HP != startingHP-1 {
		t.Fatalf("health should drop by 1, got %d", s.HP)
	}
}

func TestShipAdvance_ObstacleBlocks(t *testing.T) {
	tm := NewTileMap()
	s := NewShip("A", 4, 3)
	s.VX, s.VY = 1, 0 // into the reef at (5,3)
	if out := s.Advance(tm); out != MoveBlocked {
		t.Fatalf("expected MoveBlocked, got %s", out)
	}
	if s.X != 4 || s.Y != 3 {
		t.Fatalf("ship should stay at (4,3), got (%d,%d)", s.X, s.Y)
	}
	if s.HP != startingHP-1 {
		t.Fatalf("health should drop by 1, got %d", s.HP)
	}
}

// Diagonal movement is one combined step, so a diagonal may pass a corner
// flanked by an obstacle. Preserved source behaviour, not a bug.
func TestShipAdvance_DiagonalCornerCut(t *testing.T) {
	tm := NewTileMap()
	s := NewShip("A", 4, 3) // reef at (5,3), target (5,4) is open
	s.VX, s.VY = 1, 1
	if out := s.Advance(tm); out != MoveMoved {
		t.Fatalf("diagonal past the reef corner should move, got %s", out)
	}
	if s.X != 5 || s.Y != 4 {
		t.Fatalf("ship should be at (5,4), got (%d,%d)", s.X, s.Y)
	}
	if s.HP != startingHP {
		t.Fatalf("health should be unchanged, got %d", s.HP)
	}
}

func TestShipAdvance_StationaryIsHarmless(t *testing.T) {
	tm := NewTileMap()
	s := NewShip("A", 2, 2)
	if out := s.Advance(tm); out != MoveMoved {
		t.Fatalf("stationary advance should not block, got %s", out)
	}
	if s.X != 2 || s.Y != 2 || s.HP != startingHP {
		t.Fatalf("stationary ship should be untouched, got (%d,%d) hp=%d", s.X, s.Y, s.HP)
	}
}

func TestShipFire_StationaryDefaultsUp(t *testing.T) {
	s := NewShip("A", 3, 3)
	if !s.Fire() {
		t.Fatal("fire with free slots should succeed")
	}
	p := s.Slots[0]
	if !p.Active {
		t.Fatal("slot 0 should be active")
	}
	if p.X != 3 || p.Y != 3 {
		t.Fatalf("projectile should spawn on the ship's cell, got (%d,%d)", p.X, p.Y)
	}
	if p.DX != 0 || p.DY != -1 {
		t.Fatalf("stationary fire direction should be (0,-1), got (%d,%d)", p.DX, p.DY)
	}
}

func TestShipFire_UsesCurrentVelocity(t *testing.T) {
	s := NewShip("A", 3, 3)
	s.VX, s.VY = 1, 0
	s.Fire()
	if p := s.Slots[0]; p.DX != 1 || p.DY != 0 {
		t.Fatalf("fire direction should follow velocity (1,0), got (%d,%d)", p.DX, p.DY)
	}
}

func TestShipFire_LowestFreeSlotWins(t *testing.T) {
	s := NewShip("A", 3, 3)
	s.Fire()
	s.Fire()
	s.Fire()
	s.Slots[1].Active = false
	if !s.Fire() {
		t.Fatal("fire should succeed with a freed slot")
	}
	if !s.Slots[1].Active {
		t.Fatal("the freed slot 1 should be reused")
	}
	if s.ActiveProjectiles() != 3 {
		t.Fatalf("expected 3 active projectiles, got %d", s.ActiveProjectiles())
	}
}

func TestShipFire_AllSlotsActiveDropsRequest(t *testing.T) {
	s := NewShip("A", 3, 3)
	for i := 0; i < maxProjectiles; i++ {
		if !s.Fire() {
			t.Fatalf("fire %d should succeed", i)
		}
	}
	if s.Fire() {
		t.Fatal("fire with all slots active should be dropped")
	}
	if s.ActiveProjectiles() != maxProjectiles {
		t.Fatalf("active count should stay at %d, got %d", maxProjectiles, s.ActiveProjectiles())
	}
}

func TestAdvanceProjectiles_StraightLine(t *testing.T) {
	tm := NewTileMap()
	s := NewShip("A", 3, 3)
	s.Slots[0] = Projectile{X: 3, Y: 4, DX: 1, DY: 0, Active: true}
	s.AdvanceProjectiles(tm)
	if p := s.Slots[0]; !p.Active || p.X != 4 || p.Y != 4 {
		t.Fatalf("projectile should be active at (4,4), got active=%v (%d,%d)", p.Active, p.X, p.Y)
	}
	s.AdvanceProjectiles(tm)
	if p := s.Slots[0]; !p.Active || p.X != 5 || p.Y != 4 {
		t.Fatalf("projectile should be active at (5,4), got active=%v (%d,%d)", p.Active, p.X, p.Y)
	}
}

func TestAdvanceProjectiles_DeactivatesAtWall(t *testing.T) {
	tm := NewTileMap()
	s := NewShip("A", 17, 1)
	s.Slots[0] = Projectile{X: 18, Y: 1, DX: 1, DY: 0, Active: true}
	s.AdvanceProjectiles(tm) // candidate (19,1) is the boundary ring
	if s.Slots[0].Active {
		t.Fatal("projectile should deactivate at the boundary wall")
	}
}

func TestAdvanceProjectiles_DeactivatesAtObstacle(t *testing.T) {
	tm := NewTileMap()
	s := NewShip("A", 3, 3)
	s.Slots[0] = Projectile{X: 4, Y: 3, DX: 1, DY: 0, Active: true}
	s.AdvanceProjectiles(tm) // candidate (5,3) is a reef
	if s.Slots[0].Active {
		t.Fatal("projectile should deactivate at the reef")
	}
	if tm.At(5, 3) != CellObstacle {
		t.Fatal("terrain should take no damage")
	}
}

func TestAdvanceProjectiles_InactiveSlotsUntouched(t *testing.T) {
	tm := NewTileMap()
	s := NewShip("A", 3, 3)
	s.Slots[2] = Projectile{X: 7, Y: 7, DX: 1, DY: 0, Active: false}
	s.AdvanceProjectiles(tm)
	if p := s.Slots[2]; p.X != 7 || p.Y != 7 {
		t.Fatalf("inactive slot should not move, got (%d,%d)", p.X, p.Y)
	}
}
