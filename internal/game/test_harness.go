package game

// TestMatch is a headless match harness used by tests and the batch report
// tool. It mirrors the windowed game's per-frame stepping but has no Ebiten
// dependency, and always records a structured MatchLog.
type TestMatch struct {
	Match *Match
	Log   *MatchLog
}

// matchOptionKind controls the pass in which an option is applied.
type matchOptionKind int

const (
	matchOptMap  matchOptionKind = iota // map edits, verbosity — applied first
	matchOptShip                        // ship placement and health
)

// MatchOption is a builder function applied to a TestMatch during construction.
type MatchOption struct {
	kind matchOptionKind
	fn   func(*TestMatch)
}

// WithObstacle adds an obstacle cell to the bay.
func WithObstacle(col, row int) MatchOption {
	return MatchOption{matchOptMap, func(tm *TestMatch) {
		tm.Match.TileMap.set(col, row, CellObstacle)
	}}
}

// WithOpenCell clears a cell back to open water. Usable against the three
// stock obstacles when a scenario wants a clean bay.
func WithOpenCell(col, row int) MatchOption {
	return MatchOption{matchOptMap, func(tm *TestMatch) {
		tm.Match.TileMap.set(col, row, CellOpen)
	}}
}

// WithVerbose enables per-tick verbose logging.
func WithVerbose(v bool) MatchOption {
	return MatchOption{matchOptMap, func(tm *TestMatch) {
		tm.Log = NewMatchLog(v)
	}}
}

// WithShipA places ship A at (x,y).
func WithShipA(x, y int) MatchOption {
	return MatchOption{matchOptShip, func(tm *TestMatch) {
		tm.Match.ShipA().X, tm.Match.ShipA().Y = x, y
	}}
}

// WithShipB places ship B at (x,y).
func WithShipB(x, y int) MatchOption {
	return MatchOption{matchOptShip, func(tm *TestMatch) {
		tm.Match.ShipB().X, tm.Match.ShipB().Y = x, y
	}}
}

// WithShipAHP overrides ship A's starting health.
func WithShipAHP(hp int) MatchOption {
	return MatchOption{matchOptShip, func(tm *TestMatch) {
		tm.Match.ShipA().HP = hp
	}}
}

// WithShipBHP overrides ship B's starting health.
func WithShipBHP(hp int) MatchOption {
	return MatchOption{matchOptShip, func(tm *TestMatch) {
		tm.Match.ShipB().HP = hp
	}}
}

// NewTestMatch constructs a harnessed match in two ordered passes: map edits
// first, then ship placement, so placement can rely on the final terrain.
func NewTestMatch(opts ...MatchOption) *TestMatch {
	tm := &TestMatch{
		Match: NewMatch(),
		Log:   NewMatchLog(false),
	}
	for _, o := range opts {
		if o.kind == matchOptMap {
			o.fn(tm)
		}
	}
	for _, o := range opts {
		if o.kind == matchOptShip {
			o.fn(tm)
		}
	}
	tm.Match.SetLog(tm.Log)
	return tm
}

// Step advances one frame with explicit intents.
func (tm *TestMatch) Step(intentA, intentB Intent) {
	tm.Match.Step(intentA, intentB)
}

// Pilot produces one ship's intent for a tick.
type Pilot func(tick int, m *Match) Intent

// StillPilot holds position and never fires.
func StillPilot(int, *Match) Intent { return Intent{} }

// RunTicks drives the match for up to n frames using the given pilots,
// stopping early when the terminal flag is set.
func (tm *TestMatch) RunTicks(n int, pilotA, pilotB Pilot) {
	for i := 0; i < n && !tm.Match.Over(); i++ {
		tick := tm.Match.Tick + 1
		tm.Match.Step(pilotA(tick, tm.Match), pilotB(tick, tm.Match))
	}
}
