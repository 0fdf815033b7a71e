package game

// MatchOutcome classifies a match result.
type MatchOutcome int

const (
	OutcomeInconclusive MatchOutcome = iota
	OutcomeShipAVictory
	OutcomeShipBVictory
	OutcomeDraw
)

func (o MatchOutcome) String() string {
	switch o {
	case OutcomeShipAVictory:
		return "ship_a_victory"
	case OutcomeShipBVictory:
		return "ship_b_victory"
	case OutcomeDraw:
		return "draw"
	case OutcomeInconclusive:
		return "inconclusive"
	default:
		return "unknown"
	}
}

// DetermineOutcome grades a match: a draw when both ships are destroyed,
// otherwise the ship with the higher remaining health wins. Inconclusive
// while the terminal flag is unset.
func DetermineOutcome(m *Match) MatchOutcome {
	if !m.Over() {
		return OutcomeInconclusive
	}
	a, b := m.ShipA(), m.ShipB()
	switch {
	case a.Destroyed() && b.Destroyed():
		return OutcomeDraw
	case b.HP > a.HP:
		return OutcomeShipBVictory
	default:
		return OutcomeShipAVictory
	}
}
