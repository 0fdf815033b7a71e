package game

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
)

// MatchReport renders a human-readable summary of a match from its state
// and structured log. Valid mid-match as well as after the terminal flag.
func MatchReport(m *Match, ml *MatchLog) string {
	var b strings.Builder
	fmt.Fprintf(&b, "--- Monomaxia match report ---\n")
	fmt.Fprintf(&b, "outcome=%s ticks=%d\n\n", DetermineOutcome(m), m.Tick)

	for _, s := range m.Ships {
		fmt.Fprintf(&b,
			"ship %s: hp=%d shots=%d dropped=%d collisions=%d hits_dealt=%d in_flight=%d\n",
			s.Label,
			s.HP,
			ml.CountShip(s.Label, "fire", "spawned"),
			ml.CountShip(s.Label, "fire", "dropped"),
			ml.CountShip(s.Label, "move", "blocked"),
			ml.CountShip(s.Label, "hit", "struck"),
			s.ActiveProjectiles(),
		)
	}

	if e, ok := ml.LastOf("match", "over"); ok {
		fmt.Fprintf(&b, "\nended: %s (T=%d)\n", e.Value, e.Tick)
	}
	return b.String()
}

// CopyReport places a match report on the system clipboard.
func CopyReport(m *Match, ml *MatchLog) error {
	return clipboard.WriteAll(MatchReport(m, ml))
}
