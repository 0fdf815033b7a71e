package main

import (
	"flag"
	"fmt"
	"math/rand"

	"github.com/Garsondee/Monomaxia/internal/game"
)

type runStats struct {
	runIndex int
	seed     int64

	outcome game.MatchOutcome
	ticks   int

	finalHPA, finalHPB       int
	shotsA, shotsB           int
	droppedA, droppedB       int
	hitsA, hitsB             int // hits dealt
	collisionsA, collisionsB int
}

func main() {
	var runs int
	var ticks int
	var seedBase int64
	var seedStep int64
	var scenario string

	flag.IntVar(&runs, "runs", 10, "number of headless duels")
	flag.IntVar(&ticks, "ticks", 1800, "tick budget per duel")
	flag.Int64Var(&seedBase, "seed-base", 42, "base RNG seed for run 1")
	flag.Int64Var(&seedStep, "seed-step", 1, "seed increment between runs")
	flag.StringVar(&scenario, "scenario", "random-duel", "scenario name")
	flag.Parse()

	if runs <= 0 {
		fmt.Println("error: -runs must be > 0")
		return
	}
	if ticks <= 0 {
		fmt.Println("error: -ticks must be > 0")
		return
	}
	if scenario != "random-duel" {
		fmt.Printf("error: unsupported scenario %q (supported: random-duel)\n", scenario)
		return
	}

	fmt.Printf("=== Headless Duel Report ===\n")
	fmt.Printf("scenario=%s runs=%d ticks=%d seed_base=%d seed_step=%d\n\n",
		scenario, runs, ticks, seedBase, seedStep)

	all := make([]runStats, 0, runs)
	for i := 0; i < runs; i++ {
		seed := seedBase + int64(i)*seedStep
		stats := runRandomDuel(i+1, seed, ticks)
		all = append(all, stats)
		printRun(stats)
	}
	printAggregate(all)
}

// randomPilot returns a Pilot that re-rolls its heading every few ticks and
// fires with a fixed per-tick probability.
func randomPilot(rng *rand.Rand) game.Pilot {
	vx, vy := 0, 0
	return func(tick int, _ *game.Match) game.Intent {
		if tick%6 == 1 {
			vx = rng.Intn(3) - 1
			vy = rng.Intn(3) - 1
		}
		return game.Intent{VX: vx, VY: vy, Fire: rng.Float64() < 0.15}
	}
}

func runRandomDuel(runIndex int, seed int64, ticks int) runStats {
	rng := rand.New(rand.NewSource(seed)) // #nosec G404 -- simulation tool
	tm := game.NewTestMatch()
	tm.RunTicks(ticks, randomPilot(rng), randomPilot(rng))

	m := tm.Match
	return runStats{
		runIndex:    runIndex,
		seed:        seed,
		outcome:     game.DetermineOutcome(m),
		ticks:       m.Tick,
		finalHPA:    m.ShipA().HP,
		finalHPB:    m.ShipB().HP,
		shotsA:      tm.Log.CountShip("A", "fire", "spawned"),
		shotsB:      tm.Log.CountShip("B", "fire", "spawned"),
		droppedA:    tm.Log.CountShip("A", "fire", "dropped"),
		droppedB:    tm.Log.CountShip("B", "fire", "dropped"),
		hitsA:       tm.Log.CountShip("A", "hit", "struck"),
		hitsB:       tm.Log.CountShip("B", "hit", "struck"),
		collisionsA: tm.Log.CountShip("A", "move", "blocked"),
		collisionsB: tm.Log.CountShip("B", "move", "blocked"),
	}
}

func printRun(s runStats) {
	fmt.Printf("run %2d seed=%-4d outcome=%-14s ticks=%4d hp=[A:%d B:%d] shots=[A:%d B:%d] hits=[A:%d B:%d] collisions=[A:%d B:%d]\n",
		s.runIndex, s.seed, s.outcome, s.ticks,
		s.finalHPA, s.finalHPB,
		s.shotsA, s.shotsB,
		s.hitsA, s.hitsB,
		s.collisionsA, s.collisionsB)
}

type aggregate struct {
	byOutcome      map[game.MatchOutcome]int
	meanTicks      float64
	meanShots      float64
	meanHits       float64
	meanCollisions float64
}

func summarize(all []runStats) aggregate {
	agg := aggregate{byOutcome: map[game.MatchOutcome]int{}}
	if len(all) == 0 {
		return agg
	}
	totalTicks, totalShots, totalHits, totalCollisions := 0, 0, 0, 0
	for _, s := range all {
		agg.byOutcome[s.outcome]++
		totalTicks += s.ticks
		totalShots += s.shotsA + s.shotsB
		totalHits += s.hitsA + s.hitsB
		totalCollisions += s.collisionsA + s.collisionsB
	}
	n := float64(len(all))
	agg.meanTicks = float64(totalTicks) / n
	agg.meanShots = float64(totalShots) / n
	agg.meanHits = float64(totalHits) / n
	agg.meanCollisions = float64(totalCollisions) / n
	return agg
}

func printAggregate(all []runStats) {
	agg := summarize(all)
	fmt.Printf("\n=== Aggregate (%d runs) ===\n", len(all))
	order := []game.MatchOutcome{
		game.OutcomeShipAVictory,
		game.OutcomeShipBVictory,
		game.OutcomeDraw,
		game.OutcomeInconclusive,
	}
	for _, o := range order {
		if n := agg.byOutcome[o]; n > 0 {
			fmt.Printf("%-16s %d/%d\n", o, n, len(all))
		}
	}
	fmt.Printf("mean_ticks=%.1f mean_shots=%.1f mean_hits=%.1f mean_collisions=%.1f\n",
		agg.meanTicks, agg.meanShots, agg.meanHits, agg.meanCollisions)
}
