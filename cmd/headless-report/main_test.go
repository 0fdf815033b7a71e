package main

import (
	"testing"

	"github.com/Garsondee/Monomaxia/internal/game"
)

func TestRunRandomDuel_Deterministic(t *testing.T) {
	a := runRandomDuel(1, 42, 600)
	b := runRandomDuel(1, 42, 600)
	if a != b {
		t.Fatalf("same seed should replay identically:\n%+v\n%+v", a, b)
	}
}

func TestRunRandomDuel_TerminatesWithinBudget(t *testing.T) {
	s := runRandomDuel(1, 7, 1800)
	if s.ticks > 1800 {
		t.Fatalf("duel exceeded its tick budget: %d", s.ticks)
	}
	if s.outcome == game.OutcomeInconclusive && s.ticks != 1800 {
		t.Fatalf("inconclusive before the budget ran out: ticks=%d", s.ticks)
	}
}

func TestSummarize_Aggregates(t *testing.T) {
	all := []runStats{
		{outcome: game.OutcomeShipAVictory, ticks: 10, shotsA: 2, shotsB: 1, hitsA: 1, collisionsB: 3},
		{outcome: game.OutcomeDraw, ticks: 30, shotsA: 4, hitsB: 2, collisionsA: 1},
	}
	agg := summarize(all)
	if agg.byOutcome[game.OutcomeShipAVictory] != 1 || agg.byOutcome[game.OutcomeDraw] != 1 {
		t.Fatalf("outcome tally wrong: %+v", agg.byOutcome)
	}
	if agg.meanTicks != 20 {
		t.Fatalf("mean ticks should be 20, got %v", agg.meanTicks)
	}
	if agg.meanShots != 3.5 {
		t.Fatalf("mean shots should be 3.5, got %v", agg.meanShots)
	}
	if agg.meanHits != 1.5 {
		t.Fatalf("mean hits should be 1.5, got %v", agg.meanHits)
	}
	if agg.meanCollisions != 2 {
		t.Fatalf("mean collisions should be 2, got %v", agg.meanCollisions)
	}
}

func TestSummarize_Empty(t *testing.T) {
	agg := summarize(nil)
	if len(agg.byOutcome) != 0 || agg.meanTicks != 0 {
		t.Fatalf("empty summary should be zero-valued: %+v", agg)
	}
}
