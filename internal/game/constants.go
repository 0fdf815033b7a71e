package game

// The whole game is this one hardcoded configuration: a 20x10 bay rendered
// at 64px per cell, stepped at 60 ticks per second.
const (
	mapCols  = 20
	mapRows  = 10
	cellSize = 64

	startingHP     = 3
	maxProjectiles = 5
	maxSpeed       = 1 // cells per frame

	netLineSpacing = 32 // px between bay net lines
)
