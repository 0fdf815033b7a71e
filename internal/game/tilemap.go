package game

// Cell identifies what occupies one tile of the bay.
type Cell uint8

const (
	CellOpen     Cell = iota // navigable water
	CellWall                 // boundary ring
	CellObstacle             // interior reef
)

// TileMap is the fixed 20x10 bay: an outer ring of wall cells around open
// water, with a handful of reef cells in the interior. It is immutable after
// construction and shared read-only by both ships.
type TileMap struct {
	Cols  int
	Rows  int
	cells []Cell
}

// NewTileMap builds the fixed bay layout: boundary ring walls plus three
// obstacle cells.
func NewTileMap() *TileMap {
	tm := &TileMap{
		Cols:  mapCols,
		Rows:  mapRows,
		cells: make([]Cell, mapCols*mapRows),
	}
	for row := 0; row < tm.Rows; row++ {
		for col := 0; col < tm.Cols; col++ {
			if row == 0 || row == tm.Rows-1 || col == 0 || col == tm.Cols-1 {
				tm.cells[row*tm.Cols+col] = CellWall
			}
		}
	}
	tm.set(5, 3, CellObstacle)
	tm.set(8, 5, CellObstacle)
	tm.set(10, 6, CellObstacle)
	return tm
}

// set is only used during construction and by the test harness.
func (tm *TileMap) set(col, row int, c Cell) {
	tm.cells[row*tm.Cols+col] = c
}

// At returns the cell at (col,row). Out-of-bounds positions read as CellWall
// so callers can treat the grid edge and the boundary ring uniformly.
func (tm *TileMap) At(col, row int) Cell {
	if !tm.InBounds(col, row) {
		return CellWall
	}
	return tm.cells[row*tm.Cols+col]
}

// InBounds reports whether (col,row) lies on the grid.
func (tm *TileMap) InBounds(col, row int) bool {
	return col >= 0 && col < tm.Cols && row >= 0 && row < tm.Rows
}

// IsPassable reports whether a ship or projectile may occupy (col,row).
func (tm *TileMap) IsPassable(col, row int) bool {
	return tm.At(col, row) == CellOpen
}
