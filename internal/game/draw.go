package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

var (
	waterColor    = color.RGBA{R: 24, G: 72, B: 132, A: 255}
	netColor      = color.RGBA{R: 200, G: 205, B: 210, A: 110}
	wallColor     = color.RGBA{R: 78, G: 78, B: 84, A: 255}
	obstacleColor = color.RGBA{R: 100, G: 92, B: 78, A: 255}
	terrainLight  = color.RGBA{R: 130, G: 130, B: 136, A: 200}
	terrainDark   = color.RGBA{R: 40, G: 40, B: 44, A: 200}
	overMsgColor  = color.RGBA{R: 235, G: 64, B: 52, A: 255}

	shipColors = [2]color.RGBA{
		{R: 210, G: 44, B: 44, A: 255}, // ship A
		{R: 44, G: 170, B: 66, A: 255}, // ship B
	}
)

func (g *Game) Draw(screen *ebiten.Image) {
	g.drawBay(screen)
	g.drawTerrain(screen)
	g.drawProjectiles(screen)
	g.drawShips(screen)
	if g.showHUD {
		g.drawHUD(screen)
	}
	if g.match.Over() {
		g.drawGameOver(screen)
	}
}

// drawBay fills the water and lays the fishing-net gridlines over it.
func (g *Game) drawBay(screen *ebiten.Image) {
	screen.Fill(waterColor)
	w := float32(ScreenWidth())
	h := float32(ScreenHeight())
	for x := float32(0); x <= w; x += netLineSpacing {
		vector.StrokeLine(screen, x, 0, x, h, 1.0, netColor, false)
	}
	for y := float32(0); y <= h; y += netLineSpacing {
		vector.StrokeLine(screen, 0, y, w, y, 1.0, netColor, false)
	}
}

// drawTerrain renders the boundary ring and obstacle cells as solid blocks
// with a light/dark bevel so they read as raised above the water.
func (g *Game) drawTerrain(screen *ebiten.Image) {
	tm := g.match.TileMap
	for row := 0; row < tm.Rows; row++ {
		for col := 0; col < tm.Cols; col++ {
			var fill color.RGBA
			switch tm.At(col, row) {
			case CellWall:
				fill = wallColor
			case CellObstacle:
				fill = obstacleColor
			default:
				continue
			}
			x := float32(col * cellSize)
			y := float32(row * cellSize)
			vector.FillRect(screen, x, y, cellSize, cellSize, fill, false)
			vector.StrokeLine(screen, x, y, x+cellSize, y, 1.0, terrainLight, false)
			vector.StrokeLine(screen, x, y, x, y+cellSize, 1.0, terrainLight, false)
			vector.StrokeLine(screen, x, y+cellSize, x+cellSize, y+cellSize, 1.0, terrainDark, false)
			vector.StrokeLine(screen, x+cellSize, y, x+cellSize, y+cellSize, 1.0, terrainDark, false)
		}
	}
}

// drawProjectiles renders every active projectile as a quarter-cell circle
// in its owner's colour.
func (g *Game) drawProjectiles(screen *ebiten.Image) {
	for i, s := range g.match.Ships {
		for j := range s.Slots {
			p := &s.Slots[j]
			if !p.Active {
				continue
			}
			cx := float32(p.X*cellSize + cellSize/2)
			cy := float32(p.Y*cellSize + cellSize/2)
			vector.FillCircle(screen, cx, cy, cellSize/4.0, shipColors[i], false)
		}
	}
}

// drawShips renders each surviving ship as a half-cell square seated toward
// the lower-right of its cell, with its label on the hull and an HP readout
// above. Destroyed ships are not drawn.
func (g *Game) drawShips(screen *ebiten.Image) {
	face := basicfont.Face7x13
	const size = cellSize / 2
	const off = cellSize - size
	for i, s := range g.match.Ships {
		if s.Destroyed() {
			continue
		}
		x := float32(s.X*cellSize + off)
		y := float32(s.Y*cellSize + off)
		vector.FillRect(screen, x, y, size, size, shipColors[i], false)
		if g.flashAlpha[i] > 0 {
			a := uint8(200 * g.flashAlpha[i])
			vector.FillRect(screen, x, y, size, size, color.RGBA{R: a, G: a, B: a, A: a}, false)
		}
		lw := font.MeasureString(face, s.Label).Ceil()
		text.Draw(screen, s.Label, face, int(x)+(size-lw)/2, int(y)+size/2+5, color.White)
		text.Draw(screen, fmt.Sprintf("HP:%d", s.HP), face, int(x), int(y)-4, color.Black)
	}
}

// drawHUD renders the control legend in the bottom-left corner.
func (g *Game) drawHUD(screen *ebiten.Image) {
	lines := []string{
		"A: WASD move  LShift fire",
		"B: arrows move  RShift fire",
		"[H] hide HUD  [R] copy report",
	}
	if g.copiedTTL > 0 {
		lines = append(lines, "report copied")
	}
	for i, l := range lines {
		ebitenutil.DebugPrintAt(screen, l, 6, ScreenHeight()-(len(lines)-i)*14-6)
	}
}

// drawGameOver dims the scene and overlays the winner or tie message,
// fading in over the first moments after the terminal flag is set.
func (g *Game) drawGameOver(screen *ebiten.Image) {
	dim := uint8(120 * g.overlayAlpha)
	vector.FillRect(screen, 0, 0, float32(ScreenWidth()), float32(ScreenHeight()),
		color.RGBA{A: dim}, false)

	var msg string
	switch DetermineOutcome(g.match) {
	case OutcomeDraw:
		msg = "TIE! Nobody survived!"
	case OutcomeShipBVictory:
		msg = "GAME OVER! Winner: Ship B"
	default:
		msg = "GAME OVER! Winner: Ship A"
	}

	face := basicfont.Face7x13
	tw := font.MeasureString(face, msg).Ceil()
	bx := (ScreenWidth()/overlayTextScale - tw) / 2
	by := ScreenHeight() / overlayTextScale / 2

	g.textBuf.Clear()
	text.Draw(g.textBuf, msg, face, bx, by, overMsgColor)

	opts := &ebiten.DrawImageOptions{}
	opts.GeoM.Scale(overlayTextScale, overlayTextScale)
	opts.ColorScale.ScaleAlpha(g.overlayAlpha)
	screen.DrawImage(g.textBuf, opts)
}
