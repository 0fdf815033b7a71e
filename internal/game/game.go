package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	log "github.com/sirupsen/logrus"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// frameDt is the fixed per-frame time step driving render tweens.
const frameDt = 1.0 / 60.0

// overlayTextScale is the integer upscale factor for the game-over text.
const overlayTextScale = 3

// keyBindings is one ship's control set: four directions and fire.
type keyBindings struct {
	up, down, left, right, fire ebiten.Key
}

var (
	shipAKeys = keyBindings{ebiten.KeyW, ebiten.KeyS, ebiten.KeyA, ebiten.KeyD, ebiten.KeyShiftLeft}
	shipBKeys = keyBindings{ebiten.KeyArrowUp, ebiten.KeyArrowDown, ebiten.KeyArrowLeft, ebiten.KeyArrowRight, ebiten.KeyShiftRight}
)

// Game is the window-side wrapper around a Match: it polls input, steps the
// match once per frame and renders the bay. All state is owned by this one
// synchronous Update/Draw loop; there are no background goroutines.
type Game struct {
	match *Match
	log   *MatchLog

	prevKeys map[ebiten.Key]bool
	showHUD  bool

	// Render-only effects.
	overlayFade  *gween.Tween
	overlayAlpha float32
	hitFlash     [2]*gween.Tween
	flashAlpha   [2]float32
	prevHP       [2]int
	loggedOver   bool

	// HUD feedback frames remaining after a report copy.
	copiedTTL int

	// Offscreen buffer for the game-over text — rendered at 1x then
	// blitted at overlayTextScale so the bitmap font stays crisp.
	textBuf *ebiten.Image
}

// ScreenWidth is the fixed window width in pixels.
func ScreenWidth() int { return mapCols * cellSize }

// ScreenHeight is the fixed window height in pixels.
func ScreenHeight() int { return mapRows * cellSize }

// New builds the single match this process will ever run.
func New() *Game {
	m := NewMatch()
	ml := NewMatchLog(false)
	m.SetLog(ml)
	g := &Game{
		match:    m,
		log:      ml,
		prevKeys: make(map[ebiten.Key]bool),
		showHUD:  true,
		textBuf:  ebiten.NewImage(ScreenWidth()/overlayTextScale, ScreenHeight()/overlayTextScale),
	}
	g.prevHP = [2]int{m.ShipA().HP, m.ShipB().HP}
	return g
}

func (g *Game) Update() error {
	currentKeys := map[ebiten.Key]bool{}

	intentA := g.readIntent(currentKeys, shipAKeys)
	intentB := g.readIntent(currentKeys, shipBKeys)

	// H: toggle the HUD legend.
	currentKeys[ebiten.KeyH] = ebiten.IsKeyPressed(ebiten.KeyH)
	if currentKeys[ebiten.KeyH] && !g.prevKeys[ebiten.KeyH] {
		g.showHUD = !g.showHUD
	}

	// R: copy the match report to the clipboard.
	currentKeys[ebiten.KeyR] = ebiten.IsKeyPressed(ebiten.KeyR)
	if currentKeys[ebiten.KeyR] && !g.prevKeys[ebiten.KeyR] {
		if err := CopyReport(g.match, g.log); err != nil {
			log.WithError(err).Warn("clipboard copy failed")
		} else {
			g.copiedTTL = 120
		}
	}
	g.prevKeys = currentKeys

	if !g.match.Over() {
		g.match.Step(intentA, intentB)
	}
	if g.copiedTTL > 0 {
		g.copiedTTL--
	}
	g.updateEffects()
	return nil
}

// readIntent samples one ship's keys. Fire is edge-triggered on key-down so
// a held key spawns at most one projectile.
func (g *Game) readIntent(currentKeys map[ebiten.Key]bool, kb keyBindings) Intent {
	currentKeys[kb.fire] = ebiten.IsKeyPressed(kb.fire)
	firePressed := currentKeys[kb.fire] && !g.prevKeys[kb.fire]
	return IntentFromKeys(
		ebiten.IsKeyPressed(kb.up),
		ebiten.IsKeyPressed(kb.down),
		ebiten.IsKeyPressed(kb.left),
		ebiten.IsKeyPressed(kb.right),
		firePressed,
	)
}

// updateEffects drives the render-only tweens: a white hit flash whenever a
// ship loses health, and the game-over overlay fade.
func (g *Game) updateEffects() {
	for i, s := range g.match.Ships {
		if s.HP < g.prevHP[i] {
			g.hitFlash[i] = gween.New(1, 0, 0.35, ease.OutQuad)
		}
		g.prevHP[i] = s.HP
		if g.hitFlash[i] != nil {
			v, done := g.hitFlash[i].Update(frameDt)
			g.flashAlpha[i] = v
			if done {
				g.hitFlash[i] = nil
				g.flashAlpha[i] = 0
			}
		}
	}

	if !g.match.Over() {
		return
	}
	if !g.loggedOver {
		g.loggedOver = true
		g.overlayFade = gween.New(0, 1, 0.75, ease.InOutQuad)
		log.WithFields(log.Fields{
			"outcome": DetermineOutcome(g.match).String(),
			"ticks":   g.match.Tick,
			"hp_a":    g.match.ShipA().HP,
			"hp_b":    g.match.ShipB().HP,
		}).Info("match over")
	}
	if g.overlayFade != nil {
		v, done := g.overlayFade.Update(frameDt)
		g.overlayAlpha = v
		if done {
			g.overlayFade = nil
			g.overlayAlpha = 1
		}
	}
}

func (g *Game) Layout(_, _ int) (int, int) {
	return ScreenWidth(), ScreenHeight()
}
