package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	log "github.com/sirupsen/logrus"

	"github.com/Garsondee/Monomaxia/internal/game"
)

func main() {
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	log.WithFields(log.Fields{
		"width":  game.ScreenWidth(),
		"height": game.ScreenHeight(),
	}).Info("starting monomaxia")

	ebiten.SetWindowTitle("Monomaxia on a Bay")
	ebiten.SetWindowSize(game.ScreenWidth(), game.ScreenHeight())
	ebiten.SetTPS(60)
	if err := ebiten.RunGame(game.New()); err != nil {
		log.Fatal(err)
	}
}
