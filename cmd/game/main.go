// cmd/game/main.go
package main

import (
	"log"
	"net/http"
	_ "net/http/pprof"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata/v2"

	"go-merge-defense/internal/audio"
	"go-merge-defense/internal/config"
	"go-merge-defense/internal/defs"
	"go-merge-defense/internal/progress"
	"go-merge-defense/internal/state"
	"go-merge-defense/pkg/render"
)

const startFromGame = false // true skips the menu

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	go func() {
		log.Println(http.ListenAndServe("localhost:6060", nil))
	}()

	if err := defs.LoadTowerDefinitions("assets/data/towers.yaml"); err != nil {
		log.Printf("defs: %v, using built-in tower definitions", err)
	}
	if err := defs.LoadEnemyDefinitions("assets/data/enemies.yaml"); err != nil {
		log.Printf("defs: %v, using built-in enemy definitions", err)
	}

	gdataManager, err := gdata.Open(gdata.Config{AppName: "merge_defense"})
	if err != nil {
		log.Printf("save: %v, progress will not persist", err)
		gdataManager = nil
	}
	prog := progress.NewManager(gdataManager)

	sound := audio.NewSoundManager()
	if err := sound.Initialize(); err != nil {
		log.Printf("audio: %v, running silent", err)
	}
	defer sound.Cleanup()

	fontFace := render.LoadFontFace("assets/fonts/arial.ttf", 14)

	sm := state.NewStateMachine()
	if startFromGame {
		sm.SetState(state.NewGameState(sm, prog, sound, fontFace))
	} else {
		sm.SetState(state.NewMenuState(sm, prog, sound, fontFace))
	}

	app := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Merge Defense")
	if err := ebiten.RunGame(app); err != nil {
		log.Fatal(err)
	}
}
