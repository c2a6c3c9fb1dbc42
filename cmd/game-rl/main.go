// Lane defense on a raylib window.
//
// Usage: go run ./cmd/game-rl -seed 42
package main

import (
	"flag"

	"go-lane-defense/internal/config"
	"go-lane-defense/internal/state"
	"go-lane-defense/pkg/logger"
	"go-lane-defense/pkg/render/rlrender"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	restartButtonWidth  = 160
	restartButtonHeight = 40
)

func main() {
	configPath := flag.String("config", "", "YAML file overriding the embedded defaults")
	seed := flag.Int64("seed", 0, "PRNG seed of the first match (0 = time based)")
	flag.Parse()

	logger.Init()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Log.WithError(err).Fatal("Failed to load config")
	}

	rl.InitWindow(int32(cfg.Screen.Width), int32(cfg.Screen.Height), cfg.Screen.Title)
	defer rl.CloseWindow()
	rl.SetTargetFPS(config.TPS)

	sm := state.NewStateMachine()
	session := &state.Session{Config: cfg, Seed: *seed}
	sm.SetState(state.NewMenuState(sm, session))
	surface := rlrender.NewSurface(config.BackgroundColor)

	// кнопка рисуется внутри кадра, а перезапуск применяется на следующем тике
	restartQueued := false

	for !rl.WindowShouldClose() {
		var in state.Input
		mouse := rl.GetMousePosition()
		in.SetPointer(float64(mouse.X), float64(mouse.Y), cfg.Derived.Width, cfg.Derived.Height)
		if rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
			in.Clicked = true
			in.ClickX, in.ClickY = float64(mouse.X), float64(mouse.Y)
		}
		in.Pause = rl.IsKeyPressed(rl.KeyP)
		in.Confirm = rl.IsKeyPressed(rl.KeyEnter)
		in.Restart = rl.IsKeyPressed(rl.KeyR) || restartQueued
		restartQueued = false

		sm.Update(in)

		rl.BeginDrawing()
		rl.ClearBackground(rl.Black)
		sm.Draw(surface)

		if g := state.ActiveGame(sm); g != nil && g.Finished() {
			bounds := rl.Rectangle{
				X:      float32(cfg.Derived.Width/2 - restartButtonWidth/2),
				Y:      float32(cfg.Derived.Height/2 + 90),
				Width:  restartButtonWidth,
				Height: restartButtonHeight,
			}
			if gui.Button(bounds, "Restart") {
				restartQueued = true
			}
		}
		rl.EndDrawing()
	}
}
