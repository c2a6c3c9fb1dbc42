// cmd/game/main.go
package main

import (
	"flag"
	"os"

	"go-lane-defense/internal/app"
	"go-lane-defense/internal/audio"
	"go-lane-defense/internal/config"
	"go-lane-defense/internal/state"
	"go-lane-defense/internal/telemetry"
	"go-lane-defense/pkg/logger"
	"go-lane-defense/pkg/render/ebitenrender"

	"github.com/atotto/clipboard"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type AppGame struct {
	stateMachine *state.StateMachine
	cfg          *config.Config
	surface      *ebitenrender.Surface

	// recorder текущего матча, чтобы по C скопировать итог в буфер обмена
	recorder *telemetry.Recorder
}

func (a *AppGame) Update() error {
	var in state.Input
	x, y := ebiten.CursorPosition()
	in.SetPointer(float64(x), float64(y), a.cfg.Derived.Width, a.cfg.Derived.Height)

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		in.Clicked = true
		in.ClickX, in.ClickY = float64(x), float64(y)
	}
	in.Pause = inpututil.IsKeyJustPressed(ebiten.KeyP)
	in.Confirm = inpututil.IsKeyJustPressed(ebiten.KeyEnter)
	in.Restart = inpututil.IsKeyJustPressed(ebiten.KeyR)

	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		a.copySummary()
	}

	a.stateMachine.Update(in)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.surface.Target = screen
	a.stateMachine.Draw(a.surface)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.cfg.Screen.Width, a.cfg.Screen.Height
}

func (a *AppGame) copySummary() {
	g := state.ActiveGame(a.stateMachine)
	if g == nil || a.recorder == nil {
		return
	}
	summary := a.recorder.Summary(g.Match())
	if err := clipboard.WriteAll(summary.String()); err != nil {
		logger.Log.WithError(err).Warn("Could not copy match summary")
		return
	}
	logger.Log.WithField("summary", summary.String()).Info("Match summary copied")
}

func main() {
	configPath := flag.String("config", "", "YAML file overriding the embedded defaults")
	seed := flag.Int64("seed", 0, "PRNG seed of the first match (0 = time based)")
	volume := flag.Float64("volume", 0.3, "Cue volume, 0 mutes")
	flag.Parse()

	logger.Init()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Log.WithError(err).Fatal("Failed to load config")
	}

	fonts, err := ebitenrender.NewFonts()
	if err != nil {
		logger.Log.WithError(err).Fatal("Failed to load fonts")
	}

	a := &AppGame{
		stateMachine: state.NewStateMachine(),
		cfg:          cfg,
		surface:      ebitenrender.NewSurface(fonts, config.BackgroundColor),
	}

	var cues *audio.Cues
	if *volume > 0 {
		play, err := audio.InitSpeaker()
		if err != nil {
			logger.Log.WithError(err).Warn("Audio disabled")
		} else {
			cues = audio.NewCues(play, *volume)
		}
	}

	session := &state.Session{
		Config: cfg,
		Seed:   *seed,
		OnMatch: func(g *app.Game) {
			a.recorder = telemetry.NewRecorder(g.Seed(), false)
			a.recorder.Attach(g.EventDispatcher)
			if cues != nil {
				cues.Attach(g.EventDispatcher)
			}
		},
	}
	a.stateMachine.SetState(state.NewMenuState(a.stateMachine, session))

	ebiten.SetWindowSize(cfg.Screen.Width, cfg.Screen.Height)
	ebiten.SetWindowTitle(cfg.Screen.Title)
	ebiten.SetTPS(config.TPS)
	if err := ebiten.RunGame(a); err != nil {
		logger.Log.WithError(err).Error("Game loop stopped")
		os.Exit(1)
	}
}
