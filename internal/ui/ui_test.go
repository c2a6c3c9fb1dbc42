package ui

import (
	"testing"

	"go-lane-defense/internal/component"
	"go-lane-defense/internal/config"
	"go-lane-defense/pkg/geom"
	"go-lane-defense/pkg/render"
)

func TestControlsBarText(t *testing.T) {
	cfg := config.Default()
	bar := NewControlsBar(cfg)
	var rec render.Recorder

	bar.Draw(&rec, component.Match{Resources: 400, Score: 2})

	if !rec.HasText("Resources: 400") {
		t.Errorf("missing resources text, got %v", rec.Texts())
	}
	if !rec.HasText("Score: 2") {
		t.Errorf("missing score text, got %v", rec.Texts())
	}
	first := rec.Calls[0]
	if first.Op != render.OpFillRect || first.Rect.H != cfg.Grid.CellSize || first.Rect.W != 900 {
		t.Errorf("first call = %+v, want full-width bar one cell tall", first)
	}
	if first.Color != config.ControlsBarColor {
		t.Errorf("bar color = %v, want %v", first.Color, config.ControlsBarColor)
	}
}

func TestBanner(t *testing.T) {
	cfg := config.Default()
	tests := []struct {
		phase component.Phase
		text  string
		drawn bool
	}{
		{component.Running, "", false},
		{component.GameOver, "GAME OVER", true},
		{component.LevelCompleted, "LEVEL COMPLETED", true},
	}
	for _, tt := range tests {
		t.Run(tt.phase.String(), func(t *testing.T) {
			var rec render.Recorder
			if got := DrawBanner(&rec, cfg, tt.phase); got != tt.drawn {
				t.Fatalf("DrawBanner = %v, want %v", got, tt.drawn)
			}
			if !tt.drawn {
				if len(rec.Calls) != 0 {
					t.Errorf("drew %d calls for a running match", len(rec.Calls))
				}
				return
			}
			if !rec.HasText(tt.text) {
				t.Errorf("texts = %v, want %q", rec.Texts(), tt.text)
			}
			txt := rec.Calls[1]
			if txt.Rect.X != 450 || txt.Rect.Y != 300 || txt.Align != render.AlignCenter {
				t.Errorf("banner text at (%v, %v) align %d, want centred", txt.Rect.X, txt.Rect.Y, txt.Align)
			}
			if txt.Size != config.BannerFontSize {
				t.Errorf("banner size = %d, want %d", txt.Size, config.BannerFontSize)
			}
		})
	}
}

func TestStateColor(t *testing.T) {
	if got := StateColor(component.Match{}); got != config.RunningStateColor {
		t.Errorf("running color = %v", got)
	}
	if got := StateColor(component.Match{WinLatched: true}); got != config.WinLatchedColor {
		t.Errorf("latched color = %v", got)
	}
	if got := StateColor(component.Match{Phase: component.GameOver}); got != config.TerminalStateColor {
		t.Errorf("terminal color = %v", got)
	}
}

func TestIndicatorPulsesOnChange(t *testing.T) {
	ind := NewStateIndicator(870, 50, 10)
	var rec render.Recorder

	ind.Draw(&rec, component.Match{Frame: 100})
	first := rec.Calls[0].Radius
	rec.Reset()
	ind.Draw(&rec, component.Match{Frame: 400})
	settled := rec.Calls[0].Radius

	if first <= settled {
		t.Errorf("radius right after change %v should exceed settled %v", first, settled)
	}
	if settled < 10 || settled > 10.01 {
		t.Errorf("settled radius = %v, want ~10", settled)
	}
}

func TestButton(t *testing.T) {
	b := NewButton(geom.Rect{X: 350, Y: 250, W: 200, H: 60}, "Start")
	if !b.Contains(450, 280) {
		t.Error("centre not inside button")
	}
	if b.Contains(100, 100) {
		t.Error("far point inside button")
	}

	var rec render.Recorder
	b.Draw(&rec, 450, 280, true)
	if rec.Calls[0].Color != b.HoverColor {
		t.Errorf("hovered background = %v, want %v", rec.Calls[0].Color, b.HoverColor)
	}
	rec.Reset()
	b.Draw(&rec, 0, 0, false)
	if rec.Calls[0].Color != b.BgColor {
		t.Errorf("idle background = %v, want %v", rec.Calls[0].Color, b.BgColor)
	}
	if !rec.HasText("Start") {
		t.Error("button label missing")
	}
}
