// Lane defense in the terminal. Mouse hovers and clicks, P pauses,
// Enter starts or restarts, q quits.
//
// Usage: go run ./cmd/term -log lane-defense.log
package main

import (
	"context"
	"flag"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-lane-defense/internal/config"
	"go-lane-defense/internal/state"
	"go-lane-defense/pkg/logger"
	"go-lane-defense/pkg/render/tcellrender"

	"github.com/gdamore/tcell/v2"
)

// collector folds terminal events into the Input of the next tick.
type collector struct {
	surface *tcellrender.Surface
	cfg     *config.Config

	in   state.Input
	held bool // левая кнопка была нажата в прошлом событии
	quit bool
}

func newCollector(surface *tcellrender.Surface, cfg *config.Config) *collector {
	return &collector{surface: surface, cfg: cfg}
}

func (c *collector) handle(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape, ev.Key() == tcell.KeyCtrlC:
			c.quit = true
		case ev.Key() == tcell.KeyEnter:
			c.in.Confirm = true
		case ev.Key() == tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				c.quit = true
			case 'p', 'P':
				c.in.Pause = true
			case 'r', 'R':
				c.in.Restart = true
			}
		}
	case *tcell.EventMouse:
		col, row := ev.Position()
		x, y := c.surface.Pixel(col, row)
		c.in.SetPointer(x, y, c.cfg.Derived.Width, c.cfg.Derived.Height)
		pressed := ev.Buttons()&tcell.Button1 != 0
		if pressed && !c.held {
			c.in.Clicked = true
			c.in.ClickX, c.in.ClickY = x, y
		}
		c.held = pressed
	case *tcell.EventResize:
		c.surface.Resize()
	}
}

// next returns the Input for this tick. Pointer position carries over,
// one-shot flags reset.
func (c *collector) next() state.Input {
	in := c.in
	c.in = state.Input{PointerX: in.PointerX, PointerY: in.PointerY, PointerPresent: in.PointerPresent}
	return in
}

func main() {
	configPath := flag.String("config", "", "YAML file overriding the embedded defaults")
	seed := flag.Int64("seed", 0, "PRNG seed of the first match (0 = time based)")
	logPath := flag.String("log", "", "Log file; the terminal is busy drawing, empty discards logs")
	flag.Parse()

	logger.Init()
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			logger.Log.WithError(err).Fatal("Failed to open log file")
		}
		defer f.Close()
		logger.SetOutput(f)
	} else {
		logger.SetOutput(io.Discard)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Log.WithError(err).Fatal("Failed to load config")
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		logger.Log.WithError(err).Fatal("Failed to create screen")
	}
	if err := screen.Init(); err != nil {
		logger.Log.WithError(err).Fatal("Failed to init screen")
	}
	defer screen.Fini()
	screen.EnableMouse()
	screen.Clear()

	surface := tcellrender.NewSurface(screen, cfg.Derived.Width, cfg.Derived.Height, config.BackgroundColor)
	sm := state.NewStateMachine()
	sm.SetState(state.NewMenuState(sm, &state.Session{Config: cfg, Seed: *seed}))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	events := make(chan tcell.Event, 64)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	c := newCollector(surface, cfg)
	ticker := time.NewTicker(time.Second / config.TPS)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

	drain:
		for {
			select {
			case ev := <-events:
				c.handle(ev)
			default:
				break drain
			}
		}
		if c.quit {
			return
		}

		sm.Update(c.next())
		sm.Draw(surface)
		screen.Show()
	}
}
