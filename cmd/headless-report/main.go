package main

import (
	"flag"
	"fmt"
	"strings"

	"go-lane-defense/internal/agent"
	"go-lane-defense/internal/app"
	"go-lane-defense/internal/component"
	"go-lane-defense/internal/config"
	"go-lane-defense/internal/event"
	"go-lane-defense/internal/telemetry"
	"go-lane-defense/pkg/logger"

	"github.com/sirupsen/logrus"
)

type runStats struct {
	runIndex int
	seed     int64
	ticks    int // фактически сыграно; меньше лимита, если матч закончился

	summary telemetry.MatchSummary
	events  []telemetry.EventRecord

	firstKillFrame int
	firstLossFrame int
	winLatchFrame  int
}

func main() {
	var runs int
	var ticks int
	var seedBase int64
	var seedStep int64
	var column int
	var configPath string
	var outDir string
	var keepEvents bool
	var verbose bool

	flag.IntVar(&runs, "runs", 5, "number of headless matches")
	flag.IntVar(&ticks, "ticks", 36000, "tick limit per match")
	flag.Int64Var(&seedBase, "seed-base", 42, "PRNG seed for run 1")
	flag.Int64Var(&seedStep, "seed-step", 1, "seed increment between runs")
	flag.IntVar(&column, "column", 1, "grid column the autopilot builds in")
	flag.StringVar(&configPath, "config", "", "YAML file overriding the embedded defaults")
	flag.StringVar(&outDir, "out", "", "directory for events.csv, matches.csv and config.yaml (empty = no files)")
	flag.BoolVar(&keepEvents, "events", false, "write every event row, not only match summaries")
	flag.BoolVar(&verbose, "v", false, "log match events")
	flag.Parse()

	logger.Init()
	if !verbose {
		logger.Log.SetLevel(logrus.WarnLevel)
	}

	if runs <= 0 {
		fmt.Println("error: -runs must be > 0")
		return
	}
	if ticks <= 0 {
		fmt.Println("error: -ticks must be > 0")
		return
	}
	if seedBase == 0 {
		fmt.Println("error: -seed-base must be non-zero, seed 0 means time based")
		return
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Printf("error: %v\n", err)
		return
	}
	if column < 0 || column >= cfg.Derived.Cols {
		fmt.Printf("error: -column must be in [0,%d)\n", cfg.Derived.Cols)
		return
	}

	out, err := telemetry.NewOutputManager(outDir)
	if err != nil {
		fmt.Printf("error: %v\n", err)
		return
	}
	defer out.Close()
	if err := out.WriteConfig(cfg); err != nil {
		fmt.Printf("error: %v\n", err)
		return
	}

	fmt.Printf("=== Headless Lane Defense Report ===\n")
	fmt.Printf("runs=%d ticks=%d seed_base=%d seed_step=%d column=%d\n\n", runs, ticks, seedBase, seedStep, column)

	all := make([]runStats, 0, runs)
	for i := 0; i < runs; i++ {
		seed := seedFor(seedBase, seedStep, i)
		rs := runMatch(cfg, i+1, seed, ticks, column, keepEvents)
		all = append(all, rs)
		printRun(rs)

		if err := out.WriteEvents(rs.events); err != nil {
			fmt.Printf("error: %v\n", err)
			return
		}
		if err := out.WriteMatch(rs.summary); err != nil {
			fmt.Printf("error: %v\n", err)
			return
		}
	}

	printAggregate(all)
	if dir := out.Dir(); dir != "" {
		fmt.Printf("\nwritten to %s\n", dir)
	}
}

func seedFor(base, step int64, i int) int64 {
	return base + int64(i)*step
}

// runMatch plays one match with the autopilot until it ends or the tick limit.
func runMatch(cfg *config.Config, runIndex int, seed int64, ticks, column int, keepEvents bool) runStats {
	g := app.NewGame(cfg, seed)
	rec := telemetry.NewRecorder(seed, true)
	rec.Attach(g.EventDispatcher)
	bot := agent.NewAutopilot(column)

	played := 0
	for played < ticks && !g.Finished() {
		bot.Act(g)
		g.Update()
		played++
	}

	rs := runStats{
		runIndex:       runIndex,
		seed:           seed,
		ticks:          played,
		summary:        rec.Summary(g.Match()),
		firstKillFrame: firstFrame(rec.Events, event.EnemyKilled),
		firstLossFrame: firstFrame(rec.Events, event.DefenderDestroyed),
		winLatchFrame:  firstFrame(rec.Events, event.WinLatched),
	}
	if keepEvents {
		rs.events = rec.Events
	}
	return rs
}

func firstFrame(records []telemetry.EventRecord, t event.EventType) int {
	for _, r := range records {
		if r.Event == string(t) {
			return r.Frame
		}
	}
	return -1
}

func printRun(rs runStats) {
	s := rs.summary
	fmt.Printf("--- Run %d (seed=%d) ---\n", rs.runIndex, rs.seed)
	fmt.Printf("outcome=%s frames=%d ticks=%d score=%d resources=%d\n", s.Outcome, s.Frames, rs.ticks, s.Score, s.Resources)
	fmt.Printf("phase_markers: first_kill=%d first_loss=%d win_latched=%d\n", rs.firstKillFrame, rs.firstLossFrame, rs.winLatchFrame)
	fmt.Printf("event_totals: spawned=%d kills=%d shots=%d placed=%d rejected=%d lost=%d collected=%d\n\n",
		s.EnemiesSpawned, s.Kills, s.Shots, s.Placements, s.Rejections, s.DefenderLosses, s.Collected)
}

func printAggregate(all []runStats) {
	summaries := make([]telemetry.MatchSummary, len(all))
	for i, rs := range all {
		summaries[i] = rs.summary
	}
	batch := telemetry.Summarize(summaries)

	fmt.Printf("=== Aggregate ===\n")
	fmt.Println(batch.String())
	fmt.Printf("outcomes: %s\n", formatOutcomes(outcomeCounts(summaries)))
}

func outcomeCounts(summaries []telemetry.MatchSummary) map[string]int {
	counts := map[string]int{}
	for _, s := range summaries {
		counts[s.Outcome]++
	}
	return counts
}

// formatOutcomes prints counts in a fixed order so reports diff cleanly.
func formatOutcomes(counts map[string]int) string {
	order := []string{component.LevelCompleted.String(), component.GameOver.String(), component.Running.String()}
	parts := make([]string, 0, len(order))
	for _, k := range order {
		parts = append(parts, fmt.Sprintf("%s=%d", k, counts[k]))
	}
	return strings.Join(parts, " ")
}
