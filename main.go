package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/automoto/dragonboat-race/config"
	"github.com/automoto/dragonboat-race/course"
	"github.com/automoto/dragonboat-race/scenes"
	"github.com/automoto/dragonboat-race/systems"
)

func main() {
	courseName := flag.String("course", "", "Built-in course name or path to a .tmx file (empty = default race)")
	lanes := flag.Int("lanes", 4, "Lane count for the default race")
	boat := flag.String("boat", "normal", "Boat type for the default race (fast, normal, heavy)")
	seed := flag.Int64("seed", 0, "Random seed (0 = time based)")
	tickRate := flag.Int("tickrate", 60, "Simulation ticks per second")
	maxFrames := flag.Int("maxframes", 60*60*10, "Stop after this many ticks (0 = no limit)")
	realtime := flag.Bool("realtime", false, "Pace ticks at wall-clock speed")
	appName := flag.String("app", "dragonboat_race", "Results store application name (empty = don't save)")
	flag.Parse()

	if *tickRate <= 0 {
		log.Fatalf("Invalid tick rate %d", *tickRate)
	}

	rc, err := loadRace(*courseName, *lanes, *boat)
	if err != nil {
		log.Fatalf("Failed to load race: %v", err)
	}
	rc = botsOnly(rc)

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	scene, err := scenes.NewRaceScene(rc, rand.New(rand.NewSource(*seed)))
	if err != nil {
		log.Fatalf("Failed to create race: %v", err)
	}

	loop := NewRaceLoop(scene, *tickRate, *maxFrames, *realtime)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Println("Stopping race...")
		loop.Stop()
	}()

	log.Printf("Starting race with %d lanes, finish at %.0f (seed %d)", len(rc.Lanes), rc.FinishDistance, *seed)
	loop.Run()

	logResults(scene, loop.Frames())

	if *appName == "" {
		return
	}
	store, err := systems.OpenResultsStore(*appName)
	if err != nil {
		log.Printf("Warning: Could not open results store: %v", err)
		return
	}
	if err := store.SaveRace(scene.Record()); err != nil {
		log.Printf("Warning: Could not save race: %v", err)
		return
	}
	if best, err := store.LoadBestTimes(); err == nil {
		for name, t := range best {
			log.Printf("Best time %s: %.2fs", name, t)
		}
	}
}

// loadRace resolves the -course flag: a built-in course name, a .tmx path on
// disk, or the default uniform race when empty.
func loadRace(name string, lanes int, boat string) (config.RaceConfig, error) {
	if name == "" {
		if lanes <= 0 {
			return config.RaceConfig{}, fmt.Errorf("lane count %d: %w", lanes, config.ErrNoLanes)
		}
		boatType, ok := config.ParseBoatType(boat)
		if !ok {
			return config.RaceConfig{}, fmt.Errorf("boat %q: %w", boat, config.ErrUnknownBoatType)
		}
		rc := config.DefaultRace()
		rc.Lanes = config.UniformLanes(lanes, float64(config.C.Width)/float64(lanes), boatType)
		return rc, nil
	}

	if filepath.Ext(name) == ".tmx" {
		return course.LoadCourse(os.DirFS(filepath.Dir(name)), filepath.Base(name))
	}
	return course.LoadCourse(course.Builtin, course.BuiltinDir+"/"+name+".tmx")
}

// botsOnly hands every player lane to a bot; headless runs have nobody steering.
func botsOnly(rc config.RaceConfig) config.RaceConfig {
	rc.Lanes = append([]config.LaneSetup(nil), rc.Lanes...)
	for i := range rc.Lanes {
		rc.Lanes[i].Player = false
	}
	return rc
}

func logResults(scene *scenes.RaceScene, frames int) {
	log.Printf("Race %s ended as %s after %d frames (%.2fs)", scene.ID(), scene.State(), frames, scene.Elapsed())
	for _, r := range scene.Results() {
		status := "racing"
		switch {
		case r.Winner:
			status = "WINNER"
		case r.Finished:
			status = "finished"
		case r.Eliminated:
			status = "eliminated"
		}
		log.Printf("  lane %d %-6s %-10s distance %7.0f health %5.1f time %6.2fs hits %d pickups %d",
			r.Lane, r.BoatType, status, r.Distance, r.Health, r.Time, r.Hits, r.Pickups)
	}
}
