package main

import (
	"log"
	"time"

	"github.com/automoto/dragonboat-race/scenes"
)

// RaceLoop drives a RaceScene at a fixed tick rate until the race ends.
type RaceLoop struct {
	scene     *scenes.RaceScene
	tickRate  int
	maxFrames int
	realtime  bool
	frames    int
	stopChan  chan struct{}
}

func NewRaceLoop(scene *scenes.RaceScene, tickRate, maxFrames int, realtime bool) *RaceLoop {
	return &RaceLoop{
		scene:     scene,
		tickRate:  tickRate,
		maxFrames: maxFrames,
		realtime:  realtime,
		stopChan:  make(chan struct{}),
	}
}

// Run ticks until the race is over, maxFrames is reached or Stop is called.
// In realtime mode ticks are paced by a ticker; otherwise they run back to back.
func (l *RaceLoop) Run() {
	var tick <-chan time.Time
	if l.realtime {
		ticker := time.NewTicker(time.Second / time.Duration(l.tickRate))
		defer ticker.Stop()
		tick = ticker.C
	}

	log.Printf("Race loop started at %d ticks/second (race %s)", l.tickRate, l.scene.ID())

	for !l.done() {
		if tick != nil {
			select {
			case <-l.stopChan:
				log.Println("Race loop stopped")
				return
			case <-tick:
			}
		} else {
			select {
			case <-l.stopChan:
				log.Println("Race loop stopped")
				return
			default:
			}
		}
		l.tick()
	}
}

func (l *RaceLoop) Stop() {
	close(l.stopChan)
}

// Frames returns how many ticks have run.
func (l *RaceLoop) Frames() int {
	return l.frames
}

func (l *RaceLoop) done() bool {
	if l.scene.State().Terminal() {
		return true
	}
	return l.maxFrames > 0 && l.frames >= l.maxFrames
}

func (l *RaceLoop) tick() {
	l.scene.Update(1 / float64(l.tickRate))
	l.frames++
}
