// Package course builds race configurations from Tiled TMX maps.
//
// A course map has a "Lanes" object group with one rectangle per lane (x and
// width give the lane bounds; properties boatType, player and bot pick the
// participant) and an optional "Race" object group whose first object carries
// finishDistance, countdown, spawnInterval, spawnJitter and maxObstacles.
package course

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	cfg "github.com/automoto/dragonboat-race/config"
	"github.com/lafriks/go-tiled"
)

const (
	lanesGroup = "Lanes"
	raceGroup  = "Race"
)

// LoadCourse parses a TMX file and returns the race configuration it
// describes. It takes an fs.FS so callers can pass embed.FS or os.DirFS.
// The result is validated.
func LoadCourse(fsys fs.FS, tmxPath string) (cfg.RaceConfig, error) {
	courseMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return cfg.RaceConfig{}, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	rc := cfg.DefaultRace()
	rc.Lanes = nil

	for _, og := range courseMap.ObjectGroups {
		switch og.Name {
		case lanesGroup:
			for _, o := range og.Objects {
				lane, err := parseLane(o)
				if err != nil {
					return cfg.RaceConfig{}, fmt.Errorf("%s: %w", tmxPath, err)
				}
				rc.Lanes = append(rc.Lanes, lane)
			}
		case raceGroup:
			if len(og.Objects) > 0 {
				applyRaceProperties(&rc, og.Objects[0])
			}
		}
	}

	// Lane order on screen is left to right regardless of object order
	sort.SliceStable(rc.Lanes, func(i, j int) bool {
		return rc.Lanes[i].LeftX < rc.Lanes[j].LeftX
	})

	if err := rc.WithDefaults().Validate(); err != nil {
		return cfg.RaceConfig{}, fmt.Errorf("course %s: %w", tmxPath, err)
	}
	return rc, nil
}

func parseLane(o *tiled.Object) (cfg.LaneSetup, error) {
	boat, ok := cfg.ParseBoatType(o.Properties.GetString("boatType"))
	if !ok {
		return cfg.LaneSetup{}, fmt.Errorf("lane %q boat type %q: %w", o.Name, o.Properties.GetString("boatType"), cfg.ErrUnknownBoatType)
	}
	bot, ok := cfg.ParseBotDifficulty(strings.ToLower(o.Properties.GetString("bot")))
	if !ok {
		return cfg.LaneSetup{}, fmt.Errorf("lane %q: unknown bot difficulty %q", o.Name, o.Properties.GetString("bot"))
	}
	return cfg.LaneSetup{
		LeftX:    o.X,
		Width:    o.Width,
		BoatType: boat,
		Player:   o.Properties.GetBool("player"),
		Bot:      bot,
	}, nil
}

func applyRaceProperties(rc *cfg.RaceConfig, o *tiled.Object) {
	if v := o.Properties.GetFloat("finishDistance"); v != 0 {
		rc.FinishDistance = v
	}
	// A course without a countdown property keeps the default
	if o.Properties.GetString("countdown") != "" {
		rc.CountdownSeconds = o.Properties.GetFloat("countdown")
	}
	rc.SpawnInterval = o.Properties.GetFloat("spawnInterval")
	if o.Properties.GetString("spawnJitter") != "" {
		rc.SpawnJitter = o.Properties.GetFloat("spawnJitter")
	}
	rc.MaxObstacles = o.Properties.GetInt("maxObstacles")
}

// LoadAllCourses discovers all .tmx files in dir within fsys, loads each, and
// returns a map keyed by stem name plus a sorted list of names.
func LoadAllCourses(fsys fs.FS, dir string) (map[string]cfg.RaceConfig, []string, error) {
	pattern := dir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", dir)
	}

	courses := make(map[string]cfg.RaceConfig, len(matches))
	names := make([]string, 0, len(matches))

	for _, path := range matches {
		rc, err := LoadCourse(fsys, path)
		if err != nil {
			return nil, nil, err
		}
		stem := strings.TrimSuffix(filepath.Base(path), ".tmx")
		courses[stem] = rc
		names = append(names, stem)
	}

	sort.Strings(names)
	return courses, names, nil
}
