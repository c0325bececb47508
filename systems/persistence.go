package systems

import (
	"fmt"
	"log"

	"github.com/automoto/dragonboat-race/components"
	cfg "github.com/automoto/dragonboat-race/config"
	"github.com/quasilyte/gdata"
	"github.com/vmihailenco/msgpack/v5"
	"github.com/yohamta/donburi/ecs"
)

const (
	lastRaceKey  = "last_race"
	bestTimesKey = "best_times"
)

// ItemStore is the slice of gdata.Manager used for results storage.
type ItemStore interface {
	SaveItem(itemKey string, data []byte) error
	LoadItem(itemKey string) ([]byte, error)
}

// RaceRecord is the stored summary of a finished race
type RaceRecord struct {
	RaceID     string                  `msgpack:"raceId"`
	State      cfg.RaceStateID         `msgpack:"state"`
	Elapsed    float64                 `msgpack:"elapsed"`
	Frames     int                     `msgpack:"frames"`
	WinnerLane int                     `msgpack:"winnerLane"` // -1 when nobody finished
	Results    []components.BoatResult `msgpack:"results"`
}

// BestTimes maps a boat class name to its fastest recorded finish.
type BestTimes map[string]float64

// ResultsStore saves race records and keeps best times per boat class
type ResultsStore struct {
	items ItemStore
}

// OpenResultsStore opens the gdata store for the given application name.
func OpenResultsStore(appName string) (*ResultsStore, error) {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return nil, fmt.Errorf("open results store: %w", err)
	}
	return NewResultsStore(m), nil
}

// NewResultsStore wraps any item store.
func NewResultsStore(items ItemStore) *ResultsStore {
	return &ResultsStore{items: items}
}

// NewRaceRecord captures the current race state as a record.
func NewRaceRecord(e *ecs.ECS) RaceRecord {
	race := GetRace(e)
	if race == nil {
		return RaceRecord{WinnerLane: -1}
	}

	rec := RaceRecord{
		RaceID:     race.ID,
		State:      race.State,
		Elapsed:    race.Elapsed,
		Frames:     race.Frame,
		WinnerLane: -1,
		Results:    Results(e),
	}
	for _, r := range rec.Results {
		if r.Winner {
			rec.WinnerLane = r.Lane
		}
	}
	return rec
}

// SaveRace stores the record as the last race and folds finishers into the
// best times.
func (s *ResultsStore) SaveRace(rec RaceRecord) error {
	data, err := msgpack.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encode race %s: %w", rec.RaceID, err)
	}
	if err := s.items.SaveItem(lastRaceKey, data); err != nil {
		return fmt.Errorf("save race %s: %w", rec.RaceID, err)
	}

	best, err := s.LoadBestTimes()
	if err != nil {
		log.Printf("Warning: Could not load best times, starting fresh: %v", err)
		best = BestTimes{}
	}
	if !best.Merge(rec) {
		return nil
	}

	data, err = msgpack.Marshal(best)
	if err != nil {
		return fmt.Errorf("encode best times: %w", err)
	}
	if err := s.items.SaveItem(bestTimesKey, data); err != nil {
		return fmt.Errorf("save best times: %w", err)
	}
	return nil
}

// LoadLastRace returns the most recent record, or nil if none was saved.
func (s *ResultsStore) LoadLastRace() (*RaceRecord, error) {
	data, err := s.items.LoadItem(lastRaceKey)
	if err != nil {
		return nil, fmt.Errorf("load last race: %w", err)
	}
	if data == nil {
		return nil, nil
	}

	var rec RaceRecord
	if err := msgpack.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("decode last race: %w", err)
	}
	return &rec, nil
}

// LoadBestTimes returns the stored best times; empty when nothing was saved.
func (s *ResultsStore) LoadBestTimes() (BestTimes, error) {
	data, err := s.items.LoadItem(bestTimesKey)
	if err != nil {
		return nil, fmt.Errorf("load best times: %w", err)
	}
	best := BestTimes{}
	if data == nil {
		return best, nil
	}
	if err := msgpack.Unmarshal(data, &best); err != nil {
		return nil, fmt.Errorf("decode best times: %w", err)
	}
	return best, nil
}

// Merge records every finisher of rec that beats the stored time for its
// boat class. Returns true if anything changed.
func (b BestTimes) Merge(rec RaceRecord) bool {
	changed := false
	for _, r := range rec.Results {
		if !r.Finished {
			continue
		}
		key := r.BoatType.String()
		if prev, ok := b[key]; ok && prev <= r.Time {
			continue
		}
		b[key] = r.Time
		changed = true
	}
	return changed
}
