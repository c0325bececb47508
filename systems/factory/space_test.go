package factory

import (
	"testing"

	cfg "github.com/automoto/dragonboat-race/config"
)

func TestCreateLaneSpaceLeftOfOrigin(t *testing.T) {
	tests := []struct {
		name string
		lane cfg.LaneSetup
	}{
		{"straddles origin", cfg.LaneSetup{LeftX: -100, Width: 320}},
		{"fully negative", cfg.LaneSetup{LeftX: -400, Width: 320}},
		{"positive", cfg.LaneSetup{LeftX: 640, Width: 320}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if space := CreateLaneSpace(tt.lane); space == nil {
				t.Fatal("no space")
			}
		})
	}
}
