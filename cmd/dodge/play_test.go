package main

import (
	"strings"
	"testing"
)

func TestApplyGameFlags(t *testing.T) {
	tests := []struct {
		name       string
		difficulty string
		aggr       float64
		speed      float64
		wantErr    string
		wantAggr   float64
		wantSpeed  float64
	}{
		{name: "defaults", wantAggr: 1.0, wantSpeed: 5},
		{name: "overrides", aggr: 1.8, speed: 7, wantAggr: 1.8, wantSpeed: 7},
		{name: "preset then override", difficulty: "easy", speed: 9, wantAggr: 0.6, wantSpeed: 9},
		{name: "aggressiveness too low", aggr: 0.05, wantErr: "--aggressiveness"},
		{name: "aggressiveness too high", aggr: 2.5, wantErr: "--aggressiveness"},
		{name: "speed too low", speed: 2, wantErr: "--player-speed"},
		{name: "speed too high", speed: 11, wantErr: "--player-speed"},
		{name: "unknown preset", difficulty: "nightmare", wantErr: "unknown difficulty"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flagConfig = ""
			flagDifficulty = tt.difficulty
			flagAggressiveness = tt.aggr
			flagPlayerSpeed = tt.speed

			cfg, err := applyGameFlags()
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("err = %v, want it to mention %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("applyGameFlags: %v", err)
			}
			if cfg.Pursuer.Aggressiveness != tt.wantAggr || cfg.Player.Speed != tt.wantSpeed {
				t.Errorf("aggressiveness %g, speed %g; want %g, %g",
					cfg.Pursuer.Aggressiveness, cfg.Player.Speed, tt.wantAggr, tt.wantSpeed)
			}
		})
	}
}
