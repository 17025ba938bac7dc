package main

import (
	"flag"
	"io"
	"testing"

	"github.com/annel0/blocksandbox/internal/world"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseSeed(t *testing.T, args ...string) (*flag.FlagSet, int64) {
	t.Helper()
	fs := flag.NewFlagSet("worldmap", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	seed := fs.Int64("seed", 0, "")
	require.NoError(t, fs.Parse(args))
	return fs, *seed
}

func TestApplySeed(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want int64
	}{
		{"без флага остаётся сид конфигурации", nil, 777},
		{"явный ноль", []string{"-seed", "0"}, 0},
		{"явный сид", []string{"-seed=42"}, 42},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := world.DefaultGenConfig()
			cfg.Seed = 777

			fs, seed := parseSeed(t, tt.args...)
			applySeed(fs, &cfg, seed)
			assert.Equal(t, tt.want, cfg.Seed)
		})
	}
}
