//go:build !integration

package app

import (
	"testing"

	"github.com/guttosm/drone-fulfillment/config"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestInitializeLogger(t *testing.T) {
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.InfoLevel) })

	tests := []struct {
		name string
		cfg  config.LogConfig
		want zerolog.Level
	}{
		{name: "empty level defaults to info", cfg: config.LogConfig{}, want: zerolog.InfoLevel},
		{name: "debug", cfg: config.LogConfig{Level: "debug"}, want: zerolog.DebugLevel},
		{name: "pretty warn", cfg: config.LogConfig{Level: "warn", Pretty: true}, want: zerolog.WarnLevel},
		{name: "error", cfg: config.LogConfig{Level: "error"}, want: zerolog.ErrorLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotPanics(t, func() {
				InitializeLogger(tt.cfg)
			})
			assert.Equal(t, tt.want, zerolog.GlobalLevel())
		})
	}
}
