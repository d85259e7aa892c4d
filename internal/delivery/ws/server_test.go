package ws

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"printdesk/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServer_RealtimeNotConfigured(t *testing.T) {
	tests := []struct {
		name string
		cfg  *config.Config
	}{
		{name: "no realtime section", cfg: &config.Config{}},
		{name: "realtime section without port", cfg: &config.Config{Realtime: &config.RealtimeConfig{}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, err := NewServer(ServerParams{
				Config: tt.cfg,
				Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
				Hub:    newTestHub(),
			})
			require.NoError(t, err)
			require.NotNil(t, srv)

			// The disabled gateway serves nothing and returns immediately.
			assert.NoError(t, srv.Serve(context.Background()))
		})
	}
}
