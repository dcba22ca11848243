package worker

import (
	"context"
	"log/slog"
	"testing"

	"storefront/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func TestNewEmbeddedServer_IdleUnlessEnabled(t *testing.T) {
	cfg := &config.Config{Worker: &config.WorkerConfig{Port: 0, Embedded: false}}

	srv, err := NewEmbeddedServer(ServerParams{
		Lc:     fxtest.NewLifecycle(t),
		Cfg:    cfg,
		Logger: slog.Default(),
	})

	require.NoError(t, err)
	assert.IsType(t, idleDelivery{}, srv)
	assert.NoError(t, srv.Serve(context.Background()))
}

func TestNewEmbeddedServer_Enabled(t *testing.T) {
	cfg := &config.Config{Worker: &config.WorkerConfig{Port: 8081, Embedded: true}}

	srv, err := NewEmbeddedServer(ServerParams{
		Lc:     fxtest.NewLifecycle(t),
		Cfg:    cfg,
		Logger: slog.Default(),
	})

	require.NoError(t, err)
	assert.IsType(t, &workerServer{}, srv)
}
