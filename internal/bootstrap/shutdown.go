package bootstrap

import (
	"context"
	"log/slog"

	"github.com/Domje/Arc-Looterputer/internal/server"
	"github.com/Domje/Arc-Looterputer/internal/sse"
	"github.com/Domje/Arc-Looterputer/internal/storage"
)

// ShutdownComponents holds all components that need graceful shutdown.
type ShutdownComponents struct {
	Server  *server.Server
	Hub     *sse.Hub
	Storage storage.Store
}

// GracefulShutdown stops the HTTP server first so no new requests arrive,
// then the SSE hub, then closes storage. Errors are logged and do not stop
// the sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	if components.Server != nil {
		if err := components.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if components.Hub != nil {
		components.Hub.Stop()
	}

	if components.Storage != nil {
		if err := components.Storage.Close(); err != nil {
			slog.Error(LogMsgStorageCloseFailed, "error", err)
		}
	}

	slog.Info(LogMsgServerStopped)
}
