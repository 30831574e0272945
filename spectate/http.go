package spectate

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"time"

	"github.com/pkg/errors"

	"github.com/lixenwraith/munchies/status"
)

const shutdownTimeout = 3 * time.Second

// NewHandler routes the websocket feed and the health endpoints
func NewHandler(hub *Hub, reg *status.Registry) http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/ws", hub)

	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		w.Write([]byte("ok"))
	})

	mux.HandleFunc("/diagnostics", func(w http.ResponseWriter, r *http.Request) {
		payload := struct {
			Status     string         `json:"status"`
			ServerTime int64          `json:"serverTime"`
			Clients    int            `json:"clients"`
			Metrics    map[string]any `json:"metrics"`
		}{
			Status:     "ok",
			ServerTime: time.Now().UnixMilli(),
			Clients:    hub.ClientCount(),
			Metrics:    reg.Snapshot(),
		}

		data, err := json.Marshal(payload)
		if err != nil {
			http.Error(w, "failed to encode", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write(data)
	})

	return mux
}

// Serve listens on addr until ctx ends, then disconnects clients and shuts down
func Serve(ctx context.Context, addr string, hub *Hub, handler http.Handler) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return errors.Wrapf(err, "listen %s", addr)
	}
	srv := &http.Server{Handler: handler, ReadHeaderTimeout: 5 * time.Second}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Serve(ln) }()
	hub.opts.Logger.Info("spectator server listening", "addr", ln.Addr().String())

	select {
	case err := <-errCh:
		return errors.Wrap(err, "spectator server")
	case <-ctx.Done():
	}

	hub.Close()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return errors.Wrap(err, "spectator shutdown")
	}
	return nil
}
