// internal/server/diag.go
//
// Userdesk – local diagnostics endpoint.
//
// Context
//   Console mode runs long enough that operators want to see what the client
//   is doing: request counters, latencies, submit outcomes.  Diag exposes
//   the Prometheus registry on /metrics and a trivial /healthz, listening on
//   the configured local address.  One-shot subcommands skip it entirely.
//
//------------------------------------------------------------------------------

package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// Diag is the diagnostics HTTP server.  Create with NewDiag, run with Run,
// stop by cancelling the context passed to Run.
type Diag struct {
	srv *http.Server
	log *zap.SugaredLogger
}

// NewDiag builds the diagnostics server on addr.
func NewDiag(addr string, log *zap.SugaredLogger) *Diag {
	if log == nil {
		log = zap.S()
	}

	r := chi.NewRouter()
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok\n"))
	})

	return &Diag{srv: New(addr, r), log: log}
}

// Run serves until ctx is cancelled, then shuts down gracefully.  It blocks,
// which makes it a natural errgroup.Go body.
func (d *Diag) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		d.log.Infow("diagnostics server listening", "addr", d.srv.Addr)
		errCh <- d.srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return d.srv.Shutdown(shutCtx)
	}
}
