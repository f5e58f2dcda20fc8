package hc

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/pandodao/carbon-wallet/core"
)

// Pinger reports whether a dependency is reachable.
type Pinger interface {
	PingContext(ctx context.Context) error
}

func Handler(version string, deps ...Pinger) http.Handler {
	t := time.Now()
	fn := func(w http.ResponseWriter, r *http.Request) {
		status, state := http.StatusOK, "ok"
		for _, dep := range deps {
			if err := dep.PingContext(r.Context()); err != nil {
				status, state = http.StatusServiceUnavailable, err.Error()
				break
			}
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"app":     core.AppName,
			"version": version,
			"uptime":  time.Since(t).String(),
			"state":   state,
		})
	}

	return http.HandlerFunc(fn)
}
