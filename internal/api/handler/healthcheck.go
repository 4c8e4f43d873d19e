package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

const probeTimeout = 2 * time.Second

// HealthProbe verifica uma dependência externa (postgres, redis)
type HealthProbe struct {
	Name  string
	Check func(ctx context.Context) error
}

type healthResponse struct {
	Status string            `json:"status"`
	Time   string            `json:"time"`
	Checks map[string]string `json:"checks,omitempty"`
}

// HealthcheckHandler responde 503 quando alguma dependência não responde dentro de probeTimeout
func HealthcheckHandler(probes ...HealthProbe) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), probeTimeout)
		defer cancel()

		results := make([]string, len(probes))
		var g errgroup.Group
		for i, probe := range probes {
			g.Go(func() error {
				results[i] = "ok"
				if err := probe.Check(ctx); err != nil {
					results[i] = err.Error()
					logrus.WithFields(logrus.Fields{
						"dependency": probe.Name,
						"error":      err.Error(),
					}).Warn("healthcheck: dependência indisponível")
				}
				return nil
			})
		}
		_ = g.Wait()

		resp := healthResponse{
			Status: "ok",
			Time:   time.Now().UTC().Format(time.RFC3339),
		}
		status := http.StatusOK

		if len(probes) > 0 {
			resp.Checks = make(map[string]string, len(probes))
			for i, probe := range probes {
				resp.Checks[probe.Name] = results[i]
				if results[i] != "ok" {
					resp.Status = "degraded"
					status = http.StatusServiceUnavailable
				}
			}
		}

		writeJSON(w, status, resp)
	})
}
