package httpserver

import (
	"context"
	"net/http"
	"time"
)

const _readinessTimeout = 2 * time.Second

// ReadinessCheck reports whether one dependency is reachable.
type ReadinessCheck func(ctx context.Context) error

func NewReadinessController(checks map[string]ReadinessCheck) *ReadinessController {
	return &ReadinessController{
		checks: checks,
	}
}

var _ Controller = &ReadinessController{}

// ReadinessController exposes /readyz, answering 503 while any registered
// dependency check fails. Liveness stays on /healthz, which never looks at
// dependencies.
type ReadinessController struct {
	checks map[string]ReadinessCheck
}

func (c *ReadinessController) AddRoutes(router *http.ServeMux) {
	router.Handle("GET /readyz", c.getReadyz())
}

func (c *ReadinessController) getReadyz() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), _readinessTimeout)
		defer cancel()

		status := http.StatusOK
		results := make(map[string]string, len(c.checks))
		for name, check := range c.checks {
			if err := check(ctx); err != nil {
				status = http.StatusServiceUnavailable
				results[name] = err.Error()
				continue
			}
			results[name] = "ok"
		}

		ReplyJSONResponse(w, status, results)
	}
}
