package middleware

import (
	"context"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/nyayasetu/nyayasetu/internal/api/metrics"
	"github.com/nyayasetu/nyayasetu/internal/core/domain"
	"github.com/nyayasetu/nyayasetu/internal/core/ports"
)

// SessionOp is the guard key shared by login and register so the two never
// overlap.
const SessionOp = "session"

// SubmissionGuard refuses a request with domain.ErrSubmissionInFlight while
// another request holding op is still running.
func SubmissionGuard(g ports.SubmissionGuard, op string, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Request().Context()

			ok, err := g.TryAcquire(ctx, op)
			if err != nil {
				return err
			}
			if !ok {
				metrics.SubmissionsRejectedTotal.Inc()
				return domain.ErrSubmissionInFlight
			}
			defer func() {
				// The request may be cancelled by now; release regardless.
				if err := g.Release(context.WithoutCancel(ctx), op); err != nil {
					log.Warn().Err(err).Str("op", op).Msg("failed to release submission guard")
				}
			}()

			return next(c)
		}
	}
}
