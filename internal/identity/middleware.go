// Copyright 2026 PairBudget Ltd.
// SPDX-License-Identifier: AGPL-3.0

package identity

import (
	"net/http"

	"github.com/pairbudget/partner-service/internal/logging"
	"github.com/pairbudget/partner-service/internal/monitoring"
	"github.com/pairbudget/partner-service/internal/tracing"
	"github.com/pairbudget/partner-service/pkg/authentication"
)

// HeaderName is the header set by the identity-aware proxy in front of the
// service carrying the authenticated identity ID. An absent header means an
// unauthenticated request; endpoints that require a session reject it, the
// resolution flow redirects to login instead.
const HeaderName = "X-Kratos-Authenticated-Identity-Id"

type Middleware struct {
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewMiddleware(tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Middleware {
	return &Middleware{
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

func (m *Middleware) HTTPMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, span := m.tracer.Start(r.Context(), "identity.Middleware.HTTPMiddleware")
		defer span.End()

		if userID := r.Header.Get(HeaderName); userID != "" {
			ctx = authentication.WithUserID(ctx, userID)
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
