// Copyright 2026 PairBudget Ltd.
// SPDX-License-Identifier: AGPL-3.0

package web

import (
	"net/http"

	chi "github.com/go-chi/chi/v5"
	middleware "github.com/go-chi/chi/v5/middleware"

	"github.com/pairbudget/partner-service/internal/db"
	"github.com/pairbudget/partner-service/internal/identity"
	"github.com/pairbudget/partner-service/internal/logging"
	"github.com/pairbudget/partner-service/internal/monitoring"
	"github.com/pairbudget/partner-service/internal/tracing"
	"github.com/pairbudget/partner-service/pkg/authentication"
	"github.com/pairbudget/partner-service/pkg/metrics"
	"github.com/pairbudget/partner-service/pkg/partnership"
	"github.com/pairbudget/partner-service/pkg/resolution"
	"github.com/pairbudget/partner-service/pkg/status"
)

func NewRouter(
	partnershipAPI *partnership.API,
	resolutionAPI *resolution.API,
	identityMiddleware *identity.Middleware,
	tokenVerifier authentication.TokenVerifierInterface,
	dbClient db.DBClientInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) http.Handler {
	router := chi.NewMux()

	middlewares := make(chi.Middlewares, 0)
	middlewares = append(
		middlewares,
		middleware.RequestID,
		monitoring.NewMiddleware(monitor, logger).ResponseTime(),
		middlewareCORS([]string{"*"}),
	)

	router.Use(middlewares...)

	// Unauthenticated surface: probes and metrics.
	metrics.NewAPI(logger).RegisterEndpoints(router)
	status.NewAPI(dbClient, tracer, monitor, logger).RegisterEndpoints(router)

	// The invitation landing endpoint is browser-facing: a visitor following
	// an emailed link carries a session header at most, never a bearer token,
	// and a missing session must answer with a login redirect rather than a
	// 401. It sits behind the identity middleware only, outside the JWT gate.
	router.Group(func(r chi.Router) {
		r.Use(identityMiddleware.HTTPMiddleware)
		resolutionAPI.RegisterEndpoints(r)
	})

	// The API runs behind identity resolution, optional JWT verification and
	// the per-request transaction.
	protected := chi.NewMux()
	protected.Use(identityMiddleware.HTTPMiddleware)
	if tokenVerifier != nil {
		protected.Use(authentication.NewMiddleware(tokenVerifier, tracer, monitor, logger).Authenticate())
	}
	protected.Use(db.TransactionMiddleware(dbClient, logger))

	partnershipAPI.RegisterEndpoints(protected)

	router.Mount("/", protected)

	return tracing.NewMiddleware(monitor, logger).OpenTelemetry(router)
}
