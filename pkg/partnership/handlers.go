// Copyright 2026 PairBudget Ltd.
// SPDX-License-Identifier: AGPL-3.0

package partnership

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	chi "github.com/go-chi/chi/v5"

	"github.com/pairbudget/partner-service/internal/logging"
	"github.com/pairbudget/partner-service/internal/monitoring"
	"github.com/pairbudget/partner-service/internal/tracing"
	"github.com/pairbudget/partner-service/pkg/authentication"
)

type API struct {
	service ServiceInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewAPI(
	service ServiceInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *API {
	return &API{
		service: service,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Get("/api/v0/partnership", a.getPartnership)
	mux.Get("/api/v0/partnership/state", a.getState)
	mux.Delete("/api/v0/partnership/{id}", a.endPartnership)
	mux.Post("/api/v0/partnership/invitations", a.sendInvitation)
	mux.Get("/api/v0/partnership/invitations", a.listPendingInvitations)
	mux.Get("/api/v0/partnership/invitations/{token}", a.getInvitation)
	mux.Post("/api/v0/partnership/invitations/{token}/accept", a.acceptInvitation)
	mux.Post("/api/v0/partnership/invitations/{token}/revoke", a.revokeInvitation)
}

func (a *API) sendInvitation(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "partnership.API.sendInvitation")
	defer span.End()

	userID, ok := authentication.GetUserID(ctx)
	if !ok {
		a.errorResponse(w, http.StatusUnauthorized, "unauthenticated")
		return
	}

	var req SendInvitationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.errorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}

	inv, link, err := a.service.SendInvitation(ctx, userID, req.Email)
	if err != nil {
		a.serviceErrorResponse(w, err, "failed to send invitation")
		return
	}

	a.jsonResponse(w, http.StatusCreated, &SendInvitationResponse{
		Invitation: mapInvitation(inv, time.Now().UTC(), true),
		Link:       link,
	})
}

func (a *API) listPendingInvitations(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "partnership.API.listPendingInvitations")
	defer span.End()

	userID, ok := authentication.GetUserID(ctx)
	if !ok {
		a.errorResponse(w, http.StatusUnauthorized, "unauthenticated")
		return
	}

	invitations, err := a.service.ListPendingInvitations(ctx, userID)
	if err != nil {
		a.serviceErrorResponse(w, err, "failed to list invitations")
		return
	}

	now := time.Now().UTC()
	resp := &ListInvitationsResponse{Invitations: make([]*InvitationResponse, 0, len(invitations))}
	for _, inv := range invitations {
		resp.Invitations = append(resp.Invitations, mapInvitation(inv, now, true))
	}

	a.jsonResponse(w, http.StatusOK, resp)
}

func (a *API) getInvitation(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "partnership.API.getInvitation")
	defer span.End()

	if _, ok := authentication.GetUserID(ctx); !ok {
		a.errorResponse(w, http.StatusUnauthorized, "unauthenticated")
		return
	}

	inv, err := a.service.GetInvitationDetails(ctx, chi.URLParam(r, "token"))
	if err != nil {
		a.serviceErrorResponse(w, err, "failed to get invitation")
		return
	}

	a.jsonResponse(w, http.StatusOK, mapInvitation(inv, time.Now().UTC(), false))
}

func (a *API) acceptInvitation(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "partnership.API.acceptInvitation")
	defer span.End()

	userID, ok := authentication.GetUserID(ctx)
	if !ok {
		a.errorResponse(w, http.StatusUnauthorized, "unauthenticated")
		return
	}

	p, err := a.service.AcceptInvitation(ctx, chi.URLParam(r, "token"), userID)
	if err != nil {
		a.serviceErrorResponse(w, err, "failed to accept invitation")
		return
	}

	a.jsonResponse(w, http.StatusOK, &GetPartnershipResponse{Partnership: mapPartnership(p)})
}

func (a *API) revokeInvitation(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "partnership.API.revokeInvitation")
	defer span.End()

	userID, ok := authentication.GetUserID(ctx)
	if !ok {
		a.errorResponse(w, http.StatusUnauthorized, "unauthenticated")
		return
	}

	if err := a.service.RevokeInvitation(ctx, chi.URLParam(r, "token"), userID); err != nil {
		a.serviceErrorResponse(w, err, "failed to revoke invitation")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (a *API) getPartnership(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "partnership.API.getPartnership")
	defer span.End()

	userID, ok := authentication.GetUserID(ctx)
	if !ok {
		a.errorResponse(w, http.StatusUnauthorized, "unauthenticated")
		return
	}

	p, err := a.service.GetPartnership(ctx, userID)
	if err != nil {
		a.serviceErrorResponse(w, err, "failed to get partnership")
		return
	}

	// No partnership is a valid result: partnership is null, status 200.
	resp := &GetPartnershipResponse{}
	if p != nil {
		resp.Partnership = mapPartnership(p)
	}

	a.jsonResponse(w, http.StatusOK, resp)
}

func (a *API) getState(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "partnership.API.getState")
	defer span.End()

	userID, ok := authentication.GetUserID(ctx)
	if !ok {
		a.errorResponse(w, http.StatusUnauthorized, "unauthenticated")
		return
	}

	state, err := a.service.GetPartnershipState(ctx, userID)
	if err != nil {
		a.serviceErrorResponse(w, err, "failed to get partnership state")
		return
	}

	resp := &StateResponse{Status: state.Status}
	if state.Partnership != nil {
		resp.Partnership = mapPartnership(state.Partnership)
	}
	if state.Partner != nil {
		resp.Partner = &ProfileResponse{
			UserID: state.Partner.UserID,
			Email:  state.Partner.Email,
			Name:   state.Partner.Name,
		}
	}
	now := time.Now().UTC()
	for _, inv := range state.PendingInvitations {
		resp.PendingInvitations = append(resp.PendingInvitations, mapInvitation(inv, now, true))
	}

	a.jsonResponse(w, http.StatusOK, resp)
}

func (a *API) endPartnership(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "partnership.API.endPartnership")
	defer span.End()

	userID, ok := authentication.GetUserID(ctx)
	if !ok {
		a.errorResponse(w, http.StatusUnauthorized, "unauthenticated")
		return
	}

	if err := a.service.EndPartnership(ctx, chi.URLParam(r, "id"), userID); err != nil {
		a.serviceErrorResponse(w, err, "failed to end partnership")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// serviceErrorResponse maps the service error taxonomy onto HTTP statuses.
// Unknown errors are logged and reported as 500 with a generic message.
func (a *API) serviceErrorResponse(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, ErrInvalidEmail),
		errors.Is(err, ErrSelfInvite),
		errors.Is(err, ErrDisplayNameRequired):
		a.errorResponse(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrNotMember):
		a.errorResponse(w, http.StatusForbidden, err.Error())
	case errors.Is(err, ErrInvitationNotFound),
		errors.Is(err, ErrPartnershipNotFound):
		a.errorResponse(w, http.StatusNotFound, err.Error())
	case errors.Is(err, ErrAlreadyPartnered),
		errors.Is(err, ErrInviteePartnered),
		errors.Is(err, ErrInviterPartnered),
		errors.Is(err, ErrDuplicateInvitation),
		errors.Is(err, ErrInvitationExpired),
		errors.Is(err, ErrInvitationConsumed),
		errors.Is(err, ErrInvitationRevoked),
		errors.Is(err, ErrEmailMismatch):
		a.errorResponse(w, http.StatusConflict, err.Error())
	default:
		a.logger.Errorf("%s: %v", fallback, err)
		a.errorResponse(w, http.StatusInternalServerError, fallback)
	}
}

func (a *API) errorResponse(w http.ResponseWriter, status int, message string) {
	a.jsonResponse(w, status, &ErrorResponse{Status: status, Message: message})
}

func (a *API) jsonResponse(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		a.logger.Errorf("failed to encode response: %v", err)
	}
}
