// Copyright 2026 PairBudget Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package resolution implements the invitation resolution flow: the decision
// taken when a user follows an invitation link. The flow is a small state
// machine over (token presence, session presence, invitation state) whose
// every failure path degrades to a redirect to the partnership screen, which
// independently re-derives the correct terminal state. No outcome here is a
// dead end.
package resolution

import (
	"context"
	"time"

	"github.com/pairbudget/partner-service/internal/logging"
	"github.com/pairbudget/partner-service/internal/monitoring"
	"github.com/pairbudget/partner-service/internal/tracing"
	"github.com/pairbudget/partner-service/internal/types"
)

// Identity is the authenticated session injected into the flow. A nil
// identity means no session.
type Identity struct {
	UserID string
	Email  string
}

// Kind tags the navigational outcome of the flow.
type Kind string

const (
	KindRedirectToLogin       Kind = "redirect_to_login"
	KindRedirectToPartnership Kind = "redirect_to_partnership"
	KindShowSuccess           Kind = "show_success"
)

// Outcome reasons. The fail-open policy makes every redirect land on the same
// screen, but the reason is kept machine-readable for logging and for clients
// that want to distinguish an invalid link from a transient fault.
const (
	ReasonNoToken       = "no_token"
	ReasonNoSession     = "no_session"
	ReasonLookupFailed  = "lookup_failed"
	ReasonNotActionable = "not_actionable"
	ReasonEmailMismatch = "email_mismatch"
	ReasonAcceptFailed  = "accept_failed"
)

type Outcome struct {
	Kind        Kind
	Reason      string
	Partnership *types.Partnership
}

type Resolver struct {
	service PartnershipServiceInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewResolver(
	service PartnershipServiceInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Resolver {
	return &Resolver{
		service: service,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

// Resolve evaluates the flow's branches in order; the first match wins.
//
//  1. no token: back to login with a return path to the partnership screen;
//  2. no session: same redirect, the token is not re-threaded through login
//     because the partnership screen lists pending invitations anyway;
//  3. with a session: preview the invitation, and only when it is pending,
//     unexpired and addressed to this session's email attempt acceptance
//     exactly once. Any failure redirects to the partnership screen.
func (r *Resolver) Resolve(ctx context.Context, token string, ident *Identity) Outcome {
	ctx, span := r.tracer.Start(ctx, "resolution.Resolver.Resolve")
	defer span.End()

	if token == "" {
		return Outcome{Kind: KindRedirectToLogin, Reason: ReasonNoToken}
	}

	if ident == nil || ident.UserID == "" {
		return Outcome{Kind: KindRedirectToLogin, Reason: ReasonNoSession}
	}

	inv, err := r.service.GetInvitationDetails(ctx, token)
	if err != nil {
		// Not found and server faults are treated alike: the partnership
		// screen re-derives the truth.
		r.logger.Debugf("invitation lookup failed: %v", err)
		return Outcome{Kind: KindRedirectToPartnership, Reason: ReasonLookupFailed}
	}

	// Expiry is evaluated against the clock here, never trusted from the
	// stored status: a pending invitation may already be expired.
	if inv.Status != types.StatusPending || inv.IsExpired(time.Now().UTC()) {
		return Outcome{Kind: KindRedirectToPartnership, Reason: ReasonNotActionable}
	}

	if !inv.MatchesInviteeEmail(ident.Email) {
		return Outcome{Kind: KindRedirectToPartnership, Reason: ReasonEmailMismatch}
	}

	p, err := r.service.AcceptInvitation(ctx, token, ident.UserID)
	if err != nil {
		// The invitation may have been consumed concurrently by another
		// session; the user can retry from the pending list.
		r.logger.Debugf("invitation acceptance failed: %v", err)
		return Outcome{Kind: KindRedirectToPartnership, Reason: ReasonAcceptFailed}
	}

	return Outcome{Kind: KindShowSuccess, Partnership: p}
}
