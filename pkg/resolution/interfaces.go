// Copyright 2026 PairBudget Ltd.
// SPDX-License-Identifier: AGPL-3.0

package resolution

import (
	"context"

	"github.com/pairbudget/partner-service/internal/types"
)

// PartnershipServiceInterface is the slice of the partnership service the
// resolution flow consumes.
type PartnershipServiceInterface interface {
	GetInvitationDetails(ctx context.Context, token string) (*types.Invitation, error)
	AcceptInvitation(ctx context.Context, token, userID string) (*types.Partnership, error)
}

// ProfileProviderInterface resolves the authenticated user's profile; the
// flow needs the session email for the invitee match.
type ProfileProviderInterface interface {
	GetProfile(ctx context.Context, identityID string) (*types.Profile, error)
}

type ResolverInterface interface {
	Resolve(ctx context.Context, token string, ident *Identity) Outcome
}
