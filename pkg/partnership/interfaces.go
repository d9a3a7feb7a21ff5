// Copyright 2026 PairBudget Ltd.
// SPDX-License-Identifier: AGPL-3.0

package partnership

import (
	"context"

	"github.com/pairbudget/partner-service/internal/types"
)

type ServiceInterface interface {
	SendInvitation(ctx context.Context, inviterID, email string) (*types.Invitation, string, error)
	GetInvitationDetails(ctx context.Context, token string) (*types.Invitation, error)
	ListPendingInvitations(ctx context.Context, userID string) ([]*types.Invitation, error)
	AcceptInvitation(ctx context.Context, token, userID string) (*types.Partnership, error)
	RevokeInvitation(ctx context.Context, token, userID string) error
	GetPartnership(ctx context.Context, userID string) (*types.Partnership, error)
	GetPartnershipState(ctx context.Context, userID string) (*State, error)
	EndPartnership(ctx context.Context, partnershipID, userID string) error
}

type StorageInterface interface {
	CreateInvitation(ctx context.Context, inv *types.Invitation) (*types.Invitation, error)
	GetInvitationByToken(ctx context.Context, token string) (*types.Invitation, error)
	ListPendingInvitationsByEmail(ctx context.Context, email string) ([]*types.Invitation, error)
	PendingInvitationExists(ctx context.Context, inviterID, inviteeEmail string) (bool, error)
	ConsumeInvitation(ctx context.Context, token, status string) (*types.Invitation, error)
	CreatePartnership(ctx context.Context, user1ID, user2ID string) (*types.Partnership, error)
	GetPartnershipByID(ctx context.Context, id string) (*types.Partnership, error)
	GetPartnershipByUserID(ctx context.Context, userID string) (*types.Partnership, error)
	DeletePartnership(ctx context.Context, id string) error
}

type KratosClientInterface interface {
	GetIdentityIDByEmail(ctx context.Context, email string) (string, error)
	GetProfile(ctx context.Context, identityID string) (*types.Profile, error)
}

// TxManagerInterface runs a function inside a database transaction so that
// multi-statement mutations (accept, send) are atomic.
type TxManagerInterface interface {
	WithTx(ctx context.Context, fn func(context.Context) error) error
}
