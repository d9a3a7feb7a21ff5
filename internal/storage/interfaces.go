// Copyright 2026 PairBudget Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"

	"github.com/pairbudget/partner-service/internal/types"
)

type StorageInterface interface {
	CreateInvitation(ctx context.Context, inv *types.Invitation) (*types.Invitation, error)
	GetInvitationByToken(ctx context.Context, token string) (*types.Invitation, error)
	ListPendingInvitationsByEmail(ctx context.Context, email string) ([]*types.Invitation, error)
	PendingInvitationExists(ctx context.Context, inviterID, inviteeEmail string) (bool, error)
	// ConsumeInvitation flips a pending invitation to the given terminal status.
	// It returns ErrNotFound when the invitation is not pending anymore, which
	// is what makes token consumption single-shot.
	ConsumeInvitation(ctx context.Context, token, status string) (*types.Invitation, error)
	CreatePartnership(ctx context.Context, user1ID, user2ID string) (*types.Partnership, error)
	GetPartnershipByID(ctx context.Context, id string) (*types.Partnership, error)
	GetPartnershipByUserID(ctx context.Context, userID string) (*types.Partnership, error)
	DeletePartnership(ctx context.Context, id string) error
}
