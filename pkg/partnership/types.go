// Copyright 2026 PairBudget Ltd.
// SPDX-License-Identifier: AGPL-3.0

package partnership

import (
	"time"

	"github.com/pairbudget/partner-service/internal/types"
)

type SendInvitationRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type InvitationResponse struct {
	ID           string    `json:"id"`
	Token        string    `json:"token,omitempty"`
	InviterName  string    `json:"inviter_name"`
	InviterEmail string    `json:"inviter_email"`
	InviteeEmail string    `json:"invitee_email"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	ExpiresAt    time.Time `json:"expires_at"`
	IsExpired    bool      `json:"is_expired"`
}

type SendInvitationResponse struct {
	Invitation *InvitationResponse `json:"invitation"`
	Link       string              `json:"link"`
}

type ListInvitationsResponse struct {
	Invitations []*InvitationResponse `json:"invitations"`
}

type PartnershipResponse struct {
	ID        string    `json:"id"`
	User1ID   string    `json:"user1_id"`
	User2ID   string    `json:"user2_id"`
	CreatedAt time.Time `json:"created_at"`
}

type GetPartnershipResponse struct {
	Partnership *PartnershipResponse `json:"partnership"`
}

type ProfileResponse struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
}

type StateResponse struct {
	Status             string                `json:"status"`
	Partnership        *PartnershipResponse  `json:"partnership,omitempty"`
	Partner            *ProfileResponse      `json:"partner,omitempty"`
	PendingInvitations []*InvitationResponse `json:"pending_invitations,omitempty"`
}

type ErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

func mapInvitation(inv *types.Invitation, now time.Time, includeToken bool) *InvitationResponse {
	r := &InvitationResponse{
		ID:           inv.ID,
		InviterName:  inv.InviterName,
		InviterEmail: inv.InviterEmail,
		InviteeEmail: inv.InviteeEmail,
		Status:       inv.Status,
		CreatedAt:    inv.CreatedAt,
		ExpiresAt:    inv.ExpiresAt,
		IsExpired:    inv.IsExpired(now),
	}
	// The token is a capability; it is only echoed where the caller is
	// entitled to act on it (own pending list, send response).
	if includeToken {
		r.Token = inv.Token
	}
	return r
}

func mapPartnership(p *types.Partnership) *PartnershipResponse {
	return &PartnershipResponse{
		ID:        p.ID,
		User1ID:   p.User1ID,
		User2ID:   p.User2ID,
		CreatedAt: p.CreatedAt,
	}
}
