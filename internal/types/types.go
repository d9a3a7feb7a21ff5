// Copyright 2026 PairBudget Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"strings"
	"time"
)

// Invitation statuses. Expiry is intentionally NOT a status: an invitation can
// sit at StatusPending with its expires_at already in the past, so actionability
// must always be derived with IsExpired at read time.
const (
	StatusPending  = "pending"
	StatusAccepted = "accepted"
	StatusRevoked  = "revoked"
)

type Invitation struct {
	ID           string    `db:"id"`
	Token        string    `db:"token"`
	InviterID    string    `db:"inviter_id"`
	InviterName  string    `db:"inviter_name"`
	InviterEmail string    `db:"inviter_email"`
	InviteeEmail string    `db:"invitee_email"`
	Status       string    `db:"status"`
	CreatedAt    time.Time `db:"created_at"`
	ExpiresAt    time.Time `db:"expires_at"`
}

// IsExpired reports whether the invitation's lifetime has elapsed at the given
// instant, independent of the stored status.
func (i *Invitation) IsExpired(now time.Time) bool {
	return !now.Before(i.ExpiresAt)
}

// IsActionable reports whether the invitation can still be accepted: pending
// status and not expired.
func (i *Invitation) IsActionable(now time.Time) bool {
	return i.Status == StatusPending && !i.IsExpired(now)
}

// MatchesInviteeEmail compares the target email case-insensitively, which is
// the comparison key for acceptance.
func (i *Invitation) MatchesInviteeEmail(email string) bool {
	return strings.EqualFold(i.InviteeEmail, email)
}

type Partnership struct {
	ID        string    `db:"id"`
	User1ID   string    `db:"user1_id"`
	User2ID   string    `db:"user2_id"`
	CreatedAt time.Time `db:"created_at"`
}

// Includes reports whether the given user is one of the two linked members.
func (p *Partnership) Includes(userID string) bool {
	return p.User1ID == userID || p.User2ID == userID
}

// PartnerOf returns the other member's user ID, or an empty string if the
// given user is not a member.
func (p *Partnership) PartnerOf(userID string) string {
	switch userID {
	case p.User1ID:
		return p.User2ID
	case p.User2ID:
		return p.User1ID
	}
	return ""
}

// Profile is the subset of an identity the protocol reads: the id, the email
// used as the invitation comparison key, and the display name required before
// sending invitations.
type Profile struct {
	UserID string
	Email  string
	Name   string
}
