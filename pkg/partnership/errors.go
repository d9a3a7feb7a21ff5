// Copyright 2026 PairBudget Ltd.
// SPDX-License-Identifier: AGPL-3.0

package partnership

import "errors"

// Validation failures, rejected before any record is touched.
var (
	ErrInvalidEmail        = errors.New("invalid email address")
	ErrSelfInvite          = errors.New("cannot invite yourself")
	ErrDisplayNameRequired = errors.New("a display name is required before sending invitations")
)

// Invariant violations on the linking protocol.
var (
	ErrAlreadyPartnered    = errors.New("user already has an active partnership")
	ErrInviteePartnered    = errors.New("invited user already has an active partnership")
	ErrInviterPartnered    = errors.New("inviter already has an active partnership")
	ErrDuplicateInvitation = errors.New("a pending invitation for this pair already exists")
)

// Token actionability failures. These are deliberately distinct so the
// resolution flow can report why a link was not actionable, even though it
// resolves all of them the same way.
var (
	ErrInvitationNotFound = errors.New("invitation not found")
	ErrInvitationExpired  = errors.New("invitation has expired")
	ErrInvitationConsumed = errors.New("invitation has already been accepted")
	ErrInvitationRevoked  = errors.New("invitation has been revoked")
	ErrEmailMismatch      = errors.New("invitation was issued for a different email address")
)

var (
	ErrPartnershipNotFound = errors.New("partnership not found")
	ErrNotMember           = errors.New("user is not a member of this partnership")
)
