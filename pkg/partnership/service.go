// Copyright 2026 PairBudget Ltd.
// SPDX-License-Identifier: AGPL-3.0

package partnership

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/pairbudget/partner-service/internal/logging"
	"github.com/pairbudget/partner-service/internal/monitoring"
	"github.com/pairbudget/partner-service/internal/storage"
	"github.com/pairbudget/partner-service/internal/tracing"
	"github.com/pairbudget/partner-service/internal/types"
)

// acceptPath is the landing path of the resolution flow; the emailed link is
// appBaseURL + acceptPath + "?token=...".
const acceptPath = "/partner/accept"

// State is the panel aggregate: exactly one of the three terminal states of
// the partnership screen.
type State struct {
	Status             string
	Partnership        *types.Partnership
	Partner            *types.Profile
	PendingInvitations []*types.Invitation
}

// Terminal state labels.
const (
	StateLinked             = "linked"
	StatePendingInvitations = "pending_invitations"
	StateUnlinked           = "unlinked"
)

type Service struct {
	storage            StorageInterface
	tx                 TxManagerInterface
	kratos             KratosClientInterface
	invitationLifetime time.Duration
	appBaseURL         string

	validate *validator.Validate

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	storage StorageInterface,
	tx TxManagerInterface,
	kratos KratosClientInterface,
	invitationLifetime time.Duration,
	appBaseURL string,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage:            storage,
		tx:                 tx,
		kratos:             kratos,
		invitationLifetime: invitationLifetime,
		appBaseURL:         strings.TrimSuffix(appBaseURL, "/"),
		validate:           validator.New(),
		tracer:             tracer,
		monitor:            monitor,
		logger:             logger,
	}
}

// SendInvitation validates the preconditions, enforces the pairing invariants
// and creates a pending invitation. It returns the created invitation and the
// acceptance link; delivering the link (email) is the caller's concern.
func (s *Service) SendInvitation(ctx context.Context, inviterID, email string) (*types.Invitation, string, error) {
	ctx, span := s.tracer.Start(ctx, "partnership.Service.SendInvitation")
	defer span.End()

	if err := s.validate.Var(email, "required,email"); err != nil {
		return nil, "", ErrInvalidEmail
	}

	profile, err := s.kratos.GetProfile(ctx, inviterID)
	if err != nil {
		s.logger.Errorf("failed to fetch inviter profile: %v", err)
		return nil, "", fmt.Errorf("failed to fetch inviter profile")
	}

	if strings.TrimSpace(profile.Name) == "" {
		return nil, "", ErrDisplayNameRequired
	}

	if strings.EqualFold(profile.Email, email) {
		return nil, "", ErrSelfInvite
	}

	var created *types.Invitation
	err = s.tx.WithTx(ctx, func(txCtx context.Context) error {
		if err := s.ensureUnpartnered(txCtx, inviterID); err != nil {
			return err
		}

		// The target may not have registered yet; only an existing identity
		// can hold a partnership.
		inviteeID, err := s.kratos.GetIdentityIDByEmail(txCtx, email)
		if err != nil {
			s.logger.Errorf("failed to look up invitee identity: %v", err)
			return fmt.Errorf("failed to look up invitee")
		}
		if inviteeID != "" {
			if _, err := s.storage.GetPartnershipByUserID(txCtx, inviteeID); err == nil {
				return ErrInviteePartnered
			} else if !errors.Is(err, storage.ErrNotFound) {
				return err
			}
		}

		exists, err := s.storage.PendingInvitationExists(txCtx, inviterID, email)
		if err != nil {
			return err
		}
		if exists {
			return ErrDuplicateInvitation
		}

		token, err := newInvitationToken()
		if err != nil {
			return err
		}

		created, err = s.storage.CreateInvitation(txCtx, &types.Invitation{
			Token:        token,
			InviterID:    inviterID,
			InviterName:  profile.Name,
			InviterEmail: profile.Email,
			InviteeEmail: email,
			ExpiresAt:    time.Now().UTC().Add(s.invitationLifetime),
		})
		return err
	})
	if err != nil {
		return nil, "", err
	}

	s.logger.Security().InvitationIssued(inviterID, created.InviteeEmail)

	return created, s.invitationLink(created.Token), nil
}

func (s *Service) GetInvitationDetails(ctx context.Context, token string) (*types.Invitation, error) {
	ctx, span := s.tracer.Start(ctx, "partnership.Service.GetInvitationDetails")
	defer span.End()

	inv, err := s.storage.GetInvitationByToken(ctx, token)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrInvitationNotFound
		}
		return nil, err
	}

	return inv, nil
}

// ListPendingInvitations returns the pending, unexpired invitations targeting
// the user's email. Expiry is evaluated here, at read time, never derived from
// the stored status.
func (s *Service) ListPendingInvitations(ctx context.Context, userID string) ([]*types.Invitation, error) {
	ctx, span := s.tracer.Start(ctx, "partnership.Service.ListPendingInvitations")
	defer span.End()

	profile, err := s.kratos.GetProfile(ctx, userID)
	if err != nil {
		s.logger.Errorf("failed to fetch profile: %v", err)
		return nil, fmt.Errorf("failed to fetch profile")
	}

	invitations, err := s.storage.ListPendingInvitationsByEmail(ctx, profile.Email)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	actionable := make([]*types.Invitation, 0, len(invitations))
	for _, inv := range invitations {
		if !inv.IsExpired(now) {
			actionable = append(actionable, inv)
		}
	}

	return actionable, nil
}

// AcceptInvitation consumes the token and links the two users. Consumption is
// a conditional status flip inside a transaction, so a token is accepted at
// most once: a concurrent second call loses the flip and gets
// ErrInvitationConsumed, never a second partnership.
func (s *Service) AcceptInvitation(ctx context.Context, token, userID string) (*types.Partnership, error) {
	ctx, span := s.tracer.Start(ctx, "partnership.Service.AcceptInvitation")
	defer span.End()

	profile, err := s.kratos.GetProfile(ctx, userID)
	if err != nil {
		s.logger.Errorf("failed to fetch profile: %v", err)
		return nil, fmt.Errorf("failed to fetch profile")
	}

	var created *types.Partnership
	err = s.tx.WithTx(ctx, func(txCtx context.Context) error {
		inv, err := s.storage.GetInvitationByToken(txCtx, token)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return ErrInvitationNotFound
			}
			return err
		}

		switch inv.Status {
		case types.StatusAccepted:
			return ErrInvitationConsumed
		case types.StatusRevoked:
			return ErrInvitationRevoked
		}

		if inv.IsExpired(time.Now().UTC()) {
			return ErrInvitationExpired
		}

		if !inv.MatchesInviteeEmail(profile.Email) {
			return ErrEmailMismatch
		}

		if err := s.ensureUnpartnered(txCtx, userID); err != nil {
			return err
		}
		if _, err := s.storage.GetPartnershipByUserID(txCtx, inv.InviterID); err == nil {
			return ErrInviterPartnered
		} else if !errors.Is(err, storage.ErrNotFound) {
			return err
		}

		consumed, err := s.storage.ConsumeInvitation(txCtx, token, types.StatusAccepted)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				// Lost the race against another session.
				return ErrInvitationConsumed
			}
			return err
		}

		created, err = s.storage.CreatePartnership(txCtx, consumed.InviterID, userID)
		if err != nil {
			if errors.Is(err, storage.ErrDuplicateKey) {
				// Either user got linked through another invitation after
				// the unpartnered reads above; the members key catches it.
				return ErrAlreadyPartnered
			}
			return err
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Security().InvitationConsumed(userID, created.ID)

	return created, nil
}

// RevokeInvitation lets the inviter withdraw a pending invitation.
func (s *Service) RevokeInvitation(ctx context.Context, token, userID string) error {
	ctx, span := s.tracer.Start(ctx, "partnership.Service.RevokeInvitation")
	defer span.End()

	inv, err := s.GetInvitationDetails(ctx, token)
	if err != nil {
		return err
	}

	if inv.InviterID != userID {
		s.logger.Security().AuthzFailure(userID, "invitation_revoke")
		return ErrNotMember
	}

	switch inv.Status {
	case types.StatusAccepted:
		return ErrInvitationConsumed
	case types.StatusRevoked:
		return ErrInvitationRevoked
	}

	if _, err := s.storage.ConsumeInvitation(ctx, token, types.StatusRevoked); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrInvitationConsumed
		}
		return err
	}

	s.logger.Security().InvitationRevoked(userID, inv.ID)
	return nil
}

// GetPartnership returns the caller's active partnership, or nil when there is
// none. Absence is a first-class result, not an error.
func (s *Service) GetPartnership(ctx context.Context, userID string) (*types.Partnership, error) {
	ctx, span := s.tracer.Start(ctx, "partnership.Service.GetPartnership")
	defer span.End()

	p, err := s.storage.GetPartnershipByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return p, nil
}

// GetPartnershipState derives the panel aggregate: linked with the partner's
// profile resolved, or unlinked with any pending invitations, or plain
// unlinked. The three states are mutually exclusive.
func (s *Service) GetPartnershipState(ctx context.Context, userID string) (*State, error) {
	ctx, span := s.tracer.Start(ctx, "partnership.Service.GetPartnershipState")
	defer span.End()

	p, err := s.GetPartnership(ctx, userID)
	if err != nil {
		return nil, err
	}

	if p != nil {
		partner, err := s.kratos.GetProfile(ctx, p.PartnerOf(userID))
		if err != nil {
			// The partnership is still valid even if the partner's profile
			// cannot be resolved right now.
			s.logger.Warnf("failed to fetch partner profile: %v", err)
			partner = &types.Profile{UserID: p.PartnerOf(userID)}
		}
		return &State{Status: StateLinked, Partnership: p, Partner: partner}, nil
	}

	invitations, err := s.ListPendingInvitations(ctx, userID)
	if err != nil {
		return nil, err
	}

	if len(invitations) > 0 {
		return &State{Status: StatePendingInvitations, PendingInvitations: invitations}, nil
	}

	return &State{Status: StateUnlinked}, nil
}

// EndPartnership dissolves the link. Either member may end it; both users are
// immediately free to create or accept new invitations.
func (s *Service) EndPartnership(ctx context.Context, partnershipID, userID string) error {
	ctx, span := s.tracer.Start(ctx, "partnership.Service.EndPartnership")
	defer span.End()

	return s.tx.WithTx(ctx, func(txCtx context.Context) error {
		p, err := s.storage.GetPartnershipByID(txCtx, partnershipID)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return ErrPartnershipNotFound
			}
			return err
		}

		if !p.Includes(userID) {
			s.logger.Security().AuthzFailure(userID, "partnership_end")
			return ErrNotMember
		}

		if err := s.storage.DeletePartnership(txCtx, partnershipID); err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return ErrPartnershipNotFound
			}
			return err
		}

		s.logger.Security().PartnershipEnded(userID, partnershipID)
		return nil
	})
}

func (s *Service) ensureUnpartnered(ctx context.Context, userID string) error {
	if _, err := s.storage.GetPartnershipByUserID(ctx, userID); err == nil {
		return ErrAlreadyPartnered
	} else if !errors.Is(err, storage.ErrNotFound) {
		return err
	}
	return nil
}

func (s *Service) invitationLink(token string) string {
	return s.appBaseURL + acceptPath + "?token=" + url.QueryEscape(token)
}
