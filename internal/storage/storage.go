// Copyright 2026 PairBudget Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/pairbudget/partner-service/internal/db"
	"github.com/pairbudget/partner-service/internal/logging"
	"github.com/pairbudget/partner-service/internal/monitoring"
	"github.com/pairbudget/partner-service/internal/tracing"
	"github.com/pairbudget/partner-service/internal/types"
)

var _ StorageInterface = (*Storage)(nil)

const invitationColumns = "id, token, inviter_id, inviter_name, inviter_email, invitee_email, status, created_at, expires_at"

type Storage struct {
	db db.DBClientInterface

	logger  logging.LoggerInterface
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
}

func NewStorage(c db.DBClientInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Storage {
	s := new(Storage)

	s.db = c

	s.logger = logger
	s.tracer = tracer
	s.monitor = monitor

	return s
}

func (s *Storage) CreateInvitation(ctx context.Context, inv *types.Invitation) (*types.Invitation, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateInvitation")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate invitation ID: %w", err)
	}

	var created types.Invitation
	err = s.db.Statement(ctx).
		Insert("invitations").
		Columns("id", "token", "inviter_id", "inviter_name", "inviter_email", "invitee_email", "status", "expires_at").
		Values(id.String(), inv.Token, inv.InviterID, inv.InviterName, inv.InviterEmail, strings.ToLower(inv.InviteeEmail), types.StatusPending, inv.ExpiresAt).
		Suffix("RETURNING " + invitationColumns).
		QueryRowContext(ctx).
		Scan(&created.ID, &created.Token, &created.InviterID, &created.InviterName, &created.InviterEmail,
			&created.InviteeEmail, &created.Status, &created.CreatedAt, &created.ExpiresAt)

	if err != nil {
		if IsDuplicateKeyError(err) {
			return nil, ErrDuplicateKey
		}
		return nil, fmt.Errorf("failed to insert invitation: %w", err)
	}

	return &created, nil
}

func (s *Storage) GetInvitationByToken(ctx context.Context, token string) (*types.Invitation, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetInvitationByToken")
	defer span.End()

	var inv types.Invitation
	err := s.db.Statement(ctx).
		Select(invitationColumns).
		From("invitations").
		Where(sq.Eq{"token": token}).
		QueryRowContext(ctx).
		Scan(&inv.ID, &inv.Token, &inv.InviterID, &inv.InviterName, &inv.InviterEmail,
			&inv.InviteeEmail, &inv.Status, &inv.CreatedAt, &inv.ExpiresAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get invitation: %w", err)
	}

	return &inv, nil
}

func (s *Storage) ListPendingInvitationsByEmail(ctx context.Context, email string) ([]*types.Invitation, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListPendingInvitationsByEmail")
	defer span.End()

	query := s.db.Statement(ctx).
		Select(invitationColumns).
		From("invitations").
		Where(sq.Eq{
			"invitee_email": strings.ToLower(email),
			"status":        types.StatusPending,
		}).
		OrderBy("created_at DESC")

	rows, err := query.QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list invitations: %w", err)
	}
	defer rows.Close()

	var invitations []*types.Invitation
	for rows.Next() {
		var inv types.Invitation
		if err := rows.Scan(&inv.ID, &inv.Token, &inv.InviterID, &inv.InviterName, &inv.InviterEmail,
			&inv.InviteeEmail, &inv.Status, &inv.CreatedAt, &inv.ExpiresAt); err != nil {
			return nil, fmt.Errorf("failed to scan invitation: %w", err)
		}
		invitations = append(invitations, &inv)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return invitations, nil
}

func (s *Storage) PendingInvitationExists(ctx context.Context, inviterID, inviteeEmail string) (bool, error) {
	ctx, span := s.tracer.Start(ctx, "storage.PendingInvitationExists")
	defer span.End()

	// Expiry is evaluated in the query so that a stale pending row never blocks
	// a fresh invitation for the same pair.
	var id string
	err := s.db.Statement(ctx).
		Select("id").
		From("invitations").
		Where(sq.Eq{
			"inviter_id":    inviterID,
			"invitee_email": strings.ToLower(inviteeEmail),
			"status":        types.StatusPending,
		}).
		Where(sq.Expr("expires_at > now()")).
		Limit(1).
		QueryRowContext(ctx).
		Scan(&id)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("failed to check pending invitation: %w", err)
	}

	return true, nil
}

func (s *Storage) ConsumeInvitation(ctx context.Context, token, status string) (*types.Invitation, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ConsumeInvitation")
	defer span.End()

	var inv types.Invitation
	err := s.db.Statement(ctx).
		Update("invitations").
		Set("status", status).
		Where(sq.Eq{
			"token":  token,
			"status": types.StatusPending,
		}).
		Suffix("RETURNING " + invitationColumns).
		QueryRowContext(ctx).
		Scan(&inv.ID, &inv.Token, &inv.InviterID, &inv.InviterName, &inv.InviterEmail,
			&inv.InviteeEmail, &inv.Status, &inv.CreatedAt, &inv.ExpiresAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Already consumed, revoked or never existed.
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to consume invitation: %w", err)
	}

	return &inv, nil
}

func (s *Storage) CreatePartnership(ctx context.Context, user1ID, user2ID string) (*types.Partnership, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreatePartnership")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate partnership ID: %w", err)
	}

	var p types.Partnership
	err = s.db.Statement(ctx).
		Insert("partnerships").
		Columns("id", "user1_id", "user2_id").
		Values(id.String(), user1ID, user2ID).
		Suffix("RETURNING id, user1_id, user2_id, created_at").
		QueryRowContext(ctx).
		Scan(&p.ID, &p.User1ID, &p.User2ID, &p.CreatedAt)

	if err != nil {
		return nil, fmt.Errorf("failed to insert partnership: %w", err)
	}

	// The member rows carry the one-partnership-per-user invariant across
	// both sides: a user who is inviter on one pending invitation and invitee
	// on another cannot end up in two partnerships through concurrent
	// accepts, because the second member insert hits the primary key. Runs in
	// the caller's transaction, so a conflict rolls back the partnership row.
	_, err = s.db.Statement(ctx).
		Insert("partnership_members").
		Columns("user_id", "partnership_id").
		Values(user1ID, p.ID).
		Values(user2ID, p.ID).
		ExecContext(ctx)

	if err != nil {
		if IsDuplicateKeyError(err) {
			return nil, ErrDuplicateKey
		}
		return nil, fmt.Errorf("failed to insert partnership members: %w", err)
	}

	return &p, nil
}

func (s *Storage) GetPartnershipByID(ctx context.Context, id string) (*types.Partnership, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetPartnershipByID")
	defer span.End()

	var p types.Partnership
	err := s.db.Statement(ctx).
		Select("id", "user1_id", "user2_id", "created_at").
		From("partnerships").
		Where(sq.Eq{"id": id}).
		QueryRowContext(ctx).
		Scan(&p.ID, &p.User1ID, &p.User2ID, &p.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get partnership: %w", err)
	}

	return &p, nil
}

func (s *Storage) GetPartnershipByUserID(ctx context.Context, userID string) (*types.Partnership, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetPartnershipByUserID")
	defer span.End()

	var p types.Partnership
	err := s.db.Statement(ctx).
		Select("id", "user1_id", "user2_id", "created_at").
		From("partnerships").
		Where(sq.Or{sq.Eq{"user1_id": userID}, sq.Eq{"user2_id": userID}}).
		QueryRowContext(ctx).
		Scan(&p.ID, &p.User1ID, &p.User2ID, &p.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get partnership: %w", err)
	}

	return &p, nil
}

func (s *Storage) DeletePartnership(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeletePartnership")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Delete("partnerships").
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to delete partnership: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}

	return nil
}
