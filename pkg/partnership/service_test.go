// Copyright 2026 PairBudget Ltd.
// SPDX-License-Identifier: AGPL-3.0

package partnership

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/pairbudget/partner-service/internal/storage"
	"github.com/pairbudget/partner-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package partnership -destination ./mock_partnership.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package partnership -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package partnership -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package partnership -destination ./mock_tracing.go -source=../../internal/tracing/interfaces.go

const (
	testLifetime = 7 * 24 * time.Hour
	testBaseURL  = "https://app.pairbudget.test"
)

// passthroughTx makes WithTx run its callback directly on the given context.
func passthroughTx(mockTx *MockTxManagerInterface) {
	mockTx.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		})
}

func TestService_SendInvitation(t *testing.T) {
	inviterID := "inviter-123"
	inviterProfile := &types.Profile{UserID: inviterID, Email: "alice@example.com", Name: "Alice"}
	inviteeEmail := "bob@example.com"

	testCases := []struct {
		name        string
		email       string
		setupMocks  func(*MockStorageInterface, *MockTxManagerInterface, *MockKratosClientInterface, *MockLoggerInterface, *MockSecurityLoggerInterface)
		expectedErr error
	}{
		{
			name:  "success",
			email: inviteeEmail,
			setupMocks: func(mockStorage *MockStorageInterface, mockTx *MockTxManagerInterface, mockKratos *MockKratosClientInterface, mockLogger *MockLoggerInterface, mockSecurity *MockSecurityLoggerInterface) {
				mockKratos.EXPECT().GetProfile(gomock.Any(), inviterID).Return(inviterProfile, nil)
				passthroughTx(mockTx)
				mockStorage.EXPECT().GetPartnershipByUserID(gomock.Any(), inviterID).Return(nil, storage.ErrNotFound)
				mockKratos.EXPECT().GetIdentityIDByEmail(gomock.Any(), inviteeEmail).Return("invitee-456", nil)
				mockStorage.EXPECT().GetPartnershipByUserID(gomock.Any(), "invitee-456").Return(nil, storage.ErrNotFound)
				mockStorage.EXPECT().PendingInvitationExists(gomock.Any(), inviterID, inviteeEmail).Return(false, nil)
				mockStorage.EXPECT().CreateInvitation(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, inv *types.Invitation) (*types.Invitation, error) {
						if inv.Token == "" {
							return nil, errors.New("missing token")
						}
						if inv.InviterName != "Alice" || inv.InviteeEmail != inviteeEmail {
							return nil, errors.New("wrong invitation fields")
						}
						inv.ID = "inv-1"
						inv.Status = types.StatusPending
						return inv, nil
					})
				mockLogger.EXPECT().Security().Return(mockSecurity)
				mockSecurity.EXPECT().InvitationIssued(inviterID, inviteeEmail)
			},
			expectedErr: nil,
		},
		{
			name:  "error - invalid email",
			email: "not-an-email",
			setupMocks: func(*MockStorageInterface, *MockTxManagerInterface, *MockKratosClientInterface, *MockLoggerInterface, *MockSecurityLoggerInterface) {
			},
			expectedErr: ErrInvalidEmail,
		},
		{
			name:  "error - self invite is case insensitive",
			email: "ALICE@example.com",
			setupMocks: func(mockStorage *MockStorageInterface, mockTx *MockTxManagerInterface, mockKratos *MockKratosClientInterface, mockLogger *MockLoggerInterface, mockSecurity *MockSecurityLoggerInterface) {
				mockKratos.EXPECT().GetProfile(gomock.Any(), inviterID).Return(inviterProfile, nil)
			},
			expectedErr: ErrSelfInvite,
		},
		{
			name:  "error - missing display name",
			email: inviteeEmail,
			setupMocks: func(mockStorage *MockStorageInterface, mockTx *MockTxManagerInterface, mockKratos *MockKratosClientInterface, mockLogger *MockLoggerInterface, mockSecurity *MockSecurityLoggerInterface) {
				mockKratos.EXPECT().GetProfile(gomock.Any(), inviterID).Return(&types.Profile{UserID: inviterID, Email: "alice@example.com"}, nil)
			},
			expectedErr: ErrDisplayNameRequired,
		},
		{
			name:  "error - inviter already partnered",
			email: inviteeEmail,
			setupMocks: func(mockStorage *MockStorageInterface, mockTx *MockTxManagerInterface, mockKratos *MockKratosClientInterface, mockLogger *MockLoggerInterface, mockSecurity *MockSecurityLoggerInterface) {
				mockKratos.EXPECT().GetProfile(gomock.Any(), inviterID).Return(inviterProfile, nil)
				passthroughTx(mockTx)
				mockStorage.EXPECT().GetPartnershipByUserID(gomock.Any(), inviterID).Return(&types.Partnership{ID: "p-1"}, nil)
			},
			expectedErr: ErrAlreadyPartnered,
		},
		{
			name:  "error - invitee already partnered",
			email: inviteeEmail,
			setupMocks: func(mockStorage *MockStorageInterface, mockTx *MockTxManagerInterface, mockKratos *MockKratosClientInterface, mockLogger *MockLoggerInterface, mockSecurity *MockSecurityLoggerInterface) {
				mockKratos.EXPECT().GetProfile(gomock.Any(), inviterID).Return(inviterProfile, nil)
				passthroughTx(mockTx)
				mockStorage.EXPECT().GetPartnershipByUserID(gomock.Any(), inviterID).Return(nil, storage.ErrNotFound)
				mockKratos.EXPECT().GetIdentityIDByEmail(gomock.Any(), inviteeEmail).Return("invitee-456", nil)
				mockStorage.EXPECT().GetPartnershipByUserID(gomock.Any(), "invitee-456").Return(&types.Partnership{ID: "p-2"}, nil)
			},
			expectedErr: ErrInviteePartnered,
		},
		{
			name:  "error - duplicate pending invitation",
			email: inviteeEmail,
			setupMocks: func(mockStorage *MockStorageInterface, mockTx *MockTxManagerInterface, mockKratos *MockKratosClientInterface, mockLogger *MockLoggerInterface, mockSecurity *MockSecurityLoggerInterface) {
				mockKratos.EXPECT().GetProfile(gomock.Any(), inviterID).Return(inviterProfile, nil)
				passthroughTx(mockTx)
				mockStorage.EXPECT().GetPartnershipByUserID(gomock.Any(), inviterID).Return(nil, storage.ErrNotFound)
				mockKratos.EXPECT().GetIdentityIDByEmail(gomock.Any(), inviteeEmail).Return("", nil)
				mockStorage.EXPECT().PendingInvitationExists(gomock.Any(), inviterID, inviteeEmail).Return(true, nil)
			},
			expectedErr: ErrDuplicateInvitation,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			mockTx := NewMockTxManagerInterface(ctrl)
			mockKratos := NewMockKratosClientInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)
			mockSecurity := NewMockSecurityLoggerInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)

			s := NewService(mockStorage, mockTx, mockKratos, testLifetime, testBaseURL, mockTracer, mockMonitor, mockLogger)

			mockTracer.EXPECT().Start(gomock.Any(), "partnership.Service.SendInvitation").
				Return(context.Background(), trace.SpanFromContext(context.Background()))
			tc.setupMocks(mockStorage, mockTx, mockKratos, mockLogger, mockSecurity)

			inv, link, err := s.SendInvitation(context.Background(), inviterID, tc.email)

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Errorf("expected error %v, got %v", tc.expectedErr, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if inv == nil || inv.ID == "" {
				t.Fatal("expected created invitation")
			}
			if !strings.HasPrefix(link, testBaseURL+"/partner/accept?token=") {
				t.Errorf("unexpected invitation link: %s", link)
			}
			if !strings.Contains(link, inv.Token) {
				t.Error("invitation link does not carry the token")
			}
		})
	}
}

func TestService_AcceptInvitation(t *testing.T) {
	userID := "invitee-456"
	inviterID := "inviter-123"
	token := "tok-abc"
	profile := &types.Profile{UserID: userID, Email: "bob@example.com", Name: "Bob"}
	partnership := &types.Partnership{ID: "p-1", User1ID: inviterID, User2ID: userID}

	pendingInvitation := func() *types.Invitation {
		return &types.Invitation{
			ID:           "inv-1",
			Token:        token,
			InviterID:    inviterID,
			InviteeEmail: "Bob@Example.COM",
			Status:       types.StatusPending,
			ExpiresAt:    time.Now().UTC().Add(time.Hour),
		}
	}

	testCases := []struct {
		name        string
		setupMocks  func(*MockStorageInterface, *MockTxManagerInterface, *MockKratosClientInterface, *MockLoggerInterface, *MockSecurityLoggerInterface)
		expectedErr error
	}{
		{
			// The stored invitee email differs from the session email only in
			// case; acceptance must still go through.
			name: "success - email match is case insensitive",
			setupMocks: func(mockStorage *MockStorageInterface, mockTx *MockTxManagerInterface, mockKratos *MockKratosClientInterface, mockLogger *MockLoggerInterface, mockSecurity *MockSecurityLoggerInterface) {
				mockKratos.EXPECT().GetProfile(gomock.Any(), userID).Return(profile, nil)
				passthroughTx(mockTx)
				mockStorage.EXPECT().GetInvitationByToken(gomock.Any(), token).Return(pendingInvitation(), nil)
				mockStorage.EXPECT().GetPartnershipByUserID(gomock.Any(), userID).Return(nil, storage.ErrNotFound)
				mockStorage.EXPECT().GetPartnershipByUserID(gomock.Any(), inviterID).Return(nil, storage.ErrNotFound)
				mockStorage.EXPECT().ConsumeInvitation(gomock.Any(), token, types.StatusAccepted).Return(pendingInvitation(), nil)
				mockStorage.EXPECT().CreatePartnership(gomock.Any(), inviterID, userID).Return(partnership, nil)
				mockLogger.EXPECT().Security().Return(mockSecurity)
				mockSecurity.EXPECT().InvitationConsumed(userID, partnership.ID)
			},
			expectedErr: nil,
		},
		{
			name: "error - token not found",
			setupMocks: func(mockStorage *MockStorageInterface, mockTx *MockTxManagerInterface, mockKratos *MockKratosClientInterface, mockLogger *MockLoggerInterface, mockSecurity *MockSecurityLoggerInterface) {
				mockKratos.EXPECT().GetProfile(gomock.Any(), userID).Return(profile, nil)
				passthroughTx(mockTx)
				mockStorage.EXPECT().GetInvitationByToken(gomock.Any(), token).Return(nil, storage.ErrNotFound)
			},
			expectedErr: ErrInvitationNotFound,
		},
		{
			name: "error - already accepted",
			setupMocks: func(mockStorage *MockStorageInterface, mockTx *MockTxManagerInterface, mockKratos *MockKratosClientInterface, mockLogger *MockLoggerInterface, mockSecurity *MockSecurityLoggerInterface) {
				mockKratos.EXPECT().GetProfile(gomock.Any(), userID).Return(profile, nil)
				passthroughTx(mockTx)
				inv := pendingInvitation()
				inv.Status = types.StatusAccepted
				mockStorage.EXPECT().GetInvitationByToken(gomock.Any(), token).Return(inv, nil)
			},
			expectedErr: ErrInvitationConsumed,
		},
		{
			name: "error - revoked",
			setupMocks: func(mockStorage *MockStorageInterface, mockTx *MockTxManagerInterface, mockKratos *MockKratosClientInterface, mockLogger *MockLoggerInterface, mockSecurity *MockSecurityLoggerInterface) {
				mockKratos.EXPECT().GetProfile(gomock.Any(), userID).Return(profile, nil)
				passthroughTx(mockTx)
				inv := pendingInvitation()
				inv.Status = types.StatusRevoked
				mockStorage.EXPECT().GetInvitationByToken(gomock.Any(), token).Return(inv, nil)
			},
			expectedErr: ErrInvitationRevoked,
		},
		{
			// The status column still says pending; expiry is a property of the
			// clock, not of the stored state.
			name: "error - expired but still pending",
			setupMocks: func(mockStorage *MockStorageInterface, mockTx *MockTxManagerInterface, mockKratos *MockKratosClientInterface, mockLogger *MockLoggerInterface, mockSecurity *MockSecurityLoggerInterface) {
				mockKratos.EXPECT().GetProfile(gomock.Any(), userID).Return(profile, nil)
				passthroughTx(mockTx)
				inv := pendingInvitation()
				inv.ExpiresAt = time.Now().UTC().Add(-time.Minute)
				mockStorage.EXPECT().GetInvitationByToken(gomock.Any(), token).Return(inv, nil)
			},
			expectedErr: ErrInvitationExpired,
		},
		{
			name: "error - email mismatch",
			setupMocks: func(mockStorage *MockStorageInterface, mockTx *MockTxManagerInterface, mockKratos *MockKratosClientInterface, mockLogger *MockLoggerInterface, mockSecurity *MockSecurityLoggerInterface) {
				mockKratos.EXPECT().GetProfile(gomock.Any(), userID).Return(&types.Profile{UserID: userID, Email: "carol@example.com"}, nil)
				passthroughTx(mockTx)
				mockStorage.EXPECT().GetInvitationByToken(gomock.Any(), token).Return(pendingInvitation(), nil)
			},
			expectedErr: ErrEmailMismatch,
		},
		{
			name: "error - invitee already partnered",
			setupMocks: func(mockStorage *MockStorageInterface, mockTx *MockTxManagerInterface, mockKratos *MockKratosClientInterface, mockLogger *MockLoggerInterface, mockSecurity *MockSecurityLoggerInterface) {
				mockKratos.EXPECT().GetProfile(gomock.Any(), userID).Return(profile, nil)
				passthroughTx(mockTx)
				mockStorage.EXPECT().GetInvitationByToken(gomock.Any(), token).Return(pendingInvitation(), nil)
				mockStorage.EXPECT().GetPartnershipByUserID(gomock.Any(), userID).Return(&types.Partnership{ID: "p-9"}, nil)
			},
			expectedErr: ErrAlreadyPartnered,
		},
		{
			name: "error - inviter partnered since sending",
			setupMocks: func(mockStorage *MockStorageInterface, mockTx *MockTxManagerInterface, mockKratos *MockKratosClientInterface, mockLogger *MockLoggerInterface, mockSecurity *MockSecurityLoggerInterface) {
				mockKratos.EXPECT().GetProfile(gomock.Any(), userID).Return(profile, nil)
				passthroughTx(mockTx)
				mockStorage.EXPECT().GetInvitationByToken(gomock.Any(), token).Return(pendingInvitation(), nil)
				mockStorage.EXPECT().GetPartnershipByUserID(gomock.Any(), userID).Return(nil, storage.ErrNotFound)
				mockStorage.EXPECT().GetPartnershipByUserID(gomock.Any(), inviterID).Return(&types.Partnership{ID: "p-9"}, nil)
			},
			expectedErr: ErrInviterPartnered,
		},
		{
			// Two different invitations accepted concurrently can place the
			// same user on opposite sides (inviter on one, invitee on the
			// other). Both transactions pass the unpartnered reads before
			// either commits; the partnership_members primary key rejects the
			// second insert and the whole accept rolls back.
			name: "error - cross-invitation race hits the members key",
			setupMocks: func(mockStorage *MockStorageInterface, mockTx *MockTxManagerInterface, mockKratos *MockKratosClientInterface, mockLogger *MockLoggerInterface, mockSecurity *MockSecurityLoggerInterface) {
				mockKratos.EXPECT().GetProfile(gomock.Any(), userID).Return(profile, nil)
				passthroughTx(mockTx)
				mockStorage.EXPECT().GetInvitationByToken(gomock.Any(), token).Return(pendingInvitation(), nil)
				mockStorage.EXPECT().GetPartnershipByUserID(gomock.Any(), userID).Return(nil, storage.ErrNotFound)
				mockStorage.EXPECT().GetPartnershipByUserID(gomock.Any(), inviterID).Return(nil, storage.ErrNotFound)
				mockStorage.EXPECT().ConsumeInvitation(gomock.Any(), token, types.StatusAccepted).Return(pendingInvitation(), nil)
				mockStorage.EXPECT().CreatePartnership(gomock.Any(), inviterID, userID).Return(nil, storage.ErrDuplicateKey)
			},
			expectedErr: ErrAlreadyPartnered,
		},
		{
			// A concurrent session flipped the status between our read and the
			// conditional update.
			name: "error - lost the consumption race",
			setupMocks: func(mockStorage *MockStorageInterface, mockTx *MockTxManagerInterface, mockKratos *MockKratosClientInterface, mockLogger *MockLoggerInterface, mockSecurity *MockSecurityLoggerInterface) {
				mockKratos.EXPECT().GetProfile(gomock.Any(), userID).Return(profile, nil)
				passthroughTx(mockTx)
				mockStorage.EXPECT().GetInvitationByToken(gomock.Any(), token).Return(pendingInvitation(), nil)
				mockStorage.EXPECT().GetPartnershipByUserID(gomock.Any(), userID).Return(nil, storage.ErrNotFound)
				mockStorage.EXPECT().GetPartnershipByUserID(gomock.Any(), inviterID).Return(nil, storage.ErrNotFound)
				mockStorage.EXPECT().ConsumeInvitation(gomock.Any(), token, types.StatusAccepted).Return(nil, storage.ErrNotFound)
			},
			expectedErr: ErrInvitationConsumed,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			mockTx := NewMockTxManagerInterface(ctrl)
			mockKratos := NewMockKratosClientInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)
			mockSecurity := NewMockSecurityLoggerInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)

			s := NewService(mockStorage, mockTx, mockKratos, testLifetime, testBaseURL, mockTracer, mockMonitor, mockLogger)

			mockTracer.EXPECT().Start(gomock.Any(), "partnership.Service.AcceptInvitation").
				Return(context.Background(), trace.SpanFromContext(context.Background()))
			tc.setupMocks(mockStorage, mockTx, mockKratos, mockLogger, mockSecurity)

			p, err := s.AcceptInvitation(context.Background(), token, userID)

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Errorf("expected error %v, got %v", tc.expectedErr, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if p == nil || p.ID != partnership.ID {
				t.Errorf("unexpected partnership: %+v", p)
			}
		})
	}
}

func TestService_RevokeInvitation(t *testing.T) {
	inviterID := "inviter-123"
	token := "tok-abc"

	pendingInvitation := &types.Invitation{
		ID:        "inv-1",
		Token:     token,
		InviterID: inviterID,
		Status:    types.StatusPending,
		ExpiresAt: time.Now().UTC().Add(time.Hour),
	}

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockStorage := NewMockStorageInterface(ctrl)
		mockTx := NewMockTxManagerInterface(ctrl)
		mockKratos := NewMockKratosClientInterface(ctrl)
		mockTracer := NewMockTracingInterface(ctrl)
		mockLogger := NewMockLoggerInterface(ctrl)
		mockSecurity := NewMockSecurityLoggerInterface(ctrl)
		mockMonitor := NewMockMonitorInterface(ctrl)

		s := NewService(mockStorage, mockTx, mockKratos, testLifetime, testBaseURL, mockTracer, mockMonitor, mockLogger)

		mockTracer.EXPECT().Start(gomock.Any(), "partnership.Service.RevokeInvitation").
			Return(context.Background(), trace.SpanFromContext(context.Background()))
		mockTracer.EXPECT().Start(gomock.Any(), "partnership.Service.GetInvitationDetails").
			Return(context.Background(), trace.SpanFromContext(context.Background()))
		mockStorage.EXPECT().GetInvitationByToken(gomock.Any(), token).Return(pendingInvitation, nil)
		mockStorage.EXPECT().ConsumeInvitation(gomock.Any(), token, types.StatusRevoked).Return(pendingInvitation, nil)
		mockLogger.EXPECT().Security().Return(mockSecurity)
		mockSecurity.EXPECT().InvitationRevoked(inviterID, pendingInvitation.ID)

		if err := s.RevokeInvitation(context.Background(), token, inviterID); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("error - only the inviter may revoke", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockStorage := NewMockStorageInterface(ctrl)
		mockTx := NewMockTxManagerInterface(ctrl)
		mockKratos := NewMockKratosClientInterface(ctrl)
		mockTracer := NewMockTracingInterface(ctrl)
		mockLogger := NewMockLoggerInterface(ctrl)
		mockSecurity := NewMockSecurityLoggerInterface(ctrl)
		mockMonitor := NewMockMonitorInterface(ctrl)

		s := NewService(mockStorage, mockTx, mockKratos, testLifetime, testBaseURL, mockTracer, mockMonitor, mockLogger)

		mockTracer.EXPECT().Start(gomock.Any(), "partnership.Service.RevokeInvitation").
			Return(context.Background(), trace.SpanFromContext(context.Background()))
		mockTracer.EXPECT().Start(gomock.Any(), "partnership.Service.GetInvitationDetails").
			Return(context.Background(), trace.SpanFromContext(context.Background()))
		mockStorage.EXPECT().GetInvitationByToken(gomock.Any(), token).Return(pendingInvitation, nil)
		mockLogger.EXPECT().Security().Return(mockSecurity)
		mockSecurity.EXPECT().AuthzFailure("someone-else", "invitation_revoke")

		if err := s.RevokeInvitation(context.Background(), token, "someone-else"); !errors.Is(err, ErrNotMember) {
			t.Errorf("expected ErrNotMember, got %v", err)
		}
	})
}

func TestService_GetPartnership(t *testing.T) {
	userID := "user-123"

	t.Run("no partnership is nil, not an error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockStorage := NewMockStorageInterface(ctrl)
		mockTx := NewMockTxManagerInterface(ctrl)
		mockKratos := NewMockKratosClientInterface(ctrl)
		mockTracer := NewMockTracingInterface(ctrl)
		mockLogger := NewMockLoggerInterface(ctrl)
		mockMonitor := NewMockMonitorInterface(ctrl)

		s := NewService(mockStorage, mockTx, mockKratos, testLifetime, testBaseURL, mockTracer, mockMonitor, mockLogger)

		mockTracer.EXPECT().Start(gomock.Any(), "partnership.Service.GetPartnership").
			Return(context.Background(), trace.SpanFromContext(context.Background()))
		mockStorage.EXPECT().GetPartnershipByUserID(gomock.Any(), userID).Return(nil, storage.ErrNotFound)

		p, err := s.GetPartnership(context.Background(), userID)
		if err != nil {
			t.Errorf("unexpected error: %v", err)
		}
		if p != nil {
			t.Errorf("expected nil partnership, got %+v", p)
		}
	})
}

func TestService_GetPartnershipState(t *testing.T) {
	userID := "user-123"
	partnerID := "partner-456"
	partnership := &types.Partnership{ID: "p-1", User1ID: partnerID, User2ID: userID}
	profile := &types.Profile{UserID: userID, Email: "bob@example.com", Name: "Bob"}

	testCases := []struct {
		name           string
		setupMocks     func(*MockStorageInterface, *MockKratosClientInterface, *MockTracingInterface, *MockLoggerInterface)
		expectedStatus string
		validate       func(*testing.T, *State)
	}{
		{
			name: "linked",
			setupMocks: func(mockStorage *MockStorageInterface, mockKratos *MockKratosClientInterface, mockTracer *MockTracingInterface, mockLogger *MockLoggerInterface) {
				mockTracer.EXPECT().Start(gomock.Any(), "partnership.Service.GetPartnership").
					Return(context.Background(), trace.SpanFromContext(context.Background()))
				mockStorage.EXPECT().GetPartnershipByUserID(gomock.Any(), userID).Return(partnership, nil)
				mockKratos.EXPECT().GetProfile(gomock.Any(), partnerID).Return(&types.Profile{UserID: partnerID, Email: "alice@example.com", Name: "Alice"}, nil)
			},
			expectedStatus: StateLinked,
			validate: func(t *testing.T, state *State) {
				if state.Partner == nil || state.Partner.Name != "Alice" {
					t.Errorf("expected partner profile, got %+v", state.Partner)
				}
			},
		},
		{
			// Linked state survives a profile lookup failure; the partner shows
			// up with just the user ID.
			name: "linked - partner profile unavailable",
			setupMocks: func(mockStorage *MockStorageInterface, mockKratos *MockKratosClientInterface, mockTracer *MockTracingInterface, mockLogger *MockLoggerInterface) {
				mockTracer.EXPECT().Start(gomock.Any(), "partnership.Service.GetPartnership").
					Return(context.Background(), trace.SpanFromContext(context.Background()))
				mockStorage.EXPECT().GetPartnershipByUserID(gomock.Any(), userID).Return(partnership, nil)
				mockKratos.EXPECT().GetProfile(gomock.Any(), partnerID).Return(nil, errors.New("kratos down"))
				mockLogger.EXPECT().Warnf(gomock.Any(), gomock.Any())
			},
			expectedStatus: StateLinked,
			validate: func(t *testing.T, state *State) {
				if state.Partner == nil || state.Partner.UserID != partnerID {
					t.Errorf("expected placeholder partner, got %+v", state.Partner)
				}
			},
		},
		{
			name: "pending invitations, expired ones filtered",
			setupMocks: func(mockStorage *MockStorageInterface, mockKratos *MockKratosClientInterface, mockTracer *MockTracingInterface, mockLogger *MockLoggerInterface) {
				mockTracer.EXPECT().Start(gomock.Any(), "partnership.Service.GetPartnership").
					Return(context.Background(), trace.SpanFromContext(context.Background()))
				mockStorage.EXPECT().GetPartnershipByUserID(gomock.Any(), userID).Return(nil, storage.ErrNotFound)
				mockTracer.EXPECT().Start(gomock.Any(), "partnership.Service.ListPendingInvitations").
					Return(context.Background(), trace.SpanFromContext(context.Background()))
				mockKratos.EXPECT().GetProfile(gomock.Any(), userID).Return(profile, nil)
				mockStorage.EXPECT().ListPendingInvitationsByEmail(gomock.Any(), profile.Email).Return([]*types.Invitation{
					{ID: "inv-live", Status: types.StatusPending, ExpiresAt: time.Now().UTC().Add(time.Hour)},
					{ID: "inv-stale", Status: types.StatusPending, ExpiresAt: time.Now().UTC().Add(-time.Hour)},
				}, nil)
			},
			expectedStatus: StatePendingInvitations,
			validate: func(t *testing.T, state *State) {
				if len(state.PendingInvitations) != 1 || state.PendingInvitations[0].ID != "inv-live" {
					t.Errorf("expected only the live invitation, got %+v", state.PendingInvitations)
				}
			},
		},
		{
			name: "unlinked",
			setupMocks: func(mockStorage *MockStorageInterface, mockKratos *MockKratosClientInterface, mockTracer *MockTracingInterface, mockLogger *MockLoggerInterface) {
				mockTracer.EXPECT().Start(gomock.Any(), "partnership.Service.GetPartnership").
					Return(context.Background(), trace.SpanFromContext(context.Background()))
				mockStorage.EXPECT().GetPartnershipByUserID(gomock.Any(), userID).Return(nil, storage.ErrNotFound)
				mockTracer.EXPECT().Start(gomock.Any(), "partnership.Service.ListPendingInvitations").
					Return(context.Background(), trace.SpanFromContext(context.Background()))
				mockKratos.EXPECT().GetProfile(gomock.Any(), userID).Return(profile, nil)
				mockStorage.EXPECT().ListPendingInvitationsByEmail(gomock.Any(), profile.Email).Return([]*types.Invitation{}, nil)
			},
			expectedStatus: StateUnlinked,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			mockTx := NewMockTxManagerInterface(ctrl)
			mockKratos := NewMockKratosClientInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)

			s := NewService(mockStorage, mockTx, mockKratos, testLifetime, testBaseURL, mockTracer, mockMonitor, mockLogger)

			mockTracer.EXPECT().Start(gomock.Any(), "partnership.Service.GetPartnershipState").
				Return(context.Background(), trace.SpanFromContext(context.Background()))
			tc.setupMocks(mockStorage, mockKratos, mockTracer, mockLogger)

			state, err := s.GetPartnershipState(context.Background(), userID)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if state.Status != tc.expectedStatus {
				t.Errorf("expected status %q, got %q", tc.expectedStatus, state.Status)
			}
			if tc.validate != nil {
				tc.validate(t, state)
			}
		})
	}
}

func TestService_EndPartnership(t *testing.T) {
	userID := "user-123"
	partnership := &types.Partnership{ID: "p-1", User1ID: userID, User2ID: "partner-456"}

	testCases := []struct {
		name        string
		userID      string
		setupMocks  func(*MockStorageInterface, *MockLoggerInterface, *MockSecurityLoggerInterface)
		expectedErr error
	}{
		{
			name:   "success",
			userID: userID,
			setupMocks: func(mockStorage *MockStorageInterface, mockLogger *MockLoggerInterface, mockSecurity *MockSecurityLoggerInterface) {
				mockStorage.EXPECT().GetPartnershipByID(gomock.Any(), partnership.ID).Return(partnership, nil)
				mockStorage.EXPECT().DeletePartnership(gomock.Any(), partnership.ID).Return(nil)
				mockLogger.EXPECT().Security().Return(mockSecurity)
				mockSecurity.EXPECT().PartnershipEnded(userID, partnership.ID)
			},
			expectedErr: nil,
		},
		{
			name:   "error - not a member",
			userID: "outsider-789",
			setupMocks: func(mockStorage *MockStorageInterface, mockLogger *MockLoggerInterface, mockSecurity *MockSecurityLoggerInterface) {
				mockStorage.EXPECT().GetPartnershipByID(gomock.Any(), partnership.ID).Return(partnership, nil)
				mockLogger.EXPECT().Security().Return(mockSecurity)
				mockSecurity.EXPECT().AuthzFailure("outsider-789", "partnership_end")
			},
			expectedErr: ErrNotMember,
		},
		{
			name:   "error - not found",
			userID: userID,
			setupMocks: func(mockStorage *MockStorageInterface, mockLogger *MockLoggerInterface, mockSecurity *MockSecurityLoggerInterface) {
				mockStorage.EXPECT().GetPartnershipByID(gomock.Any(), partnership.ID).Return(nil, storage.ErrNotFound)
			},
			expectedErr: ErrPartnershipNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			mockTx := NewMockTxManagerInterface(ctrl)
			mockKratos := NewMockKratosClientInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)
			mockSecurity := NewMockSecurityLoggerInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)

			s := NewService(mockStorage, mockTx, mockKratos, testLifetime, testBaseURL, mockTracer, mockMonitor, mockLogger)

			mockTracer.EXPECT().Start(gomock.Any(), "partnership.Service.EndPartnership").
				Return(context.Background(), trace.SpanFromContext(context.Background()))
			passthroughTx(mockTx)
			tc.setupMocks(mockStorage, mockLogger, mockSecurity)

			err := s.EndPartnership(context.Background(), partnership.ID, tc.userID)

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Errorf("expected error %v, got %v", tc.expectedErr, err)
				}
			} else if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}
