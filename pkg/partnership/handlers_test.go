// Copyright 2026 PairBudget Ltd.
// SPDX-License-Identifier: AGPL-3.0

package partnership

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	chi "github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/pairbudget/partner-service/internal/types"
	"github.com/pairbudget/partner-service/pkg/authentication"
)

// expectSpan keeps the incoming context intact so the authenticated user ID
// survives the traced handler.
func expectSpan(mockTracer *MockTracingInterface, name string) {
	mockTracer.EXPECT().Start(gomock.Any(), name).DoAndReturn(
		func(ctx context.Context, _ string, _ ...trace.SpanStartOption) (context.Context, trace.Span) {
			return ctx, trace.SpanFromContext(ctx)
		})
}

func newTestRequest(t *testing.T, method, target string, body interface{}, userID string) *http.Request {
	t.Helper()

	var buf io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal request: %v", err)
		}
		buf = bytes.NewBuffer(payload)
	}

	req := httptest.NewRequest(method, target, buf)
	if userID != "" {
		req = req.WithContext(authentication.WithUserID(req.Context(), userID))
	}
	return req
}

func TestAPI_SendInvitation(t *testing.T) {
	userID := "user-123"
	invitation := &types.Invitation{
		ID:           "inv-1",
		Token:        "tok-abc",
		InviterName:  "Alice",
		InviterEmail: "alice@example.com",
		InviteeEmail: "bob@example.com",
		Status:       types.StatusPending,
		ExpiresAt:    time.Now().UTC().Add(time.Hour),
	}

	tests := []struct {
		name           string
		userID         string
		requestBody    interface{}
		setupMocks     func(*MockServiceInterface, *MockLoggerInterface)
		expectedStatus int
	}{
		{
			name:        "success",
			userID:      userID,
			requestBody: &SendInvitationRequest{Email: "bob@example.com"},
			setupMocks: func(mockSvc *MockServiceInterface, mockLogger *MockLoggerInterface) {
				mockSvc.EXPECT().SendInvitation(gomock.Any(), userID, "bob@example.com").
					Return(invitation, "https://app.pairbudget.test/partner/accept?token=tok-abc", nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "unauthenticated",
			userID:         "",
			requestBody:    &SendInvitationRequest{Email: "bob@example.com"},
			setupMocks:     func(*MockServiceInterface, *MockLoggerInterface) {},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:        "validation error maps to 400",
			userID:      userID,
			requestBody: &SendInvitationRequest{Email: "nope"},
			setupMocks: func(mockSvc *MockServiceInterface, mockLogger *MockLoggerInterface) {
				mockSvc.EXPECT().SendInvitation(gomock.Any(), userID, "nope").Return(nil, "", ErrInvalidEmail)
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:        "invariant violation maps to 409",
			userID:      userID,
			requestBody: &SendInvitationRequest{Email: "bob@example.com"},
			setupMocks: func(mockSvc *MockServiceInterface, mockLogger *MockLoggerInterface) {
				mockSvc.EXPECT().SendInvitation(gomock.Any(), userID, "bob@example.com").Return(nil, "", ErrAlreadyPartnered)
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name:        "unknown error maps to 500",
			userID:      userID,
			requestBody: &SendInvitationRequest{Email: "bob@example.com"},
			setupMocks: func(mockSvc *MockServiceInterface, mockLogger *MockLoggerInterface) {
				mockSvc.EXPECT().SendInvitation(gomock.Any(), userID, "bob@example.com").Return(nil, "", errors.New("boom"))
				mockLogger.EXPECT().Errorf(gomock.Any(), gomock.Any(), gomock.Any())
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockService := NewMockServiceInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)

			api := NewAPI(mockService, mockTracer, mockMonitor, mockLogger)

			expectSpan(mockTracer, "partnership.API.sendInvitation")
			tt.setupMocks(mockService, mockLogger)

			req := newTestRequest(t, http.MethodPost, "/api/v0/partnership/invitations", tt.requestBody, tt.userID)
			w := httptest.NewRecorder()

			mux := chi.NewMux()
			api.RegisterEndpoints(mux)
			mux.ServeHTTP(w, req)

			if w.Code != tt.expectedStatus {
				t.Errorf("expected status %d, got %d. Body: %s", tt.expectedStatus, w.Code, w.Body.String())
			}

			if tt.expectedStatus == http.StatusCreated {
				var resp SendInvitationResponse
				if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
					t.Fatalf("failed to decode response: %v", err)
				}
				if resp.Invitation == nil || resp.Invitation.Token != invitation.Token {
					t.Errorf("expected invitation with token in response, got %+v", resp.Invitation)
				}
				if resp.Link == "" {
					t.Error("expected invitation link in response")
				}
			}
		})
	}
}

func TestAPI_GetState(t *testing.T) {
	userID := "user-123"

	tests := []struct {
		name           string
		state          *State
		expectedStatus string
	}{
		{
			name: "linked",
			state: &State{
				Status:      StateLinked,
				Partnership: &types.Partnership{ID: "p-1", User1ID: "a", User2ID: "b"},
				Partner:     &types.Profile{UserID: "a", Email: "alice@example.com", Name: "Alice"},
			},
			expectedStatus: StateLinked,
		},
		{
			name: "pending invitations",
			state: &State{
				Status: StatePendingInvitations,
				PendingInvitations: []*types.Invitation{
					{ID: "inv-1", Token: "tok", Status: types.StatusPending, ExpiresAt: time.Now().UTC().Add(time.Hour)},
				},
			},
			expectedStatus: StatePendingInvitations,
		},
		{
			name:           "unlinked",
			state:          &State{Status: StateUnlinked},
			expectedStatus: StateUnlinked,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockService := NewMockServiceInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)

			api := NewAPI(mockService, mockTracer, mockMonitor, mockLogger)

			expectSpan(mockTracer, "partnership.API.getState")
			mockService.EXPECT().GetPartnershipState(gomock.Any(), userID).Return(tt.state, nil)

			req := newTestRequest(t, http.MethodGet, "/api/v0/partnership/state", nil, userID)
			w := httptest.NewRecorder()

			mux := chi.NewMux()
			api.RegisterEndpoints(mux)
			mux.ServeHTTP(w, req)

			if w.Code != http.StatusOK {
				t.Fatalf("expected status 200, got %d", w.Code)
			}

			var resp StateResponse
			if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}
			if resp.Status != tt.expectedStatus {
				t.Errorf("expected state %q, got %q", tt.expectedStatus, resp.Status)
			}
		})
	}
}

func TestAPI_AcceptInvitation(t *testing.T) {
	userID := "user-123"
	token := "tok-abc"

	tests := []struct {
		name           string
		serviceErr     error
		expectedStatus int
	}{
		{name: "success", serviceErr: nil, expectedStatus: http.StatusOK},
		{name: "not found", serviceErr: ErrInvitationNotFound, expectedStatus: http.StatusNotFound},
		{name: "expired", serviceErr: ErrInvitationExpired, expectedStatus: http.StatusConflict},
		{name: "consumed", serviceErr: ErrInvitationConsumed, expectedStatus: http.StatusConflict},
		{name: "email mismatch", serviceErr: ErrEmailMismatch, expectedStatus: http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockService := NewMockServiceInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)

			api := NewAPI(mockService, mockTracer, mockMonitor, mockLogger)

			expectSpan(mockTracer, "partnership.API.acceptInvitation")
			if tt.serviceErr != nil {
				mockService.EXPECT().AcceptInvitation(gomock.Any(), token, userID).Return(nil, tt.serviceErr)
			} else {
				mockService.EXPECT().AcceptInvitation(gomock.Any(), token, userID).
					Return(&types.Partnership{ID: "p-1", User1ID: "a", User2ID: userID}, nil)
			}

			req := newTestRequest(t, http.MethodPost, "/api/v0/partnership/invitations/"+token+"/accept", nil, userID)
			w := httptest.NewRecorder()

			mux := chi.NewMux()
			api.RegisterEndpoints(mux)
			mux.ServeHTTP(w, req)

			if w.Code != tt.expectedStatus {
				t.Errorf("expected status %d, got %d. Body: %s", tt.expectedStatus, w.Code, w.Body.String())
			}
		})
	}
}

func TestAPI_GetInvitation_HidesToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockServiceInterface(ctrl)
	mockTracer := NewMockTracingInterface(ctrl)
	mockLogger := NewMockLoggerInterface(ctrl)
	mockMonitor := NewMockMonitorInterface(ctrl)

	api := NewAPI(mockService, mockTracer, mockMonitor, mockLogger)

	expectSpan(mockTracer, "partnership.API.getInvitation")
	mockService.EXPECT().GetInvitationDetails(gomock.Any(), "tok-abc").Return(&types.Invitation{
		ID:        "inv-1",
		Token:     "tok-abc",
		Status:    types.StatusPending,
		ExpiresAt: time.Now().UTC().Add(time.Hour),
	}, nil)

	req := newTestRequest(t, http.MethodGet, "/api/v0/partnership/invitations/tok-abc", nil, "user-123")
	w := httptest.NewRecorder()

	mux := chi.NewMux()
	api.RegisterEndpoints(mux)
	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var resp InvitationResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Token != "" {
		t.Error("preview response must not echo the token")
	}
}
