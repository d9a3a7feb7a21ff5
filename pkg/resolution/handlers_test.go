// Copyright 2026 PairBudget Ltd.
// SPDX-License-Identifier: AGPL-3.0

package resolution

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	chi "github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/pairbudget/partner-service/internal/types"
	"github.com/pairbudget/partner-service/pkg/authentication"
)

var testURLs = URLs{
	AppBaseURL:      "https://app.pairbudget.test",
	LoginPath:       "/login",
	PartnershipPath: "/partnership",
}

func expectSpan(mockTracer *MockTracingInterface, name string) {
	mockTracer.EXPECT().Start(gomock.Any(), name).DoAndReturn(
		func(ctx context.Context, _ string, _ ...trace.SpanStartOption) (context.Context, trace.Span) {
			return ctx, trace.SpanFromContext(ctx)
		})
}

func TestAPI_Accept(t *testing.T) {
	userID := "user-123"
	profile := &types.Profile{UserID: userID, Email: "bob@example.com", Name: "Bob"}

	tests := []struct {
		name             string
		target           string
		userID           string
		setupMocks       func(*MockResolverInterface, *MockProfileProviderInterface, *MockLoggerInterface)
		expectedStatus   int
		expectedLocation string
	}{
		{
			name:   "no session redirects to login with return path",
			target: "/partner/accept?token=tok-abc",
			userID: "",
			setupMocks: func(mockResolver *MockResolverInterface, mockProfiles *MockProfileProviderInterface, mockLogger *MockLoggerInterface) {
				mockResolver.EXPECT().Resolve(gomock.Any(), "tok-abc", nil).
					Return(Outcome{Kind: KindRedirectToLogin, Reason: ReasonNoSession})
			},
			expectedStatus:   http.StatusSeeOther,
			expectedLocation: "https://app.pairbudget.test/login?return_to=%2Fpartnership",
		},
		{
			name:   "missing token redirects to login",
			target: "/partner/accept",
			userID: "",
			setupMocks: func(mockResolver *MockResolverInterface, mockProfiles *MockProfileProviderInterface, mockLogger *MockLoggerInterface) {
				mockResolver.EXPECT().Resolve(gomock.Any(), "", nil).
					Return(Outcome{Kind: KindRedirectToLogin, Reason: ReasonNoToken})
			},
			expectedStatus:   http.StatusSeeOther,
			expectedLocation: "https://app.pairbudget.test/login?return_to=%2Fpartnership",
		},
		{
			name:   "failure falls open to the partnership screen",
			target: "/partner/accept?token=tok-abc",
			userID: userID,
			setupMocks: func(mockResolver *MockResolverInterface, mockProfiles *MockProfileProviderInterface, mockLogger *MockLoggerInterface) {
				mockProfiles.EXPECT().GetProfile(gomock.Any(), userID).Return(profile, nil)
				mockResolver.EXPECT().Resolve(gomock.Any(), "tok-abc", &Identity{UserID: userID, Email: profile.Email}).
					Return(Outcome{Kind: KindRedirectToPartnership, Reason: ReasonNotActionable})
			},
			expectedStatus:   http.StatusSeeOther,
			expectedLocation: "https://app.pairbudget.test/partnership",
		},
		{
			name:   "profile lookup failure falls open without resolving",
			target: "/partner/accept?token=tok-abc",
			userID: userID,
			setupMocks: func(mockResolver *MockResolverInterface, mockProfiles *MockProfileProviderInterface, mockLogger *MockLoggerInterface) {
				mockProfiles.EXPECT().GetProfile(gomock.Any(), userID).Return(nil, errors.New("kratos down"))
				mockLogger.EXPECT().Errorf(gomock.Any(), gomock.Any(), gomock.Any())
			},
			expectedStatus:   http.StatusSeeOther,
			expectedLocation: "https://app.pairbudget.test/partnership",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockResolver := NewMockResolverInterface(ctrl)
			mockProfiles := NewMockProfileProviderInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)

			api := NewAPI(mockResolver, mockProfiles, testURLs, 3*time.Second, mockTracer, mockMonitor, mockLogger)

			expectSpan(mockTracer, "resolution.API.accept")
			tt.setupMocks(mockResolver, mockProfiles, mockLogger)

			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			if tt.userID != "" {
				req = req.WithContext(authentication.WithUserID(req.Context(), tt.userID))
			}
			w := httptest.NewRecorder()

			mux := chi.NewMux()
			api.RegisterEndpoints(mux)
			mux.ServeHTTP(w, req)

			if w.Code != tt.expectedStatus {
				t.Errorf("expected status %d, got %d", tt.expectedStatus, w.Code)
			}
			if got := w.Header().Get("Location"); got != tt.expectedLocation {
				t.Errorf("expected redirect to %q, got %q", tt.expectedLocation, got)
			}
		})
	}
}

func TestAPI_Accept_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := "user-123"
	profile := &types.Profile{UserID: userID, Email: "bob@example.com", Name: "Bob"}

	mockResolver := NewMockResolverInterface(ctrl)
	mockProfiles := NewMockProfileProviderInterface(ctrl)
	mockTracer := NewMockTracingInterface(ctrl)
	mockLogger := NewMockLoggerInterface(ctrl)
	mockMonitor := NewMockMonitorInterface(ctrl)

	api := NewAPI(mockResolver, mockProfiles, testURLs, 3*time.Second, mockTracer, mockMonitor, mockLogger)

	expectSpan(mockTracer, "resolution.API.accept")
	mockProfiles.EXPECT().GetProfile(gomock.Any(), userID).Return(profile, nil)
	mockResolver.EXPECT().Resolve(gomock.Any(), "tok-abc", &Identity{UserID: userID, Email: profile.Email}).
		Return(Outcome{Kind: KindShowSuccess, Partnership: &types.Partnership{ID: "p-1"}})

	req := httptest.NewRequest(http.MethodGet, "/partner/accept?token=tok-abc", nil)
	req = req.WithContext(authentication.WithUserID(req.Context(), userID))
	w := httptest.NewRecorder()

	mux := chi.NewMux()
	api.RegisterEndpoints(mux)
	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("expected HTML content type, got %q", ct)
	}

	body := w.Body.String()
	if !strings.Contains(body, `http-equiv="refresh" content="3;url=https://app.pairbudget.test/partnership"`) {
		t.Errorf("expected delayed meta refresh to the partnership screen, body: %s", body)
	}
	if !strings.Contains(body, "now linked") {
		t.Error("expected confirmation copy on the success page")
	}
}
