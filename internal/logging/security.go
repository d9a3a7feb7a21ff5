// Copyright 2026 PairBudget Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

import (
	"go.uber.org/zap"
)

// SecurityLogger writes audit events on a dedicated "security" logger so they
// can be routed separately from application logs.
type SecurityLogger struct {
	l *zap.Logger
}

func NewSecurityLogger(logger *zap.Logger) *SecurityLogger {
	return &SecurityLogger{l: logger.Named("security")}
}

func (s *SecurityLogger) SystemStartup() {
	s.l.Info("system startup", zap.String("event", "system_startup"))
}

func (s *SecurityLogger) SystemShutdown() {
	s.l.Info("system shutdown", zap.String("event", "system_shutdown"))
}

func (s *SecurityLogger) AuthzFailure(subject, action string) {
	s.l.Warn("authorization failure",
		zap.String("event", "authz_failure"),
		zap.String("subject", subject),
		zap.String("action", action),
	)
}

func (s *SecurityLogger) InvitationIssued(inviterID, inviteeEmail string) {
	s.l.Info("invitation issued",
		zap.String("event", "invitation_issued"),
		zap.String("inviter_id", inviterID),
		zap.String("invitee_email", inviteeEmail),
	)
}

func (s *SecurityLogger) InvitationConsumed(userID, invitationID string) {
	s.l.Info("invitation consumed",
		zap.String("event", "invitation_consumed"),
		zap.String("user_id", userID),
		zap.String("invitation_id", invitationID),
	)
}

func (s *SecurityLogger) InvitationRevoked(userID, invitationID string) {
	s.l.Info("invitation revoked",
		zap.String("event", "invitation_revoked"),
		zap.String("user_id", userID),
		zap.String("invitation_id", invitationID),
	)
}

func (s *SecurityLogger) PartnershipEnded(userID, partnershipID string) {
	s.l.Info("partnership ended",
		zap.String("event", "partnership_ended"),
		zap.String("user_id", userID),
		zap.String("partnership_id", partnershipID),
	)
}
