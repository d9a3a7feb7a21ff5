// Copyright 2026 PairBudget Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

type LoggerInterface interface {
	Debug(args ...interface{})
	Info(args ...interface{})
	Warn(args ...interface{})
	Error(args ...interface{})
	Debugf(template string, args ...interface{})
	Infof(template string, args ...interface{})
	Warnf(template string, args ...interface{})
	Errorf(template string, args ...interface{})
	Fatalf(template string, args ...interface{})
	Security() SecurityLoggerInterface
}

// SecurityLoggerInterface emits structured audit events for the account
// linking lifecycle and process boundaries.
type SecurityLoggerInterface interface {
	SystemStartup()
	SystemShutdown()
	AuthzFailure(subject, action string)
	InvitationIssued(inviterID, inviteeEmail string)
	InvitationConsumed(userID, invitationID string)
	InvitationRevoked(userID, invitationID string)
	PartnershipEnded(userID, partnershipID string)
}
