// Copyright 2026 PairBudget Ltd.
// SPDX-License-Identifier: AGPL-3.0

package kratos

import (
	"context"
	"fmt"
	"net/http"

	ory "github.com/ory/client-go"

	"github.com/pairbudget/partner-service/internal/logging"
	"github.com/pairbudget/partner-service/internal/monitoring"
	"github.com/pairbudget/partner-service/internal/tracing"
	"github.com/pairbudget/partner-service/internal/types"
)

type ClientInterface interface {
	GetIdentityIDByEmail(ctx context.Context, email string) (string, error)
	GetProfile(ctx context.Context, identityID string) (*types.Profile, error)
}

type Client struct {
	client  *ory.APIClient
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewClient(kratosAdminURL string, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Client {
	conf := ory.NewConfiguration()
	conf.Servers = ory.ServerConfigurations{{URL: kratosAdminURL}}
	return &Client{
		client:  ory.NewAPIClient(conf),
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

func (c *Client) GetIdentityIDByEmail(ctx context.Context, email string) (string, error) {
	ctx, span := c.tracer.Start(ctx, "kratos.GetIdentityIDByEmail")
	defer span.End()

	// List identities with credentials_identifier filter (email)
	// NOTE: we are setting an empty page token because of https://github.com/ory/sdk/issues/461
	ids, r, err := c.client.IdentityAPI.ListIdentities(ctx).CredentialsIdentifier(email).PageToken("").Execute()
	if err != nil {
		if r != nil && r.StatusCode == http.StatusNotFound {
			return "", nil
		}
		return "", fmt.Errorf("failed to list identities: %w", err)
	}

	if len(ids) == 0 {
		return "", nil
	}

	// Assuming uniqueness of email
	return ids[0].Id, nil
}

// GetProfile fetches an identity and extracts the traits the linking protocol
// reads: email and display name. A missing name trait yields an empty Name,
// which callers treat as "display name not set".
func (c *Client) GetProfile(ctx context.Context, identityID string) (*types.Profile, error) {
	ctx, span := c.tracer.Start(ctx, "kratos.GetProfile")
	defer span.End()

	identity, _, err := c.client.IdentityAPI.GetIdentity(ctx, identityID).Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to get identity: %w", err)
	}

	profile := &types.Profile{UserID: identity.Id}

	traits, ok := identity.Traits.(map[string]interface{})
	if !ok {
		return profile, nil
	}

	if email, ok := traits["email"].(string); ok {
		profile.Email = email
	}
	if name, ok := traits["name"].(string); ok {
		profile.Name = name
	}

	return profile, nil
}
