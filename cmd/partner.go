// Copyright 2026 PairBudget Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/pairbudget/partner-service/pkg/partnership"
)

var partnerCmd = &cobra.Command{
	Use:   "partner",
	Short: "Manage partnership invitations and links",
}

var sendInvitationCmd = &cobra.Command{
	Use:   "invite [email]",
	Short: "Invite a partner by email",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client := newAPIClient()

		var resp partnership.SendInvitationResponse
		err := client.do(context.Background(), http.MethodPost, "/api/v0/partnership/invitations",
			&partnership.SendInvitationRequest{Email: args[0]}, &resp)
		if err != nil {
			return fmt.Errorf("failed to send invitation: %w", err)
		}

		fmt.Printf("Invitation sent to %s\n", resp.Invitation.InviteeEmail)
		fmt.Printf("Link: %s\n", resp.Link)
		return nil
	},
}

var pendingInvitationsCmd = &cobra.Command{
	Use:   "pending",
	Short: "List pending invitations addressed to the authenticated user",
	RunE: func(cmd *cobra.Command, args []string) error {
		client := newAPIClient()

		var resp partnership.ListInvitationsResponse
		err := client.do(context.Background(), http.MethodGet, "/api/v0/partnership/invitations", nil, &resp)
		if err != nil {
			return fmt.Errorf("failed to list invitations: %w", err)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "TOKEN\tFROM\tEMAIL\tEXPIRES_AT")
		for _, inv := range resp.Invitations {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", inv.Token, inv.InviterName, inv.InviterEmail, inv.ExpiresAt)
		}
		w.Flush()
		return nil
	},
}

var showInvitationCmd = &cobra.Command{
	Use:   "show [token]",
	Short: "Show an invitation",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client := newAPIClient()

		var resp partnership.InvitationResponse
		err := client.do(context.Background(), http.MethodGet,
			"/api/v0/partnership/invitations/"+url.PathEscape(args[0]), nil, &resp)
		if err != nil {
			return fmt.Errorf("failed to get invitation: %w", err)
		}

		fmt.Printf("From: %s <%s>\n", resp.InviterName, resp.InviterEmail)
		fmt.Printf("To: %s\n", resp.InviteeEmail)
		fmt.Printf("Status: %s (expired: %v)\n", resp.Status, resp.IsExpired)
		fmt.Printf("Expires at: %s\n", resp.ExpiresAt)
		return nil
	},
}

var acceptInvitationCmd = &cobra.Command{
	Use:   "accept [token]",
	Short: "Accept an invitation",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client := newAPIClient()

		var resp partnership.GetPartnershipResponse
		err := client.do(context.Background(), http.MethodPost,
			"/api/v0/partnership/invitations/"+url.PathEscape(args[0])+"/accept", nil, &resp)
		if err != nil {
			return fmt.Errorf("failed to accept invitation: %w", err)
		}

		fmt.Printf("Partnership created: %s\n", resp.Partnership.ID)
		return nil
	},
}

var revokeInvitationCmd = &cobra.Command{
	Use:   "revoke [token]",
	Short: "Revoke a sent invitation",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client := newAPIClient()

		err := client.do(context.Background(), http.MethodPost,
			"/api/v0/partnership/invitations/"+url.PathEscape(args[0])+"/revoke", nil, nil)
		if err != nil {
			return fmt.Errorf("failed to revoke invitation: %w", err)
		}

		fmt.Printf("Invitation revoked: %s\n", args[0])
		return nil
	},
}

var partnerStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the partnership state for the authenticated user",
	RunE: func(cmd *cobra.Command, args []string) error {
		client := newAPIClient()

		var resp partnership.StateResponse
		err := client.do(context.Background(), http.MethodGet, "/api/v0/partnership/state", nil, &resp)
		if err != nil {
			return fmt.Errorf("failed to get partnership state: %w", err)
		}

		fmt.Printf("State: %s\n", resp.Status)
		if resp.Partner != nil {
			fmt.Printf("Partner: %s <%s>\n", resp.Partner.Name, resp.Partner.Email)
		}
		for _, inv := range resp.PendingInvitations {
			fmt.Printf("Pending invitation from %s <%s>, expires %s\n", inv.InviterName, inv.InviterEmail, inv.ExpiresAt)
		}
		return nil
	},
}

var disconnectCmd = &cobra.Command{
	Use:   "disconnect [partnership-id]",
	Short: "End the partnership",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client := newAPIClient()

		err := client.do(context.Background(), http.MethodDelete,
			"/api/v0/partnership/"+url.PathEscape(args[0]), nil, nil)
		if err != nil {
			return fmt.Errorf("failed to end partnership: %w", err)
		}

		fmt.Printf("Partnership ended: %s\n", args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(partnerCmd)
	partnerCmd.AddCommand(sendInvitationCmd)
	partnerCmd.AddCommand(pendingInvitationsCmd)
	partnerCmd.AddCommand(showInvitationCmd)
	partnerCmd.AddCommand(acceptInvitationCmd)
	partnerCmd.AddCommand(revokeInvitationCmd)
	partnerCmd.AddCommand(partnerStatusCmd)
	partnerCmd.AddCommand(disconnectCmd)
}
