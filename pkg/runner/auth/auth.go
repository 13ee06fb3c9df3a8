// Package auth provides the runner logic for the Notion OAuth flow.
package auth

import (
	"context"
	"errors"
	"fmt"
	"log"

	"tableflip.dev/notify/pkg/creds"
)

// Auth connects (or disconnects) the CLI from a Notion workspace.
type Auth struct {
	ClientID     string
	ClientSecret string
	Store        creds.Store
	// Clear removes the stored token without starting a new flow.
	Clear bool
}

// Do runs the authorization-code flow and persists the resulting token. Any
// previously stored token is discarded first.
func (n *Auth) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not authenticate, no credential store")
	}

	if _, err := creds.Token(n.Store); err == nil {
		log.Println("Removing existing Notion token")
		if err := n.Store.Clear(creds.KeyToken); err != nil {
			return fmt.Errorf("could not clear stored token: %w", err)
		}
	}
	if n.Clear {
		fmt.Println("Notion credentials cleared.")
		return nil
	}

	if n.ClientID == "" || n.ClientSecret == "" {
		return errors.New("client_id and client_secret must be set in .notify.yaml (or NOTIFY_CLIENT_ID / NOTIFY_CLIENT_SECRET)")
	}

	config := creds.OAuthConfig(n.ClientID, n.ClientSecret)
	if _, err := creds.Authorize(ctx, config, n.Store); err != nil {
		return err
	}
	fmt.Println("Authentication successful! Token saved.")
	return nil
}
