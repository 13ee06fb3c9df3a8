package creds

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log"
	"net"
	"net/http"
	"time"

	"golang.org/x/oauth2"
)

// AuthPort is the local port used to capture the OAuth redirect. The Notion
// integration must list http://localhost:<AuthPort>/callback as a redirect
// URI.
const AuthPort = "6789"

// Endpoint is Notion's OAuth2 endpoint. Notion authenticates the token
// exchange with HTTP basic auth on the client id and secret.
var Endpoint = oauth2.Endpoint{
	AuthURL:   "https://api.notion.com/v1/oauth/authorize",
	TokenURL:  "https://api.notion.com/v1/oauth/token",
	AuthStyle: oauth2.AuthStyleInHeader,
}

// OAuthConfig builds the oauth2 config for this integration.
func OAuthConfig(clientID, clientSecret string) *oauth2.Config {
	return &oauth2.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		Endpoint:     Endpoint,
		RedirectURL:  fmt.Sprintf("http://localhost:%s/callback", AuthPort),
	}
}

// Authorize runs the authorization-code flow: it starts a local server to
// capture the redirect, prints the authorization URL for the user to open,
// exchanges the returned code, and persists the token in the store.
func Authorize(ctx context.Context, config *oauth2.Config, s Store) (*oauth2.Token, error) {
	codeCh := make(chan string)
	errCh := make(chan error)

	listener, err := net.Listen("tcp", ":"+AuthPort)
	if err != nil {
		return nil, fmt.Errorf("creds: failed to listen on port %s: %w", AuthPort, err)
	}
	defer listener.Close()

	state := randomState()
	server := &http.Server{
		Handler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Query().Get("state") != state {
				http.Error(w, "state mismatch", http.StatusBadRequest)
				errCh <- fmt.Errorf("creds: state mismatch in redirect")
				return
			}
			code := r.URL.Query().Get("code")
			if code == "" {
				http.Error(w, "authorization code not found", http.StatusBadRequest)
				errCh <- fmt.Errorf("creds: authorization code not found in redirect")
				return
			}
			fmt.Fprint(w, "Authentication successful! You can close this window.")
			codeCh <- code
		}),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		if err := server.Serve(listener); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("creds: callback server: %w", err)
		}
	}()

	// Notion requires owner=user on the authorization URL.
	authURL := config.AuthCodeURL(state, oauth2.SetAuthURLParam("owner", "user"))
	fmt.Printf("Open the following URL in your browser to connect Notion:\n\n%s\n\n", authURL)
	log.Println("Waiting for authorization...")

	select {
	case code := <-codeCh:
		exchangeCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
		defer cancel()
		tok, err := config.Exchange(exchangeCtx, code)
		if err != nil {
			return nil, fmt.Errorf("creds: token exchange failed: %w", err)
		}
		_ = server.Shutdown(exchangeCtx)
		if err := SaveToken(s, tok); err != nil {
			return nil, fmt.Errorf("creds: could not persist token: %w", err)
		}
		return tok, nil
	case err := <-errCh:
		return nil, err
	case <-time.After(5 * time.Minute):
		_ = server.Shutdown(context.Background())
		return nil, fmt.Errorf("creds: authorization timed out, please try again")
	case <-ctx.Done():
		_ = server.Shutdown(context.Background())
		return nil, ctx.Err()
	}
}

func randomState() string {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return fmt.Sprintf("state-%d", time.Now().UnixNano())
	}
	return hex.EncodeToString(b)
}
