package google

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

const (
	defaultRedirectURL = "http://localhost:8080/api/v1/auth/callback-gl"
	userInfoURL        = "https://www.googleapis.com/oauth2/v2/userinfo?access_token="
)

type ItfGoogle interface {
	GetUserExchangeToken(ctx context.Context, code string) ([]byte, error)
	AuthCodeURL(state string) string
	GetConfig() *oauth2.Config
}

type googleProvider struct {
	config *oauth2.Config
}

func New() ItfGoogle {
	redirectURL := os.Getenv("GOOGLE_REDIRECT_URL")
	if redirectURL == "" {
		redirectURL = defaultRedirectURL
	}

	oauthConfgl := &oauth2.Config{
		ClientID:     os.Getenv("GOOGLE_CLIENT_ID"),
		ClientSecret: os.Getenv("GOOGLE_CLIENT_SECRET"),
		RedirectURL:  redirectURL,
		Scopes: []string{
			"https://www.googleapis.com/auth/userinfo.email",
			"https://www.googleapis.com/auth/userinfo.profile",
		},
		Endpoint: google.Endpoint,
	}

	return &googleProvider{config: oauthConfgl}
}

func (g *googleProvider) GetUserExchangeToken(ctx context.Context, code string) ([]byte, error) {
	token, err := g.config.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("exchanging code: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, userInfoURL+url.QueryEscape(token.AccessToken), nil)
	if err != nil {
		return nil, err
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("getting user info: %w", err)
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("user info returned status %d", resp.StatusCode)
	}

	return io.ReadAll(resp.Body)
}

func (g *googleProvider) AuthCodeURL(state string) string {
	return g.config.AuthCodeURL(state, oauth2.AccessTypeOnline)
}

func (g *googleProvider) GetConfig() *oauth2.Config {
	return g.config
}
