package googleauth

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	googleoauth2 "google.golang.org/api/oauth2/v2"
	"google.golang.org/api/option"
)

var defaultScopes = []string{
	googleoauth2.UserinfoEmailScope,
	googleoauth2.UserinfoProfileScope,
	"openid",
}

// Client runs the OAuth 2.0 web-server flow against Google.
type Client struct {
	config           *oauth2.Config
	httpClient       *http.Client
	userinfoEndpoint string
}

// NewClient creates a Client from a web application's client id and secret.
func NewClient(clientID, clientSecret, redirectURL string) *Client {
	return &Client{
		config: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  redirectURL,
			Scopes:       defaultScopes,
			Endpoint:     google.Endpoint,
		},
	}
}

// NewClientFromCredentialsFile creates a Client from a downloaded OAuth client JSON file.
// redirectURL overrides the first redirect URI of the file when non-empty.
func NewClientFromCredentialsFile(credentialsPath, redirectURL string) (*Client, error) {
	data, err := os.ReadFile(credentialsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials file: %w", err)
	}

	config, err := google.ConfigFromJSON(data, defaultScopes...)
	if err != nil {
		return nil, fmt.Errorf("failed to parse credentials: %w", err)
	}
	if redirectURL != "" {
		config.RedirectURL = redirectURL
	}
	return &Client{config: config}, nil
}

// SetEndpoints points the token exchange and userinfo lookup at other servers.
func (c *Client) SetEndpoints(httpClient *http.Client, tokenURL, userinfoEndpoint string) {
	c.httpClient = httpClient
	c.config.Endpoint.TokenURL = tokenURL
	c.userinfoEndpoint = userinfoEndpoint
}

// SetRedirectURL replaces the callback URL registered with Google.
func (c *Client) SetRedirectURL(redirectURL string) {
	c.config.RedirectURL = redirectURL
}

// RedirectURL returns the callback URL in use.
func (c *Client) RedirectURL() string {
	return c.config.RedirectURL
}

// AuthCodeURL returns the consent page URL for state.
func (c *Client) AuthCodeURL(state string) string {
	return c.config.AuthCodeURL(state, oauth2.SetAuthURLParam("prompt", "select_account"))
}

// Exchange trades an authorization code for the caller's Google identity.
func (c *Client) Exchange(ctx context.Context, code string) (Identity, error) {
	if code == "" {
		return Identity{}, ErrMissingCode
	}
	if c.httpClient != nil {
		ctx = context.WithValue(ctx, oauth2.HTTPClient, c.httpClient)
	}

	tok, err := c.config.Exchange(ctx, code)
	if err != nil {
		return Identity{}, fmt.Errorf("failed to exchange authorization code: %w", err)
	}

	opts := []option.ClientOption{option.WithHTTPClient(c.config.Client(ctx, tok))}
	if c.userinfoEndpoint != "" {
		opts = append(opts, option.WithEndpoint(c.userinfoEndpoint))
	}
	svc, err := googleoauth2.NewService(ctx, opts...)
	if err != nil {
		return Identity{}, fmt.Errorf("failed to create oauth2 service: %w", err)
	}

	info, err := svc.Userinfo.Get().Context(ctx).Do()
	if err != nil {
		return Identity{}, fmt.Errorf("failed to fetch userinfo: %w", err)
	}
	if info.Email == "" {
		return Identity{}, ErrMissingIdentity
	}

	verified := false
	if info.VerifiedEmail != nil {
		verified = *info.VerifiedEmail
	}

	return Identity{
		ID:            info.Id,
		Email:         info.Email,
		VerifiedEmail: verified,
		Name:          info.Name,
		Picture:       info.Picture,
	}, nil
}
