// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 MoleculeInsight Authors

package adapter

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/molecule-insight/insight-server/internal/config"
	"github.com/molecule-insight/insight-server/internal/logger"
	"github.com/molecule-insight/insight-server/models"
)

const (
	googleAuthURL     = "https://accounts.google.com/o/oauth2/auth"
	googleTokenURL    = "https://oauth2.googleapis.com/token"
	googleUserInfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"

	oauthCallbackPath = "/api/auth/callback/google"
	oauthTimeout      = 10 * time.Second
)

type googleTokenResponse struct {
	AccessToken string `json:"access_token"`
}

type googleOAuth struct {
	client *resty.Client

	clientID     string
	clientSecret string
	redirectBase string

	authURL     string
	tokenURL    string
	userInfoURL string

	logger *logger.Logger
}

// NewGoogleOAuth constructs a [GoogleOAuthAdapter] from the OAuth client
// credentials. The redirect URI sent to Google is derived from
// oauthCfg.RedirectBase plus the callback route.
func NewGoogleOAuth(oauthCfg config.OAuth, logger *logger.Logger) GoogleOAuthAdapter {
	return &googleOAuth{
		client:       resty.New().SetTimeout(oauthTimeout),
		clientID:     oauthCfg.GoogleClientID,
		clientSecret: oauthCfg.GoogleClientSecret,
		redirectBase: oauthCfg.RedirectBase,
		authURL:      googleAuthURL,
		tokenURL:     googleTokenURL,
		userInfoURL:  googleUserInfoURL,
		logger:       logger,
	}
}

// AuthURL implements [GoogleOAuthAdapter]. It builds the consent-screen URL
// with the openid/profile/email scopes; state carries the flow intent.
func (g *googleOAuth) AuthURL(state string) string {
	params := url.Values{
		"client_id":     {g.clientID},
		"redirect_uri":  {g.redirectURI()},
		"scope":         {"openid profile email"},
		"response_type": {"code"},
		"access_type":   {"offline"},
		"prompt":        {"consent"},
		"state":         {state},
	}

	return g.authURL + "?" + params.Encode()
}

// ExchangeCode implements [GoogleOAuthAdapter]. It POSTs the authorization
// code to the token endpoint and fetches the account's userinfo with the
// returned access token. Both steps must succeed; any failure is wrapped in
// [ErrOAuthExchange].
func (g *googleOAuth) ExchangeCode(ctx context.Context, code string) (models.GoogleUser, error) {
	var tokens googleTokenResponse

	resp, err := g.client.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"client_id":     g.clientID,
			"client_secret": g.clientSecret,
			"code":          code,
			"grant_type":    "authorization_code",
			"redirect_uri":  g.redirectURI(),
		}).
		SetResult(&tokens).
		Post(g.tokenURL)
	if err != nil {
		return models.GoogleUser{}, fmt.Errorf("%w: token request: %v", ErrOAuthExchange, err)
	}
	if resp.IsError() || tokens.AccessToken == "" {
		return models.GoogleUser{}, fmt.Errorf("%w: no access token (http %d)", ErrOAuthExchange, resp.StatusCode())
	}

	var googleUser models.GoogleUser

	resp, err = g.client.R().
		SetContext(ctx).
		SetQueryParam("access_token", tokens.AccessToken).
		SetResult(&googleUser).
		Get(g.userInfoURL)
	if err != nil {
		return models.GoogleUser{}, fmt.Errorf("%w: userinfo request: %v", ErrOAuthExchange, err)
	}
	if resp.IsError() || googleUser.Email == "" {
		return models.GoogleUser{}, fmt.Errorf("%w: userinfo returned http %d", ErrOAuthExchange, resp.StatusCode())
	}

	return googleUser, nil
}

func (g *googleOAuth) redirectURI() string {
	return g.redirectBase + oauthCallbackPath
}
