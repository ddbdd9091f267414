package officernd

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"sync"
	"time"

	"communitysync/lib/telemetry"

	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("officernd")

const (
	TokenEndpoint = "https://identity.officernd.com/oauth/token"
	APIBase       = "https://app.officernd.com/api/v2"

	tokenScope  = "flex.community.members.read flex.community.companies.read"
	cursorParam = "$cursorNext"

	// a cached token this close to expiry is treated as expired
	tokenExpiryMargin = time.Second * 60
)

// Credentials for the client-credentials grant. OrgSlug is not part of the
// grant itself but every resource endpoint needs it, so it is validated with
// the rest.
type Credentials struct {
	ClientID     string `json:"client_id"`
	ClientSecret string `json:"client_secret"`
	OrgSlug      string `json:"org_slug"`
}

func (c Credentials) Validate() error {
	var missing []string
	if c.ClientID == "" {
		missing = append(missing, "client_id")
	}
	if c.ClientSecret == "" {
		missing = append(missing, "client_secret")
	}
	if c.OrgSlug == "" {
		missing = append(missing, "org_slug")
	}
	if len(missing) > 0 {
		return &ConfigError{Missing: missing}
	}
	return nil
}

// TokenCache holds the one access token the process is allowed to hold. The
// token endpoint is rate-limited to 5 requests a minute, so reusing a live
// token is a correctness requirement, not an optimization.
type TokenCache struct {
	mu        sync.Mutex
	token     string
	expiresAt time.Time
}

func (tc *TokenCache) get(now time.Time) (string, bool) {
	tc.mu.Lock()
	defer tc.mu.Unlock()
	if tc.token == "" || !now.Add(tokenExpiryMargin).Before(tc.expiresAt) {
		return "", false
	}
	return tc.token, true
}

func (tc *TokenCache) set(token string, expiresAt time.Time) {
	tc.mu.Lock()
	defer tc.mu.Unlock()
	tc.token = token
	tc.expiresAt = expiresAt
}

// Clear drops the cached token unconditionally, forcing re-authentication on
// the next request.
func (tc *TokenCache) Clear() {
	tc.mu.Lock()
	defer tc.mu.Unlock()
	tc.token = ""
	tc.expiresAt = time.Time{}
}

type Client struct {
	creds         Credentials
	http          *resty.Client
	cache         *TokenCache
	tokenEndpoint string
	baseURL       string
}

type ClientOptions struct {
	Credentials Credentials
	// endpoint overrides for tests; production defaults when empty
	TokenEndpoint string
	BaseURL       string
	// a shared cache to reuse across clients; a fresh one when nil
	Cache *TokenCache
}

func NewClient(opts ClientOptions) (*Client, error) {
	if err := opts.Credentials.Validate(); err != nil {
		return nil, err
	}
	if opts.TokenEndpoint == "" {
		opts.TokenEndpoint = TokenEndpoint
	}
	if opts.BaseURL == "" {
		opts.BaseURL = APIBase
	}
	if opts.Cache == nil {
		opts.Cache = &TokenCache{}
	}

	client := resty.New()
	client.SetHeader("accept", "application/json")
	client.SetTimeout(time.Second * 30)

	telemetry.InstrumentResty(client, "officernd/http")

	return &Client{
		creds:         opts.Credentials,
		http:          client,
		cache:         opts.Cache,
		tokenEndpoint: opts.TokenEndpoint,
		baseURL:       opts.BaseURL,
	}, nil
}

// Cache exposes the token cache so callers can force re-authentication.
func (c *Client) Cache() *TokenCache {
	return c.cache
}

// AccessToken returns a live bearer token, reusing the cached one while it
// has more than a minute left and performing a client-credentials grant
// otherwise.
func (c *Client) AccessToken(ctx context.Context) (string, error) {
	ctx, span := tracer.Start(ctx, "client:AccessToken")
	defer span.End()

	if token, ok := c.cache.get(time.Now()); ok {
		span.SetStatus(codes.Ok, "CACHE HIT")
		return token, nil
	}

	form := url.Values{}
	form.Add("grant_type", "client_credentials")
	form.Add("client_id", c.creds.ClientID)
	form.Add("client_secret", c.creds.ClientSecret)
	form.Add("scope", tokenScope)

	res, err := c.http.R().
		SetContext(ctx).
		SetHeader("content-type", "application/x-www-form-urlencoded").
		SetBody(form.Encode()).
		Post(c.tokenEndpoint)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "token request failed")
		return "", fmt.Errorf("token request to %s failed: %w", c.tokenEndpoint, err)
	}
	if res.IsError() {
		authErr := &AuthError{
			Status:   res.StatusCode(),
			Endpoint: c.tokenEndpoint,
			Message:  errorBodyMessage(res.Body(), "token endpoint returned an error"),
		}
		span.SetStatus(codes.Error, authErr.Message)
		return "", authErr
	}

	var grant struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
		ExpiresIn   int    `json:"expires_in"`
		Scope       string `json:"scope"`
	}
	if err := json.Unmarshal(res.Body(), &grant); err != nil {
		authErr := &AuthError{
			Status:   res.StatusCode(),
			Endpoint: c.tokenEndpoint,
			Message:  "token response is not valid JSON",
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, authErr.Message)
		return "", authErr
	}
	if grant.AccessToken == "" || grant.ExpiresIn <= 0 {
		authErr := &AuthError{
			Status:   res.StatusCode(),
			Endpoint: c.tokenEndpoint,
			Message:  "token response is missing access_token or expires_in",
		}
		span.SetStatus(codes.Error, authErr.Message)
		return "", authErr
	}

	c.cache.set(grant.AccessToken, time.Now().Add(time.Duration(grant.ExpiresIn)*time.Second))
	return grant.AccessToken, nil
}

// fetchAllPages follows cursorNext until a page omits it, accumulating every
// page's results in response order. The loop trusts the server's cursors
// verbatim: there is no page ceiling and a server that repeats a cursor will
// loop forever.
func fetchAllPages[T any](ctx context.Context, c *Client, endpoint, token string) ([]T, error) {
	ctx, span := tracer.Start(ctx, "fetchAllPages")
	defer span.End()
	span.SetAttributes(attribute.String("endpoint", endpoint))

	var all []T
	cursor := ""
	pages := 0
	for {
		req := c.http.R().
			SetContext(ctx).
			SetAuthToken(token).
			SetHeader("accept", "application/json")
		if cursor != "" {
			req.SetQueryParam(cursorParam, cursor)
		}

		res, err := req.Get(endpoint)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "page request failed")
			return nil, fmt.Errorf("request to %s failed: %w", endpoint, err)
		}
		if res.IsError() {
			apiErr := &APIError{
				Status:   res.StatusCode(),
				Endpoint: endpoint,
				Message:  errorBodyMessage(res.Body(), "resource endpoint returned an error"),
			}
			span.SetStatus(codes.Error, apiErr.Message)
			return nil, apiErr
		}

		var pg page[T]
		if err := json.Unmarshal(res.Body(), &pg); err != nil {
			apiErr := &APIError{
				Status:   res.StatusCode(),
				Endpoint: endpoint,
				Message:  "response body is not valid JSON",
			}
			span.RecordError(err)
			span.SetStatus(codes.Error, apiErr.Message)
			return nil, apiErr
		}

		all = append(all, pg.Results...)
		pages++
		if pg.CursorNext == "" {
			break
		}
		cursor = pg.CursorNext
	}

	span.SetAttributes(
		attribute.Int("pages", pages),
		attribute.Int("records", len(all)),
	)
	return all, nil
}

func (c *Client) resourceEndpoint(resource string) string {
	return fmt.Sprintf("%s/organizations/%s/%s", c.baseURL, c.creds.OrgSlug, resource)
}

// FetchMembers returns every member record of the organization, in API order,
// untransformed.
func (c *Client) FetchMembers(ctx context.Context) ([]Member, error) {
	ctx, span := tracer.Start(ctx, "client:FetchMembers")
	defer span.End()

	token, err := c.AccessToken(ctx)
	if err != nil {
		span.SetStatus(codes.Error, "failed to obtain access token")
		return nil, err
	}
	return fetchAllPages[Member](ctx, c, c.resourceEndpoint("members"), token)
}

// FetchCompanies returns every company record of the organization, in API
// order, untransformed.
func (c *Client) FetchCompanies(ctx context.Context) ([]Company, error) {
	ctx, span := tracer.Start(ctx, "client:FetchCompanies")
	defer span.End()

	token, err := c.AccessToken(ctx)
	if err != nil {
		span.SetStatus(codes.Error, "failed to obtain access token")
		return nil, err
	}
	return fetchAllPages[Company](ctx, c, c.resourceEndpoint("companies"), token)
}
