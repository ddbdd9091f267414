package officernd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"communitysync/lib/telemetry"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testCreds = Credentials{
	ClientID:     "test-client",
	ClientSecret: "test-secret",
	OrgSlug:      "socentral",
}

func tokenHandler(t *testing.T, requests *int32, expiresIn int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(requests, 1)

		assert.Equal(t, http.MethodPost, r.Method)
		assert.NoError(t, r.ParseForm())
		assert.Equal(t, "client_credentials", r.PostForm.Get("grant_type"))
		assert.Equal(t, testCreds.ClientID, r.PostForm.Get("client_id"))
		assert.Equal(t, testCreds.ClientSecret, r.PostForm.Get("client_secret"))
		assert.Equal(t, tokenScope, r.PostForm.Get("scope"))

		w.Header().Set("content-type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"access_token": "tok-1",
			"token_type":   "Bearer",
			"expires_in":   expiresIn,
			"scope":        tokenScope,
		})
	}
}

func newTestClient(t *testing.T, tokenEndpoint, baseURL string) *Client {
	client, err := NewClient(ClientOptions{
		Credentials:   testCreds,
		TokenEndpoint: tokenEndpoint,
		BaseURL:       baseURL,
	})
	require.NoError(t, err)
	return client
}

func TestAccessTokenCaching(t *testing.T) {
	cleanup := telemetry.SetupForTesting(t, "test:officernd")
	defer cleanup()

	var tokenRequests int32
	srv := httptest.NewServer(tokenHandler(t, &tokenRequests, 3600))
	defer srv.Close()

	client := newTestClient(t, srv.URL, srv.URL)
	ctx := context.Background()

	first, err := client.AccessToken(ctx)
	require.NoError(t, err)
	second, err := client.AccessToken(ctx)
	require.NoError(t, err)

	require.Equal(t, "tok-1", first)
	require.Equal(t, first, second)
	require.EqualValues(t, 1, atomic.LoadInt32(&tokenRequests))

	client.Cache().Clear()
	_, err = client.AccessToken(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 2, atomic.LoadInt32(&tokenRequests))
}

func TestAccessTokenExpiryMargin(t *testing.T) {
	// a token with less than 60s left must not be reused
	var tokenRequests int32
	srv := httptest.NewServer(tokenHandler(t, &tokenRequests, 30))
	defer srv.Close()

	client := newTestClient(t, srv.URL, srv.URL)
	ctx := context.Background()

	_, err := client.AccessToken(ctx)
	require.NoError(t, err)
	_, err = client.AccessToken(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 2, atomic.LoadInt32(&tokenRequests))
}

func TestAccessTokenErrorResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("content-type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		fmt.Fprint(w, `{"error":"invalid_client","error_description":"Client authentication failed"}`)
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL, srv.URL)
	_, err := client.AccessToken(context.Background())

	var authErr *AuthError
	require.ErrorAs(t, err, &authErr)
	require.Equal(t, http.StatusUnauthorized, authErr.Status)
	require.Equal(t, srv.URL, authErr.Endpoint)
	require.Equal(t, "Client authentication failed", authErr.Message)
}

func TestAccessTokenErrorBodyNotJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		fmt.Fprint(w, "<html>upstream down</html>")
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL, srv.URL)
	_, err := client.AccessToken(context.Background())

	var authErr *AuthError
	require.ErrorAs(t, err, &authErr)
	require.Equal(t, "token endpoint returned an error", authErr.Message)
}

func TestAccessTokenMalformedGrant(t *testing.T) {
	testCases := []struct {
		name string
		body string
	}{
		{name: "missing access_token", body: `{"token_type":"Bearer","expires_in":3600}`},
		{name: "missing expires_in", body: `{"access_token":"tok-1","token_type":"Bearer"}`},
		{name: "not json", body: `ok`},
	}

	for _, test := range testCases {
		t.Run(test.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprint(w, test.body)
			}))
			defer srv.Close()

			client := newTestClient(t, srv.URL, srv.URL)
			_, err := client.AccessToken(context.Background())

			var authErr *AuthError
			require.ErrorAs(t, err, &authErr)
		})
	}
}

func TestFetchMembersPagination(t *testing.T) {
	var tokenRequests, pageRequests int32

	mux := http.NewServeMux()
	mux.HandleFunc("/oauth/token", tokenHandler(t, &tokenRequests, 3600))
	mux.HandleFunc("/organizations/socentral/members", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&pageRequests, 1)

		assert.Equal(t, "Bearer tok-1", r.Header.Get("Authorization"))
		assert.Contains(t, r.Header.Get("Accept"), "application/json")

		w.Header().Set("content-type", "application/json")
		switch r.URL.Query().Get("$cursorNext") {
		case "":
			fmt.Fprint(w, `{"rangeStart":0,"rangeEnd":2,"cursorNext":"c2","results":[{"id":"m1","name":"Ada"},{"id":"m2","name":"Ben"}]}`)
		case "c2":
			fmt.Fprint(w, `{"rangeStart":2,"rangeEnd":4,"cursorNext":"c3","cursorPrev":"c1","results":[{"id":"m3","name":"Cleo"},{"id":"m4","name":"Dag"}]}`)
		case "c3":
			fmt.Fprint(w, `{"rangeStart":4,"rangeEnd":5,"results":[{"id":"m5","name":"Eva"}]}`)
		default:
			t.Errorf("unexpected cursor %q", r.URL.Query().Get("$cursorNext"))
		}
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	client := newTestClient(t, srv.URL+"/oauth/token", srv.URL)
	members, err := client.FetchMembers(context.Background())
	require.NoError(t, err)

	require.EqualValues(t, 3, atomic.LoadInt32(&pageRequests))
	require.Len(t, members, 5)
	names := make([]string, len(members))
	for i, m := range members {
		names[i] = m.Name
	}
	require.Equal(t, []string{"Ada", "Ben", "Cleo", "Dag", "Eva"}, names)
}

func TestFetchCompaniesAPIError(t *testing.T) {
	var tokenRequests int32

	mux := http.NewServeMux()
	mux.HandleFunc("/oauth/token", tokenHandler(t, &tokenRequests, 3600))
	mux.HandleFunc("/organizations/socentral/companies", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("content-type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		fmt.Fprint(w, `{"message":"boom"}`)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	client := newTestClient(t, srv.URL+"/oauth/token", srv.URL)
	_, err := client.FetchCompanies(context.Background())

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusInternalServerError, apiErr.Status)
	require.Equal(t, "boom", apiErr.Message)
}

func TestFetchMembersNonJSONBody(t *testing.T) {
	var tokenRequests int32

	mux := http.NewServeMux()
	mux.HandleFunc("/oauth/token", tokenHandler(t, &tokenRequests, 3600))
	mux.HandleFunc("/organizations/socentral/members", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "<!DOCTYPE html><html></html>")
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	client := newTestClient(t, srv.URL+"/oauth/token", srv.URL)
	_, err := client.FetchMembers(context.Background())

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, "response body is not valid JSON", apiErr.Message)
}

func TestCredentialsValidate(t *testing.T) {
	err := Credentials{}.Validate()
	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
	require.Equal(t, []string{"client_id", "client_secret", "org_slug"}, cfgErr.Missing)
	for _, name := range cfgErr.Missing {
		require.Contains(t, err.Error(), name)
	}

	err = Credentials{ClientID: "id", ClientSecret: "secret"}.Validate()
	require.ErrorAs(t, err, &cfgErr)
	require.Equal(t, []string{"org_slug"}, cfgErr.Missing)

	require.NoError(t, testCreds.Validate())

	_, err = NewClient(ClientOptions{})
	require.True(t, errors.As(err, &cfgErr))
}
