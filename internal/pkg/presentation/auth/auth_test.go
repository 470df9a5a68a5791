package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/matryer/is"
	"github.com/rs/zerolog"
)

const testSecret string = "a-secret-for-testing"

func TestThatRequestsWithoutTokenAreRejected(t *testing.T) {
	is, server := testSetup(t, RoleAdmin, RoleEditor)
	defer server.Close()

	resp := doRequest(t, server, "")
	is.Equal(resp.StatusCode, http.StatusUnauthorized)
}

func TestThatRequestsWithMalformedTokenAreRejected(t *testing.T) {
	is, server := testSetup(t, RoleAdmin, RoleEditor)
	defer server.Close()

	resp := doRequest(t, server, "not.a.token")
	is.Equal(resp.StatusCode, http.StatusUnauthorized)
}

func TestThatTokensSignedWithAnotherSecretAreRejected(t *testing.T) {
	is, server := testSetup(t, RoleAdmin, RoleEditor)
	defer server.Close()

	resp := doRequest(t, server, signedToken(t, "a-different-secret", RoleAdmin))
	is.Equal(resp.StatusCode, http.StatusUnauthorized)
}

func TestThatTokensLackingARequiredRoleAreForbidden(t *testing.T) {
	is, server := testSetup(t, RoleAdmin)
	defer server.Close()

	resp := doRequest(t, server, signedToken(t, testSecret, "spectator"))
	is.Equal(resp.StatusCode, http.StatusForbidden)
}

func TestThatTokensWithARequiredRolePassThrough(t *testing.T) {
	is, server := testSetup(t, RoleAdmin, RoleEditor)
	defer server.Close()

	resp := doRequest(t, server, signedToken(t, testSecret, RoleEditor))
	is.Equal(resp.StatusCode, http.StatusNoContent)
}

func TestThatThePrincipalIsStoredInTheRequestContext(t *testing.T) {
	is := is.New(t)

	var principal Principal
	handler := RequireRoles(zerolog.Nop(), testSecret, RoleAdmin)(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			principal = FromContext(r.Context())
			w.WriteHeader(http.StatusNoContent)
		}),
	)
	server := httptest.NewServer(handler)
	defer server.Close()

	resp := doRequest(t, server, signedToken(t, testSecret, RoleAdmin))

	is.Equal(resp.StatusCode, http.StatusNoContent)
	is.Equal(principal.Subject, "test-user")
	is.True(principal.HasRole(RoleAdmin))
}

func testSetup(t *testing.T, roles ...string) (*is.I, *httptest.Server) {
	handler := RequireRoles(zerolog.Nop(), testSecret, roles...)(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}),
	)

	return is.New(t), httptest.NewServer(handler)
}

func doRequest(t *testing.T, server *httptest.Server, token string) *http.Response {
	req, _ := http.NewRequest(http.MethodGet, server.URL, nil)
	if token != "" {
		req.Header.Add("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("request failed: %s", err.Error())
	}

	return resp
}

func signedToken(t *testing.T, secret string, roles ...string) string {
	claims := jwt.MapClaims{
		"sub":   "test-user",
		"roles": roles,
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("failed to sign token: %s", err.Error())
	}

	return token
}
