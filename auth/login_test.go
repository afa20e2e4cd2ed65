package auth

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"urbanharvest/middleware"

	"github.com/stretchr/testify/require"
)

func TestCheckKnownUsers(t *testing.T) {
	user, err := Check("customer@example.com", "password123")
	require.NoError(t, err)
	require.Equal(t, "customer", user.Role)
	require.Equal(t, "John Customer", user.Name)

	user, err = Check("farm@example.com", "farm123")
	require.NoError(t, err)
	require.Equal(t, "farmer", user.Role)
}

func TestCheckGenericFailure(t *testing.T) {
	// unknown email and wrong password fail identically
	_, err := Check("nobody@example.com", "password123")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = Check("customer@example.com", "wrong")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginIssuesUsableToken(t *testing.T) {
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(`{"email":"farm@example.com","password":"farm123"}`))
	loginHandler(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	body := rr.Body.String()
	require.Contains(t, body, "token")

	// pull the token out and run it through the middleware validator
	start := strings.Index(body, `"token":"`) + len(`"token":"`)
	end := strings.Index(body[start:], `"`)
	claims, err := middleware.ValidateJWT("Bearer " + body[start:start+end])
	require.NoError(t, err)
	require.Equal(t, "2", claims.UserID)
	require.Equal(t, "farmer", claims.Role)
	require.Equal(t, "Green Roof Gardens", claims.Username)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(`{"email":"customer@example.com","password":"nope"}`))
	loginHandler(rr, req)

	require.Equal(t, http.StatusUnauthorized, rr.Code)
}
