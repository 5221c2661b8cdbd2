package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubVerifier struct {
	uid string
	err error
}

func (s stubVerifier) VerifyToken(_ context.Context, _ string) (string, error) {
	return s.uid, s.err
}

func run(t *testing.T, verifier TokenVerifier, header string) (*httptest.ResponseRecorder, string, bool) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/helloWorld", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var uid string
	called := false
	next := func(c echo.Context) error {
		called = true
		uid, _ = c.Get("uid").(string)
		return c.NoContent(http.StatusOK)
	}

	require.NoError(t, NewAuthMiddleware(verifier).Identify(next)(c))
	return rec, uid, called
}

func TestIdentify(t *testing.T) {
	t.Run("anonymous caller passes", func(t *testing.T) {
		rec, uid, called := run(t, stubVerifier{}, "")
		assert.True(t, called)
		assert.Empty(t, uid)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("valid token sets uid", func(t *testing.T) {
		_, uid, called := run(t, stubVerifier{uid: "u1"}, "Bearer good")
		assert.True(t, called)
		assert.Equal(t, "u1", uid)
	})

	t.Run("invalid token rejected", func(t *testing.T) {
		rec, _, called := run(t, stubVerifier{err: errors.New("expired")}, "Bearer bad")
		assert.False(t, called)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "UNAUTHENTICATED")
	})

	t.Run("malformed header rejected", func(t *testing.T) {
		rec, _, called := run(t, stubVerifier{uid: "u1"}, "Token abc")
		assert.False(t, called)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
