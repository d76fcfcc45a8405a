package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func doRequest(t *testing.T, token, header string) int {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set(echo.HeaderAuthorization, header)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := TokenAuth(token)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	err := h(c)
	if err != nil {
		var httpErr *echo.HTTPError
		require.ErrorAs(t, err, &httpErr)
		return httpErr.Code
	}
	return rec.Code
}

func TestTokenAuth(t *testing.T) {
	assert.Equal(t, http.StatusOK, doRequest(t, "secret", "Bearer secret"))
	assert.Equal(t, http.StatusUnauthorized, doRequest(t, "secret", "Bearer wrong"))
	assert.Equal(t, http.StatusUnauthorized, doRequest(t, "secret", ""))
	assert.Equal(t, http.StatusForbidden, doRequest(t, "", "Bearer anything"), "empty token disables the routes")
}
