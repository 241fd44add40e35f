package httpserver

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhossain/bistro-server/internal/transport"
)

func TestIssueToken_EmbedsIdentity(t *testing.T) {
	t.Parallel()
	env := newTestEnv()

	rec := env.request(http.MethodPost, "/jwt", map[string]any{"email": "a@x.com", "name": "A"}, "")
	requireStatus(t, rec, http.StatusOK)

	res := decodeJSON[transport.TokenResponse](t, rec)
	require.NotEmpty(t, res.Token)

	claims, err := env.tokens.Parse(res.Token)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", claims["email"])
	assert.Equal(t, "A", claims["name"])
}

func TestRoot_Liveness(t *testing.T) {
	t.Parallel()
	env := newTestEnv()

	rec := env.request(http.MethodGet, "/", nil, "")
	requireStatus(t, rec, http.StatusOK)
	assert.Equal(t, "restaurant is running", rec.Body.String())
}
