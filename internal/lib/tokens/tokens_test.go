package tokens

import (
	"eventsBoard/internal/models"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndParse(t *testing.T) {
	t.Parallel()

	m := New("super-secret", time.Hour)

	token, err := m.Issue(models.Identity{ID: "user-1", Email: "user@example.com"})
	require.NoError(t, err)

	claims, err := m.Parse(token)
	require.NoError(t, err)

	assert.Equal(t, "user-1", claims.Subject)
	assert.Equal(t, "user@example.com", claims.Email)
	assert.Equal(t, "authenticated", claims.Role)
}

func TestParseRejects(t *testing.T) {
	t.Parallel()

	issuer := New("super-secret", time.Hour)
	token, err := issuer.Issue(models.Identity{ID: "user-1"})
	require.NoError(t, err)

	expired := New("super-secret", time.Hour)
	expired.now = func() time.Time { return time.Now().Add(2 * time.Hour) }

	testCases := []struct {
		name  string
		m     *Manager
		token string
	}{
		{name: "Wrong secret", m: New("other-secret", time.Hour), token: token},
		{name: "Expired", m: expired, token: token},
		{name: "Garbage", m: issuer, token: "not-a-token"},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := tc.m.Parse(tc.token)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}
