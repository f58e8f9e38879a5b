package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	id := Identity{ID: uuid.New(), Username: "takmir", Role: "admin"}

	token, err := IssueAdminToken("rahasia-test", id, time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	parsed, err := ParseAdminToken("rahasia-test", token)
	require.NoError(t, err)
	assert.Equal(t, id, parsed)
}

func TestTokenRejectsWrongSecret(t *testing.T) {
	id := Identity{ID: uuid.New(), Username: "takmir", Role: "admin"}

	token, err := IssueAdminToken("rahasia-a", id, time.Hour)
	require.NoError(t, err)

	_, err = ParseAdminToken("rahasia-b", token)
	assert.Error(t, err)
}

func TestTokenRejectsGarbage(t *testing.T) {
	_, err := ParseAdminToken("rahasia-test", "bukan.token.jwt")
	assert.Error(t, err)
}

func TestIssueRequiresSecret(t *testing.T) {
	_, err := IssueAdminToken("  ", Identity{ID: uuid.New()}, time.Hour)
	assert.Error(t, err)
}
