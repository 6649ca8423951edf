package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndValidate(t *testing.T) {
	m := NewSessionTokenManager("test-secret-key-that-is-long-enough", time.Hour, "gearshop")
	sessionID := NewSessionID()

	token, err := m.Issue(sessionID)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	got, err := m.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, sessionID, got)
}

func TestValidateRejectsGarbage(t *testing.T) {
	m := NewSessionTokenManager("test-secret-key-that-is-long-enough", time.Hour, "gearshop")

	_, err := m.Validate("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateRejectsWrongKey(t *testing.T) {
	issuer := NewSessionTokenManager("test-secret-key-that-is-long-enough", time.Hour, "gearshop")
	other := NewSessionTokenManager("a-completely-different-secret-key!!", time.Hour, "gearshop")

	token, err := issuer.Issue(NewSessionID())
	require.NoError(t, err)

	_, err = other.Validate(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateRejectsExpiredToken(t *testing.T) {
	m := NewSessionTokenManager("test-secret-key-that-is-long-enough", -time.Minute, "gearshop")

	token, err := m.Issue(NewSessionID())
	require.NoError(t, err)

	_, err = m.Validate(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestNewSessionIDIsUnique(t *testing.T) {
	assert.NotEqual(t, NewSessionID(), NewSessionID())
}
