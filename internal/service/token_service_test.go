package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTTokenService_IssueAndVerify(t *testing.T) {
	svc := NewJWTTokenService("test-secret", time.Hour, "wager-agent")

	token, err := svc.Issue("operator")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	subject, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "operator", subject)
}

func TestJWTTokenService_RejectsWrongSecret(t *testing.T) {
	issuer := NewJWTTokenService("secret-a", time.Hour, "wager-agent")
	verifier := NewJWTTokenService("secret-b", time.Hour, "wager-agent")

	token, err := issuer.Issue("operator")
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.Error(t, err)
}

func TestJWTTokenService_RejectsExpired(t *testing.T) {
	svc := NewJWTTokenService("test-secret", -time.Minute, "wager-agent")

	token, err := svc.Issue("operator")
	require.NoError(t, err)

	_, err = svc.Verify(token)
	assert.Error(t, err)
}

func TestJWTTokenService_RejectsGarbage(t *testing.T) {
	svc := NewJWTTokenService("test-secret", time.Hour, "wager-agent")

	_, err := svc.Verify("not-a-token")
	assert.Error(t, err)
}
