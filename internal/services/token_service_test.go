package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shoeshop/internal/models"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestTokenService_IssueAndVerify(t *testing.T) {
	issuedAt := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)

	svc := NewTokenService("test_jwt_secret", 0)
	svc.now = fixedClock(issuedAt)

	token, err := svc.Issue("admin", models.RoleAdmin)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Subject)
	assert.Equal(t, models.RoleAdmin, claims.Role)
	assert.Equal(t, issuedAt.Add(tokenTTL).Unix(), claims.ExpiresAt.Unix())
}

func TestTokenService_ExpiryWindow(t *testing.T) {
	issuedAt := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)

	svc := NewTokenService("test_jwt_secret", 0)
	svc.now = fixedClock(issuedAt)

	token, err := svc.Issue("guest", models.RoleGuest)
	require.NoError(t, err)

	cases := []struct {
		name  string
		at    time.Time
		valid bool
	}{
		{"at issue time", issuedAt, true},
		{"mid window", issuedAt.Add(3 * 24 * time.Hour), true},
		{"just before expiry", issuedAt.Add(tokenTTL - time.Minute), true},
		{"at expiry", issuedAt.Add(tokenTTL), false},
		{"after expiry", issuedAt.Add(tokenTTL + time.Minute), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc.now = fixedClock(tc.at)
			claims, err := svc.Verify(token)
			if tc.valid {
				require.NoError(t, err)
				assert.Equal(t, models.RoleGuest, claims.Role)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestTokenService_ClockSkewLeeway(t *testing.T) {
	issuedAt := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)

	svc := NewTokenService("test_jwt_secret", 2*time.Minute)
	svc.now = fixedClock(issuedAt)

	token, err := svc.Issue("guest", models.RoleGuest)
	require.NoError(t, err)

	// Within the configured skew past expiry the token still verifies.
	svc.now = fixedClock(issuedAt.Add(tokenTTL + time.Minute))
	_, err = svc.Verify(token)
	assert.NoError(t, err)

	// Beyond the skew it does not.
	svc.now = fixedClock(issuedAt.Add(tokenTTL + 3*time.Minute))
	_, err = svc.Verify(token)
	assert.Error(t, err)
}

func TestTokenService_RejectsBadTokens(t *testing.T) {
	svc := NewTokenService("test_jwt_secret", 0)

	// Malformed.
	_, err := svc.Verify("not.a.token")
	assert.Error(t, err)

	_, err = svc.Verify("")
	assert.Error(t, err)

	// Signed with a different secret.
	other := NewTokenService("a_completely_different_secret", 0)
	token, err := other.Issue("admin", models.RoleAdmin)
	require.NoError(t, err)
	_, err = svc.Verify(token)
	assert.Error(t, err)

	// Tampered payload.
	token, err = svc.Issue("guest", models.RoleGuest)
	require.NoError(t, err)
	_, err = svc.Verify(token + "x")
	assert.Error(t, err)
}

func TestTokenService_RejectsUnknownRole(t *testing.T) {
	svc := NewTokenService("test_jwt_secret", 0)

	token, err := svc.Issue("someone", models.Role("Superuser"))
	require.NoError(t, err)

	_, err = svc.Verify(token)
	assert.Error(t, err)
}
