package auth

import (
	"testing"
	"time"

	"critique/config"
	domainerrors "critique/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConfig(secret string, ttl time.Duration) *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{
			Secret:   secret,
			TokenTTL: ttl,
		},
	}
}

func TestJWTService_IssueAndVerify(t *testing.T) {
	svc, err := NewJWTService(newTestConfig("test_secret_key_very_long_for_testing", time.Hour))
	require.NoError(t, err)

	userID := uuid.New()

	token, err := svc.Issue(userID)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	resolved, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, userID, resolved)
}

func TestJWTService_EmptySecretFailsFast(t *testing.T) {
	_, err := NewJWTService(newTestConfig("", time.Hour))
	assert.Error(t, err)

	_, err = NewJWTService(&config.Config{})
	assert.Error(t, err)

	_, err = NewJWTService(nil)
	assert.Error(t, err)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	svc, err := NewJWTService(newTestConfig("test_secret_key_very_long_for_testing", time.Hour))
	require.NoError(t, err)

	token, err := svc.Issue(uuid.New())
	require.NoError(t, err)

	// Move the service clock past issuance + TTL.
	impl := svc.(*jwtService)
	impl.now = func() time.Time { return time.Now().Add(2 * time.Hour) }

	_, err = svc.Verify(token)
	assert.ErrorIs(t, err, domainerrors.ErrNotAuthorized)
}

func TestJWTService_TamperedSignature(t *testing.T) {
	svc, err := NewJWTService(newTestConfig("test_secret_key_very_long_for_testing", time.Hour))
	require.NoError(t, err)

	token, err := svc.Issue(uuid.New())
	require.NoError(t, err)

	// Flip one byte of the signature.
	tampered := []byte(token)
	last := len(tampered) - 1
	if tampered[last] == 'A' {
		tampered[last] = 'B'
	} else {
		tampered[last] = 'A'
	}

	_, err = svc.Verify(string(tampered))
	assert.ErrorIs(t, err, domainerrors.ErrNotAuthorized)
}

func TestJWTService_OpaqueFailures(t *testing.T) {
	svc, err := NewJWTService(newTestConfig("test_secret_key_very_long_for_testing", time.Hour))
	require.NoError(t, err)

	other, err := NewJWTService(newTestConfig("a_completely_different_secret_key_here", time.Hour))
	require.NoError(t, err)

	foreign, err := other.Issue(uuid.New())
	require.NoError(t, err)

	// Malformed, forged and garbage tokens all yield the identical error
	// value; callers cannot distinguish the causes.
	for _, tokenString := range []string{"", "garbage", "a.b.c", foreign} {
		_, verifyErr := svc.Verify(tokenString)
		assert.Equal(t, domainerrors.ErrNotAuthorized, verifyErr)
	}
}

func TestJWTService_SecretRotationInvalidatesTokens(t *testing.T) {
	before, err := NewJWTService(newTestConfig("secret_before_rotation_0123456789", time.Hour))
	require.NoError(t, err)

	after, err := NewJWTService(newTestConfig("secret_after_rotation_9876543210", time.Hour))
	require.NoError(t, err)

	token, err := before.Issue(uuid.New())
	require.NoError(t, err)

	_, err = after.Verify(token)
	assert.ErrorIs(t, err, domainerrors.ErrNotAuthorized)
}
