package auth

import (
	"testing"
	"time"

	"ember/config"
	"ember/internal/domain/service"
	"ember/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTokenService(t *testing.T, secret string, lifetime time.Duration) service.TokenService {
	t.Helper()

	cfg := &config.Config{}
	cfg.Token.Secret = secret
	cfg.Token.Lifetime = lifetime

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	return svc
}

func TestJWTService_IssueAndValidate(t *testing.T) {
	svc := newTestTokenService(t, "test_signing_secret_very_long_for_testing", 30*time.Minute)

	token, err := svc.Issue(42, map[string]string{"email": "alice@example.com"})
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.Validate(token)
	assert.NoError(t, err)
	require.NotNil(t, claims)
	assert.Equal(t, int64(42), claims.SubjectID)
	assert.Equal(t, "alice@example.com", claims.Email)
	assert.NotEmpty(t, claims.ID) // jti

	// Expiry lands at issue time plus the configured lifetime.
	require.NotNil(t, claims.ExpiresAt)
	require.NotNil(t, claims.IssuedAt)
	assert.Equal(t, 30*time.Minute, claims.ExpiresAt.Sub(claims.IssuedAt.Time))
}

func TestJWTService_IssueProducesDistinctTokens(t *testing.T) {
	svc := newTestTokenService(t, "test_signing_secret_very_long_for_testing", 30*time.Minute)

	first, err := svc.Issue(7, nil)
	assert.NoError(t, err)
	second, err := svc.Issue(7, nil)
	assert.NoError(t, err)

	// The jti claim differs per token even for the same subject.
	assert.NotEqual(t, first, second)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	// A negative lifetime issues tokens that are already expired.
	svc := newTestTokenService(t, "test_signing_secret_very_long_for_testing", -time.Minute)

	token, err := svc.Issue(42, nil)
	assert.NoError(t, err)

	claims, err := svc.Validate(token)
	assert.Nil(t, claims)

	var failure *service.AuthFailure
	require.True(t, errors.As(err, &failure))
	assert.Equal(t, service.AuthFailureExpired, failure.Reason)
}

func TestJWTService_TamperedSignature(t *testing.T) {
	svc := newTestTokenService(t, "test_signing_secret_very_long_for_testing", 30*time.Minute)

	token, err := svc.Issue(42, nil)
	require.NoError(t, err)

	// Flip the final byte of the signature segment.
	tampered := []byte(token)
	last := tampered[len(tampered)-1]
	if last == 'A' {
		tampered[len(tampered)-1] = 'B'
	} else {
		tampered[len(tampered)-1] = 'A'
	}

	claims, err := svc.Validate(string(tampered))
	assert.Nil(t, claims)

	var failure *service.AuthFailure
	require.True(t, errors.As(err, &failure))
	assert.Equal(t, service.AuthFailureBadSignature, failure.Reason)
}

func TestJWTService_WrongKey(t *testing.T) {
	issuer := newTestTokenService(t, "issuer_secret_very_long_for_testing", 30*time.Minute)
	verifier := newTestTokenService(t, "verifier_secret_very_long_for_testing", 30*time.Minute)

	token, err := issuer.Issue(42, nil)
	require.NoError(t, err)

	claims, err := verifier.Validate(token)
	assert.Nil(t, claims)

	var failure *service.AuthFailure
	require.True(t, errors.As(err, &failure))
	assert.Equal(t, service.AuthFailureBadSignature, failure.Reason)
}

func TestJWTService_MalformedToken(t *testing.T) {
	svc := newTestTokenService(t, "test_signing_secret_very_long_for_testing", 30*time.Minute)

	for _, tokenString := range []string{
		"",
		"clearly-not-a-token",
		"aaaa.bbbb",
		"aaaa.bbbb.cccc.dddd",
	} {
		claims, err := svc.Validate(tokenString)
		assert.Nil(t, claims, "token: %q", tokenString)

		var failure *service.AuthFailure
		require.True(t, errors.As(err, &failure), "token: %q", tokenString)
		assert.Equal(t, service.AuthFailureMalformed, failure.Reason, "token: %q", tokenString)
	}
}

func TestJWTService_NonNumericSubject(t *testing.T) {
	svc := newTestTokenService(t, "test_signing_secret_very_long_for_testing", 30*time.Minute)

	// A correctly signed token whose sub claim is not a numeric string
	// is unusable and must be reported as malformed.
	impl, ok := svc.(*jwtService)
	require.True(t, ok)

	token, err := impl.Issue(0, map[string]string{"email": "eve@example.com"})
	require.NoError(t, err)

	// Issue cannot produce a non-numeric sub (reserved claims win over
	// extras), so sign one directly with the service key.
	tokenWithBadSub, err := signWithSubject(impl.secret, "not-a-number", 30*time.Minute)
	require.NoError(t, err)

	claims, err := svc.Validate(tokenWithBadSub)
	assert.Nil(t, claims)

	var failure *service.AuthFailure
	require.True(t, errors.As(err, &failure))
	assert.Equal(t, service.AuthFailureMalformed, failure.Reason)

	// The well-formed zero subject still validates.
	claims, err = svc.Validate(token)
	assert.NoError(t, err)
	require.NotNil(t, claims)
	assert.Equal(t, int64(0), claims.SubjectID)
}

func TestJWTService_EmptySecret(t *testing.T) {
	cfg := &config.Config{}
	cfg.Token.Secret = ""

	svc, err := NewJWTService(cfg)
	assert.Error(t, err)
	assert.Nil(t, svc)
	assert.Contains(t, err.Error(), "token signing secret must be provided")
}

func TestJWTService_Lifetime(t *testing.T) {
	svc := newTestTokenService(t, "test_signing_secret_very_long_for_testing", 0)

	// Zero lifetime falls back to the 30 minute default.
	assert.Equal(t, 30*time.Minute, svc.Lifetime())

	svc = newTestTokenService(t, "test_signing_secret_very_long_for_testing", time.Hour)
	assert.Equal(t, time.Hour, svc.Lifetime())
}

func signWithSubject(secret []byte, subject string, lifetime time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": subject,
		"iat": now.Unix(),
		"exp": now.Add(lifetime).Unix(),
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}
