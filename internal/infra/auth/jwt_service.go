// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"ember/config"
	"ember/internal/domain/service"
	"ember/internal/errors"
)

const defaultTokenLifetime = 30 * time.Minute

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
// Tokens are signed with HMAC-SHA-256 and carry no server-side state.
type jwtService struct {
	secret   []byte        // Secret key for signing tokens.
	lifetime time.Duration // Time-to-live for issued tokens.
}

// NewJWTService is the constructor for jwtService.
// An empty signing secret is a configuration error and refuses construction,
// so a misconfigured deployment fails at startup instead of issuing
// unverifiable tokens.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.Token.Secret == "" {
		return nil, errors.New("token signing secret must be provided")
	}

	lifetime := cfg.Token.Lifetime
	if lifetime == 0 {
		lifetime = defaultTokenLifetime
	}

	return &jwtService{
		secret:   []byte(cfg.Token.Secret),
		lifetime: lifetime,
	}, nil
}

// Issue creates a signed token for the given subject. Extra claims are merged
// into the payload first so they can never override the reserved claims.
func (s *jwtService) Issue(subjectID int64, extra map[string]string) (string, error) {
	now := time.Now()

	claims := jwt.MapClaims{}
	for key, value := range extra {
		claims[key] = value
	}
	claims["sub"] = strconv.FormatInt(subjectID, 10)
	claims["iat"] = now.Unix()
	claims["exp"] = now.Add(s.lifetime).Unix()
	claims["jti"] = uuid.NewString()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "sign token")
	}

	return signed, nil
}

// Validate verifies the token signature before trusting any claim.
// Every failure is reported as a *service.AuthFailure and no partial
// claims are ever returned alongside an error.
func (s *jwtService) Validate(tokenString string) (*service.Claims, error) {
	token, err := jwt.ParseWithClaims(
		tokenString,
		jwt.MapClaims{},
		func(_ *jwt.Token) (any, error) {
			return s.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil {
		return nil, classifyFailure(err)
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, &service.AuthFailure{Reason: service.AuthFailureMalformed}
	}

	subject, err := mapClaims.GetSubject()
	if err != nil || subject == "" {
		return nil, &service.AuthFailure{Reason: service.AuthFailureMalformed, Err: err}
	}

	subjectID, err := strconv.ParseInt(subject, 10, 64)
	if err != nil {
		return nil, &service.AuthFailure{Reason: service.AuthFailureMalformed, Err: err}
	}

	claims := &service.Claims{
		SubjectID: subjectID,
	}
	claims.Subject = subject

	if email, ok := mapClaims["email"].(string); ok {
		claims.Email = email
	}
	if jti, ok := mapClaims["jti"].(string); ok {
		claims.ID = jti
	}
	if exp, err := mapClaims.GetExpirationTime(); err == nil {
		claims.ExpiresAt = exp
	}
	if iat, err := mapClaims.GetIssuedAt(); err == nil {
		claims.IssuedAt = iat
	}

	return claims, nil
}

// Lifetime returns the configured token lifetime.
func (s *jwtService) Lifetime() time.Duration {
	return s.lifetime
}

// classifyFailure maps parser errors onto the closed failure taxonomy.
// Signature errors are checked first: an attacker-controlled token must
// never be classified by its claims.
func classifyFailure(err error) *service.AuthFailure {
	switch {
	case errors.Is(err, jwt.ErrTokenSignatureInvalid) || errors.Is(err, jwt.ErrSignatureInvalid):
		return &service.AuthFailure{Reason: service.AuthFailureBadSignature, Err: err}
	case errors.Is(err, jwt.ErrTokenExpired):
		return &service.AuthFailure{Reason: service.AuthFailureExpired, Err: err}
	default:
		return &service.AuthFailure{Reason: service.AuthFailureMalformed, Err: err}
	}
}
