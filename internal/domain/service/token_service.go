package service

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// AuthFailureReason classifies why a token was rejected.
type AuthFailureReason string

const (
	// AuthFailureBadSignature means the signature did not verify under the service key.
	AuthFailureBadSignature AuthFailureReason = "bad_signature"
	// AuthFailureExpired means the signature verified but the token is past its expiry.
	AuthFailureExpired AuthFailureReason = "expired"
	// AuthFailureMalformed means the token could not be parsed or carries unusable claims.
	AuthFailureMalformed AuthFailureReason = "malformed"
)

// AuthFailure is the error type returned for every token validation failure.
// Callers branch on Reason; the wrapped error carries parser detail for logs.
type AuthFailure struct {
	Reason AuthFailureReason
	Err    error
}

// Error implements the error interface.
func (e *AuthFailure) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("token validation failed (%s): %v", e.Reason, e.Err)
	}

	return fmt.Sprintf("token validation failed (%s)", e.Reason)
}

// Unwrap returns the underlying parser error.
func (e *AuthFailure) Unwrap() error {
	return e.Err
}

// Claims defines the custom claims carried by session tokens.
type Claims struct {
	SubjectID int64  // Numeric user ID parsed from the sub claim.
	Email     string // The user's email, carried for convenience.
	jwt.RegisteredClaims
}

// TokenService defines the interface for generating and validating session tokens.
// Tokens are stateless: nothing is stored server-side and there is no revocation list.
type TokenService interface {
	// Issue creates a signed token for the given subject. Extra claims
	// (e.g. email, role_id) are merged into the payload; reserved claim
	// names cannot be overridden.
	Issue(subjectID int64, extra map[string]string) (string, error)

	// Validate verifies the signature before trusting any claim and returns
	// the parsed claims. Every failure is an *AuthFailure; no partial
	// results are returned alongside an error.
	Validate(tokenString string) (*Claims, error)

	// Lifetime returns the configured token lifetime.
	Lifetime() time.Duration
}
