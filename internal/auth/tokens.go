package auth

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type sessionClaims struct {
	Email string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

// Verifier turns HS256 access tokens into sessions.
type Verifier struct {
	secret  []byte
	revoker Revoker
}

// NewVerifier creates a verifier. A nil revoker disables sign-out checks.
func NewVerifier(secret string, revoker Revoker) *Verifier {
	return &Verifier{secret: []byte(secret), revoker: revoker}
}

// Session validates raw and returns its session. Invalid, expired and
// signed-out tokens all yield ErrNoSession.
func (v *Verifier) Session(ctx context.Context, raw string) (*Session, error) {
	if len(v.secret) == 0 || strings.TrimSpace(raw) == "" {
		return nil, ErrNoSession
	}
	claims := sessionClaims{}
	token, err := jwt.ParseWithClaims(raw, &claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return v.secret, nil
	})
	if err != nil || !token.Valid || claims.Subject == "" {
		return nil, ErrNoSession
	}

	s := &Session{
		UserID:  claims.Subject,
		Email:   claims.Email,
		TokenID: claims.ID,
	}
	if s.TokenID == "" {
		sum := sha256.Sum256([]byte(raw))
		s.TokenID = hex.EncodeToString(sum[:])
	}
	if claims.ExpiresAt != nil {
		s.ExpiresAt = claims.ExpiresAt.Time
	}

	if v.revoker != nil {
		revoked, err := v.revoker.IsRevoked(ctx, s.TokenID)
		if err != nil {
			return nil, fmt.Errorf("%w: revocation check: %v", ErrNoSession, err)
		}
		if revoked {
			return nil, ErrNoSession
		}
	}
	return s, nil
}

// SessionFromRequest reads the bearer token from the Authorization header.
func (v *Verifier) SessionFromRequest(r *http.Request) (*Session, error) {
	auth := r.Header.Get("Authorization")
	if !strings.HasPrefix(auth, "Bearer ") {
		return nil, ErrNoSession
	}
	return v.Session(r.Context(), strings.TrimPrefix(auth, "Bearer "))
}

// SignOut revokes the session's token until it would have expired anyway.
func (v *Verifier) SignOut(ctx context.Context, s *Session) error {
	if s == nil {
		return ErrNoSession
	}
	if v.revoker == nil {
		return nil
	}
	until := s.ExpiresAt
	if until.IsZero() {
		until = time.Now().Add(24 * time.Hour)
	}
	return v.revoker.Revoke(ctx, s.TokenID, until)
}

// IssueToken signs an access token for userID. Used by local tooling and tests;
// production tokens come from the auth provider.
func IssueToken(secret, userID, email string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := sessionClaims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("auth: sign token: %w", err)
	}
	return signed, nil
}
