package jwt

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"bark-advisor/internal/ports/auth"

	gojwt "github.com/golang-jwt/jwt/v4"
)

var ErrSecretEmpty = errors.New("jwt secret is empty")

// sessionClaims es el payload que firmamos: sub = user id.
type sessionClaims struct {
	Email    string `json:"email,omitempty"`
	TenantID string `json:"tenant_id,omitempty"`
	gojwt.RegisteredClaims
}

// Verifier valida tokens HS256 firmados con un secreto compartido.
type Verifier struct {
	secret []byte
	now    func() time.Time
}

func NewVerifier(secret string) (*Verifier, error) {
	if strings.TrimSpace(secret) == "" {
		return nil, ErrSecretEmpty
	}
	return &Verifier{secret: []byte(secret), now: time.Now}, nil
}

func (v *Verifier) Verify(_ context.Context, token string) (auth.Claims, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return auth.Claims{}, auth.ErrInvalidToken
	}

	var sc sessionClaims
	parser := gojwt.NewParser(gojwt.WithValidMethods([]string{gojwt.SigningMethodHS256.Alg()}))

	parsed, err := parser.ParseWithClaims(token, &sc, func(*gojwt.Token) (any, error) {
		return v.secret, nil
	})
	if err != nil || !parsed.Valid {
		return auth.Claims{}, fmt.Errorf("%w: %v", auth.ErrInvalidToken, err)
	}

	uid := strings.TrimSpace(sc.Subject)
	if uid == "" {
		return auth.Claims{}, fmt.Errorf("%w: missing subject", auth.ErrInvalidToken)
	}

	return auth.Claims{UserID: uid, Email: sc.Email, TenantID: sc.TenantID}, nil
}

// Issue firma un token de sesión; lo usan tests y la CLI para sesiones de dev.
func (v *Verifier) Issue(c auth.Claims, ttl time.Duration) (string, error) {
	now := v.now()
	sc := sessionClaims{
		Email:    c.Email,
		TenantID: c.TenantID,
		RegisteredClaims: gojwt.RegisteredClaims{
			Subject:   c.UserID,
			IssuedAt:  gojwt.NewNumericDate(now),
			ExpiresAt: gojwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return gojwt.NewWithClaims(gojwt.SigningMethodHS256, sc).SignedString(v.secret)
}
