package cached

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"

	"bark-advisor/internal/platform/cache"
	"bark-advisor/internal/platform/logger"
	"bark-advisor/internal/ports/auth"
)

// Verifier decora otro AuthVerifier guardando las claims verificadas en cache,
// así no vamos al proveedor de identidad en cada page load.
// Solo se cachean verificaciones exitosas.
type Verifier struct {
	next  auth.AuthVerifier
	cache cache.Cache
	ttl   time.Duration
	log   logger.Logger
}

func NewVerifier(next auth.AuthVerifier, c cache.Cache, ttl time.Duration, log logger.Logger) *Verifier {
	if log == nil {
		log = logger.Nop()
	}
	return &Verifier{next: next, cache: c, ttl: ttl, log: log}
}

func (v *Verifier) Verify(ctx context.Context, token string) (auth.Claims, error) {
	key := cacheKey(token)

	var claims auth.Claims
	err := v.cache.Get(ctx, key, &claims)
	if err == nil && claims.UserID != "" {
		return claims, nil
	}
	if err != nil && !errors.Is(err, cache.ErrMiss) {
		// cache caído: seguimos contra el verifier real
		v.log.Warn("auth cache get failed", map[string]any{"err": err})
	}

	claims, err = v.next.Verify(ctx, token)
	if err != nil {
		return auth.Claims{}, err
	}

	if err := v.cache.Set(ctx, key, claims, v.ttl); err != nil {
		v.log.Warn("auth cache set failed", map[string]any{"err": err})
	}
	return claims, nil
}

// el token nunca se guarda en claro
func cacheKey(token string) string {
	sum := sha256.Sum256([]byte(token))
	return "auth:" + hex.EncodeToString(sum[:])
}
