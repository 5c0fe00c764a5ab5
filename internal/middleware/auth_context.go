package middleware

import (
	"context"
	"net/http"
	"strings"

	"bark-advisor/internal/ports/auth"
)

type ctxKey string

const (
	claimsKey ctxKey = "claims"
	tokenKey  ctxKey = "token"
)

const (
	// SessionCookie guarda el token emitido por el proveedor de auth.
	SessionCookie = "bark_session"
	// DebugUserCookie / DebugUserHeader solo se respetan sin verifier (modo dev).
	DebugUserCookie = "bark_debug_user"
	DebugUserHeader = "X-Debug-User-ID"
)

// AuthContext:
// - Con verifier: toma el token de Authorization: Bearer o de la cookie de sesión,
//   lo verifica y deja las claims en el contexto.
// - Sin verifier (modo dev): acepta X-Debug-User-ID o la cookie bark_debug_user.
// - Si no hay claims el request sigue; cada handler decide si exige auth.
func AuthContext(verifier auth.AuthVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if verifier == nil {
				if uid := debugUserID(r); uid != "" {
					next.ServeHTTP(w, r.WithContext(WithClaims(r.Context(), auth.Claims{UserID: uid})))
					return
				}
				next.ServeHTTP(w, r)
				return
			}

			token := requestToken(r)
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}

			claims, err := verifier.Verify(r.Context(), token)
			if err != nil || strings.TrimSpace(claims.UserID) == "" {
				next.ServeHTTP(w, r)
				return
			}

			ctx := context.WithValue(WithClaims(r.Context(), claims), tokenKey, token)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// WithClaims deja claims en ctx. Exportado para tests y para el cliente in-process.
func WithClaims(ctx context.Context, c auth.Claims) context.Context {
	return context.WithValue(ctx, claimsKey, c)
}

func GetClaims(ctx context.Context) (auth.Claims, bool) {
	c, ok := ctx.Value(claimsKey).(auth.Claims)
	if !ok || strings.TrimSpace(c.UserID) == "" {
		return auth.Claims{}, false
	}
	return c, true
}

// GetToken devuelve el token ya verificado del request; los clientes que llaman
// a otros servicios en nombre del usuario lo reenvían.
func GetToken(ctx context.Context) string {
	t, _ := ctx.Value(tokenKey).(string)
	return t
}

func requestToken(r *http.Request) string {
	if t := bearerToken(r.Header.Get("Authorization")); t != "" {
		return t
	}
	if c, err := r.Cookie(SessionCookie); err == nil {
		return strings.TrimSpace(c.Value)
	}
	return ""
}

func debugUserID(r *http.Request) string {
	if uid := strings.TrimSpace(r.Header.Get(DebugUserHeader)); uid != "" {
		return uid
	}
	if c, err := r.Cookie(DebugUserCookie); err == nil {
		return strings.TrimSpace(c.Value)
	}
	return ""
}

func bearerToken(authHeader string) string {
	parts := strings.SplitN(strings.TrimSpace(authHeader), " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
