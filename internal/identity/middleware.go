package identity

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/MrJamesThe3rd/ascend/internal/http/respond"
	"github.com/MrJamesThe3rd/ascend/internal/user"
)

// LoginLocationHeader tells the client where to send the user to sign in again.
const LoginLocationHeader = "X-Login-Location"

type tokenVerifier interface {
	Verify(token string) (*Claims, error)
}

//go:generate mockgen -source=middleware.go -destination=syncer_mock.go -package=identity

// UserSyncer persists the identity carried by a verified token.
type UserSyncer interface {
	Upsert(ctx context.Context, u *user.User) error
}

type Options struct {
	CookieName string
	LoginURL   string
}

// Middleware rejects requests without a valid session token. Authenticated
// requests get the user id in their context and the user row refreshed from
// the token claims.
func Middleware(verifier tokenVerifier, users UserSyncer, opts Options) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, err := verifier.Verify(extractToken(r, opts.CookieName))
			if err != nil {
				slog.DebugContext(r.Context(), "rejecting unauthenticated request", "path", r.URL.Path, "error", err)

				if opts.LoginURL != "" {
					w.Header().Set(LoginLocationHeader, opts.LoginURL)
				}

				respond.Unauthorized(w)

				return
			}

			u := &user.User{
				ID:              claims.Subject,
				Email:           claims.Email,
				FirstName:       claims.FirstName,
				LastName:        claims.LastName,
				ProfileImageURL: claims.ProfileImageURL,
			}

			if err := users.Upsert(r.Context(), u); err != nil {
				respond.Error(w, r, err, "Failed to load user")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), u.ID)))
		})
	}
}

// extractToken prefers the session cookie and falls back to a bearer token.
func extractToken(r *http.Request, cookieName string) string {
	if cookieName != "" {
		if c, err := r.Cookie(cookieName); err == nil && c.Value != "" {
			return c.Value
		}
	}

	auth := r.Header.Get("Authorization")
	if !strings.HasPrefix(auth, "Bearer ") {
		return ""
	}

	return strings.TrimSpace(strings.TrimPrefix(auth, "Bearer "))
}

// RequireUser returns the caller's id or answers 401 when the request did
// not pass through Middleware.
func RequireUser(w http.ResponseWriter, r *http.Request) (string, bool) {
	id, ok := UserID(r.Context())
	if !ok {
		respond.Unauthorized(w)
	}

	return id, ok
}
