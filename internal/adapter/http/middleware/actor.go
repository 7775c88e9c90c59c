package middleware

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/iho/cashledger/internal/domain"
)

// Actor headers set by the upstream gateway.
const (
	ActorIDHeader   = "X-Actor-ID"
	ActorRoleHeader = "X-Actor-Role"
)

// Actor binds the calling actor to the request context. Requests without an
// actor header run as anonymous; the system role cannot be claimed.
func Actor(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		actor := domain.Actor{
			ID:     r.Header.Get(ActorIDHeader),
			Role:   domain.Role(r.Header.Get(ActorRoleHeader)),
			Source: r.RemoteAddr,
		}

		if actor.ID == "" {
			actor.ID = string(domain.RoleAnonymous)
			actor.Role = domain.RoleAnonymous
		}

		switch actor.Role {
		case domain.RoleUser, domain.RoleInternal, domain.RoleAdmin, domain.RoleAnonymous:
		default:
			actor.Role = domain.RoleUser
		}

		next.ServeHTTP(w, r.WithContext(domain.WithActor(r.Context(), actor)))
	})
}

// RequireRole rejects actors whose role is not in roles.
func RequireRole(roles ...domain.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			actor := domain.ActorFrom(r.Context())
			for _, role := range roles {
				if actor.Role == role {
					next.ServeHTTP(w, r)
					return
				}
			}
			http.Error(w, "forbidden", http.StatusForbidden)
		})
	}
}

// RequireAccountOwner restricts customers to the account named by the URL
// parameter param. Operators pass through.
func RequireAccountOwner(param string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			actor := domain.ActorFrom(r.Context())
			if actor.Role == domain.RoleUser && chi.URLParam(r, param) != actor.ID {
				http.Error(w, "forbidden", http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
