package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v3"

	"github.com/busraislam39/tiktwinwebapp/internal/policy"
	"github.com/busraislam39/tiktwinwebapp/internal/service"
)

// identityKey is the Fiber locals key under which the resolved identity is
// stored for the duration of one request.
const identityKey = "identity"

// ResolveIdentity parses an optional Bearer token and stores the resulting
// identity in the request context. Requests without a token, or with an
// invalid one, proceed as anonymous; the policy decides per operation
// whether anonymous access suffices. The identity always travels explicitly
// with the request; nothing global holds the "current user".
func ResolveIdentity(auth *service.AuthService) fiber.Handler {
	return func(c fiber.Ctx) error {
		c.Locals(identityKey, policy.Anonymous)

		header := c.Get("Authorization")
		if header != "" {
			parts := strings.SplitN(header, " ", 2)
			if len(parts) == 2 && parts[0] == "Bearer" {
				if claims, err := auth.ValidateAccess(parts[1]); err == nil {
					c.Locals(identityKey, claims.Identity())
				}
			}
		}
		return c.Next()
	}
}

// IdentityFrom returns the identity resolved for this request. Anonymous when
// no valid token was presented.
func IdentityFrom(c fiber.Ctx) policy.Identity {
	if id, ok := c.Locals(identityKey).(policy.Identity); ok {
		return id
	}
	return policy.Anonymous
}

// RequirePolicy denies the request with 401/403 unless the policy allows the
// identity to perform the action on the resource. Unauthenticated callers get
// 401 so clients know a login could help; authenticated ones get 403, which
// is never downgraded to a softer outcome.
func RequirePolicy(act policy.Action, res policy.Resource) fiber.Handler {
	return func(c fiber.Ctx) error {
		id := IdentityFrom(c)
		if policy.Allow(id, act, res) {
			return c.Next()
		}
		if !id.Authenticated {
			return ErrorResponse(c, fiber.StatusUnauthorized, "UNAUTHENTICATED", "Authentication required")
		}
		return ErrorResponse(c, fiber.StatusForbidden, "FORBIDDEN", "You do not have permission to perform this action")
	}
}
