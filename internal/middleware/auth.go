package middleware

import (
	"github.com/gofiber/fiber/v2"

	"github.com/teremets90/cashdrive-app/internal/auth"
	"github.com/teremets90/cashdrive-app/internal/repository"
)

// UserIDKey is the fiber.Ctx Locals key the auth middleware fills in.
const UserIDKey = "user_id"

// userIDFromCookie resolves the session cookie into a user id. Every failure
// mode is the same empty result; nothing here ever panics.
func userIDFromCookie(c *fiber.Ctx, codec *auth.Codec) string {
	token := c.Cookies(auth.CookieName)
	if token == "" {
		return ""
	}
	userID, err := codec.Verify(token)
	if err != nil {
		return ""
	}
	return userID
}

// RequireUser rejects requests without a valid session cookie.
func RequireUser(codec *auth.Codec) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := userIDFromCookie(c, codec)
		if userID == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthenticated"})
		}
		c.Locals(UserIDKey, userID)
		return c.Next()
	}
}

// OptionalUser resolves the session if present but never rejects.
func OptionalUser(codec *auth.Codec) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if userID := userIDFromCookie(c, codec); userID != "" {
			c.Locals(UserIDKey, userID)
		}
		return c.Next()
	}
}

// RequireAdmin re-reads the user's admin flag from the store on every
// request; a stale claim is never trusted, and any store trouble fails closed.
func RequireAdmin(codec *auth.Codec, users repository.UserRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := userIDFromCookie(c, codec)
		if userID == "" {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "access denied"})
		}
		user, err := users.FindByID(c.Context(), userID)
		if err != nil || !user.IsAdmin {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "access denied"})
		}
		c.Locals(UserIDKey, userID)
		return c.Next()
	}
}

// UserID returns the authenticated user id stored by the middleware.
func UserID(c *fiber.Ctx) string {
	if v, ok := c.Locals(UserIDKey).(string); ok {
		return v
	}
	return ""
}
