package middleware

import (
	"net/url"

	"github.com/gofiber/fiber/v2"

	"github.com/teremets90/cashdrive-app/internal/auth"
)

// RequirePage guards browser page routes: unauthenticated visitors are sent
// to the login page with a return parameter instead of getting a JSON 401.
func RequirePage(codec *auth.Codec) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if userID := userIDFromCookie(c, codec); userID != "" {
			c.Locals(UserIDKey, userID)
			return c.Next()
		}
		return c.Redirect("/login?next="+url.QueryEscape(c.Path()), fiber.StatusFound)
	}
}
