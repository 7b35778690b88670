package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/teremets90/cashdrive-app/internal/auth"
	"github.com/teremets90/cashdrive-app/internal/middleware"
	"github.com/teremets90/cashdrive-app/internal/models"
)

type registerReq struct {
	Name      string `json:"name" validate:"required,min=2"`
	BirthDate string `json:"birthDate" validate:"required"`
	Phone     string `json:"phone" validate:"required,min=5,phoneformat"`
	Password  string `json:"password" validate:"required,min=6"`
}

func (h *Handler) Register(c *fiber.Ctx) error {
	var req registerReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}
	if err := h.validate.Struct(req); err != nil {
		return h.invalid(c, err)
	}
	birthDate, err := parseDate(req.BirthDate)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "validation failed",
			"details": map[string]string{"birthDate": "is not a valid date"},
		})
	}

	user, err := h.authSvc.Register(c.Context(), req.Name, birthDate, req.Phone, req.Password)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(fiber.Map{"user": models.PublicUser{
		ID:           user.ID,
		Name:         user.Name,
		Phone:        user.Phone,
		RegisteredAt: user.RegisteredAt,
	}})
}

type loginReq struct {
	Phone    string `json:"phone" validate:"required,min=5"`
	Password string `json:"password" validate:"required,min=6"`
}

func (h *Handler) Login(c *fiber.Ctx) error {
	var req loginReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}
	if err := h.validate.Struct(req); err != nil {
		return h.invalid(c, err)
	}

	token, _, err := h.authSvc.Login(c.Context(), req.Phone, req.Password)
	if err != nil {
		return h.fail(c, err)
	}

	c.Cookie(&fiber.Cookie{
		Name:     auth.CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.codec.TTL().Seconds()),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return c.JSON(fiber.Map{"ok": true})
}

func (h *Handler) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     auth.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return c.JSON(fiber.Map{"ok": true})
}

// Me reports the logged-in user, or a 401 with a null user for guests.
func (h *Handler) Me(c *fiber.Ctx) error {
	userID := middleware.UserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"user": nil})
	}
	user, err := h.userSvc.Profile(c.Context(), userID)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(fiber.Map{"user": models.ProfileUser{
		ID:           user.ID,
		Name:         user.Name,
		Phone:        user.Phone,
		BirthDate:    user.BirthDate,
		PhotoURL:     user.PhotoURL,
		RegisteredAt: user.RegisteredAt,
	}})
}
