package handlers

import (
	"net/url"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/teremets90/cashdrive-app/internal/middleware"
	"github.com/teremets90/cashdrive-app/internal/models"
	"github.com/teremets90/cashdrive-app/internal/services"
)

func profilePayload(u *models.User) models.ProfileUser {
	isAdmin := u.IsAdmin
	return models.ProfileUser{
		ID:           u.ID,
		Name:         u.Name,
		Phone:        u.Phone,
		BirthDate:    u.BirthDate,
		PhotoURL:     u.PhotoURL,
		IsAdmin:      &isAdmin,
		RegisteredAt: u.RegisteredAt,
	}
}

func (h *Handler) GetProfile(c *fiber.Ctx) error {
	user, err := h.userSvc.Profile(c.Context(), middleware.UserID(c))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(fiber.Map{"user": profilePayload(user)})
}

type profileUpdateReq struct {
	Name      *string `json:"name"`
	BirthDate *string `json:"birthDate"`
	PhotoURL  *string `json:"photoUrl"`
}

// photoURLValid accepts absolute http(s) URLs and site-relative paths.
func photoURLValid(u string) bool {
	if strings.HasPrefix(u, "http://") || strings.HasPrefix(u, "https://") {
		parsed, err := url.Parse(u)
		return err == nil && parsed.Host != ""
	}
	return strings.HasPrefix(u, "/") && len(u) > 1
}

func (h *Handler) UpdateProfile(c *fiber.Ctx) error {
	var req profileUpdateReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}

	details := map[string]string{}
	upd := services.ProfileUpdate{}
	if req.Name != nil {
		if len(*req.Name) < 2 {
			details["name"] = "is too short"
		} else {
			upd.Name = req.Name
		}
	}
	if req.BirthDate != nil {
		t, err := parseDate(*req.BirthDate)
		if err != nil {
			details["birthDate"] = "is not a valid date"
		} else {
			upd.BirthDate = &t
		}
	}
	if req.PhotoURL != nil {
		if !photoURLValid(*req.PhotoURL) {
			details["photoUrl"] = "is not a valid URL or path"
		} else {
			upd.PhotoURL = req.PhotoURL
		}
	}
	if len(details) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "validation failed", "details": details})
	}

	user, err := h.userSvc.UpdateProfile(c.Context(), middleware.UserID(c), upd)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(fiber.Map{"user": profilePayload(user)})
}
