package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/teremets90/cashdrive-app/internal/middleware"
	"github.com/teremets90/cashdrive-app/internal/models"
	"github.com/teremets90/cashdrive-app/internal/services"
)

func (h *Handler) AdminListUsers(c *fiber.Ctx) error {
	users, err := h.userSvc.List(c.Context())
	if err != nil {
		return h.fail(c, err)
	}
	out := make([]models.PublicUser, 0, len(users))
	for _, u := range users {
		isAdmin := u.IsAdmin
		out = append(out, models.PublicUser{
			ID:           u.ID,
			Name:         u.Name,
			Phone:        u.Phone,
			IsAdmin:      &isAdmin,
			RegisteredAt: u.RegisteredAt,
		})
	}
	return c.JSON(fiber.Map{"users": out})
}

type adminUserUpdateReq struct {
	Name      *string `json:"name"`
	Phone     *string `json:"phone"`
	IsAdmin   *bool   `json:"isAdmin"`
	IsBlocked *bool   `json:"isBlocked"`
}

func (h *Handler) AdminUpdateUser(c *fiber.Ctx) error {
	var req adminUserUpdateReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}
	user, err := h.userSvc.AdminUpdateUser(c.Context(), c.Params("id"), services.AdminUpdate{
		Name:      req.Name,
		Phone:     req.Phone,
		IsAdmin:   req.IsAdmin,
		IsBlocked: req.IsBlocked,
	})
	if err != nil {
		return h.fail(c, err)
	}
	isAdmin := user.IsAdmin
	isBlocked := user.IsBlocked
	return c.JSON(fiber.Map{"user": models.PublicUser{
		ID:           user.ID,
		Name:         user.Name,
		Phone:        user.Phone,
		IsAdmin:      &isAdmin,
		IsBlocked:    &isBlocked,
		RegisteredAt: user.RegisteredAt,
	}})
}

func (h *Handler) AdminDeleteUser(c *fiber.Ctx) error {
	if err := h.userSvc.DeleteUser(c.Context(), middleware.UserID(c), c.Params("id")); err != nil {
		return h.fail(c, err)
	}
	return c.JSON(fiber.Map{"success": true})
}
