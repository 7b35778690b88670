package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/teremets90/cashdrive-app/internal/middleware"
)

// ListChallenges returns the currently open challenges enriched with the
// caller's participation state.
func (h *Handler) ListChallenges(c *fiber.Ctx) error {
	challenges, err := h.challengeSvc.ListOpenForUser(c.Context(), middleware.UserID(c))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(fiber.Map{"challenges": challenges})
}

type participateReq struct {
	BetAmount int `json:"betAmount"`
}

func (h *Handler) Participate(c *fiber.Ctx) error {
	var req participateReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}

	progress, msg, err := h.progressSvc.Join(c.Context(), middleware.UserID(c), c.Params("id"), req.BetAmount)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(fiber.Map{
		"success":  true,
		"message":  msg,
		"progress": progress,
	})
}
