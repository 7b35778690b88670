package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/teremets90/cashdrive-app/internal/middleware"
)

type progressUpdateReq struct {
	ChallengeID string `json:"challengeId" validate:"required"`
	AddTrips    int    `json:"addTrips" validate:"required,gt=0"`
}

func (h *Handler) UpdateProgress(c *fiber.Ctx) error {
	var req progressUpdateReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}
	if err := h.validate.Struct(req); err != nil {
		return h.invalid(c, err)
	}

	progress, err := h.progressSvc.AddTrips(c.Context(), middleware.UserID(c), req.ChallengeID, req.AddTrips)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(fiber.Map{"progress": progress})
}
