package handlers

import "github.com/gofiber/fiber/v2"

// Ratings computes the leaderboard fresh on every call.
func (h *Handler) Ratings(c *fiber.Ctx) error {
	result, err := h.ratingSvc.Compute(c.Context())
	if err != nil {
		return h.fail(c, err)
	}
	payload := fiber.Map{
		"ratings":           result.Ratings,
		"totalParticipants": result.TotalParticipants,
		"activeChallenges":  result.ActiveChallenges,
	}
	if result.Message != "" {
		payload["message"] = result.Message
	}
	return c.JSON(payload)
}
