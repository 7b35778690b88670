package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/teremets90/cashdrive-app/internal/models"
	"github.com/teremets90/cashdrive-app/internal/repository"
	"github.com/teremets90/cashdrive-app/internal/services"
)

func (h *Handler) AdminListChallenges(c *fiber.Ctx) error {
	challenges, err := h.challengeSvc.ListAll(c.Context())
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(fiber.Map{"challenges": challenges})
}

type createChallengeReq struct {
	Title       string `json:"title"`
	Type        string `json:"type"`
	TargetTrips int    `json:"targetTrips"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
}

func (h *Handler) AdminCreateChallenge(c *fiber.Ctx) error {
	var req createChallengeReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}
	if req.Title == "" || req.Type == "" || req.TargetTrips <= 0 || req.StartDate == "" || req.EndDate == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "all fields are required"})
	}
	startDate, err := parseDate(req.StartDate)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid start date"})
	}
	endDate, err := parseDate(req.EndDate)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid end date"})
	}

	challenge, err := h.challengeSvc.Create(c.Context(), services.CreateChallengeInput{
		Title:       req.Title,
		Type:        models.ChallengeType(req.Type),
		TargetTrips: req.TargetTrips,
		StartDate:   startDate,
		EndDate:     endDate,
	})
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(fiber.Map{"challenge": challenge})
}

type setActiveReq struct {
	IsActive bool `json:"isActive"`
}

func (h *Handler) AdminSetChallengeActive(c *fiber.Ctx) error {
	var req setActiveReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}
	challenge, err := h.challengeSvc.SetActive(c.Context(), c.Params("id"), req.IsActive)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(fiber.Map{"challenge": challenge})
}

type archiveReq struct {
	IsArchived bool `json:"isArchived"`
}

func (h *Handler) AdminArchiveChallenge(c *fiber.Ctx) error {
	var req archiveReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}
	challenge, msg, err := h.challengeSvc.Archive(c.Context(), c.Params("id"), req.IsArchived)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(fiber.Map{"challenge": challenge, "message": msg})
}

func (h *Handler) AdminListArchived(c *fiber.Ctx) error {
	var f repository.ArchivedFilter
	if s := c.Query("startDate"); s != "" {
		t, err := parseDate(s)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid start date"})
		}
		f.From = &t
	}
	if s := c.Query("endDate"); s != "" {
		t, err := parseDate(s)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid end date"})
		}
		f.To = &t
	}
	f.Search = c.Query("search")

	challenges, err := h.challengeSvc.ListArchived(c.Context(), f)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(fiber.Map{"challenges": challenges, "total": len(challenges)})
}

func (h *Handler) AdminAutoArchive(c *fiber.Ctx) error {
	result, err := h.challengeSvc.AutoArchive(c.Context())
	if err != nil {
		return h.fail(c, err)
	}
	payload := fiber.Map{
		"message":       result.Message,
		"archivedCount": result.ArchivedCount,
	}
	if len(result.Challenges) > 0 {
		payload["challenges"] = result.Challenges
	}
	return c.JSON(payload)
}
