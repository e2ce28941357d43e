package handlers

import (
	"Couple-Backend/pkg/couple"

	"github.com/gofiber/fiber/v2"
)

// coupleIDFor resolves the authenticated user's couple, creating a
// single-member one on first use so household features work before a partner
// joins.
func coupleIDFor(c *fiber.Ctx, coupleService couple.CoupleService) (string, error) {
	userID := c.Locals("user_id").(string)
	res, err := coupleService.EnsureCouple(c.Context(), userID)
	if err != nil {
		return "", err
	}
	return res.ID, nil
}
