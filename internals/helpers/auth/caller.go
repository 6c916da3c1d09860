package auth

import (
	"github.com/gofiber/fiber/v2"

	helper "ktagkk_backend/internals/helpers"
)

// CallerFromCtx membangun Caller dari klaim yang ditaruh auth middleware.
func CallerFromCtx(c *fiber.Ctx) (Caller, error) {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return Caller{}, err
	}
	role, err := helper.GetRoleFromToken(c)
	if err != nil {
		return Caller{}, err
	}
	regionID, err := helper.GetRegionIDFromToken(c)
	if err != nil {
		return Caller{}, err
	}
	return Caller{ID: userID, Role: role, RegionID: regionID}, nil
}
