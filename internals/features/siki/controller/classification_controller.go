package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ktagkk_backend/internals/features/siki/model"
	helper "ktagkk_backend/internals/helpers"
)

type ClassificationController struct {
	DB *gorm.DB
}

func NewClassificationController(db *gorm.DB) *ClassificationController {
	return &ClassificationController{DB: db}
}

// GET /siki/classifications?category=&q=
// Lookup hasil dekomposisi kode klasifikasi yang pernah di-fetch.
func (h *ClassificationController) List(c *fiber.Ctx) error {
	q := h.DB.Model(&model.ClassificationModel{})
	if cat := strings.ToUpper(strings.TrimSpace(c.Query("category"))); cat != "" {
		q = q.Where("classification_category = ?", cat)
	}
	if search := strings.TrimSpace(c.Query("q")); search != "" {
		q = q.Where("classification_name ILIKE ?", "%"+search+"%")
	}

	var rows []model.ClassificationModel
	if err := q.
		Order("classification_category, classification_subcode").
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "OK", rows)
}
