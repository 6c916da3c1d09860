package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "ktagkk_backend/internals/features/regions/dto"
	model "ktagkk_backend/internals/features/regions/model"
	helper "ktagkk_backend/internals/helpers"
)

type RegionController struct {
	DB *gorm.DB
}

func NewRegionController(db *gorm.DB) *RegionController {
	return &RegionController{DB: db}
}

var validate = validator.New()

/* ======================= CREATE ======================= */
// POST /admin/regions
func (h *RegionController) Create(c *fiber.Ctx) error {
	var req dto.CreateRegionRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusUnprocessableEntity, err.Error())
	}

	m := req.ToModel()
	if err := h.DB.Create(m).Error; err != nil {
		msg := strings.ToLower(err.Error())
		if strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique") {
			return fiber.NewError(fiber.StatusConflict, "Kode region sudah terdaftar")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat region")
	}

	return helper.JsonCreated(c, "Region berhasil dibuat", dto.FromRegionModel(*m))
}

/* ======================== LIST ======================== */
// GET /admin/regions?q=&page=&per_page=
func (h *RegionController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	base := h.DB.Model(&model.RegionModel{})
	if q := strings.TrimSpace(c.Query("q")); q != "" {
		base = base.Where("region_name ILIKE ? OR region_code ILIKE ?", "%"+q+"%", "%"+q+"%")
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var rows []model.RegionModel
	if err := base.
		Order("region_name ASC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "OK", dto.FromRegionModels(rows),
		helper.BuildPagination(total, p.Page, p.PerPage))
}

/* ======================== GET BY ID ======================== */
// GET /admin/regions/:id
func (h *RegionController) GetByID(c *fiber.Ctx) error {
	var row model.RegionModel
	if err := h.DB.Where("region_id = ?", c.Params("id")).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Region tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "OK", dto.FromRegionModel(row))
}

/* ======================== UPDATE ======================== */
// PATCH /admin/regions/:id
func (h *RegionController) Update(c *fiber.Ctx) error {
	var row model.RegionModel
	if err := h.DB.Where("region_id = ?", c.Params("id")).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Region tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var req dto.UpdateRegionRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusUnprocessableEntity, err.Error())
	}

	req.ApplyTo(&row)
	if err := h.DB.Save(&row).Error; err != nil {
		msg := strings.ToLower(err.Error())
		if strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique") {
			return fiber.NewError(fiber.StatusConflict, "Kode region sudah terdaftar")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal update region")
	}

	return helper.JsonUpdated(c, "Region berhasil diupdate", dto.FromRegionModel(row))
}
