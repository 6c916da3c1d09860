package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "ktagkk_backend/internals/features/regions/dto"
	model "ktagkk_backend/internals/features/regions/model"
	helper "ktagkk_backend/internals/helpers"
)

type RegionPriceController struct {
	DB *gorm.DB
}

func NewRegionPriceController(db *gorm.DB) *RegionPriceController {
	return &RegionPriceController{DB: db}
}

/* ======================= UPSERT ======================= */
// POST /admin/regions/prices
// Menonaktifkan harga aktif lama untuk (region, tahun) lalu menulis yang baru —
// satu transaksi supaya invariant "maks. satu aktif" tidak bolong di tengah.
func (h *RegionPriceController) Upsert(c *fiber.Ctx) error {
	var req dto.UpsertRegionPriceRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusUnprocessableEntity, err.Error())
	}

	// pastikan region ada
	var region model.RegionModel
	if err := h.DB.Where("region_id = ?", req.RegionPriceRegionID).First(&region).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Region tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var out model.RegionPriceModel
	err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.RegionPriceModel{}).
			Where("region_price_region_id = ? AND region_price_year = ? AND region_price_is_active = TRUE",
				req.RegionPriceRegionID, req.RegionPriceYear).
			Update("region_price_is_active", false).Error; err != nil {
			return err
		}
		out = model.RegionPriceModel{
			RegionPriceRegionID: req.RegionPriceRegionID,
			RegionPriceYear:     req.RegionPriceYear,
			RegionPriceIDR:      req.RegionPriceIDR,
			RegionPriceIsActive: true,
		}
		return tx.Create(&out).Error
	})
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan harga region")
	}

	return helper.JsonCreated(c, "Harga region berhasil disimpan", dto.FromRegionPriceModel(out))
}

/* ======================== LIST ======================== */
// GET /admin/regions/:id/prices
func (h *RegionPriceController) ListByRegion(c *fiber.Ctx) error {
	var rows []model.RegionPriceModel
	if err := h.DB.
		Where("region_price_region_id = ?", c.Params("id")).
		Order("region_price_year DESC, region_price_created_at DESC").
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	out := make([]dto.RegionPriceResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.FromRegionPriceModel(r))
	}
	return helper.JsonOK(c, "OK", out)
}
