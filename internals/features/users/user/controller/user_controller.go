package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"ktagkk_backend/internals/constants"
	dto "ktagkk_backend/internals/features/users/user/dto"
	model "ktagkk_backend/internals/features/users/user/model"
	helper "ktagkk_backend/internals/helpers"
)

type UserController struct {
	DB *gorm.DB
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db}
}

var validate = validator.New()

/* ======================= CREATE ======================= */
// POST /users — ADMIN only. DAERAH wajib punya region.
func (h *UserController) Create(c *fiber.Ctx) error {
	var req dto.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusUnprocessableEntity, err.Error())
	}
	if req.UserRole == constants.RoleDaerah && req.UserRegionID == nil {
		return fiber.NewError(fiber.StatusUnprocessableEntity,
			"User DAERAH wajib punya user_region_id")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.UserPassword), bcrypt.DefaultCost)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal hash password")
	}

	row := model.UserModel{
		UserName:     req.UserName,
		UserEmail:    strings.ToLower(strings.TrimSpace(req.UserEmail)),
		UserPassword: string(hash),
		UserRole:     req.UserRole,
		UserRegionID: req.UserRegionID,
		UserIsActive: true,
	}
	if err := h.DB.Create(&row).Error; err != nil {
		msg := strings.ToLower(err.Error())
		if strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique") {
			return fiber.NewError(fiber.StatusConflict, "Email sudah terdaftar")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat user")
	}
	return helper.JsonCreated(c, "User berhasil dibuat", dto.FromModel(row))
}

/* ======================= LIST ======================= */
// GET /users?role=&region_id=&q=&page=&per_page=
func (h *UserController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	base := h.DB.Model(&model.UserModel{})
	if role := strings.TrimSpace(c.Query("role")); role != "" {
		base = base.Where("user_role = ?", role)
	}
	if rid := strings.TrimSpace(c.Query("region_id")); rid != "" {
		base = base.Where("user_region_id = ?", rid)
	}
	if q := strings.TrimSpace(c.Query("q")); q != "" {
		base = base.Where("user_name ILIKE ? OR user_email ILIKE ?", "%"+q+"%", "%"+q+"%")
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	var rows []model.UserModel
	if err := base.
		Order("user_created_at DESC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonList(c, "OK", dto.FromModels(rows),
		helper.BuildPagination(total, p.Page, p.PerPage))
}

/* ======================= UPDATE ======================= */
// PATCH /users/:id
func (h *UserController) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	var row model.UserModel
	if err := h.DB.Where("user_id = ?", id).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "User tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var req dto.UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusUnprocessableEntity, err.Error())
	}

	if req.UserName != nil {
		row.UserName = *req.UserName
	}
	if req.UserPassword != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.UserPassword), bcrypt.DefaultCost)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal hash password")
		}
		row.UserPassword = string(hash)
	}
	if req.UserRole != nil {
		row.UserRole = *req.UserRole
	}
	if req.UserRegionID != nil {
		row.UserRegionID = req.UserRegionID
	}
	if req.UserIsActive != nil {
		row.UserIsActive = *req.UserIsActive
	}
	if row.UserRole == constants.RoleDaerah && row.UserRegionID == nil {
		return fiber.NewError(fiber.StatusUnprocessableEntity,
			"User DAERAH wajib punya user_region_id")
	}

	if err := h.DB.Save(&row).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal update user")
	}
	return helper.JsonUpdated(c, "User berhasil diupdate", dto.FromModel(row))
}
