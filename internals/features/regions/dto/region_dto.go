package dto

import (
	"time"

	"github.com/google/uuid"

	m "ktagkk_backend/internals/features/regions/model"
)

/* =============== REQUESTS =============== */

type CreateRegionRequest struct {
	RegionName         string  `json:"region_name" validate:"required,min=3,max=120"`
	RegionCode         string  `json:"region_code" validate:"required,min=2,max=16"`
	RegionDiskonPersen float64 `json:"region_diskon_persen" validate:"gte=0,lte=100"`
}

func (r CreateRegionRequest) ToModel() *m.RegionModel {
	return &m.RegionModel{
		RegionName:         r.RegionName,
		RegionCode:         r.RegionCode,
		RegionDiskonPersen: r.RegionDiskonPersen,
		RegionIsActive:     true,
	}
}

// Update (partial)
type UpdateRegionRequest struct {
	RegionName         *string  `json:"region_name" validate:"omitempty,min=3,max=120"`
	RegionCode         *string  `json:"region_code" validate:"omitempty,min=2,max=16"`
	RegionDiskonPersen *float64 `json:"region_diskon_persen" validate:"omitempty,gte=0,lte=100"`
	RegionIsActive     *bool    `json:"region_is_active" validate:"omitempty"`
}

func (r UpdateRegionRequest) ApplyTo(mo *m.RegionModel) {
	if r.RegionName != nil {
		mo.RegionName = *r.RegionName
	}
	if r.RegionCode != nil {
		mo.RegionCode = *r.RegionCode
	}
	if r.RegionDiskonPersen != nil {
		mo.RegionDiskonPersen = *r.RegionDiskonPersen
	}
	if r.RegionIsActive != nil {
		mo.RegionIsActive = *r.RegionIsActive
	}
}

type UpsertRegionPriceRequest struct {
	RegionPriceRegionID uuid.UUID `json:"region_price_region_id" validate:"required"`
	RegionPriceYear     int16     `json:"region_price_year" validate:"required,gte=2000,lte=2100"`
	RegionPriceIDR      int64     `json:"region_price_idr" validate:"required,gt=0"`
}

/* =============== RESPONSES =============== */

type RegionResponse struct {
	RegionID           uuid.UUID  `json:"region_id"`
	RegionName         string     `json:"region_name"`
	RegionCode         string     `json:"region_code"`
	RegionDiskonPersen float64    `json:"region_diskon_persen"`
	RegionIsActive     bool       `json:"region_is_active"`
	RegionCreatedAt    time.Time  `json:"region_created_at"`
	RegionUpdatedAt    *time.Time `json:"region_updated_at,omitempty"`
}

func FromRegionModel(x m.RegionModel) RegionResponse {
	return RegionResponse{
		RegionID:           x.RegionID,
		RegionName:         x.RegionName,
		RegionCode:         x.RegionCode,
		RegionDiskonPersen: x.RegionDiskonPersen,
		RegionIsActive:     x.RegionIsActive,
		RegionCreatedAt:    x.RegionCreatedAt,
		RegionUpdatedAt:    x.RegionUpdatedAt,
	}
}

func FromRegionModels(list []m.RegionModel) []RegionResponse {
	out := make([]RegionResponse, 0, len(list))
	for _, it := range list {
		out = append(out, FromRegionModel(it))
	}
	return out
}

type RegionPriceResponse struct {
	RegionPriceID       uuid.UUID `json:"region_price_id"`
	RegionPriceRegionID uuid.UUID `json:"region_price_region_id"`
	RegionPriceYear     int16     `json:"region_price_year"`
	RegionPriceIDR      int64     `json:"region_price_idr"`
	RegionPriceIsActive bool      `json:"region_price_is_active"`
}

func FromRegionPriceModel(x m.RegionPriceModel) RegionPriceResponse {
	return RegionPriceResponse{
		RegionPriceID:       x.RegionPriceID,
		RegionPriceRegionID: x.RegionPriceRegionID,
		RegionPriceYear:     x.RegionPriceYear,
		RegionPriceIDR:      x.RegionPriceIDR,
		RegionPriceIsActive: x.RegionPriceIsActive,
	}
}
