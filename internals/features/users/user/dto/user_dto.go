package dto

import (
	"time"

	"github.com/google/uuid"

	"ktagkk_backend/internals/features/users/user/model"
)

type CreateUserRequest struct {
	UserName     string     `json:"user_name" validate:"required,min=3,max=100"`
	UserEmail    string     `json:"user_email" validate:"required,email"`
	UserPassword string     `json:"user_password" validate:"required,min=8"`
	UserRole     string     `json:"user_role" validate:"required,oneof=DAERAH PUSAT ADMIN"`
	UserRegionID *uuid.UUID `json:"user_region_id" validate:"omitempty"`
}

type UpdateUserRequest struct {
	UserName     *string    `json:"user_name" validate:"omitempty,min=3,max=100"`
	UserPassword *string    `json:"user_password" validate:"omitempty,min=8"`
	UserRole     *string    `json:"user_role" validate:"omitempty,oneof=DAERAH PUSAT ADMIN"`
	UserRegionID *uuid.UUID `json:"user_region_id" validate:"omitempty"`
	UserIsActive *bool      `json:"user_is_active" validate:"omitempty"`
}

type UserResponse struct {
	UserID       uuid.UUID  `json:"user_id"`
	UserName     string     `json:"user_name"`
	UserEmail    string     `json:"user_email"`
	UserRole     string     `json:"user_role"`
	UserRegionID *uuid.UUID `json:"user_region_id,omitempty"`
	UserIsActive bool       `json:"user_is_active"`
	UserCreatedAt time.Time `json:"user_created_at"`
}

func FromModel(m model.UserModel) UserResponse {
	return UserResponse{
		UserID:        m.UserID,
		UserName:      m.UserName,
		UserEmail:     m.UserEmail,
		UserRole:      m.UserRole,
		UserRegionID:  m.UserRegionID,
		UserIsActive:  m.UserIsActive,
		UserCreatedAt: m.UserCreatedAt,
	}
}

func FromModels(rows []model.UserModel) []UserResponse {
	out := make([]UserResponse, 0, len(rows))
	for _, m := range rows {
		out = append(out, FromModel(m))
	}
	return out
}
