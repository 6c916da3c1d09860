package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserModel struct {
	UserID uuid.UUID `gorm:"column:user_id;type:uuid;default:gen_random_uuid();primaryKey" json:"user_id"`

	UserName  string `gorm:"column:user_name;size:100;not null" json:"user_name"`
	UserEmail string `gorm:"column:user_email;size:255;not null;unique" json:"user_email"`
	// bcrypt hash, tidak pernah keluar di response
	UserPassword string `gorm:"column:user_password;size:255;not null" json:"-"`

	// DAERAH / PUSAT / ADMIN
	UserRole string `gorm:"column:user_role;type:varchar(16);not null;default:'DAERAH';index" json:"user_role"`
	// wajib untuk DAERAH, nil untuk PUSAT/ADMIN
	UserRegionID *uuid.UUID `gorm:"column:user_region_id;type:uuid;index" json:"user_region_id,omitempty"`

	UserIsActive bool `gorm:"column:user_is_active;not null;default:true" json:"user_is_active"`

	UserCreatedAt time.Time      `gorm:"column:user_created_at;autoCreateTime" json:"user_created_at"`
	UserUpdatedAt *time.Time     `gorm:"column:user_updated_at;autoUpdateTime" json:"user_updated_at,omitempty"`
	UserDeletedAt gorm.DeletedAt `gorm:"column:user_deleted_at;index" json:"user_deleted_at,omitempty"`
}

func (UserModel) TableName() string { return "users" }
