package model

import (
	"time"

	"github.com/google/uuid"
)

// ClassificationModel: lookup lokal hasil dekomposisi kode klasifikasi SIKI.
type ClassificationModel struct {
	ClassificationID uuid.UUID `gorm:"column:classification_id;type:uuid;default:gen_random_uuid();primaryKey" json:"classification_id"`

	// 2 karakter pertama kode, uppercase
	ClassificationCategory string `gorm:"column:classification_category;size:2;not null;uniqueIndex:uq_classification_code" json:"classification_category"`
	// sisa kode, uppercase
	ClassificationSubcode string `gorm:"column:classification_subcode;size:32;not null;uniqueIndex:uq_classification_code" json:"classification_subcode"`

	ClassificationName string `gorm:"column:classification_name;size:255" json:"classification_name"`

	ClassificationCreatedAt time.Time  `gorm:"column:classification_created_at;autoCreateTime" json:"classification_created_at"`
	ClassificationUpdatedAt *time.Time `gorm:"column:classification_updated_at;autoUpdateTime" json:"classification_updated_at,omitempty"`
}

func (ClassificationModel) TableName() string { return "classifications" }
