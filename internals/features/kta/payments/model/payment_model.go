package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "PENDING"
	PaymentStatusPaid     PaymentStatus = "PAID"
	PaymentStatusVerified PaymentStatus = "VERIFIED"
	PaymentStatusRejected PaymentStatus = "REJECTED"
)

// PaymentModel: satu baris ledger per KTA request dalam satu invoice.
// Unique pada kta_request_id — double-invoicing jadi conflict di storage,
// bukan sekadar pre-check yang bisa kalah race.
type PaymentModel struct {
	PaymentID uuid.UUID `gorm:"column:payment_id;type:uuid;default:gen_random_uuid();primaryKey" json:"payment_id"`

	PaymentKtaRequestID  uuid.UUID `gorm:"column:payment_kta_request_id;type:uuid;not null;unique" json:"payment_kta_request_id"`
	PaymentBulkPaymentID uuid.UUID `gorm:"column:payment_bulk_payment_id;type:uuid;not null;index" json:"payment_bulk_payment_id"`

	// Nominal beku, disalin dari harga_final request saat invoice dibuat
	PaymentJumlah int64         `gorm:"column:payment_jumlah;not null" json:"payment_jumlah"`
	PaymentStatus PaymentStatus `gorm:"column:payment_status;type:varchar(16);not null;default:'PENDING'" json:"payment_status"`

	PaymentCreatedAt time.Time      `gorm:"column:payment_created_at;autoCreateTime" json:"payment_created_at"`
	PaymentUpdatedAt *time.Time     `gorm:"column:payment_updated_at;autoUpdateTime" json:"payment_updated_at,omitempty"`
	PaymentDeletedAt gorm.DeletedAt `gorm:"column:payment_deleted_at;index" json:"payment_deleted_at,omitempty"`
}

func (PaymentModel) TableName() string { return "payments" }
