package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BulkPaymentModel: satu invoice gabungan N request dari satu region.
type BulkPaymentModel struct {
	BulkPaymentID uuid.UUID `gorm:"column:bulk_payment_id;type:uuid;default:gen_random_uuid();primaryKey" json:"bulk_payment_id"`

	// Format KTA-INV/LSP-GKK/{tahun}/{bulan}-{seq 4 digit}
	BulkPaymentInvoiceNumber string `gorm:"column:bulk_payment_invoice_number;size:64;not null;unique" json:"bulk_payment_invoice_number"`

	BulkPaymentRegionID    uuid.UUID `gorm:"column:bulk_payment_region_id;type:uuid;not null;index" json:"bulk_payment_region_id"`
	BulkPaymentSubmittedBy uuid.UUID `gorm:"column:bulk_payment_submitted_by;type:uuid;not null" json:"bulk_payment_submitted_by"`

	// Invariant: total_jumlah = count(lines), total_nominal = Σ jumlah
	BulkPaymentTotalJumlah  int   `gorm:"column:bulk_payment_total_jumlah;not null" json:"bulk_payment_total_jumlah"`
	BulkPaymentTotalNominal int64 `gorm:"column:bulk_payment_total_nominal;not null" json:"bulk_payment_total_nominal"`

	BulkPaymentStatus   PaymentStatus `gorm:"column:bulk_payment_status;type:varchar(16);not null;default:'PENDING';index" json:"bulk_payment_status"`
	BulkPaymentProofURL *string       `gorm:"column:bulk_payment_proof_url;type:text" json:"bulk_payment_proof_url,omitempty"`

	BulkPaymentVerifiedBy *uuid.UUID `gorm:"column:bulk_payment_verified_by;type:uuid" json:"bulk_payment_verified_by,omitempty"`
	BulkPaymentVerifiedAt *time.Time `gorm:"column:bulk_payment_verified_at" json:"bulk_payment_verified_at,omitempty"`
	BulkPaymentPaidAt     *time.Time `gorm:"column:bulk_payment_paid_at" json:"bulk_payment_paid_at,omitempty"`

	BulkPaymentCreatedAt time.Time      `gorm:"column:bulk_payment_created_at;autoCreateTime" json:"bulk_payment_created_at"`
	BulkPaymentUpdatedAt *time.Time     `gorm:"column:bulk_payment_updated_at;autoUpdateTime" json:"bulk_payment_updated_at,omitempty"`
	BulkPaymentDeletedAt gorm.DeletedAt `gorm:"column:bulk_payment_deleted_at;index" json:"bulk_payment_deleted_at,omitempty"`

	Payments []PaymentModel `gorm:"foreignKey:PaymentBulkPaymentID;references:BulkPaymentID" json:"payments,omitempty"`
}

func (BulkPaymentModel) TableName() string { return "bulk_payments" }
