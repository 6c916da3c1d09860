package dto

import (
	"time"

	"github.com/google/uuid"

	"ktagkk_backend/internals/features/kta/payments/model"
)

/* ======================= REQUEST ======================= */

type CreateInvoiceRequest struct {
	// ID request berstatus WAITING_PAYMENT yang mau digabung ke satu invoice
	KtaRequestIDs []uuid.UUID `json:"kta_request_ids" validate:"required,min=1,dive,required"`
	// PUSAT/ADMIN wajib isi; DAERAH diambil dari token
	BulkPaymentRegionID *uuid.UUID `json:"bulk_payment_region_id" validate:"omitempty"`
}

type RejectBulkPaymentRequest struct {
	Alasan string `json:"alasan" validate:"omitempty,max=500"`
}

/* ======================= RESPONSE ======================= */

type PaymentLineResponse struct {
	PaymentID           uuid.UUID           `json:"payment_id"`
	PaymentKtaRequestID uuid.UUID           `json:"payment_kta_request_id"`
	PaymentJumlah       int64               `json:"payment_jumlah"`
	PaymentStatus       model.PaymentStatus `json:"payment_status"`
}

type BulkPaymentResponse struct {
	BulkPaymentID            uuid.UUID           `json:"bulk_payment_id"`
	BulkPaymentInvoiceNumber string              `json:"bulk_payment_invoice_number"`
	BulkPaymentRegionID      uuid.UUID           `json:"bulk_payment_region_id"`
	BulkPaymentSubmittedBy   uuid.UUID           `json:"bulk_payment_submitted_by"`
	BulkPaymentTotalJumlah   int                 `json:"bulk_payment_total_jumlah"`
	BulkPaymentTotalNominal  int64               `json:"bulk_payment_total_nominal"`
	BulkPaymentStatus        model.PaymentStatus `json:"bulk_payment_status"`
	BulkPaymentProofURL      *string             `json:"bulk_payment_proof_url,omitempty"`
	BulkPaymentVerifiedBy    *uuid.UUID          `json:"bulk_payment_verified_by,omitempty"`
	BulkPaymentVerifiedAt    *time.Time          `json:"bulk_payment_verified_at,omitempty"`
	BulkPaymentPaidAt        *time.Time          `json:"bulk_payment_paid_at,omitempty"`
	BulkPaymentCreatedAt     time.Time           `json:"bulk_payment_created_at"`

	Payments []PaymentLineResponse `json:"payments,omitempty"`
}

func FromModel(m model.BulkPaymentModel) BulkPaymentResponse {
	resp := BulkPaymentResponse{
		BulkPaymentID:            m.BulkPaymentID,
		BulkPaymentInvoiceNumber: m.BulkPaymentInvoiceNumber,
		BulkPaymentRegionID:      m.BulkPaymentRegionID,
		BulkPaymentSubmittedBy:   m.BulkPaymentSubmittedBy,
		BulkPaymentTotalJumlah:   m.BulkPaymentTotalJumlah,
		BulkPaymentTotalNominal:  m.BulkPaymentTotalNominal,
		BulkPaymentStatus:        m.BulkPaymentStatus,
		BulkPaymentProofURL:      m.BulkPaymentProofURL,
		BulkPaymentVerifiedBy:    m.BulkPaymentVerifiedBy,
		BulkPaymentVerifiedAt:    m.BulkPaymentVerifiedAt,
		BulkPaymentPaidAt:        m.BulkPaymentPaidAt,
		BulkPaymentCreatedAt:     m.BulkPaymentCreatedAt,
	}
	for _, p := range m.Payments {
		resp.Payments = append(resp.Payments, PaymentLineResponse{
			PaymentID:           p.PaymentID,
			PaymentKtaRequestID: p.PaymentKtaRequestID,
			PaymentJumlah:       p.PaymentJumlah,
			PaymentStatus:       p.PaymentStatus,
		})
	}
	return resp
}

func FromModels(rows []model.BulkPaymentModel) []BulkPaymentResponse {
	out := make([]BulkPaymentResponse, 0, len(rows))
	for _, m := range rows {
		out = append(out, FromModel(m))
	}
	return out
}
