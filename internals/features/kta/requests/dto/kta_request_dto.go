package dto

import (
	"time"

	"github.com/google/uuid"

	m "ktagkk_backend/internals/features/kta/requests/model"
)

/* =============== REQUESTS =============== */

// Create via fetch SIKI: cukup ID izin + region.
type CreateFromSikiRequest struct {
	KtaRequestIDIzin   string     `json:"kta_request_id_izin" validate:"required,min=6,max=32"`
	KtaRequestRegionID *uuid.UUID `json:"kta_request_region_id" validate:"omitempty"`
}

// Create manual: semua field identitas wajib diisi sendiri + URL dokumen.
type CreateManualRequest struct {
	KtaRequestIDIzin         string     `json:"kta_request_id_izin" validate:"required,min=6,max=32"`
	KtaRequestNama           string     `json:"kta_request_nama" validate:"required,min=3,max=255"`
	KtaRequestNIK            string     `json:"kta_request_nik" validate:"required,len=16,numeric"`
	KtaRequestJabatan        string     `json:"kta_request_jabatan" validate:"required"`
	KtaRequestSubklasifikasi string     `json:"kta_request_subklasifikasi" validate:"omitempty"`
	KtaRequestJenjang        int16      `json:"kta_request_jenjang" validate:"required,gte=1,lte=9"`
	KtaRequestEmail          string     `json:"kta_request_email" validate:"omitempty,email"`
	KtaRequestNoTelepon      string     `json:"kta_request_no_telepon" validate:"omitempty,max=32"`
	KtaRequestAlamat         string     `json:"kta_request_alamat" validate:"omitempty"`
	KtaRequestRegionID       *uuid.UUID `json:"kta_request_region_id" validate:"omitempty"`
	KtaRequestKTPURL         string     `json:"kta_request_ktp_url" validate:"required,url"`
	KtaRequestFotoURL        string     `json:"kta_request_foto_url" validate:"required,url"`
}

type UpdateDocumentsRequest struct {
	KtaRequestKTPURL  *string `json:"kta_request_ktp_url" validate:"omitempty,url"`
	KtaRequestFotoURL *string `json:"kta_request_foto_url" validate:"omitempty,url"`
}

type ListKtaRequestQuery struct {
	Status   *string    `query:"status" validate:"omitempty"`
	RegionID *uuid.UUID `query:"region_id" validate:"omitempty"`
	Q        *string    `query:"q" validate:"omitempty"`
}

/* =============== RESPONSES =============== */

type KtaRequestResponse struct {
	KtaRequestID     uuid.UUID `json:"kta_request_id"`
	KtaRequestIDIzin string    `json:"kta_request_id_izin"`

	KtaRequestNama           string `json:"kta_request_nama"`
	KtaRequestNIK            string `json:"kta_request_nik"`
	KtaRequestJabatan        string `json:"kta_request_jabatan"`
	KtaRequestSubklasifikasi string `json:"kta_request_subklasifikasi"`
	KtaRequestJenjang        int16  `json:"kta_request_jenjang"`
	KtaRequestEmail          string `json:"kta_request_email"`
	KtaRequestNoTelepon      string `json:"kta_request_no_telepon"`
	KtaRequestAlamat         string `json:"kta_request_alamat"`

	KtaRequestRequestedBy uuid.UUID `json:"kta_request_requested_by"`
	KtaRequestRegionID    uuid.UUID `json:"kta_request_region_id"`
	KtaRequestStatus      m.Status  `json:"kta_request_status"`

	KtaRequestHargaBase    int64   `json:"kta_request_harga_base"`
	KtaRequestDiskonPersen float64 `json:"kta_request_diskon_persen"`
	KtaRequestHargaFinal   int64   `json:"kta_request_harga_final"`
	KtaRequestHargaRegion  int64   `json:"kta_request_harga_region"`

	KtaRequestKTPURL      *string `json:"kta_request_ktp_url,omitempty"`
	KtaRequestFotoURL     *string `json:"kta_request_foto_url,omitempty"`
	KtaRequestNomorKTA    *string `json:"kta_request_nomor_kta,omitempty"`
	KtaRequestQRPath      *string `json:"kta_request_qr_path,omitempty"`
	KtaRequestCardPDFPath *string `json:"kta_request_card_pdf_path,omitempty"`

	KtaRequestRegisteredAt *time.Time `json:"kta_request_registered_at,omitempty"`
	KtaRequestPrintedAt    *time.Time `json:"kta_request_printed_at,omitempty"`
	KtaRequestCreatedAt    time.Time  `json:"kta_request_created_at"`
	KtaRequestUpdatedAt    *time.Time `json:"kta_request_updated_at,omitempty"`
}

func FromModel(x m.KtaRequestModel) KtaRequestResponse {
	return KtaRequestResponse{
		KtaRequestID:             x.KtaRequestID,
		KtaRequestIDIzin:         x.KtaRequestIDIzin,
		KtaRequestNama:           x.KtaRequestNama,
		KtaRequestNIK:            x.KtaRequestNIK,
		KtaRequestJabatan:        x.KtaRequestJabatan,
		KtaRequestSubklasifikasi: x.KtaRequestSubklasifikasi,
		KtaRequestJenjang:        x.KtaRequestJenjang,
		KtaRequestEmail:          x.KtaRequestEmail,
		KtaRequestNoTelepon:      x.KtaRequestNoTelepon,
		KtaRequestAlamat:         x.KtaRequestAlamat,
		KtaRequestRequestedBy:    x.KtaRequestRequestedBy,
		KtaRequestRegionID:       x.KtaRequestRegionID,
		KtaRequestStatus:         x.KtaRequestStatus,
		KtaRequestHargaBase:      x.KtaRequestHargaBase,
		KtaRequestDiskonPersen:   x.KtaRequestDiskonPersen,
		KtaRequestHargaFinal:     x.KtaRequestHargaFinal,
		KtaRequestHargaRegion:    x.KtaRequestHargaRegion,
		KtaRequestKTPURL:         x.KtaRequestKTPURL,
		KtaRequestFotoURL:        x.KtaRequestFotoURL,
		KtaRequestNomorKTA:       x.KtaRequestNomorKTA,
		KtaRequestQRPath:         x.KtaRequestQRPath,
		KtaRequestCardPDFPath:    x.KtaRequestCardPDFPath,
		KtaRequestRegisteredAt:   x.KtaRequestRegisteredAt,
		KtaRequestPrintedAt:      x.KtaRequestPrintedAt,
		KtaRequestCreatedAt:      x.KtaRequestCreatedAt,
		KtaRequestUpdatedAt:      x.KtaRequestUpdatedAt,
	}
}

func FromModels(list []m.KtaRequestModel) []KtaRequestResponse {
	out := make([]KtaRequestResponse, 0, len(list))
	for _, it := range list {
		out = append(out, FromModel(it))
	}
	return out
}
