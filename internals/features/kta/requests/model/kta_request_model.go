package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Status KTA request — closed set, transisi diatur service.Transition.
type Status string

const (
	StatusDraft           Status = "DRAFT"
	StatusWaitingPayment  Status = "WAITING_PAYMENT"
	StatusWaitingApproval Status = "WAITING_APPROVAL"
	StatusReadyForPusat   Status = "READY_FOR_PUSAT"
	StatusApprovedByPusat Status = "APPROVED_BY_PUSAT"
	StatusReadyToPrint    Status = "READY_TO_PRINT"
	StatusPrinted         Status = "PRINTED"
	StatusRejected        Status = "REJECTED"
)

func (s Status) Valid() bool {
	switch s {
	case StatusDraft, StatusWaitingPayment, StatusWaitingApproval,
		StatusReadyForPusat, StatusApprovedByPusat, StatusReadyToPrint,
		StatusPrinted, StatusRejected:
		return true
	}
	return false
}

type KtaRequestModel struct {
	KtaRequestID uuid.UUID `gorm:"column:kta_request_id;type:uuid;default:gen_random_uuid();primaryKey" json:"kta_request_id"`

	// ID registrasi di registry SIKI, unik
	KtaRequestIDIzin string `gorm:"column:kta_request_id_izin;size:32;not null;unique" json:"kta_request_id_izin"`

	// Identitas pemegang
	KtaRequestNama           string `gorm:"column:kta_request_nama;size:255;not null" json:"kta_request_nama"`
	KtaRequestNIK            string `gorm:"column:kta_request_nik;size:16;not null" json:"kta_request_nik"`
	KtaRequestJabatan        string `gorm:"column:kta_request_jabatan;size:255" json:"kta_request_jabatan"`
	KtaRequestSubklasifikasi string `gorm:"column:kta_request_subklasifikasi;size:255" json:"kta_request_subklasifikasi"`
	KtaRequestJenjang        int16  `gorm:"column:kta_request_jenjang;type:smallint;not null" json:"kta_request_jenjang"`
	KtaRequestEmail          string `gorm:"column:kta_request_email;size:255" json:"kta_request_email"`
	KtaRequestNoTelepon      string `gorm:"column:kta_request_no_telepon;size:32" json:"kta_request_no_telepon"`
	KtaRequestAlamat         string `gorm:"column:kta_request_alamat;type:text" json:"kta_request_alamat"`

	// Kepemilikan
	KtaRequestRequestedBy uuid.UUID `gorm:"column:kta_request_requested_by;type:uuid;not null;index" json:"kta_request_requested_by"`
	KtaRequestRegionID    uuid.UUID `gorm:"column:kta_request_region_id;type:uuid;not null;index" json:"kta_request_region_id"`

	KtaRequestStatus Status `gorm:"column:kta_request_status;type:varchar(24);not null;default:'DRAFT';index" json:"kta_request_status"`

	// Pricing — dihitung sekali saat create/refresh harga, beku setelahnya
	KtaRequestHargaBase    int64   `gorm:"column:kta_request_harga_base;not null;default:0" json:"kta_request_harga_base"`
	KtaRequestDiskonPersen float64 `gorm:"column:kta_request_diskon_persen;type:numeric(5,2);not null;default:0" json:"kta_request_diskon_persen"`
	KtaRequestHargaFinal   int64   `gorm:"column:kta_request_harga_final;not null;default:0" json:"kta_request_harga_final"`
	// harga dasar versi region untuk tahun berjalan, 0 = belum diset
	KtaRequestHargaRegion int64 `gorm:"column:kta_request_harga_region;not null;default:0" json:"kta_request_harga_region"`

	// Dokumen upload
	KtaRequestKTPURL  *string `gorm:"column:kta_request_ktp_url;type:text" json:"kta_request_ktp_url,omitempty"`
	KtaRequestFotoURL *string `gorm:"column:kta_request_foto_url;type:text" json:"kta_request_foto_url,omitempty"`

	// Artefak hasil cetak
	KtaRequestNomorKTA    *string `gorm:"column:kta_request_nomor_kta;size:64" json:"kta_request_nomor_kta,omitempty"`
	KtaRequestQRPath      *string `gorm:"column:kta_request_qr_path;type:text" json:"kta_request_qr_path,omitempty"`
	KtaRequestCardPDFPath *string `gorm:"column:kta_request_card_pdf_path;type:text" json:"kta_request_card_pdf_path,omitempty"`

	// Snapshot payload mentah SIKI saat fetch terakhir
	KtaRequestSikiSnapshot datatypes.JSON `gorm:"column:kta_request_siki_snapshot;type:jsonb" json:"-"`

	KtaRequestRegisteredAt     *time.Time `gorm:"column:kta_request_registered_at" json:"kta_request_registered_at,omitempty"`
	KtaRequestApprovedDaerahAt *time.Time `gorm:"column:kta_request_approved_daerah_at" json:"kta_request_approved_daerah_at,omitempty"`
	KtaRequestApprovedPusatAt  *time.Time `gorm:"column:kta_request_approved_pusat_at" json:"kta_request_approved_pusat_at,omitempty"`
	KtaRequestPrintedAt        *time.Time `gorm:"column:kta_request_printed_at" json:"kta_request_printed_at,omitempty"`

	KtaRequestCreatedAt time.Time      `gorm:"column:kta_request_created_at;autoCreateTime" json:"kta_request_created_at"`
	KtaRequestUpdatedAt *time.Time     `gorm:"column:kta_request_updated_at;autoUpdateTime" json:"kta_request_updated_at,omitempty"`
	KtaRequestDeletedAt gorm.DeletedAt `gorm:"column:kta_request_deleted_at;index" json:"kta_request_deleted_at,omitempty"`
}

func (KtaRequestModel) TableName() string { return "kta_requests" }
