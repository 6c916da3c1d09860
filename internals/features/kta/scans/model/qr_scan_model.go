package model

import (
	"time"

	"github.com/google/uuid"
)

// QrScanModel: log scan QR publik, append-only (tidak ada update/delete).
type QrScanModel struct {
	QrScanID uuid.UUID `gorm:"column:qr_scan_id;type:uuid;default:gen_random_uuid();primaryKey" json:"qr_scan_id"`

	QrScanKtaRequestID uuid.UUID `gorm:"column:qr_scan_kta_request_id;type:uuid;not null;index" json:"qr_scan_kta_request_id"`

	QrScanIP        string `gorm:"column:qr_scan_ip;size:64" json:"qr_scan_ip"`
	QrScanUserAgent string `gorm:"column:qr_scan_user_agent;size:512" json:"qr_scan_user_agent"`

	QrScanCreatedAt time.Time `gorm:"column:qr_scan_created_at;autoCreateTime;index" json:"qr_scan_created_at"`
}

func (QrScanModel) TableName() string { return "qr_scans" }
