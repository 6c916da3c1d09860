package service

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	m "ktagkk_backend/internals/features/kta/requests/model"
)

// Action pada state machine KTA request.
type Action string

const (
	ActionSubmitApproval   Action = "SUBMIT_APPROVAL"   // alur self-service (dokumen + payment PAID)
	ActionSubmitInvoicing  Action = "SUBMIT_INVOICING"  // alur bulk invoice
	ActionRegionalReview   Action = "REGIONAL_REVIEW"   // daerah meneruskan ke pusat
	ActionPusatApprove     Action = "PUSAT_APPROVE"     // approval nasional
	ActionReject           Action = "REJECT"            // keputusan reviewer
	ActionMarkReadyToPrint Action = "MARK_READY_TO_PRINT"
	ActionMarkPrinted      Action = "MARK_PRINTED"
)

// Tabel transisi eksplisit: (status sekarang × aksi) → status berikut.
// Semua guard status lewat sini, tidak ada conditional tersebar di controller.
var transitions = map[m.Status]map[Action]m.Status{
	m.StatusDraft: {
		ActionSubmitApproval:  m.StatusWaitingApproval,
		ActionSubmitInvoicing: m.StatusWaitingPayment,
	},
	m.StatusWaitingPayment: {
		// jalur self-service tetap terbuka setelah invoice lunas
		ActionSubmitApproval: m.StatusWaitingApproval,
		ActionRegionalReview: m.StatusReadyForPusat,
		ActionReject:         m.StatusRejected,
	},
	m.StatusWaitingApproval: {
		ActionRegionalReview: m.StatusReadyForPusat,
		ActionReject:         m.StatusRejected,
	},
	m.StatusReadyForPusat: {
		ActionPusatApprove: m.StatusApprovedByPusat,
		ActionReject:       m.StatusRejected,
	},
	m.StatusApprovedByPusat: {
		ActionMarkReadyToPrint: m.StatusReadyToPrint,
		ActionMarkPrinted:      m.StatusPrinted,
	},
	m.StatusReadyToPrint: {
		ActionMarkPrinted: m.StatusPrinted,
	},
	m.StatusPrinted: {
		ActionMarkPrinted: m.StatusPrinted, // cetak ulang diperbolehkan
	},
}

// Transition mengembalikan status berikut, atau error 412 yang menyebutkan
// precondition yang tidak terpenuhi. Tidak ada mutasi di sini — caller
// melakukan satu write setelah guard lolos.
func Transition(current m.Status, action Action) (m.Status, error) {
	if acts, ok := transitions[current]; ok {
		if next, ok := acts[action]; ok {
			return next, nil
		}
	}
	return current, fiber.NewError(fiber.StatusPreconditionFailed,
		fmt.Sprintf("Status %s tidak mengizinkan aksi %s", current, action))
}

// Invoiceable: status yang barisnya boleh digabung ke invoice. DRAFT ikut
// supaya jalur self-service bisa memperoleh baris payment sebelum submit —
// tanpa itu guard "payment PAID" pada submit approval mustahil terpenuhi.
func Invoiceable(current m.Status) bool {
	switch current {
	case m.StatusDraft, m.StatusWaitingPayment:
		return true
	}
	return false
}

// InvoiceableStatuses: bentuk slice untuk filter query IN.
func InvoiceableStatuses() []m.Status {
	return []m.Status{m.StatusDraft, m.StatusWaitingPayment}
}

// Deletable: request hanya bisa dihapus sebelum masuk pipeline review/cetak.
func Deletable(current m.Status) bool {
	switch current {
	case m.StatusReadyForPusat, m.StatusApprovedByPusat, m.StatusReadyToPrint, m.StatusPrinted:
		return false
	}
	return true
}

// Printable: cetak (termasuk cetak ulang) hanya setelah approval pusat.
func Printable(current m.Status) bool {
	switch current {
	case m.StatusApprovedByPusat, m.StatusReadyToPrint, m.StatusPrinted:
		return true
	}
	return false
}
