package service

import (
	"errors"
	"testing"

	"github.com/gofiber/fiber/v2"

	m "ktagkk_backend/internals/features/kta/requests/model"
)

func TestTransitionAllowed(t *testing.T) {
	tests := []struct {
		name    string
		current m.Status
		action  Action
		want    m.Status
	}{
		{"draft submit self-service", m.StatusDraft, ActionSubmitApproval, m.StatusWaitingApproval},
		{"draft submit bulk invoice", m.StatusDraft, ActionSubmitInvoicing, m.StatusWaitingPayment},
		{"submit self-service setelah invoice lunas", m.StatusWaitingPayment, ActionSubmitApproval, m.StatusWaitingApproval},
		{"review daerah dari waiting payment", m.StatusWaitingPayment, ActionRegionalReview, m.StatusReadyForPusat},
		{"review daerah dari waiting approval", m.StatusWaitingApproval, ActionRegionalReview, m.StatusReadyForPusat},
		{"approval pusat", m.StatusReadyForPusat, ActionPusatApprove, m.StatusApprovedByPusat},
		{"reject dari waiting approval", m.StatusWaitingApproval, ActionReject, m.StatusRejected},
		{"reject dari ready for pusat", m.StatusReadyForPusat, ActionReject, m.StatusRejected},
		{"siap cetak", m.StatusApprovedByPusat, ActionMarkReadyToPrint, m.StatusReadyToPrint},
		{"cetak dari approved", m.StatusApprovedByPusat, ActionMarkPrinted, m.StatusPrinted},
		{"cetak dari ready to print", m.StatusReadyToPrint, ActionMarkPrinted, m.StatusPrinted},
		{"cetak ulang", m.StatusPrinted, ActionMarkPrinted, m.StatusPrinted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Transition(tt.current, tt.action)
			if err != nil {
				t.Fatalf("Transition(%s, %s) error tak terduga: %v", tt.current, tt.action, err)
			}
			if got != tt.want {
				t.Errorf("Transition(%s, %s) = %s, want %s", tt.current, tt.action, got, tt.want)
			}
		})
	}
}

func TestTransitionDenied(t *testing.T) {
	tests := []struct {
		name    string
		current m.Status
		action  Action
	}{
		{"draft tidak bisa langsung approve", m.StatusDraft, ActionPusatApprove},
		{"waiting payment tidak bisa cetak", m.StatusWaitingPayment, ActionMarkPrinted},
		{"printed terminal untuk review", m.StatusPrinted, ActionRegionalReview},
		{"rejected terminal", m.StatusRejected, ActionSubmitApproval},
		{"approved tidak bisa direject lagi", m.StatusApprovedByPusat, ActionReject},
		{"submit ulang setelah submit", m.StatusWaitingApproval, ActionSubmitInvoicing},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Transition(tt.current, tt.action)
			if err == nil {
				t.Fatalf("Transition(%s, %s) seharusnya gagal", tt.current, tt.action)
			}
			var fe *fiber.Error
			if !errors.As(err, &fe) || fe.Code != fiber.StatusPreconditionFailed {
				t.Errorf("error harus 412 precondition, got %v", err)
			}
			if got != tt.current {
				t.Errorf("status tidak boleh berubah saat guard gagal: got %s", got)
			}
		})
	}
}

func TestInvoiceable(t *testing.T) {
	invoiceable := []m.Status{m.StatusDraft, m.StatusWaitingPayment}
	for _, s := range invoiceable {
		if !Invoiceable(s) {
			t.Errorf("status %s seharusnya bisa masuk invoice", s)
		}
	}
	blocked := []m.Status{
		m.StatusWaitingApproval, m.StatusReadyForPusat, m.StatusApprovedByPusat,
		m.StatusReadyToPrint, m.StatusPrinted, m.StatusRejected,
	}
	for _, s := range blocked {
		if Invoiceable(s) {
			t.Errorf("status %s seharusnya tidak bisa masuk invoice", s)
		}
	}
}

// Guard submit approval mensyaratkan baris payment PAID, dan baris payment
// hanya lahir dari pembuatan invoice. Setiap status yang mengizinkan submit
// approval wajib bisa di-invoice — kalau tidak, operasinya mustahil selesai.
func TestSubmitApprovalStatusesCanAcquirePayment(t *testing.T) {
	admitting := 0
	for status, acts := range transitions {
		if _, ok := acts[ActionSubmitApproval]; !ok {
			continue
		}
		admitting++
		if !Invoiceable(status) {
			t.Errorf("status %s mengizinkan submit approval tapi tidak bisa di-invoice", status)
		}
	}
	if admitting == 0 {
		t.Fatal("tidak ada status yang mengizinkan submit approval")
	}
}

func TestDeletable(t *testing.T) {
	blocked := []m.Status{
		m.StatusReadyForPusat, m.StatusApprovedByPusat, m.StatusReadyToPrint, m.StatusPrinted,
	}
	for _, s := range blocked {
		if Deletable(s) {
			t.Errorf("status %s seharusnya tidak bisa dihapus", s)
		}
	}
	allowed := []m.Status{
		m.StatusDraft, m.StatusWaitingPayment, m.StatusWaitingApproval, m.StatusRejected,
	}
	for _, s := range allowed {
		if !Deletable(s) {
			t.Errorf("status %s seharusnya bisa dihapus", s)
		}
	}
}

func TestPrintable(t *testing.T) {
	printable := []m.Status{m.StatusApprovedByPusat, m.StatusReadyToPrint, m.StatusPrinted}
	for _, s := range printable {
		if !Printable(s) {
			t.Errorf("status %s seharusnya bisa dicetak", s)
		}
	}
	notPrintable := []m.Status{
		m.StatusDraft, m.StatusWaitingPayment, m.StatusWaitingApproval,
		m.StatusReadyForPusat, m.StatusRejected,
	}
	for _, s := range notPrintable {
		if Printable(s) {
			t.Errorf("status %s seharusnya tidak bisa dicetak", s)
		}
	}
}
