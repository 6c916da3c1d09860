package service

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const invoicePrefix = "KTA-INV/LSP-GKK"

// InvoicePeriodPrefix: prefix nomor invoice untuk satu periode,
// contoh "KTA-INV/LSP-GKK/2026/09-".
func InvoicePeriodPrefix(t time.Time) string {
	return fmt.Sprintf("%s/%d/%02d-", invoicePrefix, t.Year(), int(t.Month()))
}

// NextInvoiceNumber menghitung nomor invoice berikutnya dari daftar
// nomor yang sudah ada pada periode yang sama. Sequence reset tiap
// bulan karena prefix ikut tahun/bulan. Suffix non-numerik diabaikan.
func NextInvoiceNumber(t time.Time, existing []string) string {
	prefix := InvoicePeriodPrefix(t)

	max := 0
	for _, num := range existing {
		if !strings.HasPrefix(num, prefix) {
			continue
		}
		seq, err := strconv.Atoi(strings.TrimPrefix(num, prefix))
		if err != nil {
			continue
		}
		if seq > max {
			max = seq
		}
	}
	return fmt.Sprintf("%s%04d", prefix, max+1)
}
