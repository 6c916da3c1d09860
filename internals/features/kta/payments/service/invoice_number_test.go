package service

import (
	"testing"
	"time"
)

func TestInvoicePeriodPrefix(t *testing.T) {
	at := time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC)
	got := InvoicePeriodPrefix(at)
	want := "KTA-INV/LSP-GKK/2026/09-"
	if got != want {
		t.Fatalf("InvoicePeriodPrefix = %q, want %q", got, want)
	}
}

func TestNextInvoiceNumber(t *testing.T) {
	sep := time.Date(2026, time.September, 15, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		at       time.Time
		existing []string
		want     string
	}{
		{
			name:     "periode kosong mulai dari 0001",
			at:       sep,
			existing: nil,
			want:     "KTA-INV/LSP-GKK/2026/09-0001",
		},
		{
			name: "lanjut dari sequence tertinggi",
			at:   sep,
			existing: []string{
				"KTA-INV/LSP-GKK/2026/09-0003",
				"KTA-INV/LSP-GKK/2026/09-0007",
				"KTA-INV/LSP-GKK/2026/09-0001",
			},
			want: "KTA-INV/LSP-GKK/2026/09-0008",
		},
		{
			name: "nomor bulan lain tidak ikut dihitung",
			at:   sep,
			existing: []string{
				"KTA-INV/LSP-GKK/2026/08-0042",
				"KTA-INV/LSP-GKK/2025/09-0099",
			},
			want: "KTA-INV/LSP-GKK/2026/09-0001",
		},
		{
			name: "suffix rusak diabaikan",
			at:   sep,
			existing: []string{
				"KTA-INV/LSP-GKK/2026/09-abcd",
				"KTA-INV/LSP-GKK/2026/09-0002",
			},
			want: "KTA-INV/LSP-GKK/2026/09-0003",
		},
		{
			name: "lewat 9999 tidak dipad lagi",
			at:   sep,
			existing: []string{
				"KTA-INV/LSP-GKK/2026/09-9999",
			},
			want: "KTA-INV/LSP-GKK/2026/09-10000",
		},
		{
			name: "bulan satu digit dipad dua digit",
			at:   time.Date(2027, time.January, 2, 0, 0, 0, 0, time.UTC),
			existing: []string{
				"KTA-INV/LSP-GKK/2027/01-0004",
			},
			want: "KTA-INV/LSP-GKK/2027/01-0005",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NextInvoiceNumber(tt.at, tt.existing)
			if got != tt.want {
				t.Errorf("NextInvoiceNumber = %q, want %q", got, tt.want)
			}
		})
	}
}
