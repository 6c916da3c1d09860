package service

import (
	"strings"
	"testing"
)

func TestCardNumber(t *testing.T) {
	got := CardNumber(2026, "1234567890")
	want := "KTA/LSP-GKK/2026/1234567890"
	if got != want {
		t.Errorf("CardNumber = %q, want %q", got, want)
	}
}

func TestVerifyURL(t *testing.T) {
	url := VerifyURL("1234567890")
	if !strings.HasSuffix(url, "/api/public/kta/verify/1234567890") {
		t.Errorf("VerifyURL = %q, path verifikasi publik salah", url)
	}
	if strings.Contains(url, "//api") {
		t.Errorf("VerifyURL = %q, base URL tidak di-trim", url)
	}
}
