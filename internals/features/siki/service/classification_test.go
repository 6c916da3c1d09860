package service

import "testing"

func TestSplitClassification(t *testing.T) {
	tests := []struct {
		name     string
		code     string
		category string
		subcode  string
	}{
		{"kode normal", "SI001", "SI", "001"},
		{"lowercase dinormalisasi", "bg009", "BG", "009"},
		{"spasi di tepi dibuang", "  MK101 ", "MK", "101"},
		{"tepat dua karakter", "TS", "TS", ""},
		{"satu karakter", "a", "A", ""},
		{"kosong", "", "", ""},
		{"subkode alfanumerik", "el07x", "EL", "07X"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cat, sub := SplitClassification(tt.code)
			if cat != tt.category || sub != tt.subcode {
				t.Errorf("SplitClassification(%q) = (%q, %q), want (%q, %q)",
					tt.code, cat, sub, tt.category, tt.subcode)
			}
		})
	}
}
