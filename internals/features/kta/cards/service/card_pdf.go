package service

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
)

// CardData: field yang tercetak di kartu. Foto dan QR berupa bytes PNG/JPEG
// yang sudah diambil dari storage — renderer tidak menyentuh jaringan.
type CardData struct {
	NomorKTA       string
	Nama           string
	IDIzin         string
	Jabatan        string
	Subklasifikasi string
	Jenjang        int16
	TahunTerbit    int

	FotoJPEG []byte // opsional
	QRPNG    []byte
}

// Ukuran kartu ID standar ID-1 dalam mm.
const (
	cardWidth  = 85.6
	cardHeight = 54.0
)

// RenderCardPDF merender kartu satu halaman dengan layout tetap.
func RenderCardPDF(data CardData) ([]byte, error) {
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		UnitStr: "mm",
		Size:    gofpdf.SizeType{Wd: cardWidth, Ht: cardHeight},
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	// Banner header
	pdf.SetFillColor(13, 71, 161)
	pdf.Rect(0, 0, cardWidth, 12, "F")
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 8)
	pdf.SetXY(3, 2.5)
	pdf.CellFormat(cardWidth-6, 4, "KARTU TANDA ANGGOTA", "", 0, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 6)
	pdf.SetXY(3, 6.8)
	pdf.CellFormat(cardWidth-6, 3, "LSP GELAR KARYA KONSTRUKSI", "", 0, "C", false, 0, "")

	// Foto kiri
	photoX, photoY := 3.0, 15.0
	if len(data.FotoJPEG) > 0 {
		opt := gofpdf.ImageOptions{ImageType: "JPEG", ReadDpi: false}
		pdf.RegisterImageOptionsReader("foto", opt, bytes.NewReader(data.FotoJPEG))
		pdf.ImageOptions("foto", photoX, photoY, 18, 24, false, opt, 0, "")
	} else {
		pdf.SetDrawColor(180, 180, 180)
		pdf.Rect(photoX, photoY, 18, 24, "D")
	}

	// Identitas tengah
	pdf.SetTextColor(33, 33, 33)
	x, y := 24.0, 15.0
	line := func(label, value string) {
		pdf.SetFont("Helvetica", "", 5)
		pdf.SetXY(x, y)
		pdf.CellFormat(14, 3, label, "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "B", 6)
		pdf.CellFormat(0, 3, value, "", 0, "L", false, 0, "")
		y += 4.2
	}
	line("Nomor KTA", data.NomorKTA)
	line("Nama", data.Nama)
	line("ID Izin", data.IDIzin)
	line("Jabatan", data.Jabatan)
	line("Subklasifikasi", data.Subklasifikasi)
	line("Jenjang", fmt.Sprintf("%d", data.Jenjang))

	// QR kanan bawah
	if len(data.QRPNG) > 0 {
		opt := gofpdf.ImageOptions{ImageType: "PNG", ReadDpi: false}
		pdf.RegisterImageOptionsReader("qr", opt, bytes.NewReader(data.QRPNG))
		pdf.ImageOptions("qr", cardWidth-19, cardHeight-19, 16, 16, false, opt, 0, "")
	}

	// Footer tahun terbit
	pdf.SetFont("Helvetica", "I", 5)
	pdf.SetTextColor(120, 120, 120)
	pdf.SetXY(3, cardHeight-6)
	pdf.CellFormat(40, 3, fmt.Sprintf("Terbit %d", data.TahunTerbit), "", 0, "L", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render PDF kartu gagal: %w", err)
	}
	return buf.Bytes(), nil
}
