package storage

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"mime/multipart"
	"regexp"
	"time"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	"github.com/google/uuid"
)

const (
	maxUploadSize = 5 * 1024 * 1024 // 5 MB guard sebelum decode
	maxImageW     = 1600
	maxImageH     = 1600
	webpQuality   = 80
)

var unsafeFilenameRe = regexp.MustCompile(`[^a-zA-Z0-9.\-_]+`)

// UploadImageWebP menerima file KTP/foto/bukti bayar, resize ke batas wajar,
// re-encode ke WebP, lalu simpan di OSS. Return URL publik.
func UploadImageWebP(folder string, fileHeader *multipart.FileHeader) (string, error) {
	if fileHeader.Size > maxUploadSize {
		return "", fmt.Errorf("ukuran file melebihi 5MB (%d KB)", fileHeader.Size/1024)
	}

	src, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("gagal membuka file: %w", err)
	}
	defer src.Close()

	raw, err := io.ReadAll(io.LimitReader(src, maxUploadSize+1))
	if err != nil {
		return "", fmt.Errorf("gagal membaca file: %w", err)
	}
	if int64(len(raw)) > maxUploadSize {
		return "", fmt.Errorf("ukuran file melebihi 5MB")
	}

	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return "", fmt.Errorf("file bukan gambar yang valid: %w", err)
	}

	// resize keep-aspect hanya jika melewati batas
	bounds := img.Bounds()
	if bounds.Dx() > maxImageW || bounds.Dy() > maxImageH {
		img = imaging.Fit(img, maxImageW, maxImageH, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, &webp.Options{Quality: webpQuality}); err != nil {
		return "", fmt.Errorf("encode webp gagal: %w", err)
	}

	objectKey := uniqueObjectKey(folder, fileHeader.Filename)
	return UploadBytes(objectKey, "image/webp", buf.Bytes())
}

func uniqueObjectKey(folder, originalFilename string) string {
	safe := unsafeFilenameRe.ReplaceAllString(originalFilename, "_")
	return fmt.Sprintf("%s/%s-%s-%s.webp",
		folder, time.Now().Format("20060102"), uuid.New().String(), safe)
}
