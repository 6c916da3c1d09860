package storage

import (
	"bytes"
	"fmt"
	"log"
	"strings"
	"sync"

	"github.com/aliyun/aliyun-oss-go-sdk/oss"

	"ktagkk_backend/internals/configs"
)

var (
	bucketOnce sync.Once
	bucketRef  *oss.Bucket
	bucketErr  error
)

func getBucket() (*oss.Bucket, error) {
	bucketOnce.Do(func() {
		endpoint := configs.OSSEndpoint
		bucketName := configs.OSSBucketName
		akID := configs.GetEnv("OSS_ACCESS_KEY_ID")
		akSecret := configs.GetEnv("OSS_ACCESS_KEY_SECRET")

		if endpoint == "" || bucketName == "" || akID == "" || akSecret == "" {
			bucketErr = fmt.Errorf("konfigurasi OSS belum lengkap (endpoint/bucket/access key)")
			return
		}

		client, err := oss.New(endpoint, akID, akSecret)
		if err != nil {
			bucketErr = fmt.Errorf("init OSS client: %w", err)
			return
		}
		bucketRef, bucketErr = client.Bucket(bucketName)
	})
	return bucketRef, bucketErr
}

// UploadBytes menyimpan blob (PDF kartu, PNG QR, WebP foto) ke OSS dan
// mengembalikan URL publiknya.
func UploadBytes(objectKey, contentType string, data []byte) (string, error) {
	b, err := getBucket()
	if err != nil {
		return "", err
	}
	opts := []oss.Option{
		oss.ContentType(contentType),
		oss.CacheControl("public, max-age=31536000"),
	}
	if err := b.PutObject(objectKey, bytes.NewReader(data), opts...); err != nil {
		return "", fmt.Errorf("put object %s: %w", objectKey, err)
	}
	return PublicURL(objectKey), nil
}

// GetBytes mengambil kembali objek yang pernah diupload (dipakai ekspor zip).
func GetBytes(objectKey string) ([]byte, error) {
	b, err := getBucket()
	if err != nil {
		return nil, err
	}
	body, err := b.GetObject(objectKey)
	if err != nil {
		return nil, fmt.Errorf("get object %s: %w", objectKey, err)
	}
	defer body.Close()

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(body); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func DeleteObject(objectKey string) {
	b, err := getBucket()
	if err != nil {
		return
	}
	if err := b.DeleteObject(objectKey); err != nil {
		log.Printf("[WARNING] gagal hapus objek OSS %s: %v", objectKey, err)
	}
}

// PublicURL membentuk URL publik bucket untuk satu object key.
func PublicURL(objectKey string) string {
	endpoint := strings.TrimPrefix(configs.OSSEndpoint, "https://")
	endpoint = strings.TrimPrefix(endpoint, "http://")
	return fmt.Sprintf("https://%s.%s/%s", configs.OSSBucketName, endpoint, objectKey)
}

// ObjectKeyFromURL kebalikan dari PublicURL; dipakai saat ekspor/hapus.
func ObjectKeyFromURL(rawURL string) string {
	prefix := fmt.Sprintf("https://%s.%s/", configs.OSSBucketName,
		strings.TrimPrefix(strings.TrimPrefix(configs.OSSEndpoint, "https://"), "http://"))
	return strings.TrimPrefix(rawURL, prefix)
}
