package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"ktagkk_backend/internals/configs"
)

// Error taxonomy lookup registry — dibedakan supaya pesan ke user jelas
// (tidak ditemukan vs format salah vs kadaluarsa vs registry down).
var (
	ErrMalformedID = errors.New("format ID izin tidak valid")
	ErrNotFound    = errors.New("data tidak ditemukan di registry SIKI")
	ErrExpired     = errors.New("izin sudah kadaluarsa di registry SIKI")
	ErrUnreachable = errors.New("registry SIKI tidak dapat dihubungi")
)

var idIzinRe = regexp.MustCompile(`^[0-9]{6,32}$`)

// PersonRecord: field identitas yang dipulangkan registry.
type PersonRecord struct {
	IDIzin             string `json:"id_izin"`
	Nama               string `json:"nama"`
	NIK                string `json:"nik"`
	Jabatan            string `json:"jabatan_kerja"`
	KodeKlasifikasi    string `json:"kode_klasifikasi"`
	NamaKlasifikasi    string `json:"nama_klasifikasi"`
	Subklasifikasi     string `json:"subklasifikasi"`
	Jenjang            int    `json:"jenjang"`
	Email              string `json:"email"`
	NoTelepon          string `json:"no_telepon"`
	Alamat             string `json:"alamat"`
	TanggalRegistrasi  string `json:"tanggal_registrasi"`
	TanggalKadaluarsa  string `json:"tanggal_kadaluarsa"`
}

type lookupEnvelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type Client struct {
	BaseURL string
	HTTP    *http.Client
}

func NewClient() *Client {
	return &Client{
		BaseURL: configs.SikiBaseURL,
		HTTP:    &http.Client{Timeout: 10 * time.Second},
	}
}

// Lookup menarik data identitas dari registry berdasarkan ID izin.
// Raw body ikut dipulangkan untuk disimpan sebagai snapshot di request.
func (cl *Client) Lookup(ctx context.Context, idIzin string) (*PersonRecord, json.RawMessage, error) {
	idIzin = strings.TrimSpace(idIzin)
	if !idIzinRe.MatchString(idIzin) {
		return nil, nil, ErrMalformedID
	}

	reqURL := fmt.Sprintf("%s/registrasi/%s", strings.TrimRight(cl.BaseURL, "/"), url.PathEscape(idIzin))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := cl.HTTP.Do(req)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrUnreachable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, nil, ErrNotFound
	}
	if resp.StatusCode >= 500 {
		return nil, nil, fmt.Errorf("%w: status %d", ErrUnreachable, resp.StatusCode)
	}

	var env lookupEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, nil, fmt.Errorf("%w: body tidak valid", ErrUnreachable)
	}
	if !env.Success {
		if strings.Contains(strings.ToLower(env.Message), "kadaluarsa") ||
			strings.Contains(strings.ToLower(env.Message), "expired") {
			return nil, nil, ErrExpired
		}
		return nil, nil, ErrNotFound
	}

	var rec PersonRecord
	if err := json.Unmarshal(env.Data, &rec); err != nil {
		return nil, nil, fmt.Errorf("%w: data tidak valid", ErrUnreachable)
	}
	rec.IDIzin = idIzin
	return &rec, env.Data, nil
}
