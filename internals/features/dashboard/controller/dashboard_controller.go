package controller

import (
	"sort"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	service "ktagkk_backend/internals/features/dashboard/service"
	paymentModel "ktagkk_backend/internals/features/kta/payments/model"
	requestModel "ktagkk_backend/internals/features/kta/requests/model"
	helper "ktagkk_backend/internals/helpers"
	authz "ktagkk_backend/internals/helpers/auth"
)

type DashboardController struct {
	DB *gorm.DB
}

func NewDashboardController(db *gorm.DB) *DashboardController {
	return &DashboardController{DB: db}
}

type revenueBucket struct {
	Bucket    time.Time `json:"bucket"`
	RegionID  uuid.UUID `json:"region_id"`
	Confirmed int64     `json:"confirmed"` // Σ invoice VERIFIED
	Pending   int64     `json:"pending"`   // Σ invoice PENDING/PAID
}

/* ======================= REVENUE ======================= */
// GET /dashboard/revenue?from=&to=
// Granularity otomatis dari lebar window: ≤1 bulan harian,
// 3–6 bulan mingguan, di atasnya bulanan.
func (h *DashboardController) Revenue(c *fiber.Ctx) error {
	caller, err := authz.CallerFromCtx(c)
	if err != nil {
		return err
	}

	if authz.MissingRegion(caller) {
		return fiber.NewError(fiber.StatusForbidden, "Akun DAERAH belum terhubung ke region")
	}

	from, to, err := service.ParseWindow(c.Query("from"), c.Query("to"), time.Now())
	if err != nil {
		return err
	}
	granularity := service.ResolveGranularity(from, to)

	q := h.DB.Model(&paymentModel.BulkPaymentModel{}).
		Where("bulk_payment_created_at >= ? AND bulk_payment_created_at < ?", from, to)
	if region, scoped := authz.RegionScoped(caller); scoped {
		q = q.Where("bulk_payment_region_id = ?", region)
	} else if rid := strings.TrimSpace(c.Query("region_id")); rid != "" {
		q = q.Where("bulk_payment_region_id = ?", rid)
	}

	var rows []paymentModel.BulkPaymentModel
	if err := q.Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	type key struct {
		bucket time.Time
		region uuid.UUID
	}
	agg := map[key]*revenueBucket{}
	var totalConfirmed, totalPending int64
	for _, r := range rows {
		if r.BulkPaymentStatus == paymentModel.PaymentStatusRejected {
			continue
		}
		k := key{service.BucketStart(r.BulkPaymentCreatedAt, granularity), r.BulkPaymentRegionID}
		b, ok := agg[k]
		if !ok {
			b = &revenueBucket{Bucket: k.bucket, RegionID: k.region}
			agg[k] = b
		}
		if r.BulkPaymentStatus == paymentModel.PaymentStatusVerified {
			b.Confirmed += r.BulkPaymentTotalNominal
			totalConfirmed += r.BulkPaymentTotalNominal
		} else {
			b.Pending += r.BulkPaymentTotalNominal
			totalPending += r.BulkPaymentTotalNominal
		}
	}

	buckets := make([]revenueBucket, 0, len(agg))
	for _, b := range agg {
		buckets = append(buckets, *b)
	}
	sort.Slice(buckets, func(i, j int) bool {
		if !buckets[i].Bucket.Equal(buckets[j].Bucket) {
			return buckets[i].Bucket.Before(buckets[j].Bucket)
		}
		return buckets[i].RegionID.String() < buckets[j].RegionID.String()
	})

	// Growth: window berjalan vs window sama persis sebelumnya.
	prevConfirmed, err := h.sumConfirmed(caller, from.Add(-(to.Sub(from))), from)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "OK", fiber.Map{
		"from":            from,
		"to":              to,
		"granularity":     granularity,
		"buckets":         buckets,
		"total_confirmed": totalConfirmed,
		"total_pending":   totalPending,
		"growth_percent":  service.GrowthRate(totalConfirmed, prevConfirmed),
	})
}

func (h *DashboardController) sumConfirmed(caller authz.Caller, from, to time.Time) (int64, error) {
	var total *int64
	q := h.DB.Model(&paymentModel.BulkPaymentModel{}).
		Select("SUM(bulk_payment_total_nominal)").
		Where("bulk_payment_status = ?", paymentModel.PaymentStatusVerified).
		Where("bulk_payment_created_at >= ? AND bulk_payment_created_at < ?", from, to)
	if region, scoped := authz.RegionScoped(caller); scoped {
		q = q.Where("bulk_payment_region_id = ?", region)
	}
	if err := q.Scan(&total).Error; err != nil {
		return 0, err
	}
	if total == nil {
		return 0, nil
	}
	return *total, nil
}

/* ======================= RINGKASAN STATUS ======================= */
// GET /dashboard/summary — jumlah request per status, region-scoped.
func (h *DashboardController) Summary(c *fiber.Ctx) error {
	caller, err := authz.CallerFromCtx(c)
	if err != nil {
		return err
	}

	if authz.MissingRegion(caller) {
		return fiber.NewError(fiber.StatusForbidden, "Akun DAERAH belum terhubung ke region")
	}

	type statusCount struct {
		Status requestModel.Status `json:"status"`
		Total  int64               `json:"total"`
	}
	q := h.DB.Model(&requestModel.KtaRequestModel{}).
		Select("kta_request_status AS status, COUNT(*) AS total").
		Group("kta_request_status")
	if region, scoped := authz.RegionScoped(caller); scoped {
		q = q.Where("kta_request_region_id = ?", region)
	}

	var counts []statusCount
	if err := q.Scan(&counts).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "OK", counts)
}
