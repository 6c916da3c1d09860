package database

import (
	"log"

	paymentModel "ktagkk_backend/internals/features/kta/payments/model"
	requestModel "ktagkk_backend/internals/features/kta/requests/model"
	cardScanModel "ktagkk_backend/internals/features/kta/scans/model"
	regionModel "ktagkk_backend/internals/features/regions/model"
	sikiModel "ktagkk_backend/internals/features/siki/model"
	authModel "ktagkk_backend/internals/features/users/auth/model"
	userModel "ktagkk_backend/internals/features/users/user/model"
)

// AutoMigrate menjalankan migrasi skema seluruh model.
// Urutan mengikuti dependensi FK.
func AutoMigrate() {
	if err := DB.AutoMigrate(
		&regionModel.RegionModel{},
		&regionModel.RegionPriceModel{},
		&userModel.UserModel{},
		&authModel.TokenBlacklist{},
		&sikiModel.ClassificationModel{},
		&requestModel.KtaRequestModel{},
		&paymentModel.BulkPaymentModel{},
		&paymentModel.PaymentModel{},
		&cardScanModel.QrScanModel{},
	); err != nil {
		log.Fatalf("❌ AutoMigrate gagal: %v", err)
	}
	log.Println("✅ AutoMigrate selesai")
}
