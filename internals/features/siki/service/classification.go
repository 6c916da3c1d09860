package service

import (
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"ktagkk_backend/internals/features/siki/model"
)

// SplitClassification memecah kode klasifikasi SIKI menjadi
// (kategori 2 karakter, subkode sisanya), keduanya uppercase.
// Format ini kontrak data registry — jangan diubah.
func SplitClassification(code string) (category string, subcode string) {
	code = strings.TrimSpace(code)
	if len(code) < 2 {
		return strings.ToUpper(code), ""
	}
	return strings.ToUpper(code[:2]), strings.ToUpper(code[2:])
}

// UpsertClassification menyimpan hasil dekomposisi sebagai baris lookup lokal.
func UpsertClassification(db *gorm.DB, code, name string) error {
	category, subcode := SplitClassification(code)
	if category == "" {
		return nil
	}
	row := model.ClassificationModel{
		ClassificationCategory: category,
		ClassificationSubcode:  subcode,
		ClassificationName:     name,
	}
	return db.Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "classification_category"},
			{Name: "classification_subcode"},
		},
		DoUpdates: clause.AssignmentColumns([]string{"classification_name"}),
	}).Create(&row).Error
}
